package cli

import (
	"fmt"
	"io"

	ogpipeline "github.com/wobbob89/og-usb/pipeline"
)

func renderResults(out io.Writer, results []ogpipeline.StageResult) {
	for i, result := range results {
		mark := "✓"
		if !result.Succeeded {
			mark = "✗"
		}
		fmt.Fprintf(out, "[%d/%d] %-9s %s %s\n", i+1, len(ogpipeline.Stages), result.Stage, mark, result.Message)
	}
}
