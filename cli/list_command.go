package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	ogadvisor "github.com/wobbob89/og-usb/advisor"
	ogapp "github.com/wobbob89/og-usb/app"
)

func newListCommand(a *ogapp.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List attached USB storage devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := a.Lister.ListUsbDevices()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(devices) == 0 {
				fmt.Fprintln(out, "No USB devices detected.")
				return nil
			}

			for _, device := range devices {
				description := strings.TrimSpace(strings.Join([]string{device.Vendor, device.Model}, " "))
				if description == "" {
					description = "Unknown"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\trecommended: %s\n",
					device.Path,
					humanize.IBytes(device.SizeInBytes),
					description,
					ogadvisor.Recommend(device.SizeInBytes).DisplayName())
			}
			return nil
		},
	}
}
