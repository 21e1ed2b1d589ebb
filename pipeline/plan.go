package pipeline

import (
	"strings"

	"github.com/wobbob89/og-usb/disk"
)

// DefaultLabel is applied when the operator leaves the volume label empty.
const DefaultLabel = "OG_USB"

// Plan is the validated input to a pipeline run. It is immutable once the
// run starts; build a fresh one for every run.
type Plan struct {
	Device     disk.Device
	FileSystem disk.FileSystemType
	Label      string
}

func NewPlan(device disk.Device, fsType disk.FileSystemType, label string) Plan {
	if label == "" {
		label = DefaultLabel
	}

	return Plan{
		Device:     device,
		FileSystem: fsType,
		Label:      SanitizeLabel(label, fsType),
	}
}

// Label length limits enforced by the respective mkfs tools.
var labelMaxLengths = map[disk.FileSystemType]int{
	disk.FileSystemFAT32: 11,
	disk.FileSystemExFAT: 15,
	disk.FileSystemNTFS:  32,
	disk.FileSystemExt4:  16,
}

// SanitizeLabel reduces a label to characters every format tool accepts and
// enforces the per-filesystem length limit. FAT32 labels are uppercased, the
// tool warns about lowercase ones.
func SanitizeLabel(label string, fsType disk.FileSystemType) string {
	var b strings.Builder
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	clean := b.String()
	if clean == "" {
		clean = DefaultLabel
	}

	if maxLen, found := labelMaxLengths[fsType]; found && len(clean) > maxLen {
		clean = clean[:maxLen]
	}

	if fsType == disk.FileSystemFAT32 {
		clean = strings.ToUpper(clean)
	}

	return clean
}
