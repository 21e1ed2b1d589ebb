package fakes

import (
	"github.com/wobbob89/og-usb/disk"
)

type FormatCall struct {
	PartitionPath string
	FsType        disk.FileSystemType
	Label         string
}

type FakeFormatter struct {
	FormatCalls []FormatCall
	FormatErr   error
}

func (f *FakeFormatter) Format(partitionPath string, fsType disk.FileSystemType, label string) error {
	f.FormatCalls = append(f.FormatCalls, FormatCall{
		PartitionPath: partitionPath,
		FsType:        fsType,
		Label:         label,
	})
	return f.FormatErr
}
