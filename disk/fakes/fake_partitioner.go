package fakes

import (
	"github.com/wobbob89/og-usb/disk"
)

type FakePartitioner struct {
	PartitionDevicePaths   []string
	PartitionPartitionPath string
	PartitionErr           error
}

func (p *FakePartitioner) Partition(devicePath string) (string, error) {
	p.PartitionDevicePaths = append(p.PartitionDevicePaths, devicePath)
	if p.PartitionErr != nil {
		return "", p.PartitionErr
	}
	if p.PartitionPartitionPath != "" {
		return p.PartitionPartitionPath, nil
	}
	return disk.FirstPartitionPath(devicePath), nil
}
