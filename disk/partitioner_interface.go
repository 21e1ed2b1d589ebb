package disk

// Partitioner replaces the partition table on a device with a fresh GPT
// label holding a single primary partition spanning the usable device, and
// returns the partition's device node once the kernel has published it.
type Partitioner interface {
	Partition(devicePath string) (partitionPath string, err error)
}
