package disk

// MountsSearcher finds the currently mounted partition nodes belonging to
// a device.
type MountsSearcher interface {
	SearchMounts(devicePath string) (partitionPaths []string, err error)
}
