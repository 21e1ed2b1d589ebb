package disk

// Transport values reported by the block device enumerator.
const TransportUSB = "usb"

// Device is one discovered block device. Records are constructed fresh on
// each enumeration and never mutated afterwards.
type Device struct {
	Path        string
	SizeInBytes uint64
	Model       string
	Vendor      string
	Transport   string
}

// FirstPartitionPath returns the device node of the first partition on
// devicePath. Devices whose name ends in a digit (nvme0n1, mmcblk0) take a
// "p" separator before the partition number.
func FirstPartitionPath(devicePath string) string {
	if devicePath == "" {
		return devicePath
	}

	last := devicePath[len(devicePath)-1]
	if last >= '0' && last <= '9' {
		return devicePath + "p1"
	}
	return devicePath + "1"
}

// BelongsTo reports whether partitionPath is a partition node of devicePath.
// A bare prefix match is not enough, /dev/sdab must not count as a partition
// of /dev/sda.
func BelongsTo(devicePath, partitionPath string) bool {
	if devicePath == "" || len(partitionPath) <= len(devicePath) {
		return false
	}
	if partitionPath[:len(devicePath)] != devicePath {
		return false
	}

	rest := partitionPath[len(devicePath):]
	if rest[0] == 'p' {
		rest = rest[1:]
	}
	if rest == "" {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return false
		}
	}
	return true
}
