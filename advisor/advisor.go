// Package advisor maps a device's capacity to a default filesystem choice.
// The recommendation is a default the caller may always override, never an
// enforced policy.
package advisor

import (
	"github.com/wobbob89/og-usb/disk"
)

// Capacity ceiling for the FAT32 recommendation. FAT32 keeps maximum
// compatibility on small sticks; past 32GiB exFAT's large-file support wins.
const fat32MaxSizeInBytes uint64 = 32 * 1024 * 1024 * 1024

// Recommend is total over all capacities and has no failure mode. The
// boundary is inclusive: a 32GiB device still gets FAT32.
func Recommend(sizeInBytes uint64) disk.FileSystemType {
	if sizeInBytes <= fat32MaxSizeInBytes {
		return disk.FileSystemFAT32
	}
	return disk.FileSystemExFAT
}
