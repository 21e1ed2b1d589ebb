package disk

import "strings"

type FileSystemType string

const (
	FileSystemFAT32 FileSystemType = "vfat"
	FileSystemExFAT FileSystemType = "exfat"
	FileSystemNTFS  FileSystemType = "ntfs"
	FileSystemExt4  FileSystemType = "ext4"
)

// FileSystemTypes lists every filesystem the format tools support.
var FileSystemTypes = []FileSystemType{
	FileSystemFAT32,
	FileSystemExFAT,
	FileSystemNTFS,
	FileSystemExt4,
}

// ParseFileSystemType accepts both the mkfs tool suffix ("vfat") and the
// display name ("FAT32") for each supported filesystem.
func ParseFileSystemType(value string) (FileSystemType, bool) {
	for _, fsType := range FileSystemTypes {
		if strings.EqualFold(value, string(fsType)) || strings.EqualFold(value, fsType.DisplayName()) {
			return fsType, true
		}
	}
	return "", false
}

func (t FileSystemType) DisplayName() string {
	switch t {
	case FileSystemFAT32:
		return "FAT32"
	case FileSystemExFAT:
		return "exFAT"
	case FileSystemNTFS:
		return "NTFS"
	case FileSystemExt4:
		return "ext4"
	}
	return strings.ToUpper(string(t))
}
