package disk

// Wiper zeroes the leading region of a device, destroying the partition
// table and any filesystem signatures.
type Wiper interface {
	Wipe(devicePath string) (err error)
}
