package disk

// Verifier re-enumerates a device and confirms the created partition
// reports the expected filesystem type.
type Verifier interface {
	Verify(devicePath string, expected FileSystemType) (err error)
}
