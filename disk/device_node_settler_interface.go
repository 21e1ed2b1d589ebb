package disk

// DeviceNodeSettler waits for the kernel to publish a device node after a
// partition table change. Partition creation is the one place in the tool
// where genuine timing nondeterminism exists.
type DeviceNodeSettler interface {
	WaitForDeviceNode(devicePath string) (err error)
}
