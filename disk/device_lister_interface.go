package disk

// UsbDeviceLister enumerates attached block devices and surfaces only
// USB-transport ones, in the enumerator's original order. An empty catalog
// is a normal result, not an error.
type UsbDeviceLister interface {
	ListUsbDevices() (devices []Device, err error)
}

// DiscoveryError is returned when the block device enumerator is unavailable
// or produces output that cannot be parsed.
type DiscoveryError struct {
	Cause error
}

func (e DiscoveryError) Error() string {
	return "Discovering USB devices: " + e.Cause.Error()
}

func (e DiscoveryError) Unwrap() error { return e.Cause }
