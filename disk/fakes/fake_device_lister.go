package fakes

import (
	"github.com/wobbob89/og-usb/disk"
)

type FakeUsbDeviceLister struct {
	ListUsbDevicesCallCount int
	ListUsbDevicesDevices   []disk.Device
	ListUsbDevicesErr       error
}

func (l *FakeUsbDeviceLister) ListUsbDevices() ([]disk.Device, error) {
	l.ListUsbDevicesCallCount++
	return l.ListUsbDevicesDevices, l.ListUsbDevicesErr
}
