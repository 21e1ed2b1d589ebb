package fakes

import (
	"github.com/wobbob89/og-usb/disk"
)

type VerifyCall struct {
	DevicePath string
	Expected   disk.FileSystemType
}

type FakeVerifier struct {
	VerifyCalls []VerifyCall
	VerifyErr   error
}

func (v *FakeVerifier) Verify(devicePath string, expected disk.FileSystemType) error {
	v.VerifyCalls = append(v.VerifyCalls, VerifyCall{DevicePath: devicePath, Expected: expected})
	return v.VerifyErr
}
