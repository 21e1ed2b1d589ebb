package fakes

type FakeWiper struct {
	WipeDevicePaths []string
	WipeErr         error
}

func (w *FakeWiper) Wipe(devicePath string) error {
	w.WipeDevicePaths = append(w.WipeDevicePaths, devicePath)
	return w.WipeErr
}
