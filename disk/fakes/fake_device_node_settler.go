package fakes

type FakeDeviceNodeSettler struct {
	WaitForDeviceNodePaths []string
	WaitForDeviceNodeErr   error
}

func (s *FakeDeviceNodeSettler) WaitForDeviceNode(devicePath string) error {
	s.WaitForDeviceNodePaths = append(s.WaitForDeviceNodePaths, devicePath)
	return s.WaitForDeviceNodeErr
}
