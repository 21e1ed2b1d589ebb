package fakes

type FakeMountsSearcher struct {
	SearchMountsDevicePaths    []string
	SearchMountsPartitionPaths []string
	SearchMountsErr            error
}

func (s *FakeMountsSearcher) SearchMounts(devicePath string) ([]string, error) {
	s.SearchMountsDevicePaths = append(s.SearchMountsDevicePaths, devicePath)
	return s.SearchMountsPartitionPaths, s.SearchMountsErr
}
