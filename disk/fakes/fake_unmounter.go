package fakes

type FakeUnmounter struct {
	UnmountPartitionPaths []string
	UnmountErrs           map[string]error
}

func (u *FakeUnmounter) Unmount(partitionPath string) error {
	u.UnmountPartitionPaths = append(u.UnmountPartitionPaths, partitionPath)
	if u.UnmountErrs != nil {
		return u.UnmountErrs[partitionPath]
	}
	return nil
}
