package gate

type InsufficientPrivilegeError struct{}

func (InsufficientPrivilegeError) Error() string {
	return "root privileges are required for destructive device operations"
}

// UnmountError is returned when a mounted partition on the target device
// cannot be detached. The pipeline must never proceed over a mounted target.
type UnmountError struct {
	PartitionPath string
	Cause         error
}

func (e UnmountError) Error() string {
	return "Unmounting " + e.PartitionPath + ": " + e.Cause.Error()
}

func (e UnmountError) Unwrap() error { return e.Cause }
