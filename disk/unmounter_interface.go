package disk

// Unmounter detaches a mounted partition. Implementations retry once before
// giving up, busy mounts often release on the second attempt.
type Unmounter interface {
	Unmount(partitionPath string) (err error)
}
