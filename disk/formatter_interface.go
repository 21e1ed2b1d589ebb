package disk

// Formatter invokes the format tool matching fsType against a partition
// device node. Formatting is destructive and idempotent: repeating it with
// the same arguments converges to the same filesystem.
type Formatter interface {
	Format(partitionPath string, fsType FileSystemType, label string) (err error)
}
