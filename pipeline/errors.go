package pipeline

// Stage errors name the exact partial state a halted run left behind: a
// wiped-but-unpartitioned device is a different recoverable state than a
// partitioned-but-unformatted one. Each carries the failing tool's captured
// diagnostic text in its cause chain.

type WipeError struct {
	Cause error
}

func (e WipeError) Error() string { return "Wiping device: " + e.Cause.Error() }
func (e WipeError) Unwrap() error { return e.Cause }

type PartitionError struct {
	Cause error
}

func (e PartitionError) Error() string { return "Partitioning device: " + e.Cause.Error() }
func (e PartitionError) Unwrap() error { return e.Cause }

type FormatError struct {
	Cause error
}

func (e FormatError) Error() string { return "Formatting partition: " + e.Cause.Error() }
func (e FormatError) Unwrap() error { return e.Cause }

type VerificationError struct {
	Cause error
}

func (e VerificationError) Error() string { return "Verifying device: " + e.Cause.Error() }
func (e VerificationError) Unwrap() error { return e.Cause }
