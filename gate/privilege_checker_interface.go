package gate

// PrivilegeChecker reports whether the process holds the elevated rights
// the privileged external tools require.
type PrivilegeChecker interface {
	IsPrivileged() bool
}
