package gate

import "os"

type osPrivilegeChecker struct{}

func NewOsPrivilegeChecker() PrivilegeChecker {
	return osPrivilegeChecker{}
}

func (osPrivilegeChecker) IsPrivileged() bool {
	return os.Geteuid() == 0
}
