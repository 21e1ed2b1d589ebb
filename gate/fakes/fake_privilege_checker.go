package fakes

type FakePrivilegeChecker struct {
	IsPrivilegedValue bool
}

func (c FakePrivilegeChecker) IsPrivileged() bool {
	return c.IsPrivilegedValue
}
