// Package gate holds the safety checks standing between a validated plan
// and the destructive pipeline: process privilege, a pre-flight unmount
// sweep of the target device, and the operator's explicit confirmation.
package gate

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/wobbob89/og-usb/disk"
	"github.com/wobbob89/og-usb/pipeline"
)

// Decision is the outcome of a successful Authorize call. Cancellation is a
// normal abort path, not an error.
type Decision int

const (
	DecisionCancelled Decision = iota
	DecisionProceed
)

// RequiredConfirmation must match the operator's input exactly. No case
// folding, no trimming.
const RequiredConfirmation = "YES"

type Gate struct {
	logger     boshlog.Logger
	privileges PrivilegeChecker
	searcher   disk.MountsSearcher
	unmounter  disk.Unmounter
	logTag     string
}

func NewGate(
	logger boshlog.Logger,
	privileges PrivilegeChecker,
	searcher disk.MountsSearcher,
	unmounter disk.Unmounter,
) Gate {
	return Gate{
		logger:     logger,
		privileges: privileges,
		searcher:   searcher,
		unmounter:  unmounter,
		logTag:     "gate",
	}
}

// Authorize runs the safety checks in order, short-circuiting on the first
// failure: privilege, unmount sweep, confirmation. The Decision is only
// meaningful when err is nil. The unmount sweep performs real unmounts;
// the other two checks are pure.
func (g Gate) Authorize(plan pipeline.Plan, confirmationText string) (Decision, error) {
	if !g.privileges.IsPrivileged() {
		return DecisionCancelled, InsufficientPrivilegeError{}
	}

	mounted, err := g.searcher.SearchMounts(plan.Device.Path)
	if err != nil {
		return DecisionCancelled, UnmountError{PartitionPath: plan.Device.Path, Cause: err}
	}

	for _, partitionPath := range mounted {
		g.logger.Info(g.logTag, "Unmounting %s before destructive run", partitionPath)

		err := g.unmounter.Unmount(partitionPath)
		if err != nil {
			return DecisionCancelled, UnmountError{PartitionPath: partitionPath, Cause: err}
		}
	}

	if confirmationText != RequiredConfirmation {
		g.logger.Info(g.logTag, "Operation on %s cancelled by operator", plan.Device.Path)
		return DecisionCancelled, nil
	}

	return DecisionProceed, nil
}
