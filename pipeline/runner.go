// Package pipeline drives the four-stage destructive device operation:
// wipe, partition, format, verify. Stages run strictly in order; the first
// failure halts the run and the device keeps whatever partial state it
// reached, reported verbatim to the caller.
package pipeline

import (
	"context"
	"fmt"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/wobbob89/og-usb/disk"
)

type Runner struct {
	logger      boshlog.Logger
	wiper       disk.Wiper
	partitioner disk.Partitioner
	formatter   disk.Formatter
	verifier    disk.Verifier
	logTag      string
}

func NewRunner(
	logger boshlog.Logger,
	wiper disk.Wiper,
	partitioner disk.Partitioner,
	formatter disk.Formatter,
	verifier disk.Verifier,
) Runner {
	return Runner{
		logger:      logger,
		wiper:       wiper,
		partitioner: partitioner,
		formatter:   formatter,
		verifier:    verifier,
		logTag:      "pipeline",
	}
}

// Run executes the stages against plan. The returned slice holds one result
// per attempted stage, in order; on failure the matching typed stage error
// is returned alongside. ctx is consulted only at stage boundaries; once a
// destructive tool has been launched it is never interrupted, several of the
// underlying tools leave the device undefined if killed mid-write.
func (r Runner) Run(ctx context.Context, plan Plan) ([]StageResult, error) {
	results := []StageResult{}

	var partitionPath string

	actions := []struct {
		stage Stage
		run   func() (string, error)
	}{
		{StageWipe, func() (string, error) {
			err := r.wiper.Wipe(plan.Device.Path)
			if err != nil {
				return "", WipeError{Cause: err}
			}
			return fmt.Sprintf("zeroed leading region of %s", plan.Device.Path), nil
		}},
		{StagePartition, func() (string, error) {
			path, err := r.partitioner.Partition(plan.Device.Path)
			if err != nil {
				return "", PartitionError{Cause: err}
			}
			partitionPath = path
			return fmt.Sprintf("created GPT partition %s", path), nil
		}},
		{StageFormat, func() (string, error) {
			err := r.formatter.Format(partitionPath, plan.FileSystem, plan.Label)
			if err != nil {
				return "", FormatError{Cause: err}
			}
			return fmt.Sprintf("formatted %s as %s with label %q",
				partitionPath, plan.FileSystem.DisplayName(), plan.Label), nil
		}},
		{StageVerify, func() (string, error) {
			err := r.verifier.Verify(plan.Device.Path, plan.FileSystem)
			if err != nil {
				return "", VerificationError{Cause: err}
			}
			return fmt.Sprintf("partition reports %s", plan.FileSystem.DisplayName()), nil
		}},
	}

	for _, action := range actions {
		if err := ctx.Err(); err != nil {
			r.logger.Warn(r.logTag, "Run on %s interrupted before %s stage", plan.Device.Path, action.stage)
			return results, err
		}

		r.logger.Info(r.logTag, "Running %s stage on %s", action.stage, plan.Device.Path)

		message, err := action.run()
		if err != nil {
			r.logger.Error(r.logTag, "Stage %s failed: %s", action.stage, err.Error())
			results = append(results, StageResult{Stage: action.stage, Succeeded: false, Message: err.Error()})
			return results, err
		}

		results = append(results, StageResult{Stage: action.stage, Succeeded: true, Message: message})
	}

	return results, nil
}
