package disk

import (
	"encoding/json"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type lsblkVerifier struct {
	logger boshlog.Logger
	runner boshsys.CmdRunner
	logTag string
}

func NewLsblkVerifier(logger boshlog.Logger, runner boshsys.CmdRunner) Verifier {
	return lsblkVerifier{
		logger: logger,
		runner: runner,
		logTag: "lsblkVerifier",
	}
}

func (v lsblkVerifier) Verify(devicePath string, expected FileSystemType) error {
	stdout, stderr, _, err := v.runner.RunCommand(
		"lsblk", "-J", "-l", "-b", "-o", "NAME,PATH,FSTYPE", devicePath)
	if err != nil {
		return bosherr.WrapErrorf(err, "Shelling out to lsblk: %s", strings.TrimSpace(stderr))
	}

	var report lsblkReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		return bosherr.WrapError(err, "Parsing lsblk output")
	}

	partitionPath := FirstPartitionPath(devicePath)

	for _, entry := range report.BlockDevices {
		path := entry.Path
		if path == "" {
			path = "/dev/" + entry.Name
		}
		if path != partitionPath {
			continue
		}

		if entry.FSType != string(expected) {
			return bosherr.Errorf("Partition %s reports filesystem %q, expected %q",
				partitionPath, entry.FSType, string(expected))
		}

		v.logger.Debug(v.logTag, "Partition %s verified as %s", partitionPath, expected.DisplayName())
		return nil
	}

	return bosherr.Errorf("Partition %s not present in enumerator output", partitionPath)
}
