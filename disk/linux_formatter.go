package disk

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type linuxFormatter struct {
	logger boshlog.Logger
	runner boshsys.CmdRunner
	logTag string
}

func NewLinuxFormatter(logger boshlog.Logger, runner boshsys.CmdRunner) Formatter {
	return linuxFormatter{
		logger: logger,
		runner: runner,
		logTag: "linuxFormatter",
	}
}

func (f linuxFormatter) Format(partitionPath string, fsType FileSystemType, label string) error {
	var toolName string
	var args []string

	switch fsType {
	case FileSystemFAT32:
		toolName = "mkfs.vfat"
		args = []string{"-F", "32", "-n", label, partitionPath}
	case FileSystemExFAT:
		toolName = "mkfs.exfat"
		args = []string{"-n", label, partitionPath}
	case FileSystemNTFS:
		// -f skips the full zeroing pass
		toolName = "mkfs.ntfs"
		args = []string{"-f", "-L", label, partitionPath}
	case FileSystemExt4:
		toolName = "mkfs.ext4"
		args = []string{"-F", "-L", label, partitionPath}
	default:
		return bosherr.Errorf("Unsupported filesystem type %q", fsType)
	}

	f.logger.Info(f.logTag, "Formatting %s as %s with label %q", partitionPath, fsType.DisplayName(), label)

	_, stderr, _, err := f.runner.RunCommand(toolName, args...)
	if err != nil {
		return bosherr.WrapErrorf(err, "Shelling out to %s: %s", toolName, strings.TrimSpace(stderr))
	}

	_, _, _, err = f.runner.RunCommand("sync")
	if err != nil {
		return bosherr.WrapError(err, "Shelling out to sync")
	}

	return nil
}
