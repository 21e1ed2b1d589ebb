package disk

import (
	"fmt"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type ddWiper struct {
	logger       boshlog.Logger
	runner       boshsys.CmdRunner
	prefixSizeMb uint64
	logTag       string
}

// NewDDWiper returns a Wiper that zeroes the first prefixSizeMb megabytes
// of the device. Zeroing the prefix is enough to destroy the partition
// table and filesystem headers without rewriting the whole stick.
func NewDDWiper(logger boshlog.Logger, runner boshsys.CmdRunner, prefixSizeMb uint64) Wiper {
	return ddWiper{
		logger:       logger,
		runner:       runner,
		prefixSizeMb: prefixSizeMb,
		logTag:       "ddWiper",
	}
}

func (w ddWiper) Wipe(devicePath string) error {
	w.logger.Info(w.logTag, "Zeroing first %dMB of %s", w.prefixSizeMb, devicePath)

	_, stderr, _, err := w.runner.RunCommand(
		"dd", "if=/dev/zero", "of="+devicePath, "bs=1M", fmt.Sprintf("count=%d", w.prefixSizeMb))
	if err != nil {
		return bosherr.WrapErrorf(err, "Shelling out to dd: %s", strings.TrimSpace(stderr))
	}

	_, _, _, err = w.runner.RunCommand("sync")
	if err != nil {
		return bosherr.WrapError(err, "Shelling out to sync")
	}

	return nil
}
