package disk

import (
	"strings"
	"time"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type linuxUnmounter struct {
	logger     boshlog.Logger
	runner     boshsys.CmdRunner
	retrySleep time.Duration
	logTag     string
}

func NewLinuxUnmounter(logger boshlog.Logger, runner boshsys.CmdRunner, retrySleep time.Duration) Unmounter {
	return linuxUnmounter{
		logger:     logger,
		runner:     runner,
		retrySleep: retrySleep,
		logTag:     "linuxUnmounter",
	}
}

func (u linuxUnmounter) Unmount(partitionPath string) error {
	_, _, _, err := u.runner.RunCommand("umount", partitionPath)
	if err == nil {
		return nil
	}

	u.logger.Debug(u.logTag, "Retrying unmount of %s: %s", partitionPath, err.Error())
	time.Sleep(u.retrySleep)

	_, stderr, _, err := u.runner.RunCommand("umount", partitionPath)
	if err != nil {
		return bosherr.WrapErrorf(err, "Shelling out to umount: %s", strings.TrimSpace(stderr))
	}

	return nil
}
