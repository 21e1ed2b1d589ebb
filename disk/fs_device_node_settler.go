package disk

import (
	"time"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

const settlePollInterval = 100 * time.Millisecond

type fsDeviceNodeSettler struct {
	logger      boshlog.Logger
	fs          boshsys.FileSystem
	waitTimeout time.Duration
	logTag      string
}

func NewFsDeviceNodeSettler(logger boshlog.Logger, fs boshsys.FileSystem, waitTimeout time.Duration) DeviceNodeSettler {
	return fsDeviceNodeSettler{
		logger:      logger,
		fs:          fs,
		waitTimeout: waitTimeout,
		logTag:      "fsDeviceNodeSettler",
	}
}

func (s fsDeviceNodeSettler) WaitForDeviceNode(devicePath string) error {
	stopAfter := time.Now().Add(s.waitTimeout)

	for !s.fs.FileExists(devicePath) {
		if time.Now().After(stopAfter) {
			return bosherr.Errorf("Timed out waiting for device node %s to appear", devicePath)
		}

		s.logger.Debug(s.logTag, "Device node %s not present yet, waiting", devicePath)
		time.Sleep(settlePollInterval)
	}

	return nil
}
