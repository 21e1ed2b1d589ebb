package disk

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type partedPartitioner struct {
	logger  boshlog.Logger
	runner  boshsys.CmdRunner
	settler DeviceNodeSettler
	logTag  string
}

func NewPartedPartitioner(logger boshlog.Logger, runner boshsys.CmdRunner, settler DeviceNodeSettler) Partitioner {
	return partedPartitioner{
		logger:  logger,
		runner:  runner,
		settler: settler,
		logTag:  "partedPartitioner",
	}
}

func (p partedPartitioner) Partition(devicePath string) (string, error) {
	p.logger.Info(p.logTag, "Creating GPT label and single primary partition on %s", devicePath)

	partedArgs := [][]string{
		{"-s", devicePath, "mklabel", "gpt"},
		{"-s", devicePath, "mkpart", "primary", "0%", "100%"},
	}

	for _, args := range partedArgs {
		_, stderr, _, err := p.runner.RunCommand("parted", args...)
		if err != nil {
			return "", bosherr.WrapErrorf(err, "Shelling out to parted: %s", strings.TrimSpace(stderr))
		}
	}

	_, _, _, err := p.runner.RunCommand("sync")
	if err != nil {
		return "", bosherr.WrapError(err, "Shelling out to sync")
	}

	partitionPath := FirstPartitionPath(devicePath)

	err = p.settler.WaitForDeviceNode(partitionPath)
	if err != nil {
		return "", bosherr.WrapErrorf(err, "Waiting for partition %s", partitionPath)
	}

	return partitionPath, nil
}
