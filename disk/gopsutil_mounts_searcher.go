package disk

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	gopsdisk "github.com/shirou/gopsutil/v3/disk"
)

type gopsutilMountsSearcher struct {
	logger boshlog.Logger
	logTag string
}

// NewGopsutilMountsSearcher searches the kernel mount table for partitions
// of a device.
func NewGopsutilMountsSearcher(logger boshlog.Logger) MountsSearcher {
	return gopsutilMountsSearcher{
		logger: logger,
		logTag: "gopsutilMountsSearcher",
	}
}

func (s gopsutilMountsSearcher) SearchMounts(devicePath string) ([]string, error) {
	partitions, err := gopsdisk.Partitions(false)
	if err != nil {
		return nil, bosherr.WrapError(err, "Listing mounted partitions")
	}

	paths := []string{}
	for _, partition := range partitions {
		if partition.Device == devicePath || BelongsTo(devicePath, partition.Device) {
			paths = append(paths, partition.Device)
		}
	}

	s.logger.Debug(s.logTag, "Found %d mounted partitions on %s", len(paths), devicePath)
	return paths, nil
}
