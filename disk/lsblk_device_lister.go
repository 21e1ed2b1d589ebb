package disk

import (
	"encoding/json"
	"strconv"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/dustin/go-humanize"
)

type lsblkDeviceLister struct {
	logger boshlog.Logger
	runner boshsys.CmdRunner
	logTag string
}

func NewLsblkDeviceLister(logger boshlog.Logger, runner boshsys.CmdRunner) UsbDeviceLister {
	return lsblkDeviceLister{
		logger: logger,
		runner: runner,
		logTag: "lsblkDeviceLister",
	}
}

type lsblkReport struct {
	BlockDevices []lsblkDevice `json:"blockdevices"`
}

type lsblkDevice struct {
	Name   string    `json:"name"`
	Path   string    `json:"path"`
	Size   lsblkSize `json:"size"`
	Tran   string    `json:"tran"`
	Model  string    `json:"model"`
	Vendor string    `json:"vendor"`
	Type   string    `json:"type"`
	FSType string    `json:"fstype"`
}

// lsblkSize tolerates the size formats different util-linux versions emit:
// a JSON number, a numeric string, or a human-readable string when the
// bytes flag was not honored. Whatever the format, the value normalizes
// to bytes.
type lsblkSize uint64

func (s *lsblkSize) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		*s = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)

	if bytes, err := strconv.ParseUint(raw, 10, 64); err == nil {
		*s = lsblkSize(bytes)
		return nil
	}

	bytes, err := humanize.ParseBytes(raw)
	if err != nil {
		return bosherr.WrapErrorf(err, "Parsing device size %q", raw)
	}

	*s = lsblkSize(bytes)
	return nil
}

func (l lsblkDeviceLister) ListUsbDevices() ([]Device, error) {
	stdout, stderr, _, err := l.runner.RunCommand(
		"lsblk", "-J", "-b", "-d", "-o", "NAME,PATH,SIZE,TRAN,MODEL,VENDOR,TYPE")
	if err != nil {
		return nil, DiscoveryError{Cause: bosherr.WrapErrorf(err, "Shelling out to lsblk: %s", strings.TrimSpace(stderr))}
	}

	var report lsblkReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		return nil, DiscoveryError{Cause: bosherr.WrapError(err, "Parsing lsblk output")}
	}

	devices := []Device{}
	for _, entry := range report.BlockDevices {
		if entry.Tran != TransportUSB {
			continue
		}

		path := entry.Path
		if path == "" {
			path = "/dev/" + entry.Name
		}

		devices = append(devices, Device{
			Path:        path,
			SizeInBytes: uint64(entry.Size),
			Model:       strings.TrimSpace(entry.Model),
			Vendor:      strings.TrimSpace(entry.Vendor),
			Transport:   entry.Tran,
		})
	}

	l.logger.Debug(l.logTag, "Found %d USB devices among %d block devices", len(devices), len(report.BlockDevices))
	return devices, nil
}
