package app

import (
	"time"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"gopkg.in/yaml.v3"
)

// Config carries the few operator-tunable knobs. Everything has a sane
// default; the yaml file is optional.
type Config struct {
	DefaultLabel       string
	WipePrefixSizeInMb uint64
	SettleTimeout      time.Duration
	UnmountRetrySleep  time.Duration
	LogLevel           boshlog.LogLevel
}

type configSchema struct {
	DefaultLabel       string `yaml:"default_label"`
	WipePrefixSizeInMb uint64 `yaml:"wipe_prefix_size_mb"`
	SettleTimeout      string `yaml:"settle_timeout"`
	UnmountRetrySleep  string `yaml:"unmount_retry_sleep"`
	LogLevel           string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		DefaultLabel:       "OG_USB",
		WipePrefixSizeInMb: 100,
		SettleTimeout:      10 * time.Second,
		UnmountRetrySleep:  1 * time.Second,
		LogLevel:           boshlog.LevelWarn,
	}
}

// LoadConfig reads the yaml config at path, overlaying the defaults.
// An empty path yields the defaults unchanged.
func LoadConfig(path string, fs boshsys.FileSystem) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	contents, err := fs.ReadFile(path)
	if err != nil {
		return config, bosherr.WrapErrorf(err, "Reading config %s", path)
	}

	var schema configSchema
	err = yaml.Unmarshal(contents, &schema)
	if err != nil {
		return config, bosherr.WrapErrorf(err, "Parsing config %s", path)
	}

	if schema.DefaultLabel != "" {
		config.DefaultLabel = schema.DefaultLabel
	}
	if schema.WipePrefixSizeInMb != 0 {
		config.WipePrefixSizeInMb = schema.WipePrefixSizeInMb
	}
	if schema.SettleTimeout != "" {
		config.SettleTimeout, err = time.ParseDuration(schema.SettleTimeout)
		if err != nil {
			return config, bosherr.WrapError(err, "Parsing settle_timeout")
		}
	}
	if schema.UnmountRetrySleep != "" {
		config.UnmountRetrySleep, err = time.ParseDuration(schema.UnmountRetrySleep)
		if err != nil {
			return config, bosherr.WrapError(err, "Parsing unmount_retry_sleep")
		}
	}
	if schema.LogLevel != "" {
		config.LogLevel, err = boshlog.Levelify(schema.LogLevel)
		if err != nil {
			return config, bosherr.WrapError(err, "Parsing log_level")
		}
	}

	return config, nil
}
