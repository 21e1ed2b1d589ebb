// Package app assembles the tool's dependency graph: logger, command
// runner, filesystem, and the catalog/gate/pipeline components built on
// top of them.
package app

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	ogdisk "github.com/wobbob89/og-usb/disk"
	oggate "github.com/wobbob89/og-usb/gate"
	ogpipeline "github.com/wobbob89/og-usb/pipeline"
)

type App struct {
	Logger       boshlog.Logger
	Lister       ogdisk.UsbDeviceLister
	Gate         oggate.Gate
	Runner       ogpipeline.Runner
	DefaultLabel string
}

func New(config Config) App {
	logger := boshlog.NewLogger(config.LogLevel)
	cmdRunner := boshsys.NewExecCmdRunner(logger)
	fs := boshsys.NewOsFileSystem(logger)

	settler := ogdisk.NewFsDeviceNodeSettler(logger, fs, config.SettleTimeout)

	gate := oggate.NewGate(
		logger,
		oggate.NewOsPrivilegeChecker(),
		ogdisk.NewGopsutilMountsSearcher(logger),
		ogdisk.NewLinuxUnmounter(logger, cmdRunner, config.UnmountRetrySleep),
	)

	runner := ogpipeline.NewRunner(
		logger,
		ogdisk.NewDDWiper(logger, cmdRunner, config.WipePrefixSizeInMb),
		ogdisk.NewPartedPartitioner(logger, cmdRunner, settler),
		ogdisk.NewLinuxFormatter(logger, cmdRunner),
		ogdisk.NewLsblkVerifier(logger, cmdRunner),
	)

	return App{
		Logger:       logger,
		Lister:       ogdisk.NewLsblkDeviceLister(logger, cmdRunner),
		Gate:         gate,
		Runner:       runner,
		DefaultLabel: config.DefaultLabel,
	}
}
