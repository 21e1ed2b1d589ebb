// Package cli renders the interactive menu and the scripted subcommands.
// All input and output go through injected reader/writer pairs; nothing in
// here talks to a terminal directly, the destructive logic lives behind the
// gate and pipeline packages.
package cli

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/spf13/cobra"

	ogapp "github.com/wobbob89/og-usb/app"
)

func NewRootCommand() *cobra.Command {
	var configPath string
	var a ogapp.App

	cmd := &cobra.Command{
		Use:           "og-usb",
		Short:         "Erase, partition and format removable USB drives",
		Long:          "og-usb discovers attached USB drives, recommends a filesystem for their capacity,\nand runs a gated wipe/partition/format/verify pipeline against the selected drive.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			bootLogger := boshlog.NewLogger(boshlog.LevelError)
			config, err := ogapp.LoadConfig(configPath, boshsys.NewOsFileSystem(bootLogger))
			if err != nil {
				return err
			}
			a = ogapp.New(config)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			menu := NewMenu(a, cmd.InOrStdin(), cmd.OutOrStdout())
			return menu.Run(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to optional yaml config")
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.AddCommand(
		newListCommand(&a),
		newFormatCommand(&a),
	)

	return cmd
}
