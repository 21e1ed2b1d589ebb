package cli

import (
	"fmt"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/spf13/cobra"

	ogadvisor "github.com/wobbob89/og-usb/advisor"
	ogapp "github.com/wobbob89/og-usb/app"
	ogdisk "github.com/wobbob89/og-usb/disk"
	oggate "github.com/wobbob89/og-usb/gate"
	ogpipeline "github.com/wobbob89/og-usb/pipeline"
)

// newFormatCommand drives a single non-interactive run. The device must be
// in the USB catalog, pointing it at the system disk is rejected the same
// way the menu never offers it.
func newFormatCommand(a *ogapp.App) *cobra.Command {
	var devicePath string
	var fsName string
	var label string
	var confirm string

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Erase, partition and format one USB device without the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := a.Lister.ListUsbDevices()
			if err != nil {
				return err
			}

			var device ogdisk.Device
			found := false
			for _, candidate := range devices {
				if candidate.Path == devicePath {
					device = candidate
					found = true
					break
				}
			}
			if !found {
				return bosherr.Errorf("Device %s is not an attached USB storage device", devicePath)
			}

			fsType := ogadvisor.Recommend(device.SizeInBytes)
			if fsName != "" {
				parsed, ok := ogdisk.ParseFileSystemType(fsName)
				if !ok {
					return bosherr.Errorf("Unknown filesystem %q (want vfat, exfat, ntfs or ext4)", fsName)
				}
				fsType = parsed
			}

			if label == "" {
				label = a.DefaultLabel
			}

			plan := ogpipeline.NewPlan(device, fsType, label)
			out := cmd.OutOrStdout()

			decision, err := a.Gate.Authorize(plan, confirm)
			if err != nil {
				return err
			}
			if decision == oggate.DecisionCancelled {
				fmt.Fprintln(out, "Operation cancelled: confirmation did not match.")
				return nil
			}

			results, runErr := a.Runner.Run(cmd.Context(), plan)
			renderResults(out, results)
			return runErr
		},
	}

	cmd.Flags().StringVar(&devicePath, "device", "", "target device path, e.g. /dev/sdb")
	cmd.Flags().StringVar(&fsName, "filesystem", "", "filesystem to create (default: recommended for capacity)")
	cmd.Flags().StringVar(&label, "label", "", "volume label")
	cmd.Flags().StringVar(&confirm, "confirm", "", fmt.Sprintf("must be exactly %q to proceed", oggate.RequiredConfirmation))
	_ = cmd.MarkFlagRequired("device")

	return cmd
}
