package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	ogadvisor "github.com/wobbob89/og-usb/advisor"
	ogapp "github.com/wobbob89/og-usb/app"
	ogdisk "github.com/wobbob89/og-usb/disk"
	oggate "github.com/wobbob89/og-usb/gate"
	ogpipeline "github.com/wobbob89/og-usb/pipeline"
)

const separator = "============================================================"

type Menu struct {
	app     ogapp.App
	scanner *bufio.Scanner
	out     io.Writer
}

func NewMenu(a ogapp.App, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		app:     a,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the interactive loop: detect, select, plan, confirm, execute.
// It returns once the operator quits, input is exhausted, or an
// unrecoverable error (discovery failure, missing privileges) occurs.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintf(m.out, "%s\n   og-usb — USB erase, partition & format tool\n%s\n", separator, separator)

	for {
		devices, err := m.app.Lister.ListUsbDevices()
		if err != nil {
			return err
		}

		if len(devices) == 0 {
			fmt.Fprintln(m.out, "\nNo USB devices detected. Insert a drive and try again.")
			answer, ok := m.prompt("Press Enter to retry detection or 'q' to quit: ")
			if !ok || strings.EqualFold(strings.TrimSpace(answer), "q") {
				break
			}
			continue
		}

		m.printDevices(devices)

		choice, ok := m.prompt("Select device number (or 'q' to quit): ")
		if !ok {
			break
		}
		choice = strings.TrimSpace(choice)
		if strings.EqualFold(choice, "q") {
			break
		}

		index, err := strconv.Atoi(choice)
		if err != nil || index < 1 || index > len(devices) {
			fmt.Fprintln(m.out, "Invalid selection.")
			continue
		}
		device := devices[index-1]

		fsType, ok, back := m.promptFileSystem(device)
		if !ok {
			break
		}
		if back {
			continue
		}

		label, ok := m.prompt(fmt.Sprintf("\nVolume label (default %s): ", m.app.DefaultLabel))
		if !ok {
			break
		}
		label = strings.TrimSpace(label)
		if label == "" {
			label = m.app.DefaultLabel
		}

		plan := ogpipeline.NewPlan(device, fsType, label)
		m.printWarning(plan)

		// The confirmation passes to the gate verbatim, the exact-match
		// rule belongs there, not here.
		confirmation, ok := m.prompt(fmt.Sprintf("\nType %q to continue, anything else cancels: ", oggate.RequiredConfirmation))
		if !ok {
			break
		}

		decision, err := m.app.Gate.Authorize(plan, confirmation)
		switch {
		case errors.As(err, &oggate.InsufficientPrivilegeError{}):
			return err
		case err != nil:
			fmt.Fprintf(m.out, "\nCannot proceed: %s\n", err.Error())
		case decision == oggate.DecisionCancelled:
			fmt.Fprintln(m.out, "\nOperation cancelled by user.")
		default:
			m.runPipeline(ctx, plan)
		}

		again, ok := m.prompt("\nFormat another device? (y/n): ")
		if !ok || !strings.EqualFold(strings.TrimSpace(again), "y") {
			break
		}
	}

	fmt.Fprintln(m.out, "\nThank you for using og-usb.")
	return nil
}

func (m *Menu) runPipeline(ctx context.Context, plan ogpipeline.Plan) {
	results, err := m.app.Runner.Run(ctx, plan)
	fmt.Fprintln(m.out)
	renderResults(m.out, results)

	if err != nil {
		fmt.Fprintf(m.out, "\nIncomplete destructive operation: %s\n", err.Error())
		fmt.Fprintln(m.out, "The device was left in the partial state it reached. Re-run from scratch or inspect it manually.")
		return
	}

	fmt.Fprintf(m.out, "\n%s\n✓ USB formatting complete. The drive is ready to use.\n%s\n", separator, separator)
}

func (m *Menu) printDevices(devices []ogdisk.Device) {
	fmt.Fprintf(m.out, "\n=== Detected USB devices ===\n")
	for i, device := range devices {
		description := strings.TrimSpace(strings.Join([]string{device.Vendor, device.Model}, " "))
		if description == "" {
			description = "Unknown"
		}
		fmt.Fprintf(m.out, "%d. %s — %s — %s\n", i+1, device.Path, humanize.IBytes(device.SizeInBytes), description)
	}
}

// promptFileSystem returns back=true when the operator steps back to device
// selection, ok=false when input is exhausted.
func (m *Menu) promptFileSystem(device ogdisk.Device) (fsType ogdisk.FileSystemType, ok bool, back bool) {
	recommended := ogadvisor.Recommend(device.SizeInBytes)

	fmt.Fprintf(m.out, "\n=== Select filesystem ===\n")
	fmt.Fprintln(m.out, "1. FAT32 — maximum compatibility, 4GB file limit")
	fmt.Fprintln(m.out, "2. exFAT — large files, modern systems")
	fmt.Fprintln(m.out, "3. NTFS  — Windows optimized")
	fmt.Fprintln(m.out, "4. ext4  — Linux optimized")
	fmt.Fprintf(m.out, "5. Recommended for this drive (%s)\n", recommended.DisplayName())

	choice, hasInput := m.prompt("\nSelect filesystem (1-5) or 'b' to go back: ")
	if !hasInput {
		return "", false, false
	}
	choice = strings.TrimSpace(choice)
	if strings.EqualFold(choice, "b") {
		return "", true, true
	}

	switch choice {
	case "1":
		return ogdisk.FileSystemFAT32, true, false
	case "2":
		return ogdisk.FileSystemExFAT, true, false
	case "3":
		return ogdisk.FileSystemNTFS, true, false
	case "4":
		return ogdisk.FileSystemExt4, true, false
	case "5":
		return recommended, true, false
	}

	fmt.Fprintln(m.out, "Invalid filesystem selection.")
	return "", true, true
}

func (m *Menu) printWarning(plan ogpipeline.Plan) {
	fmt.Fprintf(m.out, "\n%s\n", separator)
	fmt.Fprintln(m.out, "WARNING: ALL DATA ON THIS DEVICE WILL BE PERMANENTLY ERASED!")
	fmt.Fprintln(m.out, separator)
	fmt.Fprintf(m.out, "Device:     %s (%s)\n", plan.Device.Path, humanize.IBytes(plan.Device.SizeInBytes))
	fmt.Fprintf(m.out, "Filesystem: %s\n", plan.FileSystem.DisplayName())
	fmt.Fprintf(m.out, "Label:      %s\n", plan.Label)
	fmt.Fprintln(m.out, separator)
}

// prompt reads one raw input line. ok is false once input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.scanner.Scan() {
		return "", false
	}
	return m.scanner.Text(), true
}
