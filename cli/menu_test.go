package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	ogapp "github.com/wobbob89/og-usb/app"
	"github.com/wobbob89/og-usb/cli"
	"github.com/wobbob89/og-usb/disk"
	fakedisk "github.com/wobbob89/og-usb/disk/fakes"
	"github.com/wobbob89/og-usb/gate"
	fakegate "github.com/wobbob89/og-usb/gate/fakes"
	"github.com/wobbob89/og-usb/pipeline"
)

var _ = Describe("Menu", func() {
	const gib = uint64(1024 * 1024 * 1024)

	var (
		lister      *fakedisk.FakeUsbDeviceLister
		privileges  *fakegate.FakePrivilegeChecker
		searcher    *fakedisk.FakeMountsSearcher
		unmounter   *fakedisk.FakeUnmounter
		wiper       *fakedisk.FakeWiper
		partitioner *fakedisk.FakePartitioner
		formatter   *fakedisk.FakeFormatter
		verifier    *fakedisk.FakeVerifier
		out         *bytes.Buffer
	)

	BeforeEach(func() {
		lister = &fakedisk.FakeUsbDeviceLister{}
		privileges = &fakegate.FakePrivilegeChecker{IsPrivilegedValue: true}
		searcher = &fakedisk.FakeMountsSearcher{}
		unmounter = &fakedisk.FakeUnmounter{}
		wiper = &fakedisk.FakeWiper{}
		partitioner = &fakedisk.FakePartitioner{}
		formatter = &fakedisk.FakeFormatter{}
		verifier = &fakedisk.FakeVerifier{}
		out = &bytes.Buffer{}
	})

	newMenu := func(input string) *cli.Menu {
		logger := boshlog.NewLogger(boshlog.LevelNone)
		a := ogapp.App{
			Logger:       logger,
			Lister:       lister,
			Gate:         gate.NewGate(logger, privileges, searcher, unmounter),
			Runner:       pipeline.NewRunner(logger, wiper, partitioner, formatter, verifier),
			DefaultLabel: "OG_USB",
		}
		return cli.NewMenu(a, strings.NewReader(input), out)
	}

	It("runs a full confirmed format of the selected device", func() {
		lister.ListUsbDevicesDevices = []disk.Device{
			{Path: "/dev/sdb", SizeInBytes: 16 * gib, Model: "DataTraveler", Vendor: "Kingston", Transport: disk.TransportUSB},
		}

		// select device 1, take the recommendation, default label,
		// confirm, then quit
		menu := newMenu("1\n5\n\nYES\nn\n")
		Expect(menu.Run(context.Background())).To(Succeed())

		output := out.String()
		Expect(output).To(ContainSubstring("/dev/sdb"))
		Expect(output).To(ContainSubstring("Recommended for this drive (FAT32)"))
		Expect(output).To(ContainSubstring("PERMANENTLY ERASED"))
		Expect(output).To(ContainSubstring("USB formatting complete"))

		Expect(wiper.WipeDevicePaths).To(Equal([]string{"/dev/sdb"}))
		Expect(formatter.FormatCalls).To(Equal([]fakedisk.FormatCall{
			{PartitionPath: "/dev/sdb1", FsType: disk.FileSystemFAT32, Label: "OG_USB"},
		}))
	})

	It("treats a lowercase confirmation as cancellation and touches nothing", func() {
		lister.ListUsbDevicesDevices = []disk.Device{
			{Path: "/dev/sdb", SizeInBytes: 16 * gib, Transport: disk.TransportUSB},
		}

		menu := newMenu("1\n5\n\nyes\nn\n")
		Expect(menu.Run(context.Background())).To(Succeed())

		Expect(out.String()).To(ContainSubstring("Operation cancelled by user."))
		Expect(wiper.WipeDevicePaths).To(BeEmpty())
		Expect(formatter.FormatCalls).To(BeEmpty())
	})

	It("reports an incomplete run when a stage fails", func() {
		lister.ListUsbDevicesDevices = []disk.Device{
			{Path: "/dev/sdb", SizeInBytes: 16 * gib, Transport: disk.TransportUSB},
		}
		formatter.FormatErr = errors.New("exit status 1")

		menu := newMenu("1\n5\n\nYES\nn\n")
		Expect(menu.Run(context.Background())).To(Succeed())

		output := out.String()
		Expect(output).To(ContainSubstring("Incomplete destructive operation"))
		Expect(output).To(ContainSubstring("partial state"))
		Expect(verifier.VerifyCalls).To(BeEmpty())
	})

	It("aborts the session when privileges are missing", func() {
		lister.ListUsbDevicesDevices = []disk.Device{
			{Path: "/dev/sdb", SizeInBytes: 16 * gib, Transport: disk.TransportUSB},
		}
		privileges.IsPrivilegedValue = false

		menu := newMenu("1\n5\n\nYES\nn\n")
		err := menu.Run(context.Background())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("root privileges"))
	})

	It("offers retry when no devices are attached and quits on q", func() {
		menu := newMenu("q\n")
		Expect(menu.Run(context.Background())).To(Succeed())

		output := out.String()
		Expect(output).To(ContainSubstring("No USB devices detected"))
		Expect(output).To(ContainSubstring("Thank you for using og-usb."))
	})

	It("quits cleanly when input is exhausted", func() {
		lister.ListUsbDevicesDevices = []disk.Device{
			{Path: "/dev/sdb", SizeInBytes: 16 * gib, Transport: disk.TransportUSB},
		}

		menu := newMenu("")
		Expect(menu.Run(context.Background())).To(Succeed())
	})
})
