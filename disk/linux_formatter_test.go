package disk_test

import (
	"errors"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wobbob89/og-usb/disk"
)

var _ = Describe("LinuxFormatter", func() {
	var (
		runner    *fakesys.FakeCmdRunner
		formatter disk.Formatter
	)

	BeforeEach(func() {
		runner = fakesys.NewFakeCmdRunner()
		formatter = disk.NewLinuxFormatter(boshlog.NewLogger(boshlog.LevelNone), runner)
	})

	It("formats FAT32 through mkfs.vfat", func() {
		err := formatter.Format("/dev/sdb1", disk.FileSystemFAT32, "OG_USB")
		Expect(err).ToNot(HaveOccurred())
		Expect(runner.RunCommands[0]).To(Equal([]string{"mkfs.vfat", "-F", "32", "-n", "OG_USB", "/dev/sdb1"}))
		Expect(runner.RunCommands[1]).To(Equal([]string{"sync"}))
	})

	It("formats exFAT through mkfs.exfat", func() {
		err := formatter.Format("/dev/sdb1", disk.FileSystemExFAT, "BACKUP")
		Expect(err).ToNot(HaveOccurred())
		Expect(runner.RunCommands[0]).To(Equal([]string{"mkfs.exfat", "-n", "BACKUP", "/dev/sdb1"}))
	})

	It("formats NTFS through mkfs.ntfs in fast mode", func() {
		err := formatter.Format("/dev/sdb1", disk.FileSystemNTFS, "WINDOWS")
		Expect(err).ToNot(HaveOccurred())
		Expect(runner.RunCommands[0]).To(Equal([]string{"mkfs.ntfs", "-f", "-L", "WINDOWS", "/dev/sdb1"}))
	})

	It("formats ext4 through mkfs.ext4", func() {
		err := formatter.Format("/dev/sdb1", disk.FileSystemExt4, "linux-data")
		Expect(err).ToNot(HaveOccurred())
		Expect(runner.RunCommands[0]).To(Equal([]string{"mkfs.ext4", "-F", "-L", "linux-data", "/dev/sdb1"}))
	})

	It("rejects unknown filesystem types without running anything", func() {
		err := formatter.Format("/dev/sdb1", disk.FileSystemType("btrfs"), "X")
		Expect(err).To(HaveOccurred())
		Expect(runner.RunCommands).To(BeEmpty())
	})

	It("surfaces the tool's diagnostic text on failure", func() {
		runner.AddCmdResult("mkfs.vfat -F 32 -n OG_USB /dev/sdb1", fakesys.FakeCmdResult{
			Stderr:     "mkfs.vfat: unable to open /dev/sdb1: Device or resource busy",
			ExitStatus: 1,
			Error:      errors.New("exit status 1"),
		})

		err := formatter.Format("/dev/sdb1", disk.FileSystemFAT32, "OG_USB")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Device or resource busy"))
	})
})
