package disk_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wobbob89/og-usb/disk"
)

var _ = Describe("FirstPartitionPath", func() {
	It("appends the partition number directly for lettered devices", func() {
		Expect(disk.FirstPartitionPath("/dev/sdb")).To(Equal("/dev/sdb1"))
	})

	It("inserts a p separator when the device name ends in a digit", func() {
		Expect(disk.FirstPartitionPath("/dev/nvme0n1")).To(Equal("/dev/nvme0n1p1"))
		Expect(disk.FirstPartitionPath("/dev/mmcblk0")).To(Equal("/dev/mmcblk0p1"))
	})
})

var _ = Describe("BelongsTo", func() {
	It("matches partition nodes of the device", func() {
		Expect(disk.BelongsTo("/dev/sdb", "/dev/sdb1")).To(BeTrue())
		Expect(disk.BelongsTo("/dev/sdb", "/dev/sdb12")).To(BeTrue())
		Expect(disk.BelongsTo("/dev/nvme0n1", "/dev/nvme0n1p1")).To(BeTrue())
	})

	It("rejects sibling devices sharing a name prefix", func() {
		Expect(disk.BelongsTo("/dev/sda", "/dev/sdab")).To(BeFalse())
		Expect(disk.BelongsTo("/dev/sda", "/dev/sdab1")).To(BeFalse())
	})

	It("rejects the device itself and unrelated paths", func() {
		Expect(disk.BelongsTo("/dev/sdb", "/dev/sdb")).To(BeFalse())
		Expect(disk.BelongsTo("/dev/sdb", "/dev/sdc1")).To(BeFalse())
	})
})
