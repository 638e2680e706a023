package ihex

// RecordType identifies the type of a single record in a HEX file.
// The Universal Hex format adds the 0x0A-0x0E types on top of the
// standard Intel Hex set.
type RecordType byte

const (
	// RecordData indicates the record contains data and a 16-bit starting
	// address for the data. The byte count specifies the number of data
	// bytes in the record.
	RecordData RecordType = 0x00

	// RecordEndOfFile indicates that this record is the end of the HEX
	// file. The data field is empty and the address field is typically
	// 0000.
	RecordEndOfFile RecordType = 0x01

	// RecordExtendedSegmentAddress carries a 16-bit segment base address
	// compatible with 80x86 real mode addressing. The segment address is
	// multiplied by 16 and added to each subsequent data record address.
	RecordExtendedSegmentAddress RecordType = 0x02

	// RecordStartSegmentAddress specifies the initial CS:IP register
	// content for 80x86 processors.
	RecordStartSegmentAddress RecordType = 0x03

	// RecordExtendedLinearAddress carries the upper 16 bits (big endian)
	// of the 32-bit absolute address for all subsequent data records.
	RecordExtendedLinearAddress RecordType = 0x04

	// RecordStartLinearAddress carries a 32-bit execution start address.
	RecordStartLinearAddress RecordType = 0x05

	// RecordBlockStart opens a Universal Hex block. Its four data bytes
	// are the big-endian board ID followed by the 0xC0 0xDE magic.
	RecordBlockStart RecordType = 0x0A

	// RecordBlockEnd closes a Universal Hex block, padded with 0xFF bytes
	// to land the block on its alignment boundary.
	RecordBlockEnd RecordType = 0x0B

	// RecordPaddedData is 0xFF filler emitted to reach block alignment.
	RecordPaddedData RecordType = 0x0C

	// RecordCustomData is a Data record relabelled so that a bootloader
	// for a different board skips it.
	RecordCustomData RecordType = 0x0D

	// RecordOtherData marks data not belonging to any board image.
	RecordOtherData RecordType = 0x0E
)

// IsValid reports whether t is one of the record types understood by
// this package.
func (t RecordType) IsValid() bool {
	return t <= RecordStartLinearAddress || (t >= RecordBlockStart && t <= RecordOtherData)
}
