// Package uhex composes and decomposes Universal Hex files.
//
// A Universal Hex concatenates the Intel Hex firmware images for
// several board revisions into a single stream, framed with Block
// Start/Block End records and padded to a fixed 512 character
// alignment so that a bootloader can skip the records that do not
// belong to its board.
package uhex

import (
	"strings"

	"github.com/daschewie/uhexmgr/pkg/ihex"
)

// v1BoardIDs lists the board IDs whose bootloader reads plain Data
// records. Every other board ID gets its Data records relabelled as
// CustomData so a V1 bootloader skips them.
var v1BoardIDs = []uint16{0x9900, 0x9901}

func isV1Board(boardID uint16) bool {
	for _, id := range v1BoardIDs {
		if id == boardID {
			return true
		}
	}
	return false
}

// IndividualHex pairs a board ID with the Intel Hex string for that
// board.
type IndividualHex struct {
	BoardID uint16
	Hex     string
}

// CreateUniversalHex concatenates one Universal Hex fragment per input
// hex. With blocks false each fragment is a contiguous 512-aligned
// section; with blocks true each fragment is a run of self-contained
// 512 character blocks. Only the final fragment keeps its End Of File
// record.
func CreateUniversalHex(hexes []IndividualHex, blocks bool) (string, error) {
	if len(hexes) == 0 {
		return "", nil
	}
	compose := iHexToCustomFormatSection
	if blocks {
		compose = iHexToCustomFormatBlocks
	}
	eofSuffix := ihex.EndOfFileRecord() + "\n"

	inputLen := 0
	for _, individual := range hexes {
		inputLen += len(individual.Hex)
	}
	var builder strings.Builder
	builder.Grow(inputLen * 2)

	var lastFragment string
	for i, individual := range hexes {
		fragment, err := compose(individual.Hex, individual.BoardID)
		if err != nil {
			return "", err
		}
		if i < len(hexes)-1 {
			fragment = strings.TrimSuffix(fragment, eofSuffix)
		}
		builder.WriteString(fragment)
		lastFragment = fragment
	}
	if !strings.HasSuffix(lastFragment, eofSuffix) {
		builder.WriteString(eofSuffix)
	}
	return builder.String(), nil
}

// IsUniversalHex performs a cheap shape check on the start of a string:
// an Extended Linear Address record followed by a Block Start record.
func IsUniversalHex(hexStr string) bool {
	const elaRecordBeginning = ":02000004"
	const blockStartBeginning = ":0400000A"
	if !strings.HasPrefix(hexStr, elaRecordBeginning) {
		return false
	}
	// Bounded scan for the start of the second record, as the line
	// terminator may be \r\n or \n.
	i := len(elaRecordBeginning)
	maxCharsScan := ihex.MaxRecordLen + 3
	for i < len(hexStr) && i < maxCharsScan && hexStr[i] != ':' {
		i++
	}
	if i+len(blockStartBeginning) > len(hexStr) {
		return false
	}
	return hexStr[i:i+len(blockStartBeginning)] == blockStartBeginning
}

// IsMakeCodeForV1Hex reports whether an Intel Hex string has the shape
// MakeCode produces for V1 boards. It only informs error messages; it
// takes no part in composition or decomposition.
func IsMakeCodeForV1Hex(hexStr string) bool {
	return isMakeCodeForV1Records(ihex.SplitRecords(hexStr))
}

// isUniversalHexRecords reports whether a record stream already has the
// Universal Hex shape: an Extended Linear Address record, a Block Start
// record, and a terminating End Of File record.
func isUniversalHexRecords(records []string) bool {
	if len(records) < 2 {
		return false
	}
	first, err := ihex.GetRecordType(records[0])
	if err != nil || first != ihex.RecordExtendedLinearAddress {
		return false
	}
	second, err := ihex.GetRecordType(records[1])
	if err != nil || second != ihex.RecordBlockStart {
		return false
	}
	last, err := ihex.GetRecordType(records[len(records)-1])
	return err == nil && last == ihex.RecordEndOfFile
}

// isMakeCodeForV1Records detects the characteristic shape of hex files
// MakeCode produces for V1 boards: an Extended Linear Address record
// for 0x20000000 before the first End Of File record when the stream
// ends there, or Other Data records (and repeats of that same address
// record) after it.
func isMakeCodeForV1Records(records []string) bool {
	makeCodeExtAddr, err := ihex.ExtLinAddressRecord(0x20000000)
	if err != nil {
		return false
	}
	eofIndex := -1
	for i, record := range records {
		if recordType, err := ihex.GetRecordType(record); err == nil && recordType == ihex.RecordEndOfFile {
			eofIndex = i
			break
		}
	}
	if eofIndex == -1 {
		return false
	}
	if eofIndex == len(records)-1 {
		for _, record := range records[:eofIndex] {
			if record == makeCodeExtAddr {
				return true
			}
		}
		return false
	}
	for _, record := range records[eofIndex+1:] {
		if record == makeCodeExtAddr {
			return true
		}
		if recordType, err := ihex.GetRecordType(record); err == nil && recordType == ihex.RecordOtherData {
			return true
		}
	}
	return false
}
