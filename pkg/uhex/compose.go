package uhex

import (
	"fmt"
	"strings"

	"github.com/daschewie/uhexmgr/pkg/ihex"
)

// blockSize is the alignment unit of the Universal Hex format, in
// characters including newlines.
const blockSize = 512

// translated is the result of applying the Universal Hex translation
// rules to one input record.
type translated struct {
	record    string // record to emit, possibly rewritten
	extAddr   string // new current extended address record, when set
	endOfFile bool
}

// translateRecord applies the Data/ExtSeg/ExtLin/EoF translation rules
// shared by both composer layouts.
func translateRecord(record string, replaceData bool) (translated, error) {
	recordType, err := ihex.GetRecordType(record)
	if err != nil {
		return translated{}, err
	}
	switch recordType {
	case ihex.RecordData:
		if replaceData {
			converted, err := ihex.ConvertRecordTo(record, ihex.RecordCustomData)
			if err != nil {
				return translated{}, err
			}
			return translated{record: converted}, nil
		}
	case ihex.RecordExtendedLinearAddress:
		return translated{record: record, extAddr: record}, nil
	case ihex.RecordExtendedSegmentAddress:
		converted, err := ihex.ConvertExtSegToExtLin(record)
		if err != nil {
			return translated{}, err
		}
		return translated{record: converted, extAddr: converted}, nil
	case ihex.RecordEndOfFile:
		return translated{endOfFile: true}, nil
	}
	return translated{record: record}, nil
}

// trailingRecordsError reports records left over after the End Of File
// record, naming MakeCode when the stream carries its signature.
func trailingRecordsError(records []string, extra int) error {
	hint := ""
	if isMakeCodeForV1Records(records) {
		hint = "; the input looks like a MakeCode hex file for a V1 board"
	}
	return fmt.Errorf("%w: %d records%s", ErrTrailingRecordsAfterEOF, extra, hint)
}

// iHexToCustomFormatBlocks renders one board's Intel Hex as a run of
// self-contained 512 character blocks. Each block re-states the current
// extended address and the board's Block Start record, so a bootloader
// can process any block in isolation.
func iHexToCustomFormatBlocks(iHexStr string, boardID uint16) (string, error) {
	records := ihex.SplitRecords(iHexStr)
	if len(records) == 0 {
		return "", nil
	}
	if isUniversalHexRecords(records) {
		return "", fmt.Errorf("%w: input for board 0x%04X", ErrAlreadyUniversalHex, boardID)
	}
	replaceData := !isV1Board(boardID)
	padCapacity, err := ihex.FindDataFieldLength(records)
	if err != nil {
		return "", err
	}

	startRecord := ihex.BlockStartRecord(boardID)
	currentExtAddr, err := ihex.ExtLinAddressRecord(0)
	if err != nil {
		return "", err
	}

	var out []string
	ih := 0
	for ih < len(records) {
		// A block may open with a new extended address from the input.
		firstType, err := ihex.GetRecordType(records[ih])
		if err != nil {
			return "", err
		}
		switch firstType {
		case ihex.RecordExtendedLinearAddress:
			currentExtAddr = records[ih]
			ih++
		case ihex.RecordExtendedSegmentAddress:
			currentExtAddr, err = ihex.ConvertExtSegToExtLin(records[ih])
			if err != nil {
				return "", err
			}
			ih++
		}
		out = append(out, currentExtAddr, startRecord)
		// Reserve room for the closing Block End record.
		blockLen := len(currentExtAddr) + 1 + len(startRecord) + 1 + ihex.MinRecordLen + 1

		endOfFile := false
		for ih < len(records) && blockSize >= blockLen+len(records[ih])+1 {
			tr, err := translateRecord(records[ih], replaceData)
			if err != nil {
				return "", err
			}
			ih++
			if tr.endOfFile {
				endOfFile = true
				break
			}
			if tr.extAddr != "" {
				currentExtAddr = tr.extAddr
			}
			out = append(out, tr.record)
			blockLen += len(tr.record) + 1
		}

		if endOfFile {
			if ih < len(records) {
				return "", trailingRecordsError(records, len(records)-ih)
			}
			blockEnd, err := ihex.BlockEndRecord(0)
			if err != nil {
				return "", err
			}
			out = append(out, blockEnd, ihex.EndOfFileRecord())
			continue
		}

		for blockSize-blockLen > padCapacity*2 {
			padSize := min((blockSize-blockLen-(ihex.MinRecordLen+1))/2, padCapacity)
			padRecord, err := ihex.PaddedDataRecord(padSize)
			if err != nil {
				return "", err
			}
			out = append(out, padRecord)
			blockLen += len(padRecord) + 1
		}
		blockEnd, err := ihex.BlockEndRecord((blockSize - blockLen) / 2)
		if err != nil {
			return "", err
		}
		out = append(out, blockEnd)
	}
	return strings.Join(out, "\n") + "\n", nil
}

// iHexToCustomFormatSection renders one board's Intel Hex as a single
// contiguous region, padded at the end so the whole section lands on a
// 512 character boundary.
func iHexToCustomFormatSection(iHexStr string, boardID uint16) (string, error) {
	records := ihex.SplitRecords(iHexStr)
	if len(records) == 0 {
		return "", nil
	}
	if isUniversalHexRecords(records) {
		return "", fmt.Errorf("%w: input for board 0x%04X", ErrAlreadyUniversalHex, boardID)
	}
	replaceData := !isV1Board(boardID)
	padCapacity, err := ihex.FindDataFieldLength(records)
	if err != nil {
		return "", err
	}

	ih := 0
	firstType, err := ihex.GetRecordType(records[0])
	if err != nil {
		return "", err
	}
	var extAddr string
	switch firstType {
	case ihex.RecordExtendedLinearAddress:
		extAddr = records[0]
		ih++
	case ihex.RecordExtendedSegmentAddress:
		extAddr, err = ihex.ConvertExtSegToExtLin(records[0])
		if err != nil {
			return "", err
		}
		ih++
	default:
		extAddr, err = ihex.ExtLinAddressRecord(0)
		if err != nil {
			return "", err
		}
	}
	startRecord := ihex.BlockStartRecord(boardID)
	out := []string{extAddr, startRecord}
	sectionLen := len(extAddr) + 1 + len(startRecord) + 1

	endOfFile := false
	for ih < len(records) {
		tr, err := translateRecord(records[ih], replaceData)
		if err != nil {
			return "", err
		}
		ih++
		if tr.endOfFile {
			endOfFile = true
			break
		}
		out = append(out, tr.record)
		sectionLen += len(tr.record) + 1
	}
	if endOfFile && ih < len(records) {
		return "", trailingRecordsError(records, len(records)-ih)
	}

	// Reserve room for the closing Block End record, and for the End Of
	// File record when one terminated the walk, so the padding below
	// lands the whole section on a 512 character boundary.
	sectionLen += ihex.MinRecordLen + 1
	if endOfFile {
		sectionLen += len(ihex.EndOfFileRecord()) + 1
	}
	charsNeeded := (blockSize - sectionLen%blockSize) % blockSize
	for charsNeeded > padCapacity*2 {
		padSize := min((charsNeeded-(ihex.MinRecordLen+1))/2, padCapacity)
		padRecord, err := ihex.PaddedDataRecord(padSize)
		if err != nil {
			return "", err
		}
		out = append(out, padRecord)
		charsNeeded -= len(padRecord) + 1
	}
	blockEnd, err := ihex.BlockEndRecord(charsNeeded / 2)
	if err != nil {
		return "", err
	}
	out = append(out, blockEnd)
	if endOfFile {
		out = append(out, ihex.EndOfFileRecord())
	}
	return strings.Join(out, "\n") + "\n", nil
}
