package uhex

import (
	"fmt"
	"strings"

	"github.com/daschewie/uhexmgr/pkg/ihex"
)

// boardState accumulates the reconstructed records for one board while
// walking a Universal Hex stream.
type boardState struct {
	boardID     uint16
	lastExtAddr string
	records     []string
}

// SeparateUniversalHex recovers the per-board Intel Hex strings from a
// Universal Hex, in first-seen board order.
func SeparateUniversalHex(universalHexStr string) ([]IndividualHex, error) {
	records := ihex.SplitRecords(universalHexStr)
	if len(records) == 0 {
		return nil, ErrUniversalHexEmpty
	}
	if !isUniversalHexRecords(records) {
		return nil, fmt.Errorf("%w: expected an extended linear address and block start record pair followed by a terminating end of file record",
			ErrUniversalHexShapeInvalid)
	}

	states := make(map[uint16]*boardState)
	var order []uint16
	var current *boardState

	for i := 0; i < len(records); i++ {
		record := records[i]
		recordType, err := ihex.GetRecordType(record)
		if err != nil {
			return nil, err
		}
		switch recordType {
		case ihex.RecordData, ihex.RecordEndOfFile,
			ihex.RecordExtendedSegmentAddress, ihex.RecordStartSegmentAddress:
			current.records = append(current.records, record)
		case ihex.RecordCustomData:
			converted, err := ihex.ConvertRecordTo(record, ihex.RecordData)
			if err != nil {
				return nil, err
			}
			current.records = append(current.records, converted)
		case ihex.RecordExtendedLinearAddress:
			// A Block Start record directly below selects the board the
			// following records belong to.
			if i+1 < len(records) {
				if nextType, err := ihex.GetRecordType(records[i+1]); err == nil && nextType == ihex.RecordBlockStart {
					data, err := ihex.GetRecordData(records[i+1])
					if err != nil {
						return nil, err
					}
					if len(data) != 4 {
						return nil, fmt.Errorf("%w: %q", ErrBlockStartDataInvalid, records[i+1])
					}
					boardID := uint16(data[0])<<8 | uint16(data[1])
					state, ok := states[boardID]
					if !ok {
						state = &boardState{boardID: boardID, lastExtAddr: record, records: []string{record}}
						states[boardID] = state
						order = append(order, boardID)
					}
					current = state
					i++ // skip the Block Start record
				}
			}
			if current.lastExtAddr != record {
				current.lastExtAddr = record
				current.records = append(current.records, record)
			}
		default:
			// Block End, Padded Data, Other Data and Start Linear
			// Address records carry nothing the per-board hex needs.
		}
	}

	out := make([]IndividualHex, 0, len(order))
	for _, boardID := range order {
		state := states[boardID]
		if state.records[len(state.records)-1] != ihex.EndOfFileRecord() {
			state.records = append(state.records, ihex.EndOfFileRecord())
		}
		out = append(out, IndividualHex{
			BoardID: boardID,
			Hex:     strings.Join(state.records, "\n") + "\n",
		})
	}
	return out, nil
}
