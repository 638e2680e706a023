package ihex

import (
	"fmt"
	"strings"
)

// SplitRecords splits an Intel Hex string into its individual records.
// Carriage returns are dropped and blank lines are ignored.
func SplitRecords(ihexStr string) []string {
	lines := strings.Split(strings.ReplaceAll(ihexStr, "\r", ""), "\n")
	records := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			records = append(records, line)
		}
	}
	return records
}

// FindDataFieldLength returns the dominant data field length of a
// record stream, in bytes. The composer sizes its padding records with
// it. The walk keeps the largest data length seen so far and stops
// early once that length has repeated often enough to be conclusive.
func FindDataFieldLength(records []string) (int, error) {
	maxDataBytes := 16
	count := 0
	for _, record := range records {
		dataBytes := (len(record) - MinRecordLen) / 2
		if dataBytes > maxDataBytes {
			maxDataBytes = dataBytes
			count = 0
		} else if dataBytes == maxDataBytes {
			count++
		}
		if count > 12 {
			break
		}
	}
	if maxDataBytes > RecordDataMaxBytes {
		return 0, fmt.Errorf("%w: %d bytes", ErrDataFieldLengthTooLarge, maxDataBytes)
	}
	return maxDataBytes, nil
}
