// Package ihex implements the Intel Hex record codec used by the
// Universal Hex composer and decomposer.
//
// Intel HEX format: :LLAAAATT[DD...]CC
// LL = byte count, AAAA = address, TT = record type, DD = data, CC = checksum
package ihex

import (
	"fmt"

	"github.com/daschewie/uhexmgr/pkg/hexutil"
)

const (
	// RecordDataMaxBytes is the largest data payload carried by a single
	// record.
	RecordDataMaxBytes = 32

	startCharsLen     = 1
	byteCountCharsLen = 2
	addressCharsLen   = 4
	typeCharsLen      = 2
	checksumCharsLen  = 2

	// headerCharsLen covers everything before the data field.
	headerCharsLen = startCharsLen + byteCountCharsLen + addressCharsLen + typeCharsLen

	// MinRecordLen is the serialized length of a record with no data.
	MinRecordLen = headerCharsLen + checksumCharsLen

	// MaxRecordLen is the serialized length of a record with a full
	// 32 byte payload.
	MaxRecordLen = MinRecordLen + RecordDataMaxBytes*2
)

// Record is a fully decoded Intel Hex record.
type Record struct {
	ByteCount  byte
	Address    uint16
	RecordType RecordType
	Data       []byte
	Checksum   byte
}

// checksum returns the Intel Hex checksum of the serialized fields: the
// two's complement of the least significant byte of their sum.
func checksum(fields []byte) byte {
	sum := 0
	for _, b := range fields {
		sum += int(b)
	}
	return byte(-sum)
}

// encodeRecord serializes a record whose fields are already known to be
// in range.
func encodeRecord(address uint16, recordType RecordType, data []byte) string {
	fields := make([]byte, 0, 5+len(data))
	fields = append(fields, byte(len(data)), byte(address>>8), byte(address), byte(recordType))
	fields = append(fields, data...)
	fields = append(fields, checksum(fields))
	return ":" + hexutil.BytesToHex(fields)
}

// CreateRecord builds a serialized record from its address, type and
// data payload.
func CreateRecord(address int, recordType RecordType, data []byte) (string, error) {
	if address < 0 || address > 0xFFFF {
		return "", fmt.Errorf("%w: 0x%X", ErrRecordAddressOutOfRange, address)
	}
	if len(data) > RecordDataMaxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrRecordDataTooLarge, len(data))
	}
	if !recordType.IsValid() {
		return "", fmt.Errorf("%w: 0x%02X", ErrRecordTypeInvalid, byte(recordType))
	}
	return encodeRecord(uint16(address), recordType, data), nil
}

// validateRecord checks the start code and serialized length of a
// record string.
func validateRecord(recordStr string) error {
	if len(recordStr) < MinRecordLen || len(recordStr) > MaxRecordLen {
		return fmt.Errorf("%w: %q is %d characters", ErrRecordLengthOutOfRange, recordStr, len(recordStr))
	}
	if recordStr[0] != ':' {
		return fmt.Errorf("%w: %q", ErrRecordStartInvalid, recordStr)
	}
	return nil
}

// GetRecordType validates a record string and extracts its type.
func GetRecordType(recordStr string) (RecordType, error) {
	if err := validateRecord(recordStr); err != nil {
		return 0, err
	}
	typeBytes, err := hexutil.HexStrToBytes(recordStr[headerCharsLen-typeCharsLen : headerCharsLen])
	if err != nil {
		return 0, err
	}
	recordType := RecordType(typeBytes[0])
	if !recordType.IsValid() {
		return 0, fmt.Errorf("%w: 0x%02X in %q", ErrRecordTypeInvalid, typeBytes[0], recordStr)
	}
	return recordType, nil
}

// GetRecordData returns the decoded data payload of a record string.
func GetRecordData(recordStr string) ([]byte, error) {
	if err := validateRecord(recordStr); err != nil {
		return nil, err
	}
	return hexutil.HexStrToBytes(recordStr[headerCharsLen : len(recordStr)-checksumCharsLen])
}

// ParseRecord decodes a serialized record into its fields. The checksum
// byte is extracted but not verified; callers that need verification
// recompute it over the decoded fields.
func ParseRecord(recordStr string) (Record, error) {
	if err := validateRecord(recordStr); err != nil {
		return Record{}, err
	}
	fields, err := hexutil.HexStrToBytes(recordStr[1:])
	if err != nil {
		return Record{}, err
	}
	byteCount := fields[0]
	if len(recordStr) > MinRecordLen+int(byteCount)*2 {
		return Record{}, fmt.Errorf("%w: byte count %d leaves excess characters in %q",
			ErrRecordByteCountInconsistent, byteCount, recordStr)
	}
	recordType := RecordType(fields[3])
	if !recordType.IsValid() {
		return Record{}, fmt.Errorf("%w: 0x%02X in %q", ErrRecordTypeInvalid, fields[3], recordStr)
	}
	return Record{
		ByteCount:  byteCount,
		Address:    uint16(fields[1])<<8 | uint16(fields[2]),
		RecordType: recordType,
		Data:       fields[4 : len(fields)-1],
		Checksum:   fields[len(fields)-1],
	}, nil
}

// ConvertRecordTo re-emits a record with a new type and a recomputed
// checksum, keeping the address and data intact.
func ConvertRecordTo(recordStr string, recordType RecordType) (string, error) {
	record, err := ParseRecord(recordStr)
	if err != nil {
		return "", err
	}
	return CreateRecord(int(record.Address), recordType, record.Data)
}

// ConvertExtSegToExtLin converts an Extended Segment Address record
// into the equivalent Extended Linear Address record. Only segments
// aligned to 0x1000 have an exact linear equivalent.
func ConvertExtSegToExtLin(recordStr string) (string, error) {
	data, err := GetRecordData(recordStr)
	if err != nil {
		return "", err
	}
	if len(data) != 2 || data[1] != 0x00 || data[0]&0x0F != 0 {
		return "", fmt.Errorf("%w: %q", ErrExtSegmentRecordInvalid, recordStr)
	}
	return ExtLinAddressRecord(uint64(data[0]) << 12)
}
