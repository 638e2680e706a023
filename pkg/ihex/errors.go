package ihex

import "errors"

// Errors returned by the record codec. Callers discriminate with
// errors.Is; the wrapped message carries the offending record string.
var (
	ErrRecordLengthOutOfRange      = errors.New("record length out of range")
	ErrRecordStartInvalid          = errors.New("record does not start with ':'")
	ErrRecordTypeInvalid           = errors.New("invalid record type")
	ErrRecordByteCountInconsistent = errors.New("record byte count inconsistent with record length")
	ErrRecordAddressOutOfRange     = errors.New("record address out of range")
	ErrRecordDataTooLarge          = errors.New("record data too large")
	ErrExtLinearAddressOutOfRange  = errors.New("extended linear address out of range")
	ErrExtSegmentRecordInvalid     = errors.New("invalid extended segment address record")
	ErrDataFieldLengthTooLarge     = errors.New("record data field length too large")
)
