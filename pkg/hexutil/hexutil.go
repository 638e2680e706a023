// Package hexutil converts between ASCII hex strings and byte buffers
// as used by the Intel Hex record codec.
package hexutil

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHexCharacter indicates a hex string with an odd number of
// characters or a character outside [0-9a-fA-F].
var ErrInvalidHexCharacter = errors.New("invalid hex string")

// HexStrToBytes decodes an ASCII hex string into bytes. Input is
// case-insensitive.
func HexStrToBytes(hexStr string) ([]byte, error) {
	data, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHexCharacter, hexStr)
	}
	return data, nil
}

// ByteToHex returns the two character, upper-case hex representation of b.
func ByteToHex(b byte) string {
	return fmt.Sprintf("%02X", b)
}

// BytesToHex returns the upper-case hex representation of data.
func BytesToHex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}
