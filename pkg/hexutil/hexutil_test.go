package hexutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestHexStrToBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
		wantErr  bool
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: []byte{},
		},
		{
			name:     "Upper case",
			input:    "0400000A",
			expected: []byte{0x04, 0x00, 0x00, 0x0A},
		},
		{
			name:     "Lower case",
			input:    "c0de",
			expected: []byte{0xC0, 0xDE},
		},
		{
			name:     "Mixed case",
			input:    "FfaA",
			expected: []byte{0xFF, 0xAA},
		},
		{
			name:    "Odd length",
			input:   "ABC",
			wantErr: true,
		},
		{
			name:    "Non-hex character",
			input:   "G0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := HexStrToBytes(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHexCharacter) {
					t.Errorf("HexStrToBytes() error = %v, want ErrInvalidHexCharacter", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexStrToBytes() unexpected error: %v", err)
			}
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("HexStrToBytes() = % X, want % X", result, tt.expected)
			}
		})
	}
}

func TestByteToHex(t *testing.T) {
	tests := []struct {
		name     string
		input    byte
		expected string
	}{
		{name: "Zero", input: 0x00, expected: "00"},
		{name: "Single digit", input: 0x0A, expected: "0A"},
		{name: "All bits set", input: 0xFF, expected: "FF"},
		{name: "Mixed nibbles", input: 0x9C, expected: "9C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ByteToHex(tt.input); result != tt.expected {
				t.Errorf("ByteToHex() = %s, want %s", result, tt.expected)
			}
		})
	}
}

func TestBytesToHex(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{name: "Empty buffer", input: []byte{}, expected: ""},
		{name: "Single byte", input: []byte{0x0F}, expected: "0F"},
		{name: "Magic bytes", input: []byte{0xC0, 0xDE}, expected: "C0DE"},
		{name: "Upper case output", input: []byte{0xAB, 0xCD, 0xEF}, expected: "ABCDEF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := BytesToHex(tt.input); result != tt.expected {
				t.Errorf("BytesToHex() = %s, want %s", result, tt.expected)
			}
		})
	}
}
