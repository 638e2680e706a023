package ihex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndOfFileRecord(t *testing.T) {
	assert.Equal(t, ":00000001FF", EndOfFileRecord())
}

func TestBlockEndRecord(t *testing.T) {
	tests := []struct {
		name     string
		padding  int
		expected string
	}{
		{
			name:     "No padding",
			padding:  0,
			expected: ":0000000BF5",
		},
		{
			name:     "Pre-canned 4 bytes",
			padding:  4,
			expected: ":0400000BFFFFFFFFF5",
		},
		{
			name:     "Six bytes",
			padding:  6,
			expected: ":0600000BFFFFFFFFFFFFF5",
		},
		{
			name:     "Pre-canned 12 bytes",
			padding:  12,
			expected: ":0C00000BFFFFFFFFFFFFFFFFFFFFFFFFF5",
		},
		{
			name:     "Full padding",
			padding:  32,
			expected: ":2000000B" + strings.Repeat("FF", 32) + "F5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := BlockEndRecord(tt.padding)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	_, err := BlockEndRecord(-1)
	require.ErrorIs(t, err, ErrRecordDataTooLarge)
	_, err = BlockEndRecord(RecordDataMaxBytes + 1)
	require.ErrorIs(t, err, ErrRecordDataTooLarge)
}

func TestPaddedDataRecord(t *testing.T) {
	record, err := PaddedDataRecord(0)
	require.NoError(t, err)
	assert.Equal(t, ":0000000CF4", record)

	record, err = PaddedDataRecord(16)
	require.NoError(t, err)
	assert.Equal(t, ":1000000C"+strings.Repeat("FF", 16)+"F4", record)

	_, err = PaddedDataRecord(RecordDataMaxBytes + 1)
	require.ErrorIs(t, err, ErrRecordDataTooLarge)
}

func TestExtLinAddressRecord(t *testing.T) {
	tests := []struct {
		name     string
		address  uint64
		expected string
	}{
		{
			name:     "Zero address",
			address:  0,
			expected: ":020000040000FA",
		},
		{
			name:     "Lower half-word ignored",
			address:  0x0000FFFF,
			expected: ":020000040000FA",
		},
		{
			name:     "Sixty-four KiB",
			address:  0x10000,
			expected: ":020000040001F9",
		},
		{
			name:     "MakeCode V1 metadata address",
			address:  0x20000000,
			expected: ":020000040020DA",
		},
		{
			name:     "Top of the address space",
			address:  0xFFFFFFFF,
			expected: ":02000004FFFF" + "FC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExtLinAddressRecord(tt.address)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	_, err := ExtLinAddressRecord(1 << 32)
	require.ErrorIs(t, err, ErrExtLinearAddressOutOfRange)
}

func TestBlockStartRecord(t *testing.T) {
	assert.Equal(t, ":0400000A9900C0DEBB", BlockStartRecord(0x9900))
	assert.Equal(t, ":0400000A9901C0DEBA", BlockStartRecord(0x9901))
	assert.Equal(t, ":0400000A9903C0DEB8", BlockStartRecord(0x9903))
}
