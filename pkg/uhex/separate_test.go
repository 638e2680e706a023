package uhex

import (
	"strings"
	"testing"

	"github.com/daschewie/uhexmgr/pkg/ihex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoBoardInputs returns a V1 and a non-V1 labelled hex whose record
// streams open with an extended address record, so composition followed
// by separation reproduces them byte for byte.
func twoBoardInputs(t *testing.T) []IndividualHex {
	t.Helper()
	recordsA := append([]string{elaZeroRecord}, dataRecords(t, 12)...)
	recordsA = append(recordsA, ihex.EndOfFileRecord())
	recordsB := append([]string{elaZeroRecord}, dataRecords(t, 3)...)
	recordsB = append(recordsB, ihex.EndOfFileRecord())
	return []IndividualHex{
		{BoardID: 0x9900, Hex: ihexStream(recordsA...)},
		{BoardID: 0x9903, Hex: ihexStream(recordsB...)},
	}
}

func TestSeparateUniversalHexRoundTrip(t *testing.T) {
	inputs := twoBoardInputs(t)

	for _, blocks := range []bool{false, true} {
		universal, err := CreateUniversalHex(inputs, blocks)
		require.NoError(t, err)

		separated, err := SeparateUniversalHex(universal)
		require.NoError(t, err)
		assert.Equal(t, inputs, separated)
	}
}

// Separating twice through a compose cycle is stable.
func TestSeparateUniversalHexIdempotent(t *testing.T) {
	universal, err := CreateUniversalHex(twoBoardInputs(t), false)
	require.NoError(t, err)

	first, err := SeparateUniversalHex(universal)
	require.NoError(t, err)
	recomposed, err := CreateUniversalHex(first, false)
	require.NoError(t, err)
	second, err := SeparateUniversalHex(recomposed)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSeparateUniversalHexBoardOrderAndEOF(t *testing.T) {
	universal, err := CreateUniversalHex(twoBoardInputs(t), false)
	require.NoError(t, err)

	separated, err := SeparateUniversalHex(universal)
	require.NoError(t, err)
	require.Len(t, separated, 2)
	assert.Equal(t, uint16(0x9900), separated[0].BoardID)
	assert.Equal(t, uint16(0x9903), separated[1].BoardID)
	for _, individual := range separated {
		assert.True(t, strings.HasSuffix(individual.Hex, ihex.EndOfFileRecord()+"\n"))
	}
}

// Start Segment Address records survive the cycle; Start Linear Address
// records are dropped by the decomposer.
func TestSeparateUniversalHexRecordFiltering(t *testing.T) {
	startSegment := ":0400000300001234B3"
	startLinear := ":04000005000186A0D0"
	input := ihexStream(elaZeroRecord, startSegment, sixteenByteRecord, startLinear, ihex.EndOfFileRecord())

	universal, err := CreateUniversalHex([]IndividualHex{{BoardID: 0x9900, Hex: input}}, false)
	require.NoError(t, err)
	assert.Contains(t, universal, startLinear)

	separated, err := SeparateUniversalHex(universal)
	require.NoError(t, err)
	require.Len(t, separated, 1)
	expected := ihexStream(elaZeroRecord, startSegment, sixteenByteRecord, ihex.EndOfFileRecord())
	assert.Equal(t, expected, separated[0].Hex)
}

// Repeated extended address records emitted at every block boundary
// collapse back to a single record per change.
func TestSeparateUniversalHexDeduplicatesExtendedAddresses(t *testing.T) {
	records := append([]string{elaZeroRecord}, dataRecords(t, 25)...)
	records = append(records, ihex.EndOfFileRecord())
	input := ihexStream(records...)

	universal, err := CreateUniversalHex([]IndividualHex{{BoardID: 0x9900, Hex: input}}, true)
	require.NoError(t, err)
	require.Greater(t, strings.Count(universal, elaZeroRecord), 1)

	separated, err := SeparateUniversalHex(universal)
	require.NoError(t, err)
	require.Len(t, separated, 1)
	assert.Equal(t, input, separated[0].Hex)
	assert.Equal(t, 1, strings.Count(separated[0].Hex, elaZeroRecord))
}

func TestSeparateUniversalHexErrors(t *testing.T) {
	_, err := SeparateUniversalHex("")
	require.ErrorIs(t, err, ErrUniversalHexEmpty)

	_, err = SeparateUniversalHex(ihexStream(sixteenByteRecord, ihex.EndOfFileRecord()))
	require.ErrorIs(t, err, ErrUniversalHexShapeInvalid)

	// Block Start record with two data bytes instead of four
	malformed := ihexStream(elaZeroRecord, ":0200000A99005B", ihex.EndOfFileRecord())
	_, err = SeparateUniversalHex(malformed)
	require.ErrorIs(t, err, ErrBlockStartDataInvalid)
}
