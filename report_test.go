package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	r, err := Analyze("aabcadbca", MetricUnweighted)
	require.NoError(t, err)

	require.Equal(t, 9, r.Bytes)
	require.Equal(t, 9, r.Symbols)
	require.Equal(t, uint64(72), r.RawBits)
	require.Equal(t, uint64(9), r.CodeBits)
	require.Equal(t, uint64(17), r.WeightedBits)
	require.Equal(t, uint64(9), r.EncodedBits())
	require.Equal(t, int64(63), r.Saving())
	require.Equal(t, "TOTAL SIZE: 72 >> 9", r.String())
	require.Equal(t, 4, r.Table.Len())
	require.Equal(t, uint64(9), r.Frequencies.Total())

	r, err = Analyze("aabcadbca", MetricWeighted)
	require.NoError(t, err)
	require.Equal(t, uint64(17), r.EncodedBits())
	require.Equal(t, "TOTAL SIZE: 72 >> 17", r.String())
}

func TestAnalyze_Uniform(t *testing.T) {
	r, err := Analyze("abcd", MetricWeighted)
	require.NoError(t, err)
	require.Equal(t, uint64(32), r.RawBits)
	require.Equal(t, uint64(8), r.WeightedBits)
	require.Equal(t, byte(2), r.Table.MinSize())
	require.Equal(t, byte(2), r.Table.MaxSize())
}

func TestAnalyze_SingleSymbol(t *testing.T) {
	r, err := Analyze("aaaa", MetricUnweighted)
	require.NoError(t, err)
	require.Equal(t, "TOTAL SIZE: 32 >> 1", r.String())
	require.Equal(t, uint64(4), r.WeightedBits)
}

func TestAnalyze_Multibyte(t *testing.T) {
	r, err := Analyze("ñaña", MetricUnweighted)
	require.NoError(t, err)
	require.Equal(t, 6, r.Bytes)
	require.Equal(t, 4, r.Symbols)
	require.Equal(t, uint64(48), r.RawBits)
	require.Equal(t, 2, r.Table.Len())
}

func TestAnalyze_Empty(t *testing.T) {
	r, err := Analyze("", MetricUnweighted)
	require.ErrorIs(t, err, ErrEmptyInput)
	require.Zero(t, r.Table.Len())
}

func TestReport_MarshalJSON(t *testing.T) {
	r, err := Analyze("abcd", MetricUnweighted)
	require.NoError(t, err)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"bytes": 4,
		"symbols": 4,
		"rawBits": 32,
		"codeBits": 8,
		"weightedBits": 8,
		"metric": "unweighted",
		"encodedBits": 8,
		"table": {"a": "00", "b": "01", "c": "10", "d": "11"}
	}`, string(raw))
}
