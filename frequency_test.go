package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountFrequencies(t *testing.T) {
	ft := CountFrequencies("aabcadbca")

	require.Equal(t, 4, ft.Len())
	require.Equal(t, uint64(9), ft.Total())
	require.Equal(t, []FrequencyEntry{
		{'a', 4},
		{'b', 2},
		{'c', 2},
		{'d', 1},
	}, ft.Entries())
	require.Equal(t, uint64(4), ft.Count('a'))
	require.Equal(t, uint64(1), ft.Count('d'))
	require.Zero(t, ft.Count('z'))
	require.Equal(t, "{'a':4, 'b':2, 'c':2, 'd':1}", ft.String())
}

func TestCountFrequencies_Empty(t *testing.T) {
	ft := CountFrequencies("")
	require.Zero(t, ft.Len())
	require.Zero(t, ft.Total())
	require.Empty(t, ft.Entries())
	require.Equal(t, "{}", ft.String())
}

func TestCountFrequencies_Unicode(t *testing.T) {
	ft := CountFrequencies("héé\xff")

	require.Equal(t, uint64(4), ft.Total())
	require.Equal(t, []FrequencyEntry{
		{'h', 1},
		{'é', 2},
		{'\uFFFD', 1},
	}, ft.Entries())
}

func TestFrequencyTable_EntriesIsCopy(t *testing.T) {
	ft := CountFrequencies("ab")
	entries := ft.Entries()
	entries[0].Count = 100
	require.Equal(t, uint64(1), ft.Count('a'))
}
