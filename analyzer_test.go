package huffman

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Print(v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprint(v...))
}

func TestAnalyzer_Cache(t *testing.T) {
	logger := &recordingLogger{}
	a, err := NewAnalyzer(Options{Metric: MetricWeighted, CacheSize: 2, Logger: logger})
	require.NoError(t, err)
	require.Equal(t, MetricWeighted, a.Options().Metric)

	first, err := a.Analyze("aabcadbca")
	require.NoError(t, err)
	require.Equal(t, uint64(17), first.EncodedBits())
	require.Equal(t, 1, a.CacheLen())

	again, err := a.Analyze("aabcadbca")
	require.NoError(t, err)
	require.Equal(t, first.Table.Entries(), again.Table.Entries())
	require.Equal(t, 1, a.CacheLen())

	for _, message := range []string{"abcd", "aaaa", "abc"} {
		_, err := a.Analyze(message)
		require.NoError(t, err)
	}
	require.Equal(t, 2, a.CacheLen())

	require.Equal(t, []string{"report cache enabled, size 2"}, logger.lines)
}

func TestAnalyzer_NoCache(t *testing.T) {
	a, err := NewAnalyzer(Options{CacheSize: 0})
	require.NoError(t, err)

	r, err := a.Analyze("abcd")
	require.NoError(t, err)
	require.Equal(t, "TOTAL SIZE: 32 >> 8", r.String())
	require.Zero(t, a.CacheLen())
}

func TestAnalyzer_Empty(t *testing.T) {
	logger := &recordingLogger{}
	a, err := NewAnalyzer(Options{CacheSize: 4, Logger: logger})
	require.NoError(t, err)

	_, err = a.Analyze("")
	require.ErrorIs(t, err, ErrEmptyInput)
	require.Zero(t, a.CacheLen())
	require.Contains(t, logger.lines, "rejected empty message")
}

func TestNewAnalyzer_InvalidOptions(t *testing.T) {
	_, err := NewAnalyzer(Options{CacheSize: -5})
	require.ErrorIs(t, err, ErrInvalidCacheSize)
}

func TestAnalyzer_Concurrent(t *testing.T) {
	a, err := NewAnalyzer(DefaultOptions())
	require.NoError(t, err)

	messages := []string{"abracadabra", "mississippi", "banana", "abcd"}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = a.Analyze(messages[(i+j)%len(messages)])
			}
		}(i)
	}
	wg.Wait()
	require.Equal(t, len(messages), a.CacheLen())
}
