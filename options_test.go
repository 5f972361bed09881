package huffman

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric("weighted")
	require.NoError(t, err)
	require.Equal(t, MetricWeighted, m)

	m, err = ParseMetric("Unweighted")
	require.NoError(t, err)
	require.Equal(t, MetricUnweighted, m)

	_, err = ParseMetric("bogus")
	require.ErrorIs(t, err, ErrUnknownMetric)

	require.Equal(t, "weighted", MetricWeighted.String())
	require.Equal(t, "Metric(7)", Metric(7).String())
}

func TestMetric_Flag(t *testing.T) {
	var m Metric
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&m, "metric", "")
	require.NoError(t, fs.Parse([]string{"-metric", "weighted"}))
	require.Equal(t, MetricWeighted, m)
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())

	opts := DefaultOptions()
	opts.CacheSize = -1
	require.ErrorIs(t, opts.Validate(), ErrInvalidCacheSize)

	opts = DefaultOptions()
	opts.Metric = Metric(9)
	require.ErrorIs(t, opts.Validate(), ErrUnknownMetric)
}
