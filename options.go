package huffman

import (
	"fmt"
	"strings"
)

// Metric selects how a Report totals the size of the code.
type Metric byte

const (
	// MetricUnweighted sums the length of each codeword once.  This is
	// the figure the tool has always reported; it is not the size of an
	// encoded message.
	MetricUnweighted Metric = iota

	// MetricWeighted sums count × length over all symbols, the number of
	// bits an encoded message would occupy.
	MetricWeighted
)

var metricNames = [...]string{
	MetricUnweighted: "unweighted",
	MetricWeighted:   "weighted",
}

// ParseMetric parses "unweighted" or "weighted", ignoring case.
func ParseMetric(str string) (Metric, error) {
	for m, name := range metricNames {
		if strings.EqualFold(str, name) {
			return Metric(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, str)
}

// String returns the name of this Metric.
func (m Metric) String() string {
	if int(m) < len(metricNames) {
		return metricNames[m]
	}
	return fmt.Sprintf("Metric(%d)", byte(m))
}

// Set implements flag.Value.
func (m *Metric) Set(str string) error {
	parsed, err := ParseMetric(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

var _ fmt.Stringer = Metric(0)

// Logger is the logging interface accepted by Analyzer.  *log.Logger
// satisfies it.
type Logger interface {
	Print(...interface{})
}

type discardLogger struct{}

func (discardLogger) Print(...interface{}) {}

// Options configures an Analyzer.
type Options struct {
	// Metric selects the figure returned by Report.EncodedBits.
	Metric Metric

	// CacheSize is the number of reports an Analyzer remembers, keyed by
	// message.  0 disables caching.
	CacheSize int

	// Logger receives diagnostics.  nil discards them.
	Logger Logger
}

// DefaultOptions returns the Options used when none are specified.
func DefaultOptions() Options {
	return Options{
		Metric:    MetricUnweighted,
		CacheSize: 128,
	}
}

// Validate checks that every field holds a legal value.
func (opts Options) Validate() error {
	if int(opts.Metric) >= len(metricNames) {
		return fmt.Errorf("%w: %v", ErrUnknownMetric, opts.Metric)
	}
	if opts.CacheSize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheSize, opts.CacheSize)
	}
	return nil
}

func (opts Options) logger() Logger {
	if opts.Logger == nil {
		return discardLogger{}
	}
	return opts.Logger
}
