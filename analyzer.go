package huffman

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Analyzer runs Analyze with a fixed set of Options, remembering recent
// reports.  It is safe for concurrent use.
type Analyzer struct {
	opts  Options
	log   Logger
	cache *lru.Cache[string, Report]
}

// NewAnalyzer constructs an Analyzer.
func NewAnalyzer(opts Options) (*Analyzer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{opts: opts, log: opts.logger()}
	if opts.CacheSize > 0 {
		cache, err := lru.New[string, Report](opts.CacheSize)
		if err != nil {
			return nil, err
		}
		a.cache = cache
		a.log.Print("report cache enabled, size ", opts.CacheSize)
	}
	return a, nil
}

// Options returns the Options this Analyzer was constructed with.
func (a *Analyzer) Options() Options {
	return a.opts
}

// Analyze reports on the message, reusing a cached report if the same
// message was analyzed recently.
func (a *Analyzer) Analyze(message string) (Report, error) {
	if a.cache != nil {
		if r, found := a.cache.Get(message); found {
			return r, nil
		}
	}

	r, err := Analyze(message, a.opts.Metric)
	if errors.Is(err, ErrEmptyInput) {
		a.log.Print("rejected empty message")
	}
	if err != nil {
		return Report{}, err
	}

	if a.cache != nil {
		a.cache.Add(message, r)
	}
	return r, nil
}

// CacheLen returns the number of cached reports.
func (a *Analyzer) CacheLen() int {
	if a.cache == nil {
		return 0
	}
	return a.cache.Len()
}
