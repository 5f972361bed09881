package huffman

import (
	"fmt"
	"unicode/utf8"
)

// Report describes the Huffman code of one message and its size.
type Report struct {
	// Bytes is the length of the message in bytes.
	Bytes int

	// Symbols is the number of symbols (characters) in the message.
	Symbols int

	// RawBits is the size of the message at 8 bits per byte.
	RawBits uint64

	// CodeBits is the sum of the codeword lengths, each counted once.
	CodeBits uint64

	// WeightedBits is the size of the message encoded with the code.
	WeightedBits uint64

	// Metric selects which of CodeBits and WeightedBits EncodedBits
	// returns.
	Metric Metric

	// Frequencies holds the symbol counts the code was built from.
	Frequencies FrequencyTable

	// Table holds the code itself.
	Table CodeTable
}

// Analyze counts the symbols of the message, builds its Huffman tree and
// code table, and reports the code size under the given metric.  An empty
// message yields ErrEmptyInput and no partial report.
func Analyze(message string, metric Metric) (Report, error) {
	ft := CountFrequencies(message)
	root, err := BuildTree(ft)
	if err != nil {
		return Report{}, err
	}
	ct := GenerateCodes(root)

	return Report{
		Bytes:        len(message),
		Symbols:      utf8.RuneCountInString(message),
		RawBits:      8 * uint64(len(message)),
		CodeBits:     ct.TotalBits(),
		WeightedBits: ct.WeightedBits(ft),
		Metric:       metric,
		Frequencies:  ft,
		Table:        ct,
	}, nil
}

// EncodedBits returns CodeBits or WeightedBits, depending on Metric.
func (r Report) EncodedBits() uint64 {
	if r.Metric == MetricWeighted {
		return r.WeightedBits
	}
	return r.CodeBits
}

// Saving returns RawBits minus EncodedBits, negative if the code is larger.
func (r Report) Saving() int64 {
	return int64(r.RawBits) - int64(r.EncodedBits())
}

// String returns the one-line size comparison, e.g. "TOTAL SIZE: 72 >> 9".
func (r Report) String() string {
	return fmt.Sprintf("TOTAL SIZE: %d >> %d", r.RawBits, r.EncodedBits())
}

var _ fmt.Stringer = Report{}

type reportJSON struct {
	Bytes        int       `json:"bytes"`
	Symbols      int       `json:"symbols"`
	RawBits      uint64    `json:"rawBits"`
	CodeBits     uint64    `json:"codeBits"`
	WeightedBits uint64    `json:"weightedBits"`
	Metric       string    `json:"metric"`
	EncodedBits  uint64    `json:"encodedBits"`
	Table        CodeTable `json:"table"`
}

// MarshalJSON renders the report, including the code table.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(reportJSON{
		Bytes:        r.Bytes,
		Symbols:      r.Symbols,
		RawBits:      r.RawBits,
		CodeBits:     r.CodeBits,
		WeightedBits: r.WeightedBits,
		Metric:       r.Metric.String(),
		EncodedBits:  r.EncodedBits(),
		Table:        r.Table,
	})
}
