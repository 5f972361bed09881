package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	huffman "github.com/chronos-tachyon/huffsize"
)

var (
	flagTable   = flag.Bool("table", false, "print the code table after each report")
	flagJSON    = flag.Bool("json", false, "print each report as a JSON document")
	flagVerify  = flag.Bool("verify", false, "check that each code table is prefix-free")
	flagCache   = flag.Int("cache", huffman.DefaultOptions().CacheSize, "number of reports to remember; 0 disables")
	flagVerbose = flag.Bool("v", false, "log diagnostics to stderr")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffsize: ")

	opts := huffman.DefaultOptions()
	flag.Var(&opts.Metric, "metric", "code size metric: unweighted or weighted")
	flag.Parse()

	opts.CacheSize = *flagCache
	if *flagVerbose {
		opts.Logger = log.Default()
	}

	analyzer, err := huffman.NewAnalyzer(opts)
	if err != nil {
		log.Fatal(err)
	}

	if !run(analyzer, os.Stdin, os.Stdout) {
		os.Exit(1)
	}
}

// run analyzes each line of r, writing the results to w.  It returns false
// if any line could not be analyzed.
func run(analyzer *huffman.Analyzer, r io.Reader, w io.Writer) bool {
	ok := true
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)

	fmt.Fprintln(w, "Insert your message: ")
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		message := strings.TrimSpace(sc.Text())
		report, err := analyzer.Analyze(message)
		if errors.Is(err, huffman.ErrEmptyInput) {
			fmt.Fprintln(w, "no input provided")
			ok = false
			continue
		}
		if err != nil {
			log.Print(err)
			ok = false
			continue
		}

		if *flagVerify {
			if err := report.Table.Verify(); err != nil {
				log.Print(err)
				ok = false
			}
		}

		if *flagJSON {
			if err := enc.Encode(report); err != nil {
				log.Print(err)
				ok = false
			}
			continue
		}

		fmt.Fprintln(w, report)
		if *flagTable {
			if _, err := report.Table.Dump(w); err != nil {
				log.Print(err)
				ok = false
			}
		}
	}
	if err := sc.Err(); err != nil {
		log.Print(err)
		ok = false
	}
	return ok
}
