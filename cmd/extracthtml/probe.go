package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/mediacsv"
	"github.com/fwojciec/mediacsv/batch"
	"github.com/fwojciec/mediacsv/bloom"
	mcregexp "github.com/fwojciec/mediacsv/regexp"
)

// ProbeCmd reports what an export contains without writing any output file.
type ProbeCmd struct {
	Decoder   mediacsv.Decoder
	Extractor mediacsv.Extractor
	Inspector mediacsv.Inspector
}

// Run inspects the export at input and prints the report to w.
func (c *ProbeCmd) Run(input string, w io.Writer) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	html, err := c.Decoder.Decode(data)
	if err != nil {
		return err
	}

	in, err := c.Inspector.Inspect(html)
	if err != nil {
		return err
	}

	records := c.Extractor.Extract(html)
	in.Markers = len(mcregexp.Markers(html))
	in.Records = len(records)
	in.Duplicates = bloom.CountDuplicateURLs(records)
	in.Fingerprint = batch.ComputeHash(data)
	in.Bytes = len(data)

	fmt.Fprintln(w, mediacsv.FormatInspection(input, in))
	return nil
}
