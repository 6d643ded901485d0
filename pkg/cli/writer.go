package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/khalid-nowaf/lettertrie/pkg/dictionary"
)

// Stats counts words through a command.
type Stats struct {
	Input    int // words read from files
	Rejected int // words the trie refused
	Output   int // results written
}

type Writer interface {
	Write(results []*dictionary.Result) error
}

func newWriter(format string, out io.Writer, stats *Stats) Writer {
	switch format {
	case "csv":
		return &CsvWriter{out: out, Stats: stats}
	case "tsv":
		return &CsvWriter{out: out, isTSV: true, Stats: stats}
	case "json":
		return &JsonWriter{out: out, Stats: stats}
	default:
		return &TextWriter{out: out, Stats: stats}
	}
}

// TextWriter writes one Result.String() per line.
type TextWriter struct {
	out   io.Writer
	Stats *Stats
}

func (w *TextWriter) Write(results []*dictionary.Result) error {
	for _, result := range results {
		if _, err := fmt.Fprintln(w.out, result.String()); err != nil {
			return err
		}
		w.Stats.Output++
	}
	return nil
}

// CsvWriter writes the header once, before the first batch of results.
type CsvWriter struct {
	out         io.Writer
	isTSV       bool
	wroteHeader bool
	Stats       *Stats
}

var csvHeaders = []string{"op", "word", "found", "error"}

func (w *CsvWriter) Write(results []*dictionary.Result) error {
	writer := csv.NewWriter(w.out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	if !w.wroteHeader {
		if err := writer.Write(csvHeaders); err != nil {
			return err
		}
		w.wroteHeader = true
	}
	for _, result := range results {
		r := newRecord(result)
		if err := writer.Write([]string{r.Op, r.Word, strconv.FormatBool(r.Found), r.Error}); err != nil {
			return err
		}
		w.Stats.Output++
	}

	writer.Flush()
	return writer.Error()
}

type JsonWriter struct {
	out   io.Writer
	Stats *Stats
}

func (w *JsonWriter) Write(results []*dictionary.Result) error {
	records := make([]record, 0, len(results))
	for _, result := range results {
		records = append(records, newRecord(result))
	}

	encoder := json.NewEncoder(w.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return err
	}
	w.Stats.Output += len(records)
	return nil
}

// record is the flat form of a Result shared by the csv and json writers.
type record struct {
	Op    string `json:"op"`
	Word  string `json:"word"`
	Found bool   `json:"found"`
	Error string `json:"error,omitempty"`
}

func newRecord(result *dictionary.Result) record {
	r := record{
		Op:    string(result.Op),
		Word:  result.Word,
		Found: result.Found,
	}
	if result.Err != nil {
		r.Word = result.Input
		r.Error = result.Err.Error()
	}
	return r
}
