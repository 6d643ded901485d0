package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khalid-nowaf/lettertrie/pkg/dictionary"
)

const defaultColumn = "word"

// parseWords reads every word of a word list and hands it to onEachWord.
// The format is picked from the file extension: .csv, .tsv, .json, anything else is one word per line.
func parseWords(path string, column string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCsv(file, ',', column, onEachWord)
	case ".tsv":
		return parseCsv(file, '\t', column, onEachWord)
	case ".json":
		return parseJson(file, column, onEachWord)
	default:
		return parseLines(file, onEachWord)
	}
}

// blank lines and lines starting with '#' are skipped
func parseLines(r io.Reader, onEachWord func(word string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := onEachWord(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseCsv(r io.Reader, separator rune, column string, onEachWord func(word string) error) error {
	reader := csv.NewReader(r)
	reader.Comma = separator
	reader.Comment = '#'

	// the first line is the header
	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("can not read header: %w", err)
	}
	index := -1
	for i, header := range headers {
		if strings.TrimSpace(header) == column {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("column %q not found in header %v", column, headers)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := onEachWord(record[index]); err != nil {
			return err
		}
	}
}

// parseJson accepts an array of strings or an array of objects holding the word under column.
func parseJson(r io.Reader, column string, onEachWord func(word string) error) error {
	decoder := json.NewDecoder(r)

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	for decoder.More() {
		var element interface{}
		if err := decoder.Decode(&element); err != nil {
			return err
		}

		var word string
		switch value := element.(type) {
		case string:
			word = value
		case map[string]interface{}:
			str, ok := value[column].(string)
			if !ok {
				return fmt.Errorf("record %v has no string %q key", value, column)
			}
			word = str
		default:
			return fmt.Errorf("unexpected JSON element %v", element)
		}

		if err := onEachWord(word); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err := decoder.Token()
	return err
}

// loadWords inserts every word of a file into the context's dictionary.
// rejected words do not stop the load, they are returned for reporting
func loadWords(ctx *Context, file string, column string) ([]*dictionary.Result, error) {
	rejected := []*dictionary.Result{}
	err := parseWords(file, column, func(word string) error {
		ctx.stats.Input++
		result := ctx.dict.Insert(word)
		if result.Failed() {
			ctx.stats.Rejected++
			rejected = append(rejected, result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ctx.logger.Info().Str("file", file).Int("words", len(ctx.dict.Words())).Int("rejected", len(rejected)).Msg("loaded word list")
	return rejected, nil
}
