package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/khalid-nowaf/lettertrie/pkg/dictionary"
)

var (
	demoWords  = []string{"the", "the world", "a", "there", "answer", "any", "by", "bye", "their", "thaw"}
	demoProbes = []string{"the", "these", "their", "thaw"}
)

const demoSeparator = "-------after deleting \"the\"---------------"

type DemoCmd struct{}

// Run inserts the sample words into a fresh dictionary, prints the probes,
// deletes "the" and prints them again. The demo always renders as text.
func (cmd *DemoCmd) Run(ctx *Context) error {
	dict := ctx.newDictionary()
	writer := &TextWriter{out: ctx.out, Stats: ctx.stats}

	rejected := []*dictionary.Result{}
	for _, result := range dict.InsertAll(demoWords...) {
		if result.Failed() {
			rejected = append(rejected, result)
		}
	}
	if err := writer.Write(rejected); err != nil {
		return err
	}

	if err := writer.Write(probe(dict, demoProbes)); err != nil {
		return err
	}

	dict.Delete("the")
	if _, err := fmt.Fprintln(ctx.out, demoSeparator); err != nil {
		return err
	}

	return writer.Write(probe(dict, demoProbes))
}

type CheckCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"Word lists (.txt, .csv, .tsv or .json)"`
	Column string   `help:"CSV column or JSON key holding the word" default:"word"`
	Delete []string `help:"Words to delete after loading" sep:","`
	Probe  []string `help:"Words to search for after deleting" sep:","`
}

// Run loads the files, applies deletions and writes rejected inserts, deletions and probes.
func (cmd *CheckCmd) Run(ctx *Context) error {
	results := []*dictionary.Result{}
	for _, file := range cmd.Files {
		rejected, err := loadWords(ctx, file, cmd.Column)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		results = append(results, rejected...)
	}

	for _, word := range cmd.Delete {
		results = append(results, ctx.dict.Delete(word))
	}
	results = append(results, probe(ctx.dict, cmd.Probe)...)

	if err := ctx.writer.Write(results); err != nil {
		return err
	}
	ctx.logger.Debug().
		Int("input", ctx.stats.Input).
		Int("rejected", ctx.stats.Rejected).
		Int("output", ctx.stats.Output).
		Int("nodes", ctx.dict.NodeCount()).
		Msg("check complete")
	return nil
}

type WordsCmd struct {
	Files  []string `arg:"" optional:"" type:"existingfile" help:"Word lists (.txt, .csv, .tsv or .json)"`
	Column string   `help:"CSV column or JSON key holding the word" default:"word"`
}

// Run prints every stored word, one per line, after loading the files.
func (cmd *WordsCmd) Run(ctx *Context) error {
	for _, file := range cmd.Files {
		if _, err := loadWords(ctx, file, cmd.Column); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	for _, word := range ctx.dict.Words() {
		if _, err := fmt.Fprintln(ctx.out, word); err != nil {
			return err
		}
	}
	return nil
}

type ReplCmd struct {
	Prompt string `help:"Prompt printed before each line" default:"> "`
}

const replHelp = "commands: insert <word>, search <word>, delete <word>, words, count, help, quit"

// Run reads one command per line until EOF or quit.
// A failed write to the output ends the session with that error.
func (cmd *ReplCmd) Run(ctx *Context) error {
	scanner := bufio.NewScanner(ctx.in)
	for {
		if _, err := fmt.Fprint(ctx.out, cmd.Prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			if _, err := fmt.Fprintln(ctx.out); err != nil {
				return err
			}
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		quit, err := respond(ctx, strings.ToLower(fields[0]), fields[1:])
		if err != nil || quit {
			return err
		}
	}
}

// respond answers one repl line and reports whether the session should end.
func respond(ctx *Context, op string, args []string) (bool, error) {
	var err error
	switch op {
	case "quit", "exit":
		return true, nil
	case "help":
		_, err = fmt.Fprintln(ctx.out, replHelp)
	case "words":
		_, err = fmt.Fprintln(ctx.out, strings.Join(ctx.dict.Words(), " "))
	case "count":
		_, err = fmt.Fprintf(ctx.out, "words: %d, nodes: %d\n", len(ctx.dict.Words()), ctx.dict.NodeCount())
	case "insert", "search", "delete":
		if len(args) == 0 {
			_, err = fmt.Fprintf(ctx.out, "%s needs a word\n", op)
			break
		}
		err = ctx.writer.Write(apply(ctx.dict, op, args))
	default:
		_, err = fmt.Fprintf(ctx.out, "unknown command %q, %s\n", op, replHelp)
	}
	return false, err
}

func apply(dict *dictionary.Dictionary, op string, words []string) []*dictionary.Result {
	results := make([]*dictionary.Result, 0, len(words))
	for _, word := range words {
		switch op {
		case "insert":
			results = append(results, dict.Insert(word))
		case "delete":
			results = append(results, dict.Delete(word))
		default:
			results = append(results, dict.Search(word))
		}
	}
	return results
}

func probe(dict *dictionary.Dictionary, words []string) []*dictionary.Result {
	return apply(dict, "search", words)
}
