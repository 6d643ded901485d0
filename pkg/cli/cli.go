package cli

import (
	"fmt"
	"io"

	"github.com/khalid-nowaf/lettertrie/pkg/config"
	"github.com/khalid-nowaf/lettertrie/pkg/dictionary"
	"github.com/rs/zerolog"
)

// CLI is the kong grammar of the lettertrie binary.
type CLI struct {
	Config   string `help:"Path to a YAML, TOML or JSON config file" type:"path" short:"c"`
	Fold     bool   `help:"Lower-case and strip accents from input words before validation"`
	Format   string `help:"Result format: text, csv, tsv or json (overrides the config file)"`
	LogLevel string `help:"Log level: debug, info, warn or error (overrides the config file)" name:"log-level"`

	Demo  DemoCmd  `cmd:"" default:"1" help:"Replay the sample inserts and searches before and after deleting \"the\""`
	Check CheckCmd `cmd:"" help:"Load word lists, apply deletions and report probes"`
	Repl  ReplCmd  `cmd:"" help:"Interactive insert, search and delete"`
	Words WordsCmd `cmd:"" help:"Load word lists and print every stored word in order"`
}

// Context is handed to every command's Run.
type Context struct {
	cfg    *config.Config
	dict   *dictionary.Dictionary
	logger zerolog.Logger
	writer Writer
	stats  *Stats
	in     io.Reader
	out    io.Writer
}

// NewContext loads the configuration, applies the global flags over it and
// builds the logger, the dictionary and the result writer. Preloaded word lists
// from the configuration are inserted before returning.
func (c *CLI) NewContext(in io.Reader, out io.Writer, errOut io.Writer) (*Context, error) {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return nil, err
	}
	if c.Fold {
		cfg.Input.Fold = true
	}
	if c.Format != "" {
		cfg.Output.Format = c.Format
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Log, errOut)
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		cfg:    cfg,
		logger: logger,
		stats:  &Stats{},
		in:     in,
		out:    out,
	}
	ctx.dict = ctx.newDictionary()
	ctx.writer = newWriter(cfg.Output.Format, out, ctx.stats)

	for _, file := range cfg.Input.Preload {
		if _, err := loadWords(ctx, file, defaultColumn); err != nil {
			return nil, fmt.Errorf("preload %s: %w", file, err)
		}
	}

	return ctx, nil
}

// newDictionary creates an empty dictionary with the configured options.
func (ctx *Context) newDictionary() *dictionary.Dictionary {
	return dictionary.NewDictionary(
		dictionary.WithFolding(ctx.cfg.Input.Fold),
		dictionary.WithLogger(ctx.logger),
	)
}

func newLogger(cfg config.LogConfig, out io.Writer) (zerolog.Logger, error) {
	level, err := cfg.ZerologLevel()
	if err != nil {
		return zerolog.Nop(), err
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
