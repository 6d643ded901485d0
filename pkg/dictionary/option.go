package dictionary

import (
	"github.com/khalid-nowaf/lettertrie/pkg/trie"
	"github.com/rs/zerolog"
)

type Option func(*Dictionary) *Dictionary

func DefaultOptions() *Dictionary {
	return &Dictionary{
		words:  trie.New(),
		fold:   false,
		logger: zerolog.Nop(),
	}
}

// WithFolding lower-cases and strips accents from every word before it reaches the trie.
func WithFolding(fold bool) Option {
	return func(d *Dictionary) *Dictionary {
		d.fold = fold
		return d
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(d *Dictionary) *Dictionary {
		d.logger = logger
		return d
	}
}
