package dictionary

import (
	"fmt"

	"github.com/khalid-nowaf/lettertrie/pkg/trie"
	"github.com/rs/zerolog"
)

// Dictionary is a word set backed by a trie.
// It prepares caller input (optional folding), logs every operation and reports a Result per call.
// It is not safe for concurrent use.
type Dictionary struct {
	words  *trie.Trie
	fold   bool
	logger zerolog.Logger
}

// NewDictionary initializes an empty dictionary.
//
// Parameters:
//   - opts: options applied over DefaultOptions, in order.
//
// Returns:
//   - A pointer to a newly initialized Dictionary.
func NewDictionary(opts ...Option) *Dictionary {
	d := DefaultOptions()
	for _, opt := range opts {
		d = opt(d)
	}
	return d
}

// Insert adds word to the dictionary. Inserting an existing word is a no-op that still succeeds.
func (d *Dictionary) Insert(word string) *Result {
	result, key := d.prepare(OpInsert, word)
	if result.Failed() {
		return result
	}

	if err := d.words.Insert(key); err != nil {
		return d.reject(result, err)
	}
	result.Found = true
	if e := d.logger.Debug(); e.Enabled() {
		e.Str("word", key).Int("nodes", d.words.NodeCount()).Msg("inserted")
	}
	return result
}

// InsertAll inserts each word and returns one result per word, in input order.
func (d *Dictionary) InsertAll(words ...string) []*Result {
	results := make([]*Result, 0, len(words))
	for _, word := range words {
		results = append(results, d.Insert(word))
	}
	return results
}

// Search looks word up without changing the dictionary.
func (d *Dictionary) Search(word string) *Result {
	result, key := d.prepare(OpSearch, word)
	if result.Failed() {
		return result
	}

	found, err := d.words.Search(key)
	if err != nil {
		return d.reject(result, err)
	}
	result.Found = found
	d.logger.Debug().Str("word", key).Bool("found", found).Msg("searched")
	return result
}

// Delete removes word and prunes the nodes only it was using.
// Deleting an absent word is a no-op reported with Found == false.
func (d *Dictionary) Delete(word string) *Result {
	result, key := d.prepare(OpDelete, word)
	if result.Failed() {
		return result
	}

	removed, err := d.words.Delete(key)
	if err != nil {
		return d.reject(result, err)
	}
	result.Found = removed
	if e := d.logger.Debug(); e.Enabled() {
		e.Str("word", key).Bool("removed", removed).Int("nodes", d.words.NodeCount()).Msg("deleted")
	}
	return result
}

// Words returns every stored word in lexicographic order.
func (d *Dictionary) Words() []string {
	return d.words.Words()
}

// NodeCount returns the number of trie nodes below the root.
func (d *Dictionary) NodeCount() int {
	return d.words.NodeCount()
}

// prepare builds the result skeleton and the key handed to the trie.
func (d *Dictionary) prepare(op Operation, word string) (*Result, string) {
	result := &Result{Op: op, Word: word, Input: word}
	if !d.fold {
		return result, word
	}

	folded, err := foldWord(word)
	if err != nil {
		return d.reject(result, fmt.Errorf("can not fold %q: %w", word, err)), ""
	}
	result.Word = folded
	return result, folded
}

func (d *Dictionary) reject(result *Result, err error) *Result {
	result.Err = err
	d.logger.Warn().Err(err).Str("op", string(result.Op)).Str("word", result.Input).Msg("rejected")
	return result
}
