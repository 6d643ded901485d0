package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is returned when inserting the empty string.
	ErrEmptyKey = errors.New("trie: empty key")
	// ErrInvalidCharacter is wrapped by every InvalidCharacterError.
	ErrInvalidCharacter = errors.New("trie: invalid character")
)

// InvalidCharacterError reports the first byte of a key outside a-z.
type InvalidCharacterError struct {
	Key  string
	Pos  int
	Char byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("trie: invalid character %q at position %d in key %q (only a-z allowed)", e.Char, e.Pos, e.Key)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// IndexOf maps a letter to its child slot.
func IndexOf(c byte) (int, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}

// Validate checks that every byte of key is a lowercase letter.
// The empty key is valid here; Insert rejects it separately.
func Validate(key string) error {
	for i := 0; i < len(key); i++ {
		if _, ok := IndexOf(key[i]); !ok {
			return &InvalidCharacterError{Key: key, Pos: i, Char: key[i]}
		}
	}
	return nil
}
