package dictionary

import "fmt"

type Operation string

const (
	OpInsert Operation = "insert"
	OpSearch Operation = "search"
	OpDelete Operation = "delete"
)

// records the outcome of one dictionary operation for reporting
type Result struct {
	Op    Operation // the operation attempted
	Word  string    // the word as the trie saw it, after folding
	Input string    // the word as the caller passed it
	Found bool      // search: present, delete: removed, insert: always true on success
	Err   error     // validation failure, nil otherwise
}

// Failed reports whether the trie rejected the word.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// FoundAsInt returns 1 or 0.
func (r *Result) FoundAsInt() int {
	if r.Found {
		return 1
	}
	return 0
}

func (r *Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s %q: error: %v", r.Op, r.Input, r.Err)
	}

	switch r.Op {
	case OpSearch:
		return fmt.Sprintf("word = %q ---> %d", r.Word, r.FoundAsInt())
	case OpDelete:
		if r.Found {
			return fmt.Sprintf("delete %q: removed", r.Word)
		}
		return fmt.Sprintf("delete %q: absent", r.Word)
	default:
		return fmt.Sprintf("%s %q: ok", r.Op, r.Word)
	}
}
