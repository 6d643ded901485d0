// ## Overview
// Package trie implements a prefix tree over lowercase a-z keys.
// Every node holds 26 child slots, one per letter, and an end-of-word flag.
// Nodes are created lazily by Insert and pruned by Delete as soon as they
// neither mark a word nor lead to one, so after deleting every key the trie
// is back to a bare root.
//
// Keys are validated before the trie is touched: anything outside a-z is
// rejected with an *InvalidCharacterError and nothing is mutated.
//
// ## Example usage:
//
//	t := trie.New()
//	_ = t.Insert("the")
//	_ = t.Insert("their")
//
//	ok, _ := t.Search("the")   // true
//	ok, _ = t.Search("these")  // false
//
//	_, _ = t.Delete("the")
//	ok, _ = t.Search("their")  // true, shared prefix nodes are kept
//
//	// walk every node below the root
//	t.Root().ForEachStepDown(func(n *trie.Node) {
//		fmt.Println(n.EndOfWord)
//	}, nil)
//
// A Trie is not safe for concurrent use.
package trie
