package trie

// AlphabetSize is the number of child slots on every node, one per letter a-z.
const AlphabetSize = 26

// Node is one position in the trie's character path space.
type Node struct {
	Children  [AlphabetSize]*Node // owned children, nil when the slot is empty
	EndOfWord bool                // the path from the root to this node spells a stored key
}

// Trie is a prefix tree over lowercase a-z keys.
// It is not safe for concurrent use.
type Trie struct {
	root  *Node
	nodes int // nodes below the root, kept in step with attach and detach
}

// step is one edge taken while descending, kept so delete can unwind without re-walking from the root.
type step struct {
	parent *Node
	index  int
}

// New creates an empty trie with a root that marks no word.
func New() *Trie {
	return &Trie{root: &Node{}}
}

// Root returns the root node. The root is never removed.
func (t *Trie) Root() *Node {
	return t.root
}

// Insert stores key in the trie, creating the missing nodes on its path.
// Inserting a key twice is the same as inserting it once.
func (t *Trie) Insert(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := Validate(key); err != nil {
		return err
	}

	current := t.root
	for i := 0; i < len(key); i++ {
		index := int(key[i] - 'a')
		if current.ChildAt(index) == nil {
			t.nodes++
		}
		current = current.AttachChildIfNotExist(&Node{}, index)
	}
	current.EndOfWord = true
	return nil
}

// Search reports whether key was inserted and not deleted since.
func (t *Trie) Search(key string) (bool, error) {
	if err := Validate(key); err != nil {
		return false, err
	}
	node := t.find(key)
	return node != nil && node != t.root && node.EndOfWord, nil
}

// Delete removes key and prunes every node that no longer leads to a stored key.
// It returns false, leaving the trie untouched, when key is not stored.
//
//	root-->t-->h-->e(word)-->i-->r(word)
//
// deleting "their" detaches i and r, stopping at e because it marks a word.
func (t *Trie) Delete(key string) (bool, error) {
	if err := Validate(key); err != nil {
		return false, err
	}
	if key == "" {
		return false, nil
	}

	path := make([]step, 0, len(key))
	current := t.root
	for i := 0; i < len(key); i++ {
		index := int(key[i] - 'a')
		next := current.ChildAt(index)
		if next == nil {
			return false, nil
		}
		path = append(path, step{parent: current, index: index})
		current = next
	}
	if !current.EndOfWord {
		return false, nil
	}

	current.EndOfWord = false
	t.detachBranch(path)
	return true, nil
}

// detachBranch walks the recorded path bottom up, unlinking each dead node
// until it reaches a node that is still in use. The root is never a child in path.
func (t *Trie) detachBranch(path []step) {
	for i := len(path) - 1; i >= 0; i-- {
		s := path[i]
		child := s.parent.Children[s.index]
		if child.EndOfWord || !child.IsLeaf() {
			return
		}
		s.parent.Detach(s.index)
		t.nodes--
	}
}

// find returns the node at the end of key without creating anything, or nil.
func (t *Trie) find(key string) *Node {
	current := t.root
	for i := 0; i < len(key) && current != nil; i++ {
		current = current.ChildAt(int(key[i] - 'a'))
	}
	return current
}

// NodeCount returns the number of nodes below the root.
func (t *Trie) NodeCount() int {
	return t.nodes
}

// Words returns every stored key in lexicographic order.
func (t *Trie) Words() []string {
	words := []string{}
	var walk func(n *Node, prefix []byte)
	walk = func(n *Node, prefix []byte) {
		if n.EndOfWord {
			words = append(words, string(prefix))
		}
		for i, child := range n.Children {
			if child != nil {
				walk(child, append(prefix, byte('a'+i)))
			}
		}
	}
	walk(t.root, make([]byte, 0, 16))
	return words
}

// AttachChildIfNotExist adds child at the given slot if the slot is empty.
// returns the new child or the existing one
func (n *Node) AttachChildIfNotExist(child *Node, at int) *Node {
	if n.Children[at] != nil {
		return n.Children[at]
	}
	n.Children[at] = child
	return child
}

// ChildAt returns the child at slot at, or nil.
func (n *Node) ChildAt(at int) *Node {
	if n == nil {
		panic("[BUG] ChildAt: node must not be nil")
	}
	return n.Children[at]
}

// Detach drops the child at slot at together with its whole subtree.
// if nothing else references it, it will be GC'ed
func (n *Node) Detach(at int) {
	n.Children[at] = nil
}

// IsLeaf checks if the node has no children.
func (n *Node) IsLeaf() bool {
	for _, child := range n.Children {
		if child != nil {
			return false
		}
	}
	return true
}

// ForEachChild applies f to each non-nil child, in alphabetical order.
// will return the original node n
func (n *Node) ForEachChild(f func(child *Node)) *Node {
	for _, child := range n.Children {
		if child != nil {
			f(child)
		}
	}
	return n
}

// ForEachStepDown recursively applies f to each descendant as long as while holds for the parent.
// pass nil as while to visit everything.
func (n *Node) ForEachStepDown(f func(*Node), while func(*Node) bool) *Node {
	n.ForEachChild(func(child *Node) {
		if while == nil || while(n) {
			f(child)
			child.ForEachStepDown(f, while)
		}
	})
	return n
}
