package bst

import "fmt"

// Insertion is the outcome of Tree.Insert. It is either
//
//     Inserted(node, parent)   // a new leaf has been linked under parent (nil for a new root)
//     AlreadyExists(node)      // the key was present; node is the conflicting one
//
// Clients may use the predicates or pattern-match on the outcome:
//
//     var n, p *bst.Node
//     switch m := tree.Insert(7).Match(); m {
//     case m.Inserted(&n, &p):
//         …
//     case m.AlreadyExists(&n):
//         …
//     }
//
type Insertion struct {
	node   *Node
	parent *Node
	dup    bool
}

func inserted(node, parent *Node) Insertion {
	return Insertion{node: node, parent: parent}
}

func alreadyExists(node *Node) Insertion {
	return Insertion{node: node, dup: true}
}

// Inserted is true if a new node has been created.
func (ins Insertion) Inserted() bool {
	return !ins.dup
}

// Duplicate is true if the key was already present and the tree has not been changed.
func (ins Insertion) Duplicate() bool {
	return ins.dup
}

// Node returns the new node, or for a duplicate, the existing node with the same key.
func (ins Insertion) Node() *Node {
	return ins.node
}

// Parent returns the parent of a new node. It is nil for a new root and for duplicates.
func (ins Insertion) Parent() *Node {
	return ins.parent
}

// Err returns ErrDuplicateKey for duplicates, nil otherwise.
func (ins Insertion) Err() error {
	if ins.dup {
		return fmt.Errorf("%w: %d", ErrDuplicateKey, ins.node.key)
	}
	return nil
}

func (ins Insertion) String() string {
	if ins.dup {
		return fmt.Sprintf("AlreadyExists%v", ins.node)
	}
	return fmt.Sprintf("Inserted%v", ins.node)
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for the outcome of an insertion.
func (ins Insertion) Match() *InsertionMatcher {
	return &InsertionMatcher{ins: ins}
}

// InsertionMatcher matches the two cases of an Insertion. Each case method returns
// the matcher itself if the case applies, and nil otherwise.
type InsertionMatcher struct {
	ins Insertion
}

// Inserted matches a successful insertion, storing the new node and its parent
// in node and parent (either may be nil).
func (m *InsertionMatcher) Inserted(node, parent **Node) *InsertionMatcher {
	if m.ins.dup {
		return nil
	}
	if node != nil {
		*node = m.ins.node
	}
	if parent != nil {
		*parent = m.ins.parent
	}
	return m
}

// AlreadyExists matches a rejected insertion, storing the conflicting node in node
// (which may be nil).
func (m *InsertionMatcher) AlreadyExists(node **Node) *InsertionMatcher {
	if !m.ins.dup {
		return nil
	}
	if node != nil {
		*node = m.ins.node
	}
	return m
}
