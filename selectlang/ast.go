// Package selectlang implements the text selection query language: a
// recursive-descent parser over a small PEG-style grammar, and an
// explicit-stack evaluator that turns the resulting AST into a sorted-unique
// set of atom indices.
package selectlang

// NodeKind discriminates the small closed set of AST node types this
// minimal grammar subset produces.
type NodeKind uint8

const (
	NodeAll NodeKind = iota
	NodeOr
	NodeAnd
	NodeNot
	NodeNumProp
)

// NumPropName is which numeric atom property a NumProp node tests.
type NumPropName uint8

const (
	PropResID NumPropName = iota
	PropIndex
)

func (n NumPropName) String() string {
	if n == PropResID {
		return "resid"
	}
	return "index"
}

// NumRange is an inclusive [Lo, Hi] integer range.
type NumRange struct {
	Lo, Hi int32
}

// Node is one AST node. Left/Right are used by And/Or; Left alone by Not.
// Prop/Numbers/Ranges are used by NumProp.
type Node struct {
	Kind    NodeKind
	Left    *Node
	Right   *Node
	Prop    NumPropName
	Numbers []int32
	Ranges  []NumRange
}
