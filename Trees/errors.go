package Trees

import "fmt"

// InvalidSliceError is the panic value of Build and arrTree.From when safe is
// set and the given slice isn't strictly ascending. Prev and Next are the offending neighbours at
// Index-1 and Index.
type InvalidSliceError struct {
	Index      int
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at index %d: %v before %v", e.Index, e.Prev, e.Next)
}

// RotationError is the panic value of a rotation called on a node, or an arena
// index, that lacks the child it would promote. It always indicates a bug in the tree, not in the caller.
type RotationError struct {
	Left bool
}

func (e RotationError) Error() string {
	if e.Left {
		return "rotate left on a node with no right child"
	}
	return "rotate right on a node with no left child"
}
