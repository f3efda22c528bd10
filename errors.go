package fractal

import "fmt"

// UnsupportedNodeError reports a parse node that matches no known variant or
// operator tag. It signals a contract violation by the producer of the tree,
// not a user-correctable input error: trees accepted by the parser never
// trigger it.
type UnsupportedNodeError struct {
	// Node is the offending node. It may be nil when a nil child was
	// encountered where a node was required.
	Node Node
}

func (e *UnsupportedNodeError) Error() string {
	switch n := e.Node.(type) {
	case nil:
		return "fractal: unsupported parse node: <nil>"
	case *UnaryNode:
		return fmt.Sprintf("fractal: unsupported unary operator %q", n.Op)
	case *BinaryNode:
		return fmt.Sprintf("fractal: unsupported binary operator %q", n.Op)
	default:
		return fmt.Sprintf("fractal: unsupported parse node %T", e.Node)
	}
}

// UnknownColoringModeError reports a Settings.Coloring key that matches no
// entry in the coloring-mode table.
type UnknownColoringModeError struct {
	Mode ColoringMode
}

func (e *UnknownColoringModeError) Error() string {
	return fmt.Sprintf("fractal: unknown coloring mode %q", e.Mode)
}
