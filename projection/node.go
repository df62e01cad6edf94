package projection

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// NodeKind tells a leaf from a branch.
type NodeKind int

const (
	KindLeaf NodeKind = iota
	KindBranch
)

// String returns a human-readable kind name.
func (k NodeKind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindBranch:
		return "branch"
	default:
		return "unknown"
	}
}

// Node is a projected value: either a leaf holding a resolved value or a
// branch mapping segment names to child nodes in insertion order.
type Node struct {
	kind     NodeKind
	value    any
	keys     []string
	children map[string]*Node
}

// Leaf returns a leaf node holding v.
func Leaf(v any) *Node {
	return &Node{kind: KindLeaf, value: v}
}

// Branch returns an empty branch node.
func Branch() *Node {
	return &Node{kind: KindBranch, children: make(map[string]*Node)}
}

// Kind returns the node kind.
func (n *Node) Kind() NodeKind { return n.kind }

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool { return n.kind == KindLeaf }

// IsBranch reports whether n is a branch.
func (n *Node) IsBranch() bool { return n.kind == KindBranch }

// Value returns the leaf value, nil for branches.
func (n *Node) Value() any {
	if n.kind != KindLeaf {
		return nil
	}

	return n.value
}

// Keys returns the branch keys in insertion order.
func (n *Node) Keys() []string {
	return append([]string(nil), n.keys...)
}

// Len returns the number of children of a branch.
func (n *Node) Len() int {
	return len(n.keys)
}

// Get returns the child at key.
func (n *Node) Get(key string) (*Node, bool) {
	child, ok := n.children[key]
	return child, ok
}

// Lookup walks the dotted path through branches.
func (n *Node) Lookup(path string) (*Node, bool) {
	cur := n
	for _, seg := range ParsePath(path).Segments {
		if !cur.IsBranch() {
			return nil, false
		}

		next, ok := cur.children[seg]
		if !ok {
			return nil, false
		}

		cur = next
	}

	return cur, true
}

// Set attaches child at key, replacing whatever was there.
// A replaced key keeps its original position. Set panics when n is a leaf;
// check IsBranch first when the kind is not known.
func (n *Node) Set(key string, child *Node) {
	if n.kind != KindBranch {
		panic(fmt.Sprintf("projection: Set(%q) on %s node", key, n.kind))
	}

	if _, exists := n.children[key]; !exists {
		n.keys = append(n.keys, key)
	}

	n.children[key] = child
}

// Interface converts the tree into plain Go values: branches become
// map[string]any, leaves their value.
func (n *Node) Interface() any {
	if n.kind == KindLeaf {
		return n.value
	}

	out := make(map[string]any, len(n.keys))
	for _, k := range n.keys {
		out[k] = n.children[k].Interface()
	}

	return out
}

// MarshalJSON writes branches as objects with keys in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.kind == KindLeaf {
		return json.Marshal(n.value)
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		val, err := n.children[k].MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler, keeping key order.
func (n *Node) MarshalYAML() (any, error) {
	return n.yamlNode()
}

func (n *Node) yamlNode() (*yaml.Node, error) {
	if n.kind == KindLeaf {
		var out yaml.Node
		if n.value == nil {
			out = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
			return &out, nil
		}

		if err := out.Encode(n.value); err != nil {
			return nil, err
		}

		return &out, nil
	}

	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range n.keys {
		val, err := n.children[k].yamlNode()
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			val,
		)
	}

	return out, nil
}
