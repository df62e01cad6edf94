package projection

import (
	"log/slog"
)

// assembler merges resolved paths into one tree.
type assembler struct {
	resolver resolver
	logger   *slog.Logger
}

// assemble resolves every path against obj and inserts the values in order.
// Callers validate paths beforehand when strict handling is wanted.
func (a assembler) assemble(obj any, paths []Path) *Node {
	root := Branch()

	for _, p := range paths {
		value, found := a.resolver.resolve(obj, p)
		if !found {
			value = nil
		}

		if !p.Valid() {
			a.logger.Debug("resolving malformed path as absent", slog.String("path", p.String()))
		}

		a.insert(root, p, Leaf(value))
	}

	return root
}

// insert descends through p's parent segments, creating branches as needed,
// and sets leaf at the last segment. A leaf met on the way is replaced by a
// fresh branch; the last write wins.
func (a assembler) insert(root *Node, p Path, leaf *Node) {
	parent := root

	for _, seg := range p.Parents() {
		child, ok := parent.Get(seg)
		switch {
		case ok && child.IsBranch():
			parent = child
			continue
		case ok:
			a.logger.Debug("replacing leaf with branch",
				slog.String("path", p.String()),
				slog.String("key", seg),
			)
		}

		child = Branch()
		parent.Set(seg, child)
		parent = child
	}

	if prev, ok := parent.Get(p.Leaf()); ok && prev.IsBranch() {
		a.logger.Debug("replacing branch with leaf",
			slog.String("path", p.String()),
			slog.String("key", p.Leaf()),
		)
	}

	parent.Set(p.Leaf(), leaf)
}
