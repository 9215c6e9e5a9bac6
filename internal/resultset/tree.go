package resultset

import (
	"fmt"

	"github.com/tobsdb/rowset/internal/driver"
	"github.com/tobsdb/rowset/pkg"
)

// The tree under construction during FetchAssoc. Every slot starts out
// unset and commits to one kind the first time a row passes through it;
// it keeps that kind for the rest of the build.
type nodeKind int

const (
	nodeUnset nodeKind = iota
	nodeList
	nodeMap
	nodeLeaf
)

// How a terminal slot stores the full row: "=" as a plain map,
// "@" as the ordered object-like Row.
type leafKind int

const (
	leafAsMap leafKind = iota
	leafAsRow
)

type node struct {
	kind nodeKind
	list []*node
	keys pkg.Map[string, *node]
	leaf any
}

// appendSlot adds a fresh slot to a list node and descends into it.
// Every row visiting a list step gets its own slot.
func (n *node) appendSlot() *node {
	if n.kind == nodeUnset {
		n.kind = nodeList
	}
	child := &node{}
	n.list = append(n.list, child)
	return child
}

// keySlot descends into the slot for a map key, creating the map node
// and the slot on first visit. Rows sharing the same key path reuse the
// same slot.
func (n *node) keySlot(key string) *node {
	if n.kind == nodeUnset {
		n.kind = nodeMap
		n.keys = pkg.Map[string, *node]{}
	}
	if child := n.keys.Get(key); child != nil {
		return child
	}
	child := &node{}
	n.keys.Set(key, child)
	return child
}

// setLeaf materializes the slot as a full-row leaf. Re-visiting the same
// exact path overwrites: last row wins, mirroring map insertion semantics.
func (n *node) setLeaf(row *driver.Row, kind leafKind) {
	n.kind = nodeLeaf
	if kind == leafAsRow {
		n.leaf = row
	} else {
		n.leaf = row.AsMap()
	}
}

// export unwraps the finished tree into plain values: lists as []any,
// maps as map[string]any, leaves as stored.
func (n *node) export() any {
	switch n.kind {
	case nodeList:
		out := make([]any, len(n.list))
		for i, child := range n.list {
			out[i] = child.export()
		}
		return out
	case nodeMap:
		out := make(map[string]any, len(n.keys))
		for key, child := range n.keys {
			out[key] = child.export()
		}
		return out
	case nodeLeaf:
		return n.leaf
	}
	return nil
}

// formatKey normalizes a column value into a tree map key. All keys are
// strings, so integer 1 and string "1" land in the same slot.
func formatKey(v any) string {
	return fmt.Sprintf("%v", v)
}
