package grouptree

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/snipdeck/snipdeck/pkg/models"
)

// Node is one node of the derived grouping tree. The root node has an empty
// Path and is never displayed itself. A node can hold direct commands and
// child groups at the same time.
type Node struct {
	// Label is the last path segment ("" for the root).
	Label string
	// Path is the full segment path from the root.
	Path []string
	// Commands directly assigned to this node, in input order.
	Commands []models.Command

	children map[string]*Node
}

// SplitGroup parses a slash-delimited group string into path segments.
// Segments are trimmed and empty segments are discarded, so "A//B/" and
// "A/B" yield the same path. A missing or all-empty group yields nil
// (the record is root-level).
func SplitGroup(group string) []string {
	var segs []string
	for _, part := range strings.Split(group, "/") {
		part = strings.TrimSpace(part)
		if part != "" {
			segs = append(segs, part)
		}
	}
	return segs
}

// Build derives the grouping tree for an ordered command list. The tree is
// deterministic for a given input order: commands keep input order within
// their node, child groups are created on first encounter and sorted for
// display by Children. Build never fails; malformed group strings degrade
// to literal segments.
func Build(cmds []models.Command) *Node {
	root := newNode("", nil)
	for _, c := range cmds {
		node := root
		for _, seg := range SplitGroup(c.Group) {
			node = node.ensureChild(seg)
		}
		node.Commands = append(node.Commands, c)
	}
	return root
}

func newNode(label string, path []string) *Node {
	return &Node{
		Label:    label,
		Path:     path,
		children: make(map[string]*Node),
	}
}

func (n *Node) ensureChild(seg string) *Node {
	if child, ok := n.children[seg]; ok {
		return child
	}
	path := make([]string, 0, len(n.Path)+1)
	path = append(path, n.Path...)
	path = append(path, seg)
	child := newNode(seg, path)
	n.children[seg] = child
	return child
}

// Key returns the node's stable identity: its full path joined by "/".
// Trees are rebuilt wholesale, so the path string is the only identity a
// node carries across rebuilds.
func (n *Node) Key() string {
	return strings.Join(n.Path, "/")
}

// HasGroups reports whether any group node exists anywhere in the tree.
// Every group path creates a child under the root, so checking the root's
// children is sufficient.
func (n *Node) HasGroups() bool {
	return len(n.children) > 0
}

// Children returns the node's child groups sorted by label using a
// case-insensitive, locale-aware comparison, so "apple" and "Apple" sort
// adjacently. Ties fall back to byte order to keep the result deterministic.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		out = append(out, child)
	}
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		if cmp := c.CompareString(out[i].Label, out[j].Label); cmp != 0 {
			return cmp < 0
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// Find resolves a segment path against the tree and returns the matching
// node, or nil if no node has that path. An empty path returns the node
// itself.
func (n *Node) Find(path []string) *Node {
	node := n
	for _, seg := range path {
		child, ok := node.children[seg]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}
