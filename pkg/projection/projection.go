package projection

import (
	"strconv"

	"github.com/snipdeck/snipdeck/pkg/grouptree"
	"github.com/snipdeck/snipdeck/pkg/models"
)

// Kind categorizes displayable palette items.
type Kind int

const (
	// KindGroup is an expandable group header.
	KindGroup Kind = iota
	// KindCommand is a terminal leaf carrying an insertion payload.
	KindCommand
)

// UngroupedKey is the synthetic identity of the "Ungrouped" header shown for
// root-level commands when real groups exist. Derived group keys join
// non-empty segments with single slashes, so they can never contain "//";
// no group name, "Ungrouped" or otherwise, can forge this identity.
const UngroupedKey = "//ungrouped//"

// UngroupedLabel is the display label of the synthetic header.
const UngroupedLabel = "Ungrouped"

// Item is one displayable palette entry: a group header or a command leaf.
type Item struct {
	Kind        Kind
	Label       string
	Description string
	// Insert is the activation payload, set for KindCommand only.
	Insert string
	// Key is the item's stable identity across rebuilds: the full group path
	// joined by "/" for headers (or UngroupedKey), a derived per-position key
	// for leaves. Host views key expand/collapse state on it.
	Key string
	// Path is the group segment path, set for KindGroup only.
	Path []string
}

// Source supplies the current command snapshot. It is called on every
// Children query so answers always reflect the latest configuration.
type Source func() []models.Command

// Projection exposes the grouping tree through a pull-based children query
// plus a push-based refresh signal. It holds no tree between calls: each
// query re-derives the tree from a fresh source snapshot and navigates to
// the requested node by path, which makes stale cached node references a
// non-issue.
//
// Projection is single-threaded: register observers during setup, before
// anything can call Fire concurrently.
type Projection struct {
	source    Source
	observers []func()
}

// New creates a projection over the given snapshot source.
func New(source Source) *Projection {
	return &Projection{source: source}
}

// Subscribe registers an observer called on every refresh signal. The signal
// carries no payload; it is a notify-to-redraw hint, not a correctness
// requirement, since Children recomputes on every call anyway.
func (p *Projection) Subscribe(fn func()) {
	p.observers = append(p.observers, fn)
}

// Fire emits the refresh signal to all observers. It is invoked when the
// configuration source reports a change and on manual refresh; redundant
// calls in quick succession are idempotent.
func (p *Projection) Fire() {
	for _, fn := range p.observers {
		fn()
	}
}

// Children answers a pull query for the given parent item.
//
// A nil parent asks for the root view. When the derived tree has no group
// nodes at all, the root view is the flat command list, one leaf per record
// in input order, with no headers. Otherwise it is the root's group headers
// in display order, preceded by the synthetic "Ungrouped" header if and only
// if root-level commands exist alongside the groups.
//
// A group header parent resolves its path against the freshly rebuilt tree
// and yields its subgroup headers followed by its direct command leaves. The
// synthetic header yields the root's direct commands. A leaf parent, or a
// header whose path no longer exists, yields nil.
func (p *Projection) Children(parent *Item) []Item {
	root := grouptree.Build(p.source())

	switch {
	case parent == nil:
		if !root.HasGroups() {
			return leafItems(root)
		}
		var items []Item
		if len(root.Commands) > 0 {
			items = append(items, Item{
				Kind:  KindGroup,
				Label: UngroupedLabel,
				Key:   UngroupedKey,
			})
		}
		return append(items, headerItems(root)...)

	case parent.Kind == KindCommand:
		return nil

	case parent.Key == UngroupedKey:
		return leafItems(root)

	default:
		node := root.Find(parent.Path)
		if node == nil {
			return nil
		}
		return append(headerItems(node), leafItems(node)...)
	}
}

func headerItems(node *grouptree.Node) []Item {
	var items []Item
	for _, child := range node.Children() {
		items = append(items, Item{
			Kind:  KindGroup,
			Label: child.Label,
			Key:   child.Key(),
			Path:  child.Path,
		})
	}
	return items
}

func leafItems(node *grouptree.Node) []Item {
	var items []Item
	for i, c := range node.Commands {
		items = append(items, Item{
			Kind:        KindCommand,
			Label:       c.Label,
			Description: c.Description,
			Insert:      c.Insert,
			Key:         node.Key() + "#" + strconv.Itoa(i),
		})
	}
	return items
}
