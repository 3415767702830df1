package palette

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snipdeck/snipdeck/pkg/projection"
	"github.com/snipdeck/snipdeck/pkg/service"
)

// displayNode represents a single line in the hierarchical palette view.
type displayNode struct {
	item   projection.Item
	depth  int
	prefix string
}

// nodeID returns the identifier used for tracking collapsed state. It is the
// item's path-derived key, so expand/collapse survives tree rebuilds caused
// by configuration edits elsewhere.
func (n *displayNode) nodeID() string {
	return n.item.Key
}

// isFoldable returns true if this node can be collapsed/expanded
func (n *displayNode) isFoldable() bool {
	return n.item.Kind == projection.KindGroup
}

// refreshMsg is delivered whenever the projection fires its refresh signal.
type refreshMsg struct{}

// Model is the main model for the snippet palette TUI
type Model struct {
	svc          *service.Service
	displayNodes []*displayNode
	cursor       int
	scrollOffset int
	keys         KeyMap
	help         help.Model
	width        int
	height       int

	filterInput textinput.Model
	filtering   bool

	collapsedNodes map[string]bool // keyed by stable item key
	statusMessage  string

	// Chosen is the payload of the activated snippet; the caller prints it
	// once the program exits.
	Chosen string

	refreshes chan struct{}
}

// New creates a palette model over the given service.
func New(svc *service.Service) *Model {
	filter := textinput.New()
	filter.Placeholder = "filter snippets..."
	filter.Prompt = "/ "

	m := &Model{
		svc:            svc,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		filterInput:    filter,
		collapsedNodes: make(map[string]bool),
		refreshes:      make(chan struct{}, 1),
	}

	// Coalesce refresh signals: the channel holds at most one pending
	// notification, redundant signals are idempotent anyway.
	svc.Projection.Subscribe(func() {
		select {
		case m.refreshes <- struct{}{}:
		default:
		}
	})

	m.rebuildNodes()
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.waitForRefresh()
}

func (m *Model) waitForRefresh() tea.Cmd {
	return func() tea.Msg {
		<-m.refreshes
		return refreshMsg{}
	}
}

// rebuildNodes re-derives the visible node list by walking the projection's
// children queries, skipping the subtrees of collapsed headers. Each walk
// sees a freshly built tree, so the list always reflects the configuration.
func (m *Model) rebuildNodes() {
	var nodes []*displayNode

	if m.filtering && m.filterInput.Value() != "" {
		m.displayNodes = m.filteredLeaves()
		m.clampCursor()
		return
	}

	var walk func(parent *projection.Item, depth int, prefix string)
	walk = func(parent *projection.Item, depth int, prefix string) {
		items := m.svc.Projection.Children(parent)
		for i, item := range items {
			item := item
			last := i == len(items)-1
			nodes = append(nodes, &displayNode{
				item:   item,
				depth:  depth,
				prefix: childPrefix(prefix, last, depth),
			})
			if item.Kind == projection.KindGroup && !m.collapsedNodes[item.Key] {
				walk(&item, depth+1, continuationPrefix(prefix, last, depth))
			}
		}
	}
	walk(nil, 0, "")

	m.displayNodes = nodes
	m.clampCursor()
}

// filteredLeaves returns every leaf in the tree whose label or description
// matches the filter, as a flat list in tree order.
func (m *Model) filteredLeaves() []*displayNode {
	query := strings.ToLower(m.filterInput.Value())
	var nodes []*displayNode

	var walk func(parent *projection.Item)
	walk = func(parent *projection.Item) {
		for _, item := range m.svc.Projection.Children(parent) {
			item := item
			switch item.Kind {
			case projection.KindGroup:
				walk(&item)
			case projection.KindCommand:
				if strings.Contains(strings.ToLower(item.Label), query) ||
					strings.Contains(strings.ToLower(item.Description), query) {
					nodes = append(nodes, &displayNode{item: item})
				}
			}
		}
	}
	walk(nil)
	return nodes
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.displayNodes) {
		m.cursor = len(m.displayNodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// childPrefix renders the box-drawing prefix for a node's own line.
func childPrefix(parent string, last bool, depth int) string {
	if depth == 0 {
		return ""
	}
	if last {
		return parent + "└─ "
	}
	return parent + "├─ "
}

// continuationPrefix renders the prefix inherited by a node's children.
func continuationPrefix(parent string, last bool, depth int) string {
	if depth == 0 {
		return ""
	}
	if last {
		return parent + "   "
	}
	return parent + "│  "
}
