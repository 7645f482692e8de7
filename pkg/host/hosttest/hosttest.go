// Package hosttest provides in-memory fakes of the editor host surface.
//
// Tests build [Node] values instead of a live editor: widgets are stored in
// a map, redraw requests are counted, and the connections layout is a plain
// field. The fakes satisfy both the host interfaces and the layout
// extension's node interfaces.
package hosttest

import (
	"fmt"

	"github.com/vsolon/graphext/pkg/connlayout"
	"github.com/vsolon/graphext/pkg/errors"
	"github.com/vsolon/graphext/pkg/host"
)

// Widget is an in-memory text widget.
type Widget struct {
	WidgetName string
	Val        string
	Opts       host.TextWidgetOptions

	// Sets counts SetValue calls.
	Sets int
}

// Ensure Widget implements host.Widget.
var _ host.Widget = (*Widget)(nil)

// Name returns the widget's name.
func (w *Widget) Name() string { return w.WidgetName }

// Value returns the current text.
func (w *Widget) Value() string { return w.Val }

// SetValue replaces the text and counts the call.
func (w *Widget) SetValue(v string) {
	w.Val = v
	w.Sets++
}

// Node is an in-memory editor node. The zero value is unusable; create
// nodes with [NewNode] and adjust the exported fields as needed.
type Node struct {
	NodeID    string
	NodeType  string
	NodeTitle string
	Bounds    host.Rect
	Inputs    []host.Slot
	Outputs   []host.Slot

	Layout    connlayout.Layout
	HasLayout bool

	Widgets map[string]*Widget

	// Redraws counts RequestRedraw calls.
	Redraws int

	// WidgetErr, when set, makes AddTextWidget fail with it.
	WidgetErr error
}

// Ensure Node implements the host surface and the layout capabilities.
var (
	_ host.Node                   = (*Node)(nil)
	_ connlayout.ConfigurableNode = (*Node)(nil)
)

// NewNode creates a fake node with no slots and no widgets.
func NewNode(id, nodeType string, bounds host.Rect) *Node {
	return &Node{
		NodeID:   id,
		NodeType: nodeType,
		Bounds:   bounds,
		Widgets:  make(map[string]*Widget),
	}
}

// Slots builds n unnamed string slots, for tests that only care about
// counts.
func Slots(n int) []host.Slot {
	slots := make([]host.Slot, n)
	for i := range slots {
		slots[i] = host.Slot{Name: fmt.Sprintf("slot_%d", i), Type: "STRING"}
	}
	return slots
}

// ID returns the node id.
func (n *Node) ID() string { return n.NodeID }

// Type returns the node type.
func (n *Node) Type() string { return n.NodeType }

// Title returns the node title, falling back to the type.
func (n *Node) Title() string {
	if n.NodeTitle != "" {
		return n.NodeTitle
	}
	return n.NodeType
}

// Rect returns the node bounds.
func (n *Node) Rect() host.Rect { return n.Bounds }

// Slots returns the node's slots in the given direction.
func (n *Node) Slots(d host.Direction) []host.Slot {
	if d == host.Output {
		return n.Outputs
	}
	return n.Inputs
}

// SlotCount returns the number of slots in the given direction.
func (n *Node) SlotCount(d host.Direction) int { return len(n.Slots(d)) }

// AddTextWidget attaches a new text widget. Attaching a name twice is an
// error, as it is in the editor.
func (n *Node) AddTextWidget(name string, opts host.TextWidgetOptions) (host.Widget, error) {
	if n.WidgetErr != nil {
		return nil, n.WidgetErr
	}
	if _, ok := n.Widgets[name]; ok {
		return nil, errors.New(errors.ErrCodeWidgetExists, "widget %q already attached to node %s", name, n.NodeID)
	}
	w := &Widget{WidgetName: name, Opts: opts}
	n.Widgets[name] = w
	return w, nil
}

// Widget returns the named widget if attached.
func (n *Node) Widget(name string) (host.Widget, bool) {
	w, ok := n.Widgets[name]
	if !ok {
		return nil, false
	}
	return w, true
}

// RequestRedraw counts the request.
func (n *Node) RequestRedraw() { n.Redraws++ }

// ConnectionsLayout returns the stored layout, if any.
func (n *Node) ConnectionsLayout() (connlayout.Layout, bool) { return n.Layout, n.HasLayout }

// SetConnectionsLayout stores a layout.
func (n *Node) SetConnectionsLayout(l connlayout.Layout) {
	n.Layout = l
	n.HasLayout = true
}
