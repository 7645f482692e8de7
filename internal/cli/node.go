package cli

import (
	"github.com/vsolon/graphext/pkg/connlayout"
	"github.com/vsolon/graphext/pkg/errors"
	"github.com/vsolon/graphext/pkg/host"
)

// snapshotNode adapts a host.NodeState to the live-node interfaces so CLI
// commands run the same resolve and configure paths the editor does. Layout
// changes write back into the underlying NodeState in serialized form.
type snapshotNode struct {
	state *host.NodeState
	dirty bool
}

// Ensure the adapter satisfies the host surface and the layout capabilities.
var (
	_ host.Node                   = (*snapshotNode)(nil)
	_ connlayout.ConfigurableNode = (*snapshotNode)(nil)
)

func newSnapshotNode(state *host.NodeState) *snapshotNode {
	return &snapshotNode{state: state}
}

func (n *snapshotNode) ID() string                         { return n.state.ID }
func (n *snapshotNode) Type() string                       { return n.state.Type }
func (n *snapshotNode) Title() string                      { return n.state.DisplayTitle() }
func (n *snapshotNode) Rect() host.Rect                    { return n.state.Rect() }
func (n *snapshotNode) Slots(d host.Direction) []host.Slot { return n.state.Slots(d) }
func (n *snapshotNode) SlotCount(d host.Direction) int     { return n.state.SlotCount(d) }

// AddTextWidget always fails: a snapshot carries no live widgets.
func (n *snapshotNode) AddTextWidget(name string, opts host.TextWidgetOptions) (host.Widget, error) {
	return nil, errors.New(errors.ErrCodeInvalidWidget, "snapshot node %s cannot host widgets", n.state.ID)
}

// Widget reports no widgets; see AddTextWidget.
func (n *snapshotNode) Widget(name string) (host.Widget, bool) { return nil, false }

// RequestRedraw marks the node dirty. A snapshot has no canvas to repaint.
func (n *snapshotNode) RequestRedraw() { n.dirty = true }

// ConnectionsLayout parses the stored option string. Unset or unparseable
// values read as "no layout", which resolves with the default arrangement.
func (n *snapshotNode) ConnectionsLayout() (connlayout.Layout, bool) {
	if n.state.ConnectionsLayout == "" {
		return connlayout.Layout{}, false
	}
	l, err := connlayout.ParseLayout(n.state.ConnectionsLayout)
	if err != nil {
		return connlayout.Layout{}, false
	}
	return l, true
}

// SetConnectionsLayout stores the layout in its serialized pair form.
func (n *snapshotNode) SetConnectionsLayout(l connlayout.Layout) {
	n.state.ConnectionsLayout = l.String()
}
