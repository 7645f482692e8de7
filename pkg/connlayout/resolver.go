package connlayout

import (
	"github.com/vsolon/graphext/pkg/host"
)

// Node is the minimal view of an editor node needed to resolve anchor
// positions. Any [host.Node] that also stores a layout satisfies it.
type Node interface {
	// Rect returns the node's bounding rectangle in editor coordinates.
	Rect() host.Rect
	// SlotCount returns how many slots the node has in the given direction.
	SlotCount(d host.Direction) int
	// ConnectionsLayout returns the node's stored layout. ok is false when
	// the node has never been configured, in which case callers use
	// [DefaultLayout].
	ConnectionsLayout() (layout Layout, ok bool)
}

// ConfigurableNode extends [Node] with the mutations [Configure] performs.
type ConfigurableNode interface {
	Node
	// SetConnectionsLayout stores a layout on the node.
	SetConnectionsLayout(l Layout)
	// RequestRedraw asks the editor to repaint the node's canvas.
	RequestRedraw()
}

// Position computes the anchor point for one slot on a rectangle, given a
// layout. Sides whose anchor is vertically centered (left and right) spread
// the count slots evenly along the edge; slot indexes outside [0, count)
// extrapolate along the same spacing. Top and bottom anchors are fixed, so
// every slot shares the side's midpoint.
func Position(r host.Rect, l Layout, d host.Direction, slot, count int) host.Point {
	side := l.Side(d)
	if !side.Valid() {
		side = fallback(d)
	}
	fx, fy := side.Anchor()
	if fy == 0.5 {
		if count < 1 {
			count = 1
		}
		fy = (float64(slot) + 0.5) / float64(count)
	}
	return r.At(fx, fy)
}

// Resolve computes the anchor point for one slot of a node, using the node's
// stored layout or [DefaultLayout] when none is set.
func Resolve(n Node, d host.Direction, slot int) host.Point {
	l, ok := n.ConnectionsLayout()
	if !ok {
		l = DefaultLayout()
	}
	return Position(n.Rect(), l, d, slot, n.SlotCount(d))
}

// Configure applies a menu option string to a node. The option is interpreted
// by [ResolveOption] against the node's output slots; on success the complete
// layout is stored and a redraw is requested. On error the node is left
// untouched.
func Configure(n ConfigurableNode, option string) (Layout, error) {
	l, err := ResolveOption(option, n.SlotCount(host.Output) > 0)
	if err != nil {
		return Layout{}, err
	}
	n.SetConnectionsLayout(l)
	n.RequestRedraw()
	return l, nil
}
