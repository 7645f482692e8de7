// Package host defines the surface of the node-editor host application as
// seen by extension modules.
//
// The host editor itself — rendering, input handling, graph execution,
// persistence — is an external collaborator. This package contains only the
// types extensions program against:
//
//   - Node: a live editor node (geometry, slots, widgets)
//   - Widget: a value-bearing UI control attached to a node
//   - MenuEntry: a submenu contributed to a node's context menu
//   - ExecutionResult: the message delivered when a node's backend
//     computation finishes
//   - Snapshot: the host's serialized document format (snapshot.go)
//
// # Geometry
//
// Node geometry is owned by the host and read-only for extensions. Positions
// are in host pixels with the origin at the top-left of the canvas; a node's
// rectangle grows rightward and downward.
//
// # Usage
//
// Extensions receive Node values from registry dispatch and interact with
// the host exclusively through these interfaces:
//
//	func (e *panel) NodeCreated(n host.Node) error {
//	    w, err := n.AddTextWidget("output", host.TextWidgetOptions{
//	        Multiline: true,
//	        ReadOnly:  true,
//	    })
//	    ...
//	}
package host

// =============================================================================
// Directions
// =============================================================================

// Direction distinguishes a node's input connectors from its output
// connectors.
type Direction uint8

const (
	// Input denotes the connector side receiving values.
	Input Direction = iota
	// Output denotes the connector side producing values.
	Output
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return "unknown"
	}
}

// =============================================================================
// Geometry
// =============================================================================

// Point is a position on the editor canvas, in host pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a node's rectangle on the editor canvas.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// At returns the absolute position of the fractional anchor (fx, fy), where
// (0, 0) is the rectangle's top-left corner and (1, 1) its bottom-right.
// Fractions outside [0, 1] extrapolate beyond the rectangle.
func (r Rect) At(fx, fy float64) Point {
	return Point{
		X: r.X + fx*r.Width,
		Y: r.Y + fy*r.Height,
	}
}

// Contains reports whether p lies within the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// =============================================================================
// Slots
// =============================================================================

// Slot describes a single connector on a node. Slots are identified by
// direction and zero-based index; the host owns their order.
type Slot struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"` // value type tag, e.g. "STRING"
}

// =============================================================================
// Node
// =============================================================================

// Node is a live editor node as exposed to extensions.
//
// All methods are invoked on the host's UI event loop; implementations are
// not required to be safe for concurrent use.
type Node interface {
	// ID returns the host-assigned node identifier, unique per document.
	ID() string

	// Type returns the node type name the extension pack registered,
	// e.g. "PathListDisplay".
	Type() string

	// Title returns the display title shown in the node header.
	Title() string

	// Rect returns the node's current rectangle on the canvas.
	Rect() Rect

	// Slots returns the connectors for the given direction, in slot order.
	Slots(d Direction) []Slot

	// SlotCount returns len(Slots(d)) without allocating.
	SlotCount(d Direction) int

	// AddTextWidget creates a text widget on the node and returns it.
	// Creating a second widget with the name of an existing one fails.
	AddTextWidget(name string, opts TextWidgetOptions) (Widget, error)

	// Widget returns the named widget, if attached.
	Widget(name string) (Widget, bool)

	// RequestRedraw asks the host to repaint the node on its next frame.
	// The request is cheap and coalesced by the host.
	RequestRedraw()
}

// AnchorFunc computes the canvas position where a connection line attaches
// to a node's slot. The host's render and hit-testing passes call the
// installed AnchorFunc on demand; implementations must be pure and must not
// block.
type AnchorFunc func(n Node, d Direction, slot int) Point

// =============================================================================
// Widgets
// =============================================================================

// Widget is a value-bearing control attached to a node.
type Widget interface {
	// Name returns the widget name, unique within its node.
	Name() string

	// Value returns the currently displayed value.
	Value() string

	// SetValue replaces the displayed value. The change becomes visible on
	// the node's next repaint.
	SetValue(v string)
}

// TextWidgetOptions configures a text widget at creation time.
type TextWidgetOptions struct {
	// Multiline selects a multiline text area instead of a single-line field.
	Multiline bool

	// ReadOnly disables user editing; the value changes only via SetValue.
	ReadOnly bool

	// Placeholder is the initial value.
	Placeholder string
}

// =============================================================================
// Menus
// =============================================================================

// MenuEntry is a named submenu contributed to a node's context menu. The
// host renders Options as the submenu's items and invokes Select with the
// chosen option string.
type MenuEntry struct {
	// Title is the submenu caption, e.g. "Connections Layout".
	Title string

	// Options are the selectable option strings, in display order.
	Options []string

	// Select applies the user's choice. A non-nil error aborts the action;
	// the host surfaces the message and leaves the node unchanged.
	Select func(option string) error
}
