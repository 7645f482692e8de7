// Package connlayout controls which side of a node its connection anchors
// appear on.
//
// # Overview
//
// Editors place connection endpoints on a fixed side of each node: inputs on
// the left edge, outputs on the right. This package makes that choice
// per-node. A [Layout] names one [Side] for inputs and one for outputs, and
// [Resolve] turns a node's layout into concrete anchor coordinates inside its
// bounding rectangle.
//
// # Sides and Anchors
//
// A [Side] is one of [Left], [Right], [Top], or [Bottom]. Each side maps to a
// fractional anchor within the node rectangle:
//
//   - Left:   (0, 0.5)
//   - Right:  (1, 0.5)
//   - Top:    (0.5, 0)
//   - Bottom: (0.5, 1)
//
// When a side's vertical fraction is exactly 0.5 (the left and right edges),
// [Resolve] spreads a node's slots evenly along that edge instead of stacking
// them at the midpoint: slot i of n gets fy = (i + 0.5) / n. Top and bottom
// anchors keep the fixed horizontal midpoint, so all slots on those edges
// share one point.
//
// # Configuring a Node
//
// [Configure] applies a menu option string to a node. Options come in two
// forms:
//
//	"Left -> Right"  full pair: input side, then output side
//	"Left"           input side only
//
// The single-side form is valid only for nodes without output slots; the
// output side is filled in with the input side's opposite so downstream
// readers always see a complete pair. [Options] renders a set of layout pairs
// into these strings for menu display, and [DefaultPairs] returns the stock
// horizontal pairs.
//
// # Host Integration
//
// [Extension] packages the above as editor capabilities: it contributes a
// "Connections Layout" submenu to node context menus and resolves anchors for
// any node that stores a layout, passing untouched nodes through to the
// host's own resolver.
package connlayout
