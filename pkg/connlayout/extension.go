package connlayout

import (
	"github.com/vsolon/graphext/pkg/host"
)

// MenuTitle is the label of the submenu this extension adds to node context
// menus.
const MenuTitle = "Connections Layout"

// ExtensionName identifies the extension in registries and logs.
const ExtensionName = "connections-layout"

// Extension wires layout configuration into an editor host: it contributes
// the connections submenu to every node and resolves anchor positions for
// nodes that store a layout. Register it with an extension registry.
type Extension struct {
	pairs []Layout
}

// NewExtension creates the extension with the given menu pairs. A nil slice
// selects [DefaultPairs]. The pairs shape only what the menu offers; options
// applied programmatically are not checked against them.
func NewExtension(pairs []Layout) *Extension {
	if pairs == nil {
		pairs = DefaultPairs()
	}
	return &Extension{pairs: pairs}
}

// Name returns the registry name of the extension.
func (e *Extension) Name() string { return ExtensionName }

// AppliesTo reports whether the extension handles the node type. Layout
// configuration applies to every node.
func (e *Extension) AppliesTo(nodeType string) bool { return true }

// NodeMenu contributes the "Connections Layout" submenu for nodes that can
// store a layout. Nodes without that capability get no entry.
func (e *Extension) NodeMenu(n host.Node) []host.MenuEntry {
	cn, ok := n.(ConfigurableNode)
	if !ok {
		return nil
	}
	return []host.MenuEntry{{
		Title:   MenuTitle,
		Options: Options(e.pairs),
		Select: func(option string) error {
			_, err := Configure(cn, option)
			return err
		},
	}}
}

// ResolveAnchor computes the anchor for nodes that store a layout and defers
// to prev for everything else.
func (e *Extension) ResolveAnchor(n host.Node, d host.Direction, slot int, prev host.AnchorFunc) host.Point {
	ln, ok := n.(Node)
	if !ok {
		return prev(n, d, slot)
	}
	return Resolve(ln, d, slot)
}
