// Package ext hosts editor extensions and dispatches host events to them.
//
// An extension customizes how the editor treats some or all node types:
// adding context-menu entries, reacting to node creation and execution, or
// overriding where connection anchors land. Extensions declare these
// abilities through small capability interfaces rather than one wide API.
//
// # Architecture
//
// The package uses a capability pattern:
//   - [Extension] is the only required interface (a name and a type filter)
//   - Optional capabilities are separate interfaces the registry detects
//     with type assertions
//   - A [Registry] holds extensions in registration order and fans events
//     out to the ones whose capability and type filter match
//
// Handler errors never escape a dispatch: the registry logs them and moves
// on, so one broken extension cannot take the editor down with it.
//
// # Anchor Resolution
//
// Anchor handling composes instead of fanning out. [Registry.AnchorFunc]
// wraps the host's native resolver with each [AnchorResolver] in turn, and
// every resolver receives the chain built so far as an explicit prev
// argument. A resolver that does not recognize a node calls prev; the last
// registered resolver sits outermost and sees every request first.
//
// # Usage
//
// Assemble a registry at startup, typically via [NewPack]:
//
//	reg := ext.NewRegistry(logger)
//	if err := reg.Register(connlayout.NewExtension(nil)); err != nil {
//	    return err
//	}
//	anchor := reg.AnchorFunc(hostAnchor)
package ext

import (
	"github.com/vsolon/graphext/pkg/host"
)

// Extension is the required surface of every editor extension.
type Extension interface {
	// Name identifies the extension within a registry. Names must be unique.
	Name() string

	// AppliesTo reports whether the extension handles nodes of the given
	// type. The registry skips extensions whose filter rejects a node.
	AppliesTo(nodeType string) bool
}

// =============================================================================
// Optional Capabilities
// =============================================================================

// NodeCreatedHandler is implemented by extensions that react to a node being
// added to the graph.
type NodeCreatedHandler interface {
	// NodeCreated is called once per matching node after the host creates
	// it. Errors are logged by the registry and do not stop dispatch.
	NodeCreated(n host.Node) error
}

// NodeExecutedHandler is implemented by extensions that react to a node
// finishing execution.
type NodeExecutedHandler interface {
	// NodeExecuted is called with the node and its execution result. Errors
	// are logged by the registry and do not stop dispatch.
	NodeExecuted(n host.Node, result host.ExecutionResult) error
}

// MenuContributor is implemented by extensions that add entries to a node's
// context menu.
type MenuContributor interface {
	// NodeMenu returns the entries to append for the node, or nil for none.
	NodeMenu(n host.Node) []host.MenuEntry
}

// AnchorResolver is implemented by extensions that override connection
// anchor positions.
type AnchorResolver interface {
	// ResolveAnchor returns the anchor for one slot of a node. prev is the
	// resolver chain assembled before this extension registered; resolvers
	// call it to pass on nodes they do not handle. prev is never nil.
	ResolveAnchor(n host.Node, d host.Direction, slot int, prev host.AnchorFunc) host.Point
}
