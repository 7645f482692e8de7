package ext

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vsolon/graphext/pkg/connlayout"
	"github.com/vsolon/graphext/pkg/errors"
	"github.com/vsolon/graphext/pkg/host"
)

// Registry holds registered extensions and dispatches host events to them in
// registration order.
//
// Registration normally happens once at startup, but the registry is safe
// for concurrent use: dispatch may run from the editor's paint or execution
// paths while another goroutine registers late.
type Registry struct {
	mu     sync.RWMutex
	exts   []Extension
	names  map[string]bool
	logger *log.Logger
}

// NewRegistry creates an empty registry. If logger is nil, the default
// logger is used.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		names:  make(map[string]bool),
		logger: logger,
	}
}

// Register adds an extension. Extensions dispatch in the order they were
// registered; a name that is already taken is rejected.
func (r *Registry) Register(e Extension) error {
	name := e.Name()
	if name == "" {
		return errors.New(errors.ErrCodeInternal, "extension has no name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.names[name] {
		return errors.New(errors.ErrCodeExtensionExists, "extension %q is already registered", name)
	}
	r.names[name] = true
	r.exts = append(r.exts, e)
	r.logger.Debug("registered extension", "name", name)
	return nil
}

// Extensions returns the registered extensions in registration order.
func (r *Registry) Extensions() []Extension {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Extension, len(r.exts))
	copy(out, r.exts)
	return out
}

// NodeCreated notifies every matching NodeCreatedHandler that a node was
// added. Handler errors are logged and swallowed so a broken extension
// cannot interrupt the host.
func (r *Registry) NodeCreated(n host.Node) {
	for _, e := range r.Extensions() {
		h, ok := e.(NodeCreatedHandler)
		if !ok || !e.AppliesTo(n.Type()) {
			continue
		}
		if err := h.NodeCreated(n); err != nil {
			r.logger.Error("node created handler failed",
				"extension", e.Name(), "node", n.ID(), "error", err)
		}
	}
}

// NodeExecuted notifies every matching NodeExecutedHandler of an execution
// result. Handler errors are logged and swallowed.
func (r *Registry) NodeExecuted(n host.Node, result host.ExecutionResult) {
	for _, e := range r.Extensions() {
		h, ok := e.(NodeExecutedHandler)
		if !ok || !e.AppliesTo(n.Type()) {
			continue
		}
		if err := h.NodeExecuted(n, result); err != nil {
			r.logger.Error("node executed handler failed",
				"extension", e.Name(), "node", n.ID(), "run", result.Run, "error", err)
		}
	}
}

// NodeMenu collects the context-menu entries every matching MenuContributor
// adds for the node, in registration order.
func (r *Registry) NodeMenu(n host.Node) []host.MenuEntry {
	var entries []host.MenuEntry
	for _, e := range r.Extensions() {
		c, ok := e.(MenuContributor)
		if !ok || !e.AppliesTo(n.Type()) {
			continue
		}
		entries = append(entries, c.NodeMenu(n)...)
	}
	return entries
}

// AnchorFunc wraps the host's native anchor resolver with every registered
// AnchorResolver. Each resolver receives the chain built before it as its
// prev delegate, so the last registered resolver is consulted first and
// unhandled nodes fall through to base. A nil base resolves to the stock
// left-input right-output arrangement.
func (r *Registry) AnchorFunc(base host.AnchorFunc) host.AnchorFunc {
	if base == nil {
		base = defaultAnchor
	}
	f := base
	for _, e := range r.Extensions() {
		res, ok := e.(AnchorResolver)
		if !ok {
			continue
		}
		prev := f
		ext := e
		f = func(n host.Node, d host.Direction, slot int) host.Point {
			if !ext.AppliesTo(n.Type()) {
				return prev(n, d, slot)
			}
			return res.ResolveAnchor(n, d, slot, prev)
		}
	}
	return f
}

// defaultAnchor places anchors the way an unextended editor does: inputs
// spread along the left edge, outputs along the right.
func defaultAnchor(n host.Node, d host.Direction, slot int) host.Point {
	return connlayout.Position(n.Rect(), connlayout.DefaultLayout(), d, slot, n.SlotCount(d))
}
