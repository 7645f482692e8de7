// Package textpanel shows a node's text output inside the node.
//
// Display nodes carry a read-only multiline text widget. The extension
// attaches the widget when a matching node is created and fills it with the
// first "text" element of each execution result, falling back to a
// placeholder when a run produces no text.
package textpanel

import (
	"github.com/vsolon/graphext/pkg/errors"
	"github.com/vsolon/graphext/pkg/host"
)

// ExtensionName identifies the extension in registries and logs.
const ExtensionName = "text-panel"

// TextField is the execution-result field the panel displays.
const TextField = "text"

// Config selects which nodes get a panel and how it is labeled.
type Config struct {
	// Types lists the node types that display a panel. A type outside the
	// list is never touched.
	Types []string
	// WidgetName names the attached widget. Empty means "output".
	WidgetName string
	// Placeholder is shown before the first run and for runs without text.
	Placeholder string
}

// Extension attaches and updates text panels. Register it with an extension
// registry.
type Extension struct {
	types       map[string]bool
	widgetName  string
	placeholder string
}

// New creates the extension from a config, applying the stock widget name
// and placeholder for empty fields.
func New(cfg Config) *Extension {
	types := make(map[string]bool, len(cfg.Types))
	for _, t := range cfg.Types {
		types[t] = true
	}
	name := cfg.WidgetName
	if name == "" {
		name = "output"
	}
	placeholder := cfg.Placeholder
	if placeholder == "" {
		placeholder = "(no output)"
	}
	return &Extension{
		types:       types,
		widgetName:  name,
		placeholder: placeholder,
	}
}

// Name returns the registry name of the extension.
func (e *Extension) Name() string { return ExtensionName }

// AppliesTo reports whether the node type is one of the configured display
// types.
func (e *Extension) AppliesTo(nodeType string) bool { return e.types[nodeType] }

// NodeCreated attaches the text widget to a fresh display node. Nodes that
// already carry the widget are left as they are.
func (e *Extension) NodeCreated(n host.Node) error {
	_, err := e.ensureWidget(n)
	return err
}

// NodeExecuted copies the result's first text element into the node's
// widget, or the placeholder when the result has none. The widget is
// attached on the spot if the node was created before the extension
// registered. A redraw is requested only when the value changed.
func (e *Extension) NodeExecuted(n host.Node, result host.ExecutionResult) error {
	w, err := e.ensureWidget(n)
	if err != nil {
		return err
	}
	text, ok := result.First(TextField)
	if !ok {
		text = e.placeholder
	}
	if w.Value() != text {
		w.SetValue(text)
		n.RequestRedraw()
	}
	return nil
}

// ensureWidget returns the node's panel widget, attaching it if missing.
func (e *Extension) ensureWidget(n host.Node) (host.Widget, error) {
	if w, ok := n.Widget(e.widgetName); ok {
		return w, nil
	}
	w, err := n.AddTextWidget(e.widgetName, host.TextWidgetOptions{
		Multiline:   true,
		ReadOnly:    true,
		Placeholder: e.placeholder,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidWidget, err, "attach %q to node %s", e.widgetName, n.ID())
	}
	w.SetValue(e.placeholder)
	return w, nil
}
