package ext

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/vsolon/graphext/pkg/connlayout"
	"github.com/vsolon/graphext/pkg/errors"
)

// Default values applied to manifests that omit the display table.
const (
	// DefaultWidgetName is the text widget attached to display nodes.
	DefaultWidgetName = "output"
	// DefaultPlaceholder is shown when an execution result carries no text.
	DefaultPlaceholder = "(no output)"
)

// Manifest describes a node pack: its identity, which node types show a
// text panel, the layout pairs offered in the connections menu, and the
// display names of the pack's node types.
type Manifest struct {
	Pack    PackInfo    `toml:"pack"`
	Display DisplayInfo `toml:"display"`
	Layout  LayoutInfo  `toml:"layout"`
	Nodes   []NodeInfo  `toml:"nodes"`
}

// PackInfo identifies the pack.
type PackInfo struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// DisplayInfo configures the text panel extension.
type DisplayInfo struct {
	// Placeholder is the widget text used when a result has no output.
	Placeholder string `toml:"placeholder"`
	// Widget names the text widget attached to display nodes.
	Widget string `toml:"widget"`
	// Types lists the node types that get a text panel.
	Types []string `toml:"types"`
}

// LayoutInfo configures the connections menu.
type LayoutInfo struct {
	// Pairs lists the menu options as "In -> Out" strings. Empty means the
	// stock horizontal pairs.
	Pairs []string `toml:"pairs"`
}

// NodeInfo maps one of the pack's node types to its display name.
type NodeInfo struct {
	Type     string `toml:"type"`
	Display  string `toml:"display"`
	Category string `toml:"category"`
}

// ParseManifest decodes and validates a TOML pack manifest, applying display
// defaults for omitted fields.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if m.Display.Widget == "" {
		m.Display.Widget = DefaultWidgetName
	}
	if m.Display.Placeholder == "" {
		m.Display.Placeholder = DefaultPlaceholder
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseManifest(data)
}

// Validate checks manifest invariants: a legal pack name, well-formed node
// types without duplicates, a legal widget name, and parseable layout pairs.
func (m Manifest) Validate() error {
	if err := errors.ValidatePackName(m.Pack.Name); err != nil {
		return err
	}
	if err := errors.ValidateWidgetName(m.Display.Widget); err != nil {
		return err
	}
	for _, typ := range m.Display.Types {
		if err := errors.ValidateNodeType(typ); err != nil {
			return err
		}
	}
	seen := make(map[string]bool, len(m.Nodes))
	for _, n := range m.Nodes {
		if err := errors.ValidateNodeType(n.Type); err != nil {
			return err
		}
		if seen[n.Type] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate node type %q", n.Type)
		}
		seen[n.Type] = true
	}
	for _, pair := range m.Layout.Pairs {
		if _, err := connlayout.ParseLayout(pair); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "layout pair %q", pair)
		}
	}
	return nil
}

// LayoutPairs returns the connections-menu pairs the manifest selects, or
// [connlayout.DefaultPairs] when none are listed. The manifest must have
// been validated.
func (m Manifest) LayoutPairs() []connlayout.Layout {
	if len(m.Layout.Pairs) == 0 {
		return connlayout.DefaultPairs()
	}
	pairs := make([]connlayout.Layout, 0, len(m.Layout.Pairs))
	for _, s := range m.Layout.Pairs {
		l, err := connlayout.ParseLayout(s)
		if err != nil {
			continue
		}
		pairs = append(pairs, l)
	}
	return pairs
}

// DisplayName returns the display name mapped to a node type, falling back
// to the type itself when the pack does not rename it.
func (m Manifest) DisplayName(nodeType string) string {
	for _, n := range m.Nodes {
		if n.Type == nodeType && n.Display != "" {
			return n.Display
		}
	}
	return nodeType
}
