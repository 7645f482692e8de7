package ext

import (
	"github.com/charmbracelet/log"

	"github.com/vsolon/graphext/pkg/connlayout"
	"github.com/vsolon/graphext/pkg/textpanel"
)

// NewPack assembles the registry for a pack manifest: the connections-layout
// extension configured with the manifest's menu pairs, and the text panel
// extension for the manifest's display types. If logger is nil, the default
// logger is used.
func NewPack(m Manifest, logger *log.Logger) (*Registry, error) {
	reg := NewRegistry(logger)

	if err := reg.Register(connlayout.NewExtension(m.LayoutPairs())); err != nil {
		return nil, err
	}

	panel := textpanel.New(textpanel.Config{
		Types:       m.Display.Types,
		WidgetName:  m.Display.Widget,
		Placeholder: m.Display.Placeholder,
	})
	if err := reg.Register(panel); err != nil {
		return nil, err
	}

	return reg, nil
}
