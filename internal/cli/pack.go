package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vsolon/graphext/pkg/connlayout"
	"github.com/vsolon/graphext/pkg/ext"
)

// packCommand creates the pack command for validating a pack manifest.
func (c *CLI) packCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <pack.toml>",
		Short: "Validate a pack manifest and show what it registers",
		Long: `Validate a pack manifest and print the pack identity, its node
display-name mappings, and the connections-layout menu options the pack
offers.

The command also assembles the pack's extension registry, so registration
problems surface here instead of inside the editor.`,
		Example: `  graphext pack pack.toml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ext.LoadManifest(args[0])
			if err != nil {
				return err
			}

			reg, err := ext.NewPack(m, c.Logger)
			if err != nil {
				return err
			}

			printSuccess("Manifest valid")
			printKeyValue("Pack", m.Pack.Name)
			if m.Pack.Version != "" {
				printKeyValue("Version", m.Pack.Version)
			}
			printKeyValue("Widget", m.Display.Widget)
			printKeyValue("Placeholder", m.Display.Placeholder)
			if len(m.Display.Types) > 0 {
				printKeyValue("Displays", strings.Join(m.Display.Types, ", "))
			}
			printKeyValue("Menu", strings.Join(connlayout.Options(m.LayoutPairs()), ", "))

			names := make([]string, 0, len(reg.Extensions()))
			for _, e := range reg.Extensions() {
				names = append(names, e.Name())
			}
			printInfo("%d extensions registered: %s", len(names), strings.Join(names, ", "))

			if len(m.Nodes) > 0 {
				printNewline()
				fmt.Println(renderNodeTable(m))
			}

			return nil
		},
	}

	return cmd
}

// renderNodeTable renders the manifest's node display mappings.
func renderNodeTable(m ext.Manifest) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(m.Nodes))
	for _, n := range m.Nodes {
		rows = append(rows, []string{n.Type, m.DisplayName(n.Type), n.Category})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "Display", "Category").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleHighlight
			}
			return StyleValue
		})

	return t.Render()
}
