package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vsolon/graphext/pkg/connlayout"
	"github.com/vsolon/graphext/pkg/ext"
	"github.com/vsolon/graphext/pkg/host"
)

// configureCommand creates the configure command for applying a connections
// layout to a snapshot node.
func (c *CLI) configureCommand() *cobra.Command {
	var (
		nodeID   string
		layout   string
		pick     bool
		output   string
		manifest string
	)

	cmd := &cobra.Command{
		Use:   "configure <snapshot.json>",
		Short: "Apply a connections layout to a node in a snapshot",
		Long: `Apply a connections layout option to one node in an editor snapshot and
write the document back.

The option uses the menu form: "Left -> Right" names the input and output
sides. A single side such as "Left" is accepted for nodes without outputs;
the output side is filled in with the opposite. Use --pick to choose
interactively from the menu options.`,
		Example: `  # Set a pair directly
  graphext configure graph.json --node 2 --layout "Right -> Left"

  # Pick from a pack's menu options
  graphext configure graph.json --node 2 --pick --manifest pack.toml

  # Write to a new file instead of overwriting
  graphext configure graph.json --node 2 --layout "Top -> Bottom" -o out.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := host.ReadSnapshotFile(args[0])
			if err != nil {
				return err
			}
			state, err := snap.Node(nodeID)
			if err != nil {
				return err
			}

			option := layout
			if pick {
				option, err = c.pickLayout(manifest)
				if err != nil {
					return err
				}
				if option == "" {
					printWarning("No layout selected")
					return nil
				}
			}
			if option == "" {
				return fmt.Errorf("provide --layout or --pick")
			}

			applied, err := connlayout.Configure(newSnapshotNode(state), option)
			if err != nil {
				return err
			}

			out := output
			if out == "" {
				out = args[0]
			}
			if err := host.WriteSnapshotFile(snap, out); err != nil {
				return err
			}

			printSuccess("Configured node %s", nodeID)
			printKeyValue("Layout", applied.String())
			printFile(out)
			printNewline()

			anchor, err := c.anchorResolver()
			if err != nil {
				return err
			}
			rows, _ := anchorRows([]host.NodeState{*state}, anchor)
			fmt.Println(renderAnchorTable(rows))

			return nil
		},
	}

	cmd.Flags().StringVar(&nodeID, "node", "", "node id to configure (required)")
	cmd.Flags().StringVarP(&layout, "layout", "l", "", `layout option, e.g. "Right -> Left"`)
	cmd.Flags().BoolVar(&pick, "pick", false, "pick the layout interactively")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	cmd.Flags().StringVar(&manifest, "manifest", "", "pack manifest supplying the menu options")
	_ = cmd.MarkFlagRequired("node")

	return cmd
}

// pickLayout runs the interactive layout picker and returns the chosen
// option, or "" when the user quit without selecting.
func (c *CLI) pickLayout(manifestPath string) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("--pick needs an interactive terminal; use --layout instead")
	}

	pairs := connlayout.DefaultPairs()
	if manifestPath != "" {
		m, err := ext.LoadManifest(manifestPath)
		if err != nil {
			return "", err
		}
		pairs = m.LayoutPairs()
	}

	finalModel, err := tea.NewProgram(newLayoutPicker(connlayout.Options(pairs))).Run()
	if err != nil {
		return "", fmt.Errorf("picker: %w", err)
	}
	picker, ok := finalModel.(LayoutPickerModel)
	if !ok {
		return "", fmt.Errorf("picker returned unexpected model")
	}
	return picker.Selected, nil
}
