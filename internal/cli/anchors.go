package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vsolon/graphext/pkg/connlayout"
	"github.com/vsolon/graphext/pkg/ext"
	"github.com/vsolon/graphext/pkg/host"
)

// anchorsCommand creates the anchors command for resolving connection
// positions from a snapshot.
func (c *CLI) anchorsCommand() *cobra.Command {
	var nodeID string

	cmd := &cobra.Command{
		Use:   "anchors <snapshot.json>",
		Short: "Resolve connection anchor positions from a snapshot (debug tool)",
		Long: `Resolve and print the connection anchor position of every slot in an
editor snapshot, using the same layout resolution the editor runs.

Nodes without a stored connections layout resolve with the default
arrangement (inputs on the left edge, outputs on the right).`,
		Example: `  # Anchors of every node
  graphext anchors graph.json

  # Anchors of a single node
  graphext anchors graph.json --node 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := host.ReadSnapshotFile(args[0])
			if err != nil {
				return err
			}

			nodes := snap.Nodes
			if nodeID != "" {
				n, err := snap.Node(nodeID)
				if err != nil {
					return err
				}
				nodes = []host.NodeState{*n}
			}

			prog := newProgress(c.Logger)
			anchor, err := c.anchorResolver()
			if err != nil {
				return err
			}

			rows, count := anchorRows(nodes, anchor)
			fmt.Println(renderAnchorTable(rows))
			printDetail("%d nodes · %d anchors", len(nodes), count)
			prog.done(fmt.Sprintf("Resolved %d anchors", count))

			return nil
		},
	}

	cmd.Flags().StringVar(&nodeID, "node", "", "limit output to one node id")

	return cmd
}

// anchorResolver assembles the resolver chain the editor would install: the
// connections-layout extension over the stock anchors.
func (c *CLI) anchorResolver() (host.AnchorFunc, error) {
	reg := ext.NewRegistry(c.Logger)
	if err := reg.Register(connlayout.NewExtension(nil)); err != nil {
		return nil, err
	}
	return reg.AnchorFunc(nil), nil
}

// anchorRows resolves every slot of the given nodes into table rows and
// returns the rows with the anchor count.
func anchorRows(nodes []host.NodeState, anchor host.AnchorFunc) ([][]string, int) {
	var rows [][]string
	count := 0

	for i := range nodes {
		node := newSnapshotNode(&nodes[i])
		layout := "default"
		if l, ok := node.ConnectionsLayout(); ok {
			layout = l.String()
		}
		for _, d := range []host.Direction{host.Input, host.Output} {
			for slot, s := range nodes[i].Slots(d) {
				p := anchor(node, d, slot)
				rows = append(rows, []string{
					nodes[i].ID,
					d.String(),
					strconv.Itoa(slot),
					s.Name,
					formatCoord(p.X),
					formatCoord(p.Y),
					layout,
				})
				count++
			}
		}
	}

	return rows, count
}

// renderAnchorTable renders anchor rows as a bordered table.
func renderAnchorTable(rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "Dir", "Slot", "Name", "X", "Y", "Layout").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 4, 5:
				return StyleNumber
			case 6:
				return StyleHighlight
			}
			return StyleValue
		})

	return t.Render()
}

// formatCoord formats a canvas coordinate with one decimal.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
