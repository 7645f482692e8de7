// Package cli implements the graphext command-line interface.
//
// This package provides commands for inspecting node-editor snapshots,
// applying connection-layout configuration to nodes, and validating pack
// manifests. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - anchors: Resolve and print connection anchor positions from a snapshot
//   - configure: Apply a connections layout to a node in a snapshot
//   - pack: Validate a pack manifest and show what it registers
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vsolon/graphext/pkg/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "graphext",
		Short:        "Graphext inspects and configures node-editor extension packs",
		Long:         `Graphext is a developer tool for node-editor extension packs: it resolves connection anchor positions from editor snapshots, applies connections-layout configuration to nodes, and validates pack manifests.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.anchorsCommand())
	root.AddCommand(c.configureCommand())
	root.AddCommand(c.packCommand())
	root.AddCommand(c.completionCommand())

	return root
}
