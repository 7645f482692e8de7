package cli

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/vsolon/graphext/pkg/errors"
	"github.com/vsolon/graphext/pkg/host"
)

// writeTestSnapshot writes a two-node snapshot to a temp file: node 1 on the
// default layout, node 2 with a stored pair.
func writeTestSnapshot(t *testing.T) string {
	t.Helper()

	snap := host.Snapshot{Nodes: []host.NodeState{
		{
			ID: "1", Type: "CBZUnpacker",
			X: 100, Y: 100, Width: 200, Height: 80,
			Inputs:  []host.Slot{{Name: "archive_path"}, {Name: "output_dir"}},
			Outputs: []host.Slot{{Name: "image_paths"}},
		},
		{
			ID: "2", Type: "CBZPathDisplay",
			X: 360, Y: 120, Width: 240, Height: 120,
			Inputs:            []host.Slot{{Name: "paths"}},
			ConnectionsLayout: "Right -> Left",
		},
	}}

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := host.WriteSnapshotFile(snap, path); err != nil {
		t.Fatalf("WriteSnapshotFile: %v", err)
	}
	return path
}

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestAnchorRows(t *testing.T) {
	c := testCLI()
	anchor, err := c.anchorResolver()
	if err != nil {
		t.Fatalf("anchorResolver: %v", err)
	}

	snap, err := host.ReadSnapshotFile(writeTestSnapshot(t))
	if err != nil {
		t.Fatalf("ReadSnapshotFile: %v", err)
	}

	rows, count := anchorRows(snap.Nodes, anchor)
	if count != 4 {
		t.Fatalf("count = %d, want 4", count)
	}
	if len(rows) != count {
		t.Fatalf("len(rows) = %d, want %d", len(rows), count)
	}

	// Columns: node, dir, slot, name, x, y, layout.
	tests := []struct {
		name string
		row  int
		want []string
	}{
		{name: "node 1 first input", row: 0, want: []string{"1", "input", "0", "archive_path", "100.0", "120.0", "default"}},
		{name: "node 1 second input", row: 1, want: []string{"1", "input", "1", "output_dir", "100.0", "160.0", "default"}},
		{name: "node 1 output", row: 2, want: []string{"1", "output", "0", "image_paths", "300.0", "140.0", "default"}},
		{name: "node 2 input on right edge", row: 3, want: []string{"2", "input", "0", "paths", "600.0", "180.0", "Right -> Left"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rows[tt.row]
			if len(got) != len(tt.want) {
				t.Fatalf("row %d = %v, want %v", tt.row, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("row %d col %d = %q, want %q", tt.row, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAnchorsCommand(t *testing.T) {
	path := writeTestSnapshot(t)

	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		wantCode errors.Code
	}{
		{name: "all nodes", args: []string{path}},
		{name: "single node", args: []string{path, "--node", "2"}},
		{name: "unknown node", args: []string{path, "--node", "9"}, wantErr: true, wantCode: errors.ErrCodeNodeNotFound},
		{name: "missing file", args: []string{filepath.Join(t.TempDir(), "absent.json")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := testCLI().anchorsCommand()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Execute() = nil, want error")
				}
				if tt.wantCode != "" {
					if code := errors.GetCode(err); code != tt.wantCode {
						t.Errorf("error code = %v, want %v", code, tt.wantCode)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute(): %v", err)
			}
		})
	}
}
