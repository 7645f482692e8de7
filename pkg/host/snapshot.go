package host

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vsolon/graphext/pkg/errors"
)

// =============================================================================
// Snapshot - Host Document Serialization
// =============================================================================

// Snapshot is the host's serialized document format: every node with its
// geometry, slots, and persisted properties. The host owns this format and
// its persistence; extensions and the debug CLI only read nodes out of it
// and write configuration changes back into it.
type Snapshot struct {
	Nodes []NodeState `json:"nodes"`
}

// NodeState is one node as the host serializes it.
//
// ConnectionsLayout holds the node's connections-layout property in its
// serialized option form (e.g. "Left -> Right"); it is empty for nodes
// still on the default layout.
type NodeState struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Title   string  `json:"title,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Inputs  []Slot  `json:"inputs,omitempty"`
	Outputs []Slot  `json:"outputs,omitempty"`

	ConnectionsLayout string `json:"connections_layout,omitempty"`
}

// Rect returns the node's rectangle.
func (n *NodeState) Rect() Rect {
	return Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// Slots returns the node's connectors for the given direction.
func (n *NodeState) Slots(d Direction) []Slot {
	if d == Output {
		return n.Outputs
	}
	return n.Inputs
}

// SlotCount returns the number of connectors for the given direction.
func (n *NodeState) SlotCount(d Direction) int {
	return len(n.Slots(d))
}

// DisplayTitle returns the title if set, otherwise the type name.
func (n *NodeState) DisplayTitle() string {
	if n.Title != "" {
		return n.Title
	}
	return n.Type
}

// Node returns a pointer to the node with the given ID, or a NODE_NOT_FOUND
// error.
func (s *Snapshot) Node(id string) (*NodeState, error) {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return &s.Nodes[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeNodeNotFound, "no node with id %q", id)
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalSnapshot serializes a Snapshot to pretty-printed JSON bytes.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// UnmarshalSnapshot deserializes JSON bytes into a Snapshot and validates
// the document: node IDs must be present and unique.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, errors.Wrap(errors.ErrCodeInvalidSnapshot, err, "unmarshal snapshot")
	}

	seen := make(map[string]bool, len(s.Nodes))
	for i := range s.Nodes {
		id := s.Nodes[i].ID
		if id == "" {
			return Snapshot{}, errors.New(errors.ErrCodeInvalidSnapshot, "node %d has no id", i)
		}
		if seen[id] {
			return Snapshot{}, errors.New(errors.ErrCodeInvalidSnapshot, "duplicate node id %q", id)
		}
		seen[id] = true
	}

	return s, nil
}

// WriteSnapshotFile writes a Snapshot to a JSON file.
func WriteSnapshotFile(s Snapshot, path string) error {
	data, err := MarshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadSnapshotFile reads a Snapshot from a JSON file.
func ReadSnapshotFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalSnapshot(data)
}
