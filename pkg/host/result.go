package host

import "github.com/google/uuid"

// ExecutionResult is the message the host delivers to extensions when a
// node's backend computation finishes. It carries the UI payload the
// backend attached to the run: named fields, each a list of strings.
//
// The field layout mirrors the host's execution protocol, where a display
// payload such as {"text": ["line one", "line two"]} accumulates one entry
// per backend emit.
type ExecutionResult struct {
	// Run identifies the graph execution that produced this result. The
	// host assigns one Run ID per execution and tags every node's result
	// with it.
	Run uuid.UUID `json:"run"`

	// NodeID is the node the result belongs to.
	NodeID string `json:"node_id"`

	// Fields holds the named UI payload lists. Absent fields mean the
	// backend attached no payload under that name.
	Fields map[string][]string `json:"fields,omitempty"`
}

// First returns the first element of the named field. It returns ok=false
// when the field is absent or empty.
func (r ExecutionResult) First(field string) (string, bool) {
	vs, ok := r.Fields[field]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
