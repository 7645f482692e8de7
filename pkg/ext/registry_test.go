package ext

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vsolon/graphext/pkg/connlayout"
	"github.com/vsolon/graphext/pkg/errors"
	"github.com/vsolon/graphext/pkg/host"
	"github.com/vsolon/graphext/pkg/host/hosttest"
)

// recorder is a test extension that records dispatches and optionally fails.
type recorder struct {
	name    string
	only    string // node type filter; empty matches all
	created []string
	runs    []uuid.UUID
	fail    error
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) AppliesTo(nodeType string) bool {
	return r.only == "" || r.only == nodeType
}

func (r *recorder) NodeCreated(n host.Node) error {
	r.created = append(r.created, n.ID())
	return r.fail
}

func (r *recorder) NodeExecuted(n host.Node, result host.ExecutionResult) error {
	r.runs = append(r.runs, result.Run)
	return r.fail
}

// menuOnly contributes a single fixed menu entry.
type menuOnly struct {
	name  string
	title string
}

func (m *menuOnly) Name() string          { return m.name }
func (m *menuOnly) AppliesTo(string) bool { return true }

func (m *menuOnly) NodeMenu(host.Node) []host.MenuEntry {
	return []host.MenuEntry{{Title: m.title}}
}

// fixedAnchor resolves every node to one point, or passes through to prev.
type fixedAnchor struct {
	name        string
	only        string
	point       host.Point
	passthrough bool
}

func (f *fixedAnchor) Name() string { return f.name }

func (f *fixedAnchor) AppliesTo(nodeType string) bool {
	return f.only == "" || f.only == nodeType
}

func (f *fixedAnchor) ResolveAnchor(n host.Node, d host.Direction, slot int, prev host.AnchorFunc) host.Point {
	if f.passthrough {
		return prev(n, d, slot)
	}
	return f.point
}

func testRegistry() *Registry {
	return NewRegistry(log.New(io.Discard))
}

func TestRegisterDuplicate(t *testing.T) {
	reg := testRegistry()

	if err := reg.Register(&recorder{name: "one"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	err := reg.Register(&recorder{name: "one"})
	if err == nil {
		t.Fatal("duplicate Register succeeded, want error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeExtensionExists {
		t.Errorf("error code = %v, want %v", code, errors.ErrCodeExtensionExists)
	}
}

func TestRegisterEmptyName(t *testing.T) {
	reg := testRegistry()
	if err := reg.Register(&recorder{}); err == nil {
		t.Fatal("Register with empty name succeeded, want error")
	}
}

func TestExtensionsOrder(t *testing.T) {
	reg := testRegistry()
	for _, name := range []string{"a", "b", "c"} {
		if err := reg.Register(&recorder{name: name}); err != nil {
			t.Fatalf("Register(%q): %v", name, err)
		}
	}

	exts := reg.Extensions()
	want := []string{"a", "b", "c"}
	if len(exts) != len(want) {
		t.Fatalf("len(Extensions) = %d, want %d", len(exts), len(want))
	}
	for i, e := range exts {
		if e.Name() != want[i] {
			t.Errorf("Extensions[%d] = %q, want %q", i, e.Name(), want[i])
		}
	}
}

func TestNodeCreatedDispatch(t *testing.T) {
	reg := testRegistry()
	all := &recorder{name: "all"}
	displays := &recorder{name: "displays", only: "PathListDisplay"}
	failing := &recorder{name: "failing", fail: errors.New(errors.ErrCodeInternal, "boom")}
	late := &recorder{name: "late"}

	for _, e := range []*recorder{all, displays, failing, late} {
		if err := reg.Register(e); err != nil {
			t.Fatalf("Register(%q): %v", e.Name(), err)
		}
	}

	n := hosttest.NewNode("n1", "math/add", host.Rect{Width: 10, Height: 10})
	reg.NodeCreated(n)

	if len(all.created) != 1 || all.created[0] != "n1" {
		t.Errorf("all.created = %v, want [n1]", all.created)
	}
	if len(displays.created) != 0 {
		t.Errorf("displays.created = %v, want none for non-display node", displays.created)
	}
	// The failing handler does not stop later ones.
	if len(late.created) != 1 {
		t.Errorf("late.created = %v, want [n1]", late.created)
	}
}

func TestNodeExecutedDispatch(t *testing.T) {
	reg := testRegistry()
	rec := &recorder{name: "rec"}
	if err := reg.Register(rec); err != nil {
		t.Fatalf("Register: %v", err)
	}

	n := hosttest.NewNode("n1", "PathListDisplay", host.Rect{Width: 10, Height: 10})
	run := uuid.New()
	reg.NodeExecuted(n, host.ExecutionResult{Run: run, NodeID: "n1"})

	if len(rec.runs) != 1 || rec.runs[0] != run {
		t.Errorf("runs = %v, want [%v]", rec.runs, run)
	}
}

func TestNodeMenuAggregation(t *testing.T) {
	reg := testRegistry()
	if err := reg.Register(&menuOnly{name: "first", title: "First"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(&menuOnly{name: "second", title: "Second"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	n := hosttest.NewNode("n1", "t", host.Rect{})
	entries := reg.NodeMenu(n)
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Title != "First" || entries[1].Title != "Second" {
		t.Errorf("entries = [%q, %q], want registration order", entries[0].Title, entries[1].Title)
	}
}

func TestAnchorFuncChain(t *testing.T) {
	reg := testRegistry()
	base := func(n host.Node, d host.Direction, slot int) host.Point {
		return host.Point{X: -1, Y: -1}
	}

	inner := &fixedAnchor{name: "inner", point: host.Point{X: 1, Y: 1}}
	outer := &fixedAnchor{name: "outer", passthrough: true}
	if err := reg.Register(inner); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register(outer); err != nil {
		t.Fatalf("Register: %v", err)
	}

	n := hosttest.NewNode("n1", "t", host.Rect{Width: 10, Height: 10})

	// outer registered last, so it runs first; it defers to inner.
	got := reg.AnchorFunc(base)(n, host.Input, 0)
	if got != (host.Point{X: 1, Y: 1}) {
		t.Errorf("anchor = %v, want inner's point (1, 1)", got)
	}
}

func TestAnchorFuncFiltersByType(t *testing.T) {
	reg := testRegistry()
	base := func(n host.Node, d host.Direction, slot int) host.Point {
		return host.Point{X: -1, Y: -1}
	}

	only := &fixedAnchor{name: "only", only: "special", point: host.Point{X: 5, Y: 5}}
	if err := reg.Register(only); err != nil {
		t.Fatalf("Register: %v", err)
	}

	f := reg.AnchorFunc(base)

	special := hosttest.NewNode("s", "special", host.Rect{Width: 10, Height: 10})
	if got := f(special, host.Input, 0); got != (host.Point{X: 5, Y: 5}) {
		t.Errorf("special anchor = %v, want (5, 5)", got)
	}

	other := hosttest.NewNode("o", "other", host.Rect{Width: 10, Height: 10})
	if got := f(other, host.Input, 0); got != (host.Point{X: -1, Y: -1}) {
		t.Errorf("other anchor = %v, want base result", got)
	}
}

func TestAnchorFuncNilBase(t *testing.T) {
	reg := testRegistry()

	n := hosttest.NewNode("n1", "t", host.Rect{X: 0, Y: 0, Width: 100, Height: 100})
	n.Inputs = hosttest.Slots(2)

	got := reg.AnchorFunc(nil)(n, host.Input, 0)
	if got != (host.Point{X: 0, Y: 25}) {
		t.Errorf("anchor = %v, want stock left-edge (0, 25)", got)
	}
}

func TestAnchorFuncWithLayoutExtension(t *testing.T) {
	reg := testRegistry()
	if err := reg.Register(connlayout.NewExtension(nil)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	n := hosttest.NewNode("n1", "t", host.Rect{X: 100, Y: 100, Width: 200, Height: 80})
	n.Inputs = hosttest.Slots(2)
	n.Outputs = hosttest.Slots(1)
	n.SetConnectionsLayout(connlayout.Layout{Input: connlayout.Right, Output: connlayout.Left})

	f := reg.AnchorFunc(nil)
	if got := f(n, host.Input, 0); got != (host.Point{X: 300, Y: 120}) {
		t.Errorf("input anchor = %v, want (300, 120)", got)
	}
	if got := f(n, host.Output, 0); got != (host.Point{X: 100, Y: 140}) {
		t.Errorf("output anchor = %v, want (100, 140)", got)
	}
}
