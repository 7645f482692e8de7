package connlayout

import (
	"strings"

	"github.com/vsolon/graphext/pkg/errors"
	"github.com/vsolon/graphext/pkg/host"
)

// separator joins the two sides of a layout in its canonical string form.
const separator = " -> "

// Layout names the side of a node where input anchors appear and the side
// where output anchors appear. The zero value is not meaningful; use
// [DefaultLayout] for the stock horizontal arrangement.
type Layout struct {
	Input  Side
	Output Side
}

// DefaultLayout returns the conventional arrangement: inputs on the left
// edge, outputs on the right.
func DefaultLayout() Layout {
	return Layout{Input: Left, Output: Right}
}

// Side returns the layout's side for the given slot direction.
func (l Layout) Side(d host.Direction) Side {
	if d == host.Output {
		return l.Output
	}
	return l.Input
}

// String renders the layout in its canonical pair form, e.g. "Left -> Right".
// This is the format stored in snapshots and shown in menus.
func (l Layout) String() string {
	return l.Input.String() + separator + l.Output.String()
}

// ParseLayout parses a canonical pair string such as "Left -> Right" produced
// by [Layout.String]. Both sides must be present and recognized; surrounding
// whitespace around either label is ignored.
func ParseLayout(s string) (Layout, error) {
	in, out, found := strings.Cut(s, "->")
	if !found {
		return Layout{}, errors.New(errors.ErrCodeInvalidLayout, "layout %q is not a %q pair", s, "In -> Out")
	}
	input, err := ParseSide(strings.TrimSpace(in))
	if err != nil {
		return Layout{}, err
	}
	output, err := ParseSide(strings.TrimSpace(out))
	if err != nil {
		return Layout{}, err
	}
	return Layout{Input: input, Output: output}, nil
}

// ResolveOption interprets a menu option string as a layout. Options carry
// either a full pair ("Left -> Right") or a single input side ("Left"). The
// single-side form is only allowed when the node has no output slots; the
// output side is then filled in with the opposite of the input side so that
// stored layouts are always complete pairs.
func ResolveOption(option string, hasOutputs bool) (Layout, error) {
	in, out, found := strings.Cut(option, "->")
	input, err := ParseSide(strings.TrimSpace(in))
	if err != nil {
		return Layout{}, err
	}
	if !found {
		if hasOutputs {
			return Layout{}, errors.New(errors.ErrCodeInvalidLayout, "option %q names no output side, but the node has outputs", option)
		}
		return Layout{Input: input, Output: input.Opposite()}, nil
	}
	output, err := ParseSide(strings.TrimSpace(out))
	if err != nil {
		return Layout{}, err
	}
	return Layout{Input: input, Output: output}, nil
}

// DefaultPairs returns the layout pairs offered in the connections menu when
// a pack does not override them: the two horizontal arrangements.
func DefaultPairs() []Layout {
	return []Layout{
		{Input: Left, Output: Right},
		{Input: Right, Output: Left},
	}
}

// Options renders layout pairs into their menu option strings, preserving
// order.
func Options(pairs []Layout) []string {
	opts := make([]string, len(pairs))
	for i, p := range pairs {
		opts[i] = p.String()
	}
	return opts
}
