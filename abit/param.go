package abit

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Param is one input or output in a JSON ABI descriptor.
// Components is set when Type's base type is tuple and
// holds one Param per tuple field, in declaration order.
// Indexed is event-log metadata carried through untouched.
type Param struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Components []Param `json:"components,omitempty"`
	Indexed    bool    `json:"indexed,omitempty"`
}

// ParseParam decodes one JSON descriptor. It does not
// resolve the type; call [Param.Resolve] for that.
func ParseParam(b []byte) (Param, error) {
	var p Param
	if err := json.Unmarshal(b, &p); err != nil {
		return Param{}, fmt.Errorf("unable to json decode param: %w", err)
	}
	return p, nil
}

// Resolve builds the [Type] described by p, recursing
// through Components for tuple fields. A failure anywhere
// in the descriptor fails the whole resolution. Failures
// below the top level are wrapped in [ErrComponent] with
// the path of component names; the inner kind still
// matches with [errors.Is].
func (p Param) Resolve() (Type, error) {
	var fields []Field
	for i := range p.Components {
		c := &p.Components[i]
		t, err := c.Resolve()
		if err != nil {
			return Type{}, fmt.Errorf("%w %q: %w", ErrComponent, c.Name, err)
		}
		fields = append(fields, Field{Name: c.Name, Type: t})
	}
	return Resolve(p.Type, fields...)
}

// Signature returns the canonical signature of p without
// resolving it. The result for a malformed descriptor is
// unspecified; use [Param.Resolve] to validate.
func (p Param) Signature() string {
	if !strings.HasPrefix(p.Type, "tuple") {
		return p.Type
	}
	var s strings.Builder
	s.WriteString("(")
	for i := range p.Components {
		s.WriteString(p.Components[i].Signature())
		if i+1 < len(p.Components) {
			s.WriteString(",")
		}
	}
	s.WriteString(")")
	return strings.Replace(p.Type, "tuple", s.String(), 1)
}
