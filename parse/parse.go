// Package parse decodes YAML and JSON documents into the ir form.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/opsel/opsel/ir"

	"github.com/goccy/go-yaml"
)

// Parse decodes d into a node.  The input format defaults to YAML,
// which also accepts JSON input; use ParseFormat to require JSON.
//
// Object keys in the result are sorted, so parsing normalizes field
// order.  Callers must not rely on source ordering surviving a round
// trip.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	ps := &parseState{}
	for _, opt := range opts {
		opt(ps)
	}
	var v any
	if ps.format.IsJSON() {
		dec := json.NewDecoder(bytes.NewReader(d))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
		}
	} else {
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
		}
	}
	y, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrParse, err)
	}
	return y, nil
}
