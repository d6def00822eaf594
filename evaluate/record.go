// SPDX-License-Identifier: MIT

package evaluate

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gbparams/boundary"
	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/symmetry"
)

// Request describes one boundary to classify.
//
// The misorientation comes from Boundary when it is set; otherwise it is
// built from the Euler angles of the two grains and the sample-frame Normal.
type Request struct {
	ID         string
	Left       rotation.Euler
	Right      rotation.Euler
	Normal     rotation.Vector
	Boundary   *boundary.Boundary
	PointGroup symmetry.PointGroup
	PhaseID    int
	Area       float64
	Faces      int
}

// Value is one field of a record. Text is set for labels only.
type Value struct {
	Field  Field
	Number float64
	Text   string
}

// String renders the value as it appears in tabular output.
func (v Value) String() string {
	if v.Text != "" {
		return v.Text
	}
	if fieldTable[v.Field].digits < 0 {
		return strconv.FormatInt(int64(v.Number), 10)
	}

	return strconv.FormatFloat(v.Number, 'f', -1, 64)
}

// Record is the flattened result for the request at Index.
type Record struct {
	ID     string
	Index  int
	Values []Value
	Err    error
}

// Strings renders the values in field order.
func (r Record) Strings() []string {
	out := make([]string, len(r.Values))
	for i, v := range r.Values {
		out[i] = v.String()
	}

	return out
}

// Get returns the value of f and whether it is present.
func (r Record) Get(f Field) (Value, bool) {
	for _, v := range r.Values {
		if v.Field == f {
			return v, true
		}
	}

	return Value{}, false
}

// MarshalYAML encodes the record as a mapping whose keys keep field order.
func (r Record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	add := func(k, v, tag string) {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v},
		)
	}
	if r.ID != "" {
		add("id", r.ID, "!!str")
	}
	if r.Err != nil {
		add("error", r.Err.Error(), "!!str")

		return node, nil
	}
	for _, v := range r.Values {
		// Numbers stay untagged so they resolve implicitly.
		tag := ""
		if v.Text != "" {
			tag = "!!str"
		}
		add(v.Field.String(), v.String(), tag)
	}

	return node, nil
}
