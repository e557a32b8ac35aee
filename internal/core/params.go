package core

import (
	"fmt"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form text parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value reported by a grid.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the values a grid reports to its host.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Parameters reports the grid's dimensions, population and output target.
func (g *Grid) Parameters() ParameterSnapshot {
	intParam := func(key, label string, v int, desc string) Parameter {
		return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v), Description: desc}
	}
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name:    "Grid",
			Summary: fmt.Sprintf("%dx%d row-major", g.width, g.height),
			Params: []Parameter{
				intParam("width", "Width", int(g.width), "Columns in the grid"),
				intParam("height", "Height", int(g.height), "Rows in the grid"),
				intParam("alive", "Alive", g.Cells().Alive(), "Cells in the alive state"),
			},
		},
		{
			Name:    "Output",
			Summary: fmt.Sprintf("publishes into %q", g.container),
			Params: []Parameter{
				{Key: "container", Label: "Container", Type: ParamTypeString, Value: g.container, Description: "Host container publish targets"},
			},
		},
	}}
}
