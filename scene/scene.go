// Package scene reads field trees and sampling domains from YAML documents.
//
// A document has an optional domain and a required field:
//
//	domain:
//	  p0: [-10, -10]
//	  p1: [10, 10]
//	  steps: [100, 50]
//	field:
//	  difference:
//	    - circle: {r: 5}
//	    - rectangle: {w: 15, h: 5}
//
// Every field node is a mapping with exactly one key naming its kind:
//
//	circle:       {r}
//	rectangle:    {w, h}
//	straight:     {}
//	line:         {l}
//	plane:        {}
//	translate:    {offset: [x, y], field}
//	rotate:       {angle, degrees: false, axis: [0, 0, 1], field}
//	scale:        {factor: [x, y], field}
//	matrix:       {m: [[a, b], [c, d]], field}
//	union:        [field, field, ...]
//	intersection: [field, field, ...]
//	difference:   [a, b]
//	not:          {field}
//	smooth:       {k, field}
//
// Keys other than the listed ones are rejected. degrees and axis are optional.
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/soypat/sdfield"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKind is returned for a field node of unrecognized kind.
	ErrUnknownKind = errors.New("unknown field kind")
	// ErrAmbiguousNode is returned when a field node does not name exactly one kind.
	ErrAmbiguousNode = errors.New("field node must name exactly one kind")
	// ErrBadArity is returned when a combinator has the wrong number of children.
	ErrBadArity = errors.New("wrong number of children")
	// ErrMissingKey is returned when a required parameter is absent.
	ErrMissingKey = errors.New("missing required key")
	// ErrUnknownKey is returned for parameters a field kind does not accept.
	ErrUnknownKey = errors.New("unknown key")
)

//go:embed demo.yaml
var demoYAML []byte

// Scene is a field together with the domain it is meant to be sampled over.
type Scene struct {
	Domain sdfield.Domain
	Field  sdfield.Field
}

// DefaultDomain is used by documents without a domain.
func DefaultDomain() sdfield.Domain {
	return sdfield.NewDomain2(-10, -10, 10, 10, 100, 50)
}

type document struct {
	Domain *domainDoc `yaml:"domain"`
	Field  yaml.Node  `yaml:"field"`
}

type domainDoc struct {
	P0    *vec2 `yaml:"p0"`
	P1    *vec2 `yaml:"p1"`
	Steps []int `yaml:"steps"`
}

// Parse decodes a single YAML document into a Scene.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scene document")
		}
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); err == nil {
		return nil, errors.New("multiple YAML documents are not supported")
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed after first YAML document: %w", err)
	}

	sc := &Scene{Domain: DefaultDomain()}
	if doc.Domain != nil {
		d, err := doc.Domain.domain()
		if err != nil {
			return nil, err
		}
		sc.Domain = d
	}
	if doc.Field.Kind == 0 {
		return nil, fmt.Errorf("field: %w", ErrMissingKey)
	}
	f, err := build(&doc.Field, "field")
	if err != nil {
		return nil, err
	}
	sc.Field = f
	return sc, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Demo returns the built-in demonstration scene.
func Demo() *Scene {
	sc, err := Parse(demoYAML)
	if err != nil {
		panic(err)
	}
	return sc
}

// DemoYAML returns the source of the demonstration scene.
func DemoYAML() []byte {
	return bytes.Clone(demoYAML)
}

func (d *domainDoc) domain() (sdfield.Domain, error) {
	switch {
	case d.P0 == nil || d.P1 == nil:
		return sdfield.Domain{}, fmt.Errorf("domain: p0 and p1: %w", ErrMissingKey)
	case d.Steps == nil:
		return sdfield.Domain{}, fmt.Errorf("domain.steps: %w", ErrMissingKey)
	case len(d.Steps) != 2:
		return sdfield.Domain{}, fmt.Errorf("domain.steps: want 2 components, got %d", len(d.Steps))
	}
	return sdfield.NewDomain2(d.P0.X, d.P0.Y, d.P1.X, d.P1.Y, d.Steps[0], d.Steps[1]), nil
}
