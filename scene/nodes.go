package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/soypat/sdfield"
	"github.com/soypat/sdfield/form2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// build returns the field described by node n found at path.
func build(n *yaml.Node, path string) (sdfield.Field, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, nodeErr(n, path, ErrAmbiguousNode)
	}
	kind, body := n.Content[0].Value, n.Content[1]
	path += "." + kind
	if body.Kind == yaml.AliasNode {
		body = body.Alias
	}
	switch kind {
	case "circle":
		var a struct {
			R float64 `yaml:"r"`
		}
		if err := params(body, path, &a, []string{"r"}); err != nil {
			return nil, err
		}
		return form2.Circle(a.R), nil

	case "rectangle":
		var a struct {
			W float64 `yaml:"w"`
			H float64 `yaml:"h"`
		}
		if err := params(body, path, &a, []string{"w", "h"}); err != nil {
			return nil, err
		}
		return form2.Rectangle(a.W, a.H), nil

	case "straight":
		if err := params(body, path, nil, nil); err != nil {
			return nil, err
		}
		return form2.Straight(), nil

	case "line":
		var a struct {
			L float64 `yaml:"l"`
		}
		if err := params(body, path, &a, []string{"l"}); err != nil {
			return nil, err
		}
		return form2.Line(a.L), nil

	case "plane":
		if err := params(body, path, nil, nil); err != nil {
			return nil, err
		}
		return form2.Plane(), nil

	case "translate":
		var a struct {
			Offset vec2      `yaml:"offset"`
			Field  yaml.Node `yaml:"field"`
		}
		if err := params(body, path, &a, []string{"offset", "field"}); err != nil {
			return nil, err
		}
		return unary(&a.Field, path, func(f sdfield.Field) (sdfield.Field, error) {
			return form2.Translate(f, r2.Vec(a.Offset))
		})

	case "rotate":
		a := struct {
			Angle   float64   `yaml:"angle"`
			Degrees bool      `yaml:"degrees"`
			Axis    vec3      `yaml:"axis"`
			Field   yaml.Node `yaml:"field"`
		}{Axis: vec3{Z: 1}}
		if err := params(body, path, &a, []string{"angle", "field"}, "degrees", "axis"); err != nil {
			return nil, err
		}
		angle := a.Angle
		if a.Degrees {
			angle = sdfield.DtoR(angle)
		}
		return unary(&a.Field, path, func(f sdfield.Field) (sdfield.Field, error) {
			return form2.Rotate(f, angle, r3.Vec(a.Axis))
		})

	case "scale":
		var a struct {
			Factor vec2      `yaml:"factor"`
			Field  yaml.Node `yaml:"field"`
		}
		if err := params(body, path, &a, []string{"factor", "field"}); err != nil {
			return nil, err
		}
		return unary(&a.Field, path, func(f sdfield.Field) (sdfield.Field, error) {
			return form2.Scale(f, r2.Vec(a.Factor))
		})

	case "matrix":
		var a struct {
			M     [][]float64 `yaml:"m"`
			Field yaml.Node   `yaml:"field"`
		}
		if err := params(body, path, &a, []string{"m", "field"}); err != nil {
			return nil, err
		}
		if len(a.M) != 2 || len(a.M[0]) != 2 || len(a.M[1]) != 2 {
			return nil, nodeErr(body, path+".m", errors.New("want a 2x2 matrix"))
		}
		m := sdfield.Mat2{{a.M[0][0], a.M[0][1]}, {a.M[1][0], a.M[1][1]}}
		return unary(&a.Field, path, func(f sdfield.Field) (sdfield.Field, error) {
			return form2.Matrix(f, m)
		})

	case "not":
		var a struct {
			Field yaml.Node `yaml:"field"`
		}
		if err := params(body, path, &a, []string{"field"}); err != nil {
			return nil, err
		}
		return unary(&a.Field, path, form2.Not)

	case "smooth":
		var a struct {
			K     float64   `yaml:"k"`
			Field yaml.Node `yaml:"field"`
		}
		if err := params(body, path, &a, []string{"k", "field"}); err != nil {
			return nil, err
		}
		return unary(&a.Field, path, func(f sdfield.Field) (sdfield.Field, error) {
			return form2.Smooth(f, a.K)
		})

	case "union":
		children, err := list(body, path, 2, -1)
		if err != nil {
			return nil, err
		}
		return wrapErr(body, path)(form2.Union(children...))

	case "intersection":
		children, err := list(body, path, 2, -1)
		if err != nil {
			return nil, err
		}
		return wrapErr(body, path)(form2.Intersection(children...))

	case "difference":
		children, err := list(body, path, 2, 2)
		if err != nil {
			return nil, err
		}
		return wrapErr(body, path)(form2.Difference(children[0], children[1]))
	}
	return nil, nodeErr(n.Content[0], path, fmt.Errorf("%w %q", ErrUnknownKind, kind))
}

// params checks that body is a mapping holding all required keys, possibly
// some optional keys and nothing else, then decodes it into v.
// A nil or empty body is accepted when no keys are required.
func params(body *yaml.Node, path string, v any, required []string, optional ...string) error {
	if body.Kind == yaml.ScalarNode && body.ShortTag() == "!!null" {
		if len(required) > 0 {
			return nodeErr(body, path, fmt.Errorf("%w %q", ErrMissingKey, required[0]))
		}
		return nil
	}
	if body.Kind != yaml.MappingNode {
		return nodeErr(body, path, errors.New("want a mapping of parameters"))
	}
	seen := make([]string, 0, len(body.Content)/2)
	for i := 0; i < len(body.Content); i += 2 {
		key := body.Content[i]
		switch {
		case !slices.Contains(required, key.Value) && !slices.Contains(optional, key.Value):
			return nodeErr(key, path, fmt.Errorf("%w %q", ErrUnknownKey, key.Value))
		case slices.Contains(seen, key.Value):
			return nodeErr(key, path, fmt.Errorf("duplicate key %q", key.Value))
		}
		seen = append(seen, key.Value)
	}
	for _, key := range required {
		if !slices.Contains(seen, key) {
			return nodeErr(body, path, fmt.Errorf("%w %q", ErrMissingKey, key))
		}
	}
	if v == nil {
		return nil
	}
	if err := body.Decode(v); err != nil {
		return nodeErr(body, path, err)
	}
	return nil
}

// unary builds the child node and applies op to it.
func unary(child *yaml.Node, path string, op func(sdfield.Field) (sdfield.Field, error)) (sdfield.Field, error) {
	f, err := build(child, path+".field")
	if err != nil {
		return nil, err
	}
	return wrapErr(child, path)(op(f))
}

// list builds the children of a sequence node. hi < 0 means no upper bound.
func list(body *yaml.Node, path string, lo, hi int) ([]sdfield.Field, error) {
	if body.Kind != yaml.SequenceNode {
		return nil, nodeErr(body, path, errors.New("want a sequence of fields"))
	}
	n := len(body.Content)
	if n < lo || (hi >= 0 && n > hi) {
		want := fmt.Sprintf("at least %d", lo)
		if lo == hi {
			want = fmt.Sprint(lo)
		}
		return nil, nodeErr(body, path, fmt.Errorf("%w: got %d, want %s", ErrBadArity, n, want))
	}
	children := make([]sdfield.Field, n)
	for i, c := range body.Content {
		f, err := build(c, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children[i] = f
	}
	return children, nil
}

func wrapErr(n *yaml.Node, path string) func(sdfield.Field, error) (sdfield.Field, error) {
	return func(f sdfield.Field, err error) (sdfield.Field, error) {
		if err != nil {
			return nil, nodeErr(n, path, err)
		}
		return f, nil
	}
}

func nodeErr(n *yaml.Node, path string, err error) error {
	return fmt.Errorf("%s (line %d): %w", path, n.Line, err)
}

type vec2 r2.Vec

func (v *vec2) UnmarshalYAML(n *yaml.Node) error {
	var xy []float64
	if err := n.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: want 2 components, got %d", n.Line, len(xy))
	}
	*v = vec2{X: xy[0], Y: xy[1]}
	return nil
}

type vec3 r3.Vec

func (v *vec3) UnmarshalYAML(n *yaml.Node) error {
	var xyz []float64
	if err := n.Decode(&xyz); err != nil {
		return err
	}
	if len(xyz) != 3 {
		return fmt.Errorf("line %d: want 3 components, got %d", n.Line, len(xyz))
	}
	*v = vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	return nil
}
