// Package scene decodes widget trees from YAML documents.
//
// A document is a single node. Every node has a type and the fields of
// that widget; layouts nest nodes under child or children:
//
//	type: row
//	main_axis_alignment: space_evenly
//	main_axis_size: max
//	cross_axis_alignment: end
//	children:
//	  - {type: label, value: "Hello world!"}
//	  - {type: text, value: "Nice!", color: "#ff0000", hard_wrap: false}
//	  - {type: container, width: 300, height: 300, child: {type: label, value: Hi}}
//	  - type: padding
//	    padding: {all: 8, left: 16}
//	    child: {type: align, alignment: bottom_right, child: {type: sized_box, width: 10, height: 10}}
//
// Enum fields take the String form of the widgets constants.
package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
	"github.com/go-drift/flit/pkg/widgets"
)

// Node is one widget of a scene document.
type Node struct {
	Type string `yaml:"type"`

	// Text and label.
	Value    string  `yaml:"value,omitempty"`
	FontSize int     `yaml:"font_size,omitempty"`
	Rotation float64 `yaml:"rotation,omitempty"`
	HardWrap *bool   `yaml:"hard_wrap,omitempty"`

	// Text and container.
	Color string `yaml:"color,omitempty"`

	// Container and sized_box.
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	// Row and column.
	MainAxisAlignment  string `yaml:"main_axis_alignment,omitempty"`
	MainAxisSize       string `yaml:"main_axis_size,omitempty"`
	CrossAxisAlignment string `yaml:"cross_axis_alignment,omitempty"`

	// Padding.
	Padding *Insets `yaml:"padding,omitempty"`

	// Align.
	Alignment string `yaml:"alignment,omitempty"`

	Child    *Node  `yaml:"child,omitempty"`
	Children []Node `yaml:"children,omitempty"`
}

// Insets are padding distances. All applies to every edge not given
// explicitly; an edge set to 0 stays 0.
type Insets struct {
	All    float64  `yaml:"all,omitempty"`
	Left   *float64 `yaml:"left,omitempty"`
	Top    *float64 `yaml:"top,omitempty"`
	Right  *float64 `yaml:"right,omitempty"`
	Bottom *float64 `yaml:"bottom,omitempty"`
}

// EdgeInsets returns the insets as widget insets.
func (in Insets) EdgeInsets() widgets.EdgeInsets {
	edge := func(v *float64) float64 {
		if v == nil {
			return in.All
		}
		return *v
	}
	return widgets.EdgeInsets{
		Left:   edge(in.Left),
		Top:    edge(in.Top),
		Right:  edge(in.Right),
		Bottom: edge(in.Bottom),
	}
}

// Decode parses a scene document and builds its widget tree.
func Decode(data []byte) (core.Widget, error) {
	var root Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("empty document")
		}
		return nil, configError("scene.Decode", fmt.Errorf("failed to parse scene: %w", err))
	}
	w, err := root.Widget()
	if err != nil {
		return nil, configError("scene.Decode", err)
	}
	return w, nil
}

// Load reads and decodes the scene document at path.
func Load(path string) (core.Widget, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("scene.Load", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Decode(data)
}

// Widget converts the node and its descendants into widgets.
func (n Node) Widget() (core.Widget, error) {
	return n.widget("root")
}

func (n Node) widget(path string) (core.Widget, error) {
	switch n.Type {
	case "label":
		return widgets.Label(n.Value), nil
	case "text":
		return n.text(path)
	case "container":
		return n.container(path)
	case "sized_box":
		child, err := n.child(path)
		if err != nil {
			return nil, err
		}
		return widgets.SizedBox{Width: n.Width, Height: n.Height, Child: child}, nil
	case "stack":
		children, err := n.children(path)
		if err != nil {
			return nil, err
		}
		return widgets.Stack{Children: children}, nil
	case "row", "column":
		return n.flex(path)
	case "padding":
		child, err := n.child(path)
		if err != nil {
			return nil, err
		}
		var insets widgets.EdgeInsets
		if n.Padding != nil {
			insets = n.Padding.EdgeInsets()
		}
		return widgets.Padding{Padding: insets, Child: child}, nil
	case "align", "center":
		return n.align(path)
	case "":
		return nil, fmt.Errorf("%s: missing widget type", path)
	default:
		return nil, fmt.Errorf("%s: unknown widget type %q", path, n.Type)
	}
}

func (n Node) text(path string) (core.Widget, error) {
	t := widgets.Text{Value: n.Value, FontSize: n.FontSize, Rotation: n.Rotation}
	if n.FontSize < 0 {
		return nil, fmt.Errorf("%s: font size %d must not be negative", path, n.FontSize)
	}
	if n.Color != "" {
		c, err := graphics.ParseColor(n.Color)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		t.Color = c
	}
	if n.HardWrap != nil {
		t = t.WithHardWrap(*n.HardWrap)
	}
	return t, nil
}

func (n Node) container(path string) (core.Widget, error) {
	c := widgets.Container{Width: n.Width, Height: n.Height}
	if n.Color != "" {
		color, err := graphics.ParseColor(n.Color)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		c.Color = color
	}
	child, err := n.child(path)
	if err != nil {
		return nil, err
	}
	c.Child = child
	return c, nil
}

func (n Node) flex(path string) (core.Widget, error) {
	var (
		align widgets.MainAxisAlignment
		size  widgets.MainAxisSize
		cross widgets.CrossAxisAlignment
		err   error
	)
	if n.MainAxisAlignment != "" {
		if align, err = widgets.ParseMainAxisAlignment(n.MainAxisAlignment); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if n.MainAxisSize != "" {
		if size, err = widgets.ParseMainAxisSize(n.MainAxisSize); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if n.CrossAxisAlignment != "" {
		if cross, err = widgets.ParseCrossAxisAlignment(n.CrossAxisAlignment); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	children, err := n.children(path)
	if err != nil {
		return nil, err
	}
	if n.Type == "column" {
		return widgets.ColumnOf(align, cross, size, children...), nil
	}
	return widgets.RowOf(align, cross, size, children...), nil
}

func (n Node) align(path string) (core.Widget, error) {
	a := widgets.Align{Alignment: widgets.AlignmentCenter}
	if n.Alignment != "" {
		if n.Type == "center" {
			return nil, fmt.Errorf("%s: center does not take an alignment", path)
		}
		alignment, err := widgets.ParseAlignment(n.Alignment)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		a.Alignment = alignment
	}
	child, err := n.child(path)
	if err != nil {
		return nil, err
	}
	a.Child = child
	return a, nil
}

func (n Node) child(path string) (core.Widget, error) {
	if n.Child == nil {
		return nil, nil
	}
	return n.Child.widget(path + ".child")
}

func (n Node) children(path string) ([]core.Widget, error) {
	out := make([]core.Widget, 0, len(n.Children))
	for i, c := range n.Children {
		w, err := c.widget(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func configError(op string, err error) error {
	return &errors.FrameError{Op: op, Kind: errors.KindConfig, Err: err}
}

// Demo returns the built-in scene: a 300x300 container labelled "Hello!"
// with a row of three labels spread across the frame on top of it.
func Demo() core.Widget {
	return widgets.Stack{Children: []core.Widget{
		widgets.Container{Width: 300, Height: 300, Child: widgets.Label("Hello!")},
		widgets.RowOf(
			widgets.MainAxisAlignmentSpaceEvenly,
			widgets.CrossAxisAlignmentEnd,
			widgets.MainAxisSizeMax,
			widgets.Label("Hello world!"),
			widgets.Label("Cool text!"),
			widgets.Label("Nice!"),
		),
	}}
}

// DemoDocument is Demo as a scene document.
const DemoDocument = `type: stack
children:
  - type: container
    width: 300
    height: 300
    child: {type: label, value: "Hello!"}
  - type: row
    main_axis_alignment: space_evenly
    main_axis_size: max
    cross_axis_alignment: end
    children:
      - {type: label, value: "Hello world!"}
      - {type: label, value: "Cool text!"}
      - {type: label, value: "Nice!"}
`
