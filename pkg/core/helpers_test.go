package core

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
)

type leaf struct{ err error }

func (l leaf) Build(BuildContext) error { return l.err }

type sizedLeaf struct {
	leaf
	size graphics.Size
}

func (s *sizedLeaf) IntrinsicSize(BuildContext) (graphics.Size, error) { return s.size, nil }

func TestTypeName(t *testing.T) {
	tests := []struct {
		w    Widget
		want string
	}{
		{nil, "<nil>"},
		{leaf{}, "leaf"},
		{&sizedLeaf{}, "sizedLeaf"},
		{WidgetFunc(func(BuildContext) error { return nil }), "WidgetFunc"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.w); got != tt.want {
			t.Errorf("TypeName(%T) = %q, want %q", tt.w, got, tt.want)
		}
	}
}

func TestBuildChild(t *testing.T) {
	if err := BuildChild(BuildContext{}, nil, 0); err != nil {
		t.Errorf("nil child: %v", err)
	}
	if err := BuildChild(BuildContext{}, leaf{}, 0); err != nil {
		t.Errorf("ok child: %v", err)
	}

	cause := fmt.Errorf("wrapped: %w", errors.ErrContentOverflow)
	err := BuildChild(BuildContext{}, leaf{err: cause}, 3)

	var be *errors.BuildError
	if !stderrors.As(err, &be) {
		t.Fatalf("expected *errors.BuildError, got %T", err)
	}
	if be.Widget != "leaf" || be.Index != 3 {
		t.Errorf("unexpected %+v", be)
	}
	if !IsLayoutError(err) {
		t.Error("expected layout error to be recognised through the wrapper")
	}
	if got := err.Error(); got != "leaf[3].Build(): wrapped: content overflow" {
		t.Errorf("message = %q", got)
	}
}

func TestIntrinsicSizeOf(t *testing.T) {
	size, ok, err := IntrinsicSizeOf(BuildContext{}, &sizedLeaf{size: graphics.Size{Width: 3, Height: 4}})
	if err != nil || !ok || size != (graphics.Size{Width: 3, Height: 4}) {
		t.Errorf("sizer: %s %v %v", size, ok, err)
	}
	if _, ok, _ := IntrinsicSizeOf(BuildContext{}, leaf{}); ok {
		t.Error("non-sizer reported a size")
	}
}

func TestIsLayoutError(t *testing.T) {
	if IsLayoutError(stderrors.New("disk full")) {
		t.Error("plain error treated as layout error")
	}
	if !IsLayoutError(&errors.OutOfBoundsError{Axis: errors.AxisHorizontal, Requested: 2, Available: 1}) {
		t.Error("out of bounds not recognised")
	}
}
