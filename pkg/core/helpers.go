package core

import (
	stderrors "errors"
	"reflect"

	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
)

// TypeName returns the unqualified type name of w, used in error messages.
func TypeName(w Widget) string {
	if w == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// BuildChild builds child with ctx and wraps a failure in an
// *errors.BuildError naming the child and its index (-1 for a sole child).
// A nil child is a no-op.
func BuildChild(ctx BuildContext, child Widget, index int) error {
	if child == nil {
		return nil
	}
	if err := child.Build(ctx); err != nil {
		return &errors.BuildError{Widget: TypeName(child), Index: index, Err: err}
	}
	return nil
}

// IntrinsicSizeOf asks w for its natural size. ok is false when w does not
// implement Sizer.
func IntrinsicSizeOf(ctx BuildContext, w Widget) (size graphics.Size, ok bool, err error) {
	s, isSizer := w.(Sizer)
	if !isSizer {
		return graphics.Size{}, false, nil
	}
	size, err = s.IntrinsicSize(ctx)
	if err != nil {
		return graphics.Size{}, true, err
	}
	return size, true, nil
}

// IsLayoutError reports whether err stems from a containment or overflow
// violation, as opposed to a renderer or configuration failure.
func IsLayoutError(err error) bool {
	return stderrors.Is(err, errors.ErrOutOfBoundsLayout) || stderrors.Is(err, errors.ErrContentOverflow)
}
