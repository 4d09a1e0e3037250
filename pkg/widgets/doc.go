// Package widgets provides the concrete widgets of flit.
//
// Leaves draw: [Text], [Label] and the box-drawing [Container]. Layouts
// divide their region between children: [Row] and [Column] split one axis,
// [Stack] gives every child the same region, [Padding] and [Align] place a
// single child inside theirs, and [SizedBox] reserves a rigid box.
//
// # Widget Construction
//
// Widgets are plain values built with struct literals:
//
//	root := Stack{Children: []core.Widget{
//	    Container{Width: 300, Height: 300, Child: Label("Hello!")},
//	    RowOf(
//	        MainAxisAlignmentSpaceEvenly,
//	        CrossAxisAlignmentEnd,
//	        MainAxisSizeMax,
//	        TextOf("Hello world!"),
//	        TextOf("Nice!"),
//	    ),
//	}}
//
// Layout helpers (RowOf, ColumnOf, StackOf, TextOf) cover the common cases.
// WithX methods return copies; they never mutate the receiver.
//
// # Errors
//
// Build returns the first failure below it. Layout widgets wrap failures of
// their children in an [*errors.BuildError] naming the child type and index,
// so the error of a deep failure reads like a path from the root:
//
//	Container[2].Build(): Text.Build(): text "Hi" overflowed by 4 pixels ...
package widgets
