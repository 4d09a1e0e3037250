// Package testing provides a widget testing harness for flit.
//
// # Quick Start
//
// Create a tester, pump a widget, and inspect what was drawn:
//
//	func TestGreeting(t *testing.T) {
//	    tester := flittest.NewWidgetTester(t)
//	    tester.MustPump(widgets.TextOf("Hello"))
//
//	    texts := tester.Texts()
//	    if len(texts) != 1 || texts[0].Text != "Hello" {
//	        t.Errorf("unexpected draws: %v", texts)
//	    }
//	}
//
// The tester draws into a Recorder, whose text metrics are deterministic:
// each rune is half the font size wide and one font size tall.
//
// # Probes
//
// Probes are pass-through widgets that record the context they were built
// with, which makes the regions a layout hands out observable:
//
//	row := widgets.Row{Children: []core.Widget{tester.Probe("a", nil), tester.Probe("b", nil)}}
//	tester.MustPump(row)
//	a := tester.Named("a")[0]
//
// # Snapshot Testing
//
// Capture and compare frame snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/row.snapshot.json")
//
// Update snapshots with:
//
//	FLIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import flittest "github.com/go-drift/flit/pkg/testing"
package testing
