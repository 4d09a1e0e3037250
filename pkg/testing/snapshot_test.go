package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/flit/pkg/graphics"
	"github.com/go-drift/flit/pkg/testing/internal/testbed"
)

func TestCaptureSnapshot_RecordsRegionsAndOps(t *testing.T) {
	tester := NewWidgetTester(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})
	tester.MustPump(tester.Probe("box", testbed.LayoutBox{
		Width: 20, Height: 10,
		Color: graphics.RGB(0, 255, 0),
	}))

	snap := tester.CaptureSnapshot()
	if len(snap.Regions) != 1 {
		t.Fatalf("expected one region, got %d", len(snap.Regions))
	}
	if r := snap.Regions[0]; r.Name != "box" || r.Size != [2]float64{200, 100} {
		t.Errorf("unexpected region %+v", r)
	}
	if len(snap.DisplayOps) != 2 {
		t.Fatalf("expected clear and drawRect, got %v", snap.DisplayOps)
	}
	if snap.DisplayOps[1].Op != "drawRect" {
		t.Errorf("expected drawRect, got %s", snap.DisplayOps[1].Op)
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	tester := NewWidgetTester(t)
	tester.MustPump(testbed.LayoutBox{Width: 50, Height: 50, Color: graphics.ColorBlue})

	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	tester := NewWidgetTester(t)
	tester.MustPump(testbed.LayoutBox{Width: 50, Height: 50, Color: graphics.ColorBlue})
	a := tester.CaptureSnapshot()

	tester.MustPump(testbed.LayoutBox{Width: 60, Height: 50, Color: graphics.ColorBlue})
	b := tester.CaptureSnapshot()

	diff := a.Diff(b)
	if diff == "" {
		t.Fatal("expected a diff")
	}
	if !strings.Contains(diff, "--- expected") || !strings.Contains(diff, "+++ actual") {
		t.Errorf("expected diff headers, got:\n%s", diff)
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	tester := NewWidgetTester(t)
	tester.MustPump(tester.Probe("root", testbed.LayoutBox{Width: 5, Height: 5, Color: graphics.ColorRed}))
	snap := tester.CaptureSnapshot()

	path := filepath.Join(t.TempDir(), "nested", "box.snapshot.json")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected snapshot file: %v", err)
	}

	rec := &recordingT{name: t.Name()}
	snap.MatchesFile(rec, path)
	if rec.failed {
		t.Errorf("expected match, got %q", rec.msg)
	}
}

func TestSnapshot_MatchesFile_Missing(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := &Snapshot{}
	rec := &recordingT{name: "TestMissing"}

	snap.MatchesFile(rec, filepath.Join(t.TempDir(), "absent.json"))

	if !rec.failed || !strings.Contains(rec.msg, "snapshot file missing") {
		t.Errorf("expected missing-file failure, got %q", rec.msg)
	}
	if !strings.Contains(rec.msg, UpdateSnapshotsEnv+"=1") {
		t.Errorf("expected update instructions, got %q", rec.msg)
	}
}

func TestSnapshot_MatchesFile_UpdateEnv(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "1")
	path := filepath.Join(t.TempDir(), "new.json")
	rec := &recordingT{name: "TestUpdate"}

	(&Snapshot{Regions: []Region{{Name: "a"}}}).MatchesFile(rec, path)

	if rec.failed {
		t.Fatalf("unexpected failure %q", rec.msg)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"name": "a"`) {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}

type recordingT struct {
	name   string
	failed bool
	msg    string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.failed = true
	r.msg = fmt.Sprintf(format, args...)
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.failed = true
	r.msg = fmt.Sprintf(format, args...)
}

func (r *recordingT) Name() string { return r.name }
