package testing

import (
	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/graphics"
)

// ProbeEntry is one recorded Build call of a probe.
type ProbeEntry struct {
	Name    string
	Context core.BuildContext
}

// ContextLog collects the contexts probes were built with, in build order.
type ContextLog struct {
	entries []ProbeEntry
}

// Probe returns a widget that records its context under name and then
// builds child (if any) with the same context.
func (l *ContextLog) Probe(name string, child core.Widget) Probe {
	return Probe{Name: name, Child: child, log: l}
}

// SizedProbe is like Probe but also reports natural as its intrinsic size.
func (l *ContextLog) SizedProbe(name string, natural graphics.Size) SizedProbe {
	return SizedProbe{Probe: Probe{Name: name, log: l}, Natural: natural}
}

// Entries returns every recorded entry.
func (l *ContextLog) Entries() []ProbeEntry {
	return l.entries
}

// Named returns the contexts recorded under name.
func (l *ContextLog) Named(name string) []core.BuildContext {
	var out []core.BuildContext
	for _, e := range l.entries {
		if e.Name == name {
			out = append(out, e.Context)
		}
	}
	return out
}

// Reset discards all entries.
func (l *ContextLog) Reset() {
	l.entries = l.entries[:0]
}

// Probe is a pass-through widget that records the context it receives.
type Probe struct {
	Name  string
	Child core.Widget
	log   *ContextLog
}

// Build records ctx and builds the child with it.
func (p Probe) Build(ctx core.BuildContext) error {
	if p.log != nil {
		p.log.entries = append(p.log.entries, ProbeEntry{Name: p.Name, Context: ctx})
	}
	if p.Child == nil {
		return nil
	}
	return p.Child.Build(ctx)
}

// SizedProbe is a Probe with a fixed natural size.
type SizedProbe struct {
	Probe
	Natural graphics.Size
}

// IntrinsicSize returns Natural.
func (p SizedProbe) IntrinsicSize(core.BuildContext) (graphics.Size, error) {
	return p.Natural, nil
}
