package inventory

import "fmt"

// Trace classes for per-field provenance lines.
const (
	TraceBoard = "board"
	TraceGPU   = "gpu"
)

// Trace accumulates provenance lines during one Build call. It replaces
// the usual global debug accumulator: the builder owns one Trace per run
// and returns it alongside the Snapshot, so detection stays a function of
// its inputs plus the explicit debug flags.
type Trace struct {
	boardOn bool
	gpuOn   bool
	entries []TraceEntry
}

// TraceEntry is one provenance line.
type TraceEntry struct {
	Class   string `json:"class"`
	Message string `json:"message"`
}

// NewTrace returns a trace that records lines for the enabled classes.
// Chain outcome lines are always recorded; class-specific detail lines
// are only recorded when that class is enabled.
func NewTrace(board, gpu bool) *Trace {
	return &Trace{boardOn: board, gpuOn: gpu}
}

func (t *Trace) enabled(class string) bool {
	switch class {
	case TraceBoard:
		return t.boardOn
	case TraceGPU:
		return t.gpuOn
	}
	return false
}

// Addf records a provenance line for class when tracing it is enabled.
func (t *Trace) Addf(class, format string, args ...any) {
	if t == nil || !t.enabled(class) {
		return
	}
	t.entries = append(t.entries, TraceEntry{
		Class:   class,
		Message: fmt.Sprintf(format, args...),
	})
}

// Class returns the recorded lines for one class, in insertion order.
func (t *Trace) Class(class string) []TraceEntry {
	if t == nil {
		return nil
	}
	var out []TraceEntry
	for _, e := range t.entries {
		if e.Class == class {
			out = append(out, e)
		}
	}
	return out
}
