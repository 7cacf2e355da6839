package svgfilter

// Static resource budgets bounding the worst-case work a document can
// demand. They are the only defense against billion-laughs-style
// blowups of nested references: there is no cancellation primitive
// beyond early error return.

// Limits caps the work of one render call.
type Limits struct {
	// MaxReferences caps the number of url(#...) reference
	// resolutions over the whole render.
	MaxReferences int
	// MaxNesting caps the recursion depth of layered drawing
	// operations, bounding stack usage.
	MaxNesting int
}

// DefaultLimits is plenty for honest documents.
var DefaultLimits = Limits{
	MaxReferences: 500_000,
	MaxNesting:    50,
}

// LimitTracker holds the per-render counters. It is owned by a single
// render invocation and needs no locking.
type LimitTracker struct {
	limits     Limits
	references int
	depth      int
}

// NewLimitTracker returns a tracker with fresh counters.
// Zero or negative limit values fall back to the defaults.
func NewLimitTracker(limits Limits) *LimitTracker {
	if limits.MaxReferences <= 0 {
		limits.MaxReferences = DefaultLimits.MaxReferences
	}
	if limits.MaxNesting <= 0 {
		limits.MaxNesting = DefaultLimits.MaxNesting
	}
	return &LimitTracker{limits: limits}
}

// CountReference records one url(#...) resolution. It must be called
// before resolving; the returned error aborts the document render.
func (t *LimitTracker) CountReference() error {
	if t.references >= t.limits.MaxReferences {
		return LimitError{What: "too many referenced elements"}
	}
	t.references++
	return nil
}

// EnterNested records one level of layered drawing. Each successful
// call must be paired with LeaveNested.
func (t *LimitTracker) EnterNested() error {
	if t.depth >= t.limits.MaxNesting {
		return LimitError{What: "maximum nesting depth reached"}
	}
	t.depth++
	return nil
}

// LeaveNested undoes one EnterNested.
func (t *LimitTracker) LeaveNested() {
	if t.depth > 0 {
		t.depth--
	}
}
