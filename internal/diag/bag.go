package diag

// Bag stores diagnostics in the order they were reported.
//
// max caps how many are kept (0 = unlimited). A fatal diagnostic rejected by
// the cap is still counted so HasFatal never lies.
type Bag struct {
	items   []Diagnostic
	max     int
	dropped int
	fatal   bool
}

func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(max, 64)),
		max:   max,
	}
}

// Add appends a diagnostic, respecting the cap.
// Returns false if the diagnostic was not stored.
func (b *Bag) Add(d Diagnostic) bool {
	if d.IsFatal {
		b.fatal = true
	}
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Dropped reports how many diagnostics the cap rejected.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasFatal reports whether any fatal diagnostic was reported, stored or not.
func (b *Bag) HasFatal() bool {
	return b.fatal
}

// HasErrors returns true if there is at least one diagnostic with Severity >= Error
func (b *Bag) HasErrors() bool {
	if b.fatal {
		return true
	}
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if there is at least one diagnostic with Severity >= Warning
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the stored diagnostics. The slice aliases the bag; do not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Fatal returns the stored fatal diagnostics in report order.
func (b *Bag) Fatal() []Diagnostic {
	var out []Diagnostic
	for _, d := range b.items {
		if d.IsFatal {
			out = append(out, d)
		}
	}
	return out
}

// Merge appends the diagnostics of other, growing the cap if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if b.max > 0 && len(b.items)+len(other.items) > b.max {
		b.max = len(b.items) + len(other.items)
	}
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
	b.fatal = b.fatal || other.fatal
}
