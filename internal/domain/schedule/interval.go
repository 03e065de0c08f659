package schedule

// Interval is a half-open clock range [Open, Close) with an optional break
// [BreakStart, BreakEnd). A break only counts when both bounds are set.
type Interval struct {
	Open       Clock  `json:"open_time"`
	Close      Clock  `json:"close_time"`
	BreakStart *Clock `json:"break_start"`
	BreakEnd   *Clock `json:"break_end"`
}

// HasBreak reports whether both break bounds are set.
func (iv Interval) HasBreak() bool {
	return iv.BreakStart != nil && iv.BreakEnd != nil
}

// InBreak reports whether t falls inside the break window.
func (iv Interval) InBreak(t Clock) bool {
	return iv.HasBreak() && *iv.BreakStart <= t && t < *iv.BreakEnd
}

// Contains is true iff Open <= t < Close and t is not inside the break.
func (iv Interval) Contains(t Clock) bool {
	if t < iv.Open || t >= iv.Close {
		return false
	}
	return !iv.InBreak(t)
}

// Validate checks ordering of the interval. A closed entry is never checked,
// whatever its stored times are.
func (iv Interval) Validate(closed bool) error {
	if closed {
		return nil
	}

	var errs ValidationErrors
	if iv.Open >= iv.Close {
		errs.add("open_time", "open time must be before close time")
	}

	if iv.HasBreak() {
		bs, be := *iv.BreakStart, *iv.BreakEnd
		if bs >= be {
			errs.add("break_start", "break start must be before break end")
		}
		if bs < iv.Open {
			errs.add("break_start", "break start must be after open time")
		}
		if be > iv.Close {
			errs.add("break_end", "break end must be before close time")
		}
	}

	return errs.err()
}

// timedRange is the break-less interval used by special days and overrides.
// It is only usable when both bounds are present.
func timedRange(open, close *Clock) (Interval, bool) {
	if open == nil || close == nil {
		return Interval{}, false
	}
	return Interval{Open: *open, Close: *close}, true
}
