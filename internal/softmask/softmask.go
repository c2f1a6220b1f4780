// internal/softmask/softmask.go
package softmask

// Interval is one maximal soft-masked run, [Start, End) in 0-based coordinates.
type Interval struct {
	Start int
	End   int
}

// Len returns the number of bases in the run.
func (iv Interval) Len() int { return iv.End - iv.Start }

// IsSoftMasked reports whether b is a lowercase ASCII letter.
func IsSoftMasked(b byte) bool { return b >= 'a' && b <= 'z' }

// Each scans seq once and calls fn for every maximal soft-masked run, in
// increasing Start order, as soon as the run is closed. A run that reaches the
// end of seq closes at len(seq). The first error returned by fn stops the scan
// and is returned as is.
func Each(seq []byte, fn func(Interval) error) error {
	inRun := false
	start := 0
	for i, b := range seq {
		if IsSoftMasked(b) {
			if !inRun {
				start = i
				inRun = true
			}
			continue
		}
		if inRun {
			inRun = false
			if err := fn(Interval{Start: start, End: i}); err != nil {
				return err
			}
		}
	}
	if inRun {
		return fn(Interval{Start: start, End: len(seq)})
	}
	return nil
}

// Runs returns all soft-masked runs of seq. It returns nil when seq has none.
func Runs(seq []byte) []Interval {
	var out []Interval
	_ = Each(seq, func(iv Interval) error {
		out = append(out, iv)
		return nil
	})
	return out
}
