package signal

import "time"

// Signal is a daily binary position indicator aligned to a date index:
// 1 means invested, 0 means in cash. Values are attributed to the next
// trading day's return by the backtest engine, never the same day.
type Signal struct {
	Dates  []time.Time
	Values []int
}

// New creates a signal over the given date index with all positions set
// to cash.
func New(dates []time.Time) Signal {
	return Signal{
		Dates:  append([]time.Time(nil), dates...),
		Values: make([]int, len(dates)),
	}
}

// dateKey collapses a timestamp to its trading date for index lookups.
func dateKey(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
}

// lookup builds a date -> value map for reindexing.
func (s Signal) lookup() map[int64]int {
	m := make(map[int64]int, len(s.Dates))
	for i, d := range s.Dates {
		m[dateKey(d)] = s.Values[i]
	}
	return m
}

// ReindexZero projects the signal onto a new date index. Dates absent
// from the source signal become 0 (not invested); values are never
// forward-filled across missing dates.
func (s Signal) ReindexZero(dates []time.Time) Signal {
	out := New(dates)
	src := s.lookup()
	for i, d := range dates {
		if v, ok := src[dateKey(d)]; ok {
			out.Values[i] = v
		}
	}
	return out
}

// And combines two signals on the first signal's date index: invested
// only when both components agree. The second signal is reindexed with
// the zero-fill policy first.
func And(a, b Signal) Signal {
	out := New(a.Dates)
	aligned := b.ReindexZero(a.Dates)
	for i := range out.Values {
		if a.Values[i] == 1 && aligned.Values[i] == 1 {
			out.Values[i] = 1
		}
	}
	return out
}
