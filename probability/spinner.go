// SPDX-License-Identifier: MIT

package probability

// Spinner is a wheel of equally sized sections, each labelled with a value.
// Values may repeat. An empty spinner has probability 0 for everything.
type Spinner struct {
	Sections []int
}

func (s Spinner) share(pred func(int) bool) float64 {
	if len(s.Sections) == 0 {
		return 0
	}
	var hits int
	for _, v := range s.Sections {
		if pred(v) {
			hits++
		}
	}

	return float64(hits) / float64(len(s.Sections))
}

// Of returns P(the spinner lands on value).
func (s Spinner) Of(value int) float64 {
	return s.share(func(v int) bool { return v == value })
}

// Greater returns P(the spinner lands above limit).
func (s Spinner) Greater(limit int) float64 {
	return s.share(func(v int) bool { return v > limit })
}

// Even returns P(the spinner lands on an even value).
func (s Spinner) Even() float64 {
	return s.share(func(v int) bool { return v%2 == 0 })
}

// Odd returns P(the spinner lands on an odd value).
func (s Spinner) Odd() float64 {
	return s.share(func(v int) bool { return v%2 != 0 })
}

// ExpectedValue returns the mean section value.
func (s Spinner) ExpectedValue() float64 {
	if len(s.Sections) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.Sections {
		sum += float64(v)
	}

	return sum / float64(len(s.Sections))
}
