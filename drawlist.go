package covidabm

// drawList is a precomputed, cyclically-consumed array of integer samples
// from one time-distribution parameter (§4.2). Precomputing avoids paying
// for a fresh distribution draw on every scheduling call in the hot path.
type drawList struct {
	values []int
	next   int
}

// sample returns the next entry, wrapping back to the start of the array.
func (d *drawList) sample() int {
	v := d.values[d.next]
	d.next = ringInc(d.next, len(d.values))
	return v
}

// newGammaDrawList fills a draw list with Gamma(mean, sd) samples rounded to
// positive integers, used for symptom-onset/recovery/death/asymptomatic-
// recovery delays. Samples are clamped to maxEventDelay: the distribution
// itself has no upper tail bound, but schedulable event-list arrays do, so
// an unclamped rare large draw must not be allowed to index past them.
func newGammaDrawList(rng RNG, mean, sd float64, n int) *drawList {
	values := make([]int, n)
	for i := range values {
		v := rng.Gamma(mean, sd)
		if v > maxEventDelay {
			v = maxEventDelay
		}
		values[i] = v
	}
	return &drawList{values: values}
}

// newBernoulliDrawList fills a draw list where each entry is 1 with
// probability p, else maxWait — used for "will this happen at all, and if
// so on day 1" distributions such as time-to-hospital.
func newBernoulliDrawList(rng RNG, p float64, maxWait, n int) *drawList {
	values := make([]int, n)
	for i := range values {
		if rng.Bernoulli(p) {
			values[i] = 1
		} else {
			values[i] = maxWait
		}
	}
	return &drawList{values: values}
}

// newGeometricCappedDrawList fills a draw list with geometric "days until
// dropout" samples truncated at maxStay, used for the three quarantine
// transition-time distributions (SYMPTOMATIC_QUARANTINE, TRACED_QUARANTINE,
// TEST_RESULT_QUARANTINE).
func newGeometricCappedDrawList(rng RNG, dropout float64, maxStay, n int) *drawList {
	values := make([]int, n)
	for i := range values {
		day := 1
		for day < maxStay {
			if rng.Bernoulli(dropout) {
				break
			}
			day++
		}
		values[i] = day
	}
	return &drawList{values: values}
}
