package covidabm

import "testing"

func TestDrawList_CyclesBackToStart(t *testing.T) {
	rng := NewRNG(5)
	dl := newGammaDrawList(rng, 5, 1, 4)

	first := make([]int, 4)
	for i := range first {
		first[i] = dl.sample()
	}
	for i := range first {
		if got := dl.sample(); got != first[i] {
			t.Errorf(UnequalIntParameterError, "draw list value on second cycle", first[i], got)
		}
	}
}

func TestGammaDrawList_AlwaysPositive(t *testing.T) {
	rng := NewRNG(6)
	dl := newGammaDrawList(rng, 5, 2, 1000)
	for _, v := range dl.values {
		if v < 1 {
			t.Errorf(ExpectedErrorWhileError, "checking gamma draw list values stay positive")
		}
	}
}

func TestBernoulliDrawList_ValuesAreOneOrMaxWait(t *testing.T) {
	rng := NewRNG(7)
	maxWait := 28
	dl := newBernoulliDrawList(rng, 0.3, maxWait, 500)
	for _, v := range dl.values {
		if v != 1 && v != maxWait {
			t.Errorf(UnequalIntParameterError, "bernoulli draw list value", 1, v)
		}
	}
}

func TestGeometricCappedDrawList_NeverExceedsCap(t *testing.T) {
	rng := NewRNG(8)
	maxStay := 14
	dl := newGeometricCappedDrawList(rng, 0.2, maxStay, 500)
	for _, v := range dl.values {
		if v < 1 || v > maxStay {
			t.Errorf(UnequalIntParameterError, "geometric capped draw within bounds", maxStay, v)
		}
	}
}
