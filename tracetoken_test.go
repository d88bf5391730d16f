package covidabm

import "testing"

func TestTraceTokenPool_ResetReclaimsCapacity(t *testing.T) {
	pool := newTraceTokenPool(4)

	for i := 0; i < 4; i++ {
		pool.newToken()
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf(ExpectedErrorWhileError, "allocating beyond capacity before reset")
		}
		pool.reset()
		if got := pool.newToken(); got != 0 {
			t.Errorf(UnequalIntParameterError, "first token handle after reset", 0, got)
		}
	}()
	pool.newToken()
}
