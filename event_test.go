package covidabm

import "testing"

func TestEventPool_AllocRelease_FreeArcInvariant(t *testing.T) {
	capacity := 10
	pool := newEventPool(capacity)

	if got := pool.freeArcLen(); got != capacity {
		t.Errorf(UnequalIntParameterError, "free arc length", capacity, got)
	}

	handles := make([]int, 4)
	for i := range handles {
		handles[i] = pool.alloc()
	}
	if got := pool.freeArcLen(); got != capacity-4 {
		t.Errorf(UnequalIntParameterError, "free arc length after 4 allocs", capacity-4, got)
	}

	for _, h := range handles {
		pool.release(h)
	}
	if got := pool.freeArcLen(); got != capacity {
		t.Errorf(UnequalIntParameterError, "free arc length after release", capacity, got)
	}
}

func TestEventPool_ExhaustionPanics(t *testing.T) {
	pool := newEventPool(1)
	pool.alloc()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf(ExpectedErrorWhileError, "allocating from an exhausted pool")
		}
	}()
	pool.alloc()
}

func TestEventList_AddRemove_BucketCounters(t *testing.T) {
	pool := newEventPool(16)
	list := newEventList(ListSymptomatic, 10)

	day := 3
	h1 := list.add(pool, 0, day)
	h2 := list.add(pool, 1, day)
	h3 := list.add(pool, 2, day)

	handles := list.handlesAt(pool, day)
	if got := len(handles); got != 3 {
		t.Errorf(UnequalIntParameterError, "handles at day", 3, got)
	}

	list.remove(pool, h2, day)
	handles = list.handlesAt(pool, day)
	if got := len(handles); got != 2 {
		t.Errorf(UnequalIntParameterError, "handles at day after removing interior", 2, got)
	}

	list.remove(pool, h1, day)
	list.remove(pool, h3, day)
	if got := len(list.handlesAt(pool, day)); got != 0 {
		t.Errorf(UnequalIntParameterError, "handles at day after draining", 0, got)
	}
	if got := pool.freeArcLen(); got != 16 {
		t.Errorf(UnequalIntParameterError, "free arc length after draining all events", 16, got)
	}
}

func TestEventList_UpdateCounters_Monotonic(t *testing.T) {
	pool := newEventPool(8)
	list := newEventList(ListDeath, 5)

	list.add(pool, 0, 1)
	list.add(pool, 1, 1)
	list.updateCounters(1)

	if got := list.NCurrent(); got != 2 {
		t.Errorf(UnequalIntParameterError, "n_current after first update", 2, got)
	}
	if got := list.NTotal(); got != 2 {
		t.Errorf(UnequalIntParameterError, "n_total after first update", 2, got)
	}

	list.add(pool, 2, 2)
	list.updateCounters(2)
	if got := list.NTotal(); got != 3 {
		t.Errorf(UnequalIntParameterError, "n_total after second update", 3, got)
	}
}

func TestEventPool_CapacityInvariant_SumEqualsCapacity(t *testing.T) {
	capacity := 20
	pool := newEventPool(capacity)
	list := newEventList(ListQuarantined, 5)

	for i := 0; i < 6; i++ {
		list.add(pool, i, 0)
	}
	list.updateCounters(0)

	sum := list.NCurrent() + pool.freeArcLen()
	if sum != capacity {
		t.Errorf(UnequalIntParameterError, "n_current + free arc length", capacity, sum)
	}
}
