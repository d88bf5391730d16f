package covidabm

// Traceable is the lazily-resolved ternary outcome of "can this contact be
// traced", memoised on first observation.
type Traceable int8

const (
	TraceUnknown Traceable = iota
	TraceYes
	TraceNo
)

// interactionNode is one half of a day's pairing between two individuals.
// Unlike the event pool, interaction records are never individually freed:
// the pool is overwritten wholesale, day-slot by day-slot, as the window
// cycles (§3, §5 — "overwrite-on-wrap by design").
type interactionNode struct {
	other     int
	next      int
	traceable Traceable
}

const noInteraction = -1

// interactionPool is the fixed-size ring the daily network builder
// allocates records from. Capacity is sized at construction from
// n_total * mean_daily_interactions * days_of_interactions (§3).
type interactionPool struct {
	nodes []interactionNode
	idx   int
}

func newInteractionPool(capacity int) *interactionPool {
	return &interactionPool{nodes: make([]interactionNode, capacity)}
}

// alloc returns the next slot in the ring, wrapping at capacity. Unlike the
// event pool there is no exhaustion error: wrapping into an older day's
// edges is the intended eviction mechanism, not a programmer error.
func (p *interactionPool) alloc() int {
	h := p.idx
	p.idx++
	if p.idx >= len(p.nodes) {
		p.idx = 0
	}
	return h
}

// buildDailyNetwork regenerates the interaction lists for the given day
// slot (§4.3): it fills a stub array by repeating each individual's index
// meanInteractions[i] times, shuffles it, and pairs consecutive entries,
// skipping self-loop pairs. Before allocating, the target day's edges are
// evicted (head pointers and counts zeroed), since the ring is
// overwrite-on-wrap by design.
func buildDailyNetwork(rng RNG, pop []Individual, pool *interactionPool, day int, stubs []int) {
	for i := range pop {
		pop[i].InteractionHead[day] = noInteraction
		pop[i].InteractionCount[day] = 0
	}

	n := 0
	for i := range pop {
		for j := 0; j < pop[i].MeanInteractions; j++ {
			stubs[n] = i
			n++
		}
	}
	stubs = stubs[:n]

	rng.Shuffle(n, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

	idx := 0
	last := n - 1
	for idx < last {
		if stubs[idx] == stubs[idx+1] {
			idx++
			continue
		}
		a := stubs[idx]
		b := stubs[idx+1]
		idx += 2

		ha := pool.alloc()
		hb := pool.alloc()

		pool.nodes[ha] = interactionNode{other: b, next: pop[a].InteractionHead[day], traceable: TraceUnknown}
		pop[a].InteractionHead[day] = ha
		pop[a].InteractionCount[day]++

		pool.nodes[hb] = interactionNode{other: a, next: pop[b].InteractionHead[day], traceable: TraceUnknown}
		pop[b].InteractionHead[day] = hb
		pop[b].InteractionCount[day]++
	}
}
