package covidabm

import "testing"

func newTestPopulation(n, meanInteractions, days int) []Individual {
	pop := make([]Individual, n)
	for i := range pop {
		pop[i] = newIndividual(i, days)
		pop[i].MeanInteractions = meanInteractions
	}
	return pop
}

func TestBuildDailyNetwork_SymmetricEdges(t *testing.T) {
	rng := NewRNG(42)
	n, meanInteractions, days := 40, 4, 3
	pop := newTestPopulation(n, meanInteractions, days)
	pool := newInteractionPool(n * meanInteractions * days)
	stubs := make([]int, n*meanInteractions)

	buildDailyNetwork(rng, pop, pool, 1, stubs)

	totalEdges := 0
	for i := range pop {
		totalEdges += pop[i].InteractionCount[1]
		h := pop[i].InteractionHead[1]
		count := 0
		for h != noInteraction {
			node := pool.nodes[h]
			other := node.other
			if other == i {
				t.Errorf(UnequalIntParameterError, "self-loop for individual", -1, i)
			}
			found := false
			oh := pop[other].InteractionHead[1]
			for oh != noInteraction {
				if pool.nodes[oh].other == i {
					found = true
					break
				}
				oh = pool.nodes[oh].next
			}
			if !found {
				t.Errorf(ExpectedErrorWhileError, "finding reciprocal edge")
			}
			h = node.next
			count++
		}
		if count != pop[i].InteractionCount[1] {
			t.Errorf(UnequalIntParameterError, "walked edge count", pop[i].InteractionCount[1], count)
		}
	}
	if totalEdges%2 != 0 {
		t.Errorf(ExpectedErrorWhileError, "checking total interaction count is even")
	}
}

func TestBuildDailyNetwork_EvictsStaleDay(t *testing.T) {
	rng := NewRNG(7)
	n, meanInteractions, days := 20, 3, 2
	pop := newTestPopulation(n, meanInteractions, days)
	pool := newInteractionPool(n * meanInteractions * days)
	stubs := make([]int, n*meanInteractions)

	buildDailyNetwork(rng, pop, pool, 0, stubs)
	for i := range pop {
		if pop[i].InteractionCount[0] == 0 {
			continue
		}
	}

	buildDailyNetwork(rng, pop, pool, 0, stubs)
	total := 0
	for i := range pop {
		total += pop[i].InteractionCount[0]
		h := pop[i].InteractionHead[0]
		walked := 0
		for h != noInteraction {
			walked++
			h = pool.nodes[h].next
		}
		if walked != pop[i].InteractionCount[0] {
			t.Errorf(UnequalIntParameterError, "rebuilt day-0 edge count", pop[i].InteractionCount[0], walked)
		}
	}
	// One build fills at most len(stubs) edge halves; more after the rebuild
	// means the first build's day-0 edges were kept.
	if total > len(stubs) {
		t.Errorf(UnequalIntParameterError, "upper bound on day-0 edge halves after rebuild", len(stubs), total)
	}
}
