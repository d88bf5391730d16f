package covidabm

import "testing"

func testParams() *Params {
	return &Params{
		NTotal:                       100,
		NSeedInfection:               1,
		EndTime:                      30,
		MeanDailyInteractions:        0,
		DaysOfInteractions:           7,
		HouseholdSize:                5,
		InfectiousRate:               1.0,
		MeanInfectiousPeriod:         5,
		SDInfectiousPeriod:           2,
		AsymptomaticInfectiousFactor: 0.5,
		FractionAsymptomatic:        0.2,
		MeanTimeToSymptoms:          5,
		SDTimeToSymptoms:            2,
		MeanTimeToRecover:           14,
		SDTimeToRecover:             3,
		MeanTimeToDeath:             18,
		SDTimeToDeath:               4,
		MeanAsymptToRecover:         10,
		SDAsymptToRecover:           2,
		MeanTimeToHospital:          0.1,
		CFR:                         0.02,
		QuarantineDays:              14,
		QuarantineDropoutSelf:       0.1,
		QuarantineDropoutTraced:     0.1,
		QuarantineDropoutPositive:   0.1,
		QuarantineLengthSelf:        14,
		QuarantineLengthTraced:      14,
		QuarantineLengthPositive:    14,
		TestInsensitivePeriod:       3,
		TestOrderWait:               1,
		TestResultWait:              2,
		SelfQuarantineFraction:      1,
		QuarantineFraction:          1,
		TraceableInteractionFraction: 1,
		TracingNetworkDepth:         2,
		AppTurnedOn:                 true,
	}
}

func TestQuarantineUntil_IdempotentAndMonotonic(t *testing.T) {
	p := testParams()
	rng := NewRNG(1)
	m := NewModel(p, rng)

	indiv := 0
	m.quarantineUntil(indiv, 10, true)
	first := m.Population[indiv].ScheduledQuarantineEnd
	if !m.Population[indiv].Quarantined {
		t.Errorf(ExpectedErrorWhileError, "quarantining an individual")
	}

	m.quarantineUntil(indiv, 10, true)
	if m.Population[indiv].ScheduledQuarantineEnd != first {
		t.Errorf(UnequalIntParameterError, "release day after idempotent re-application", first, m.Population[indiv].ScheduledQuarantineEnd)
	}

	m.quarantineUntil(indiv, 5, true)
	if m.Population[indiv].ScheduledQuarantineEnd != first {
		t.Errorf(UnequalIntParameterError, "release day after earlier maxof call", first, m.Population[indiv].ScheduledQuarantineEnd)
	}

	m.quarantineUntil(indiv, 20, true)
	if m.Population[indiv].ScheduledQuarantineEnd != 20 {
		t.Errorf(UnequalIntParameterError, "release day after later maxof call", 20, m.Population[indiv].ScheduledQuarantineEnd)
	}
}

func TestQuarantineRelease_ClearsState(t *testing.T) {
	p := testParams()
	rng := NewRNG(2)
	m := NewModel(p, rng)

	indiv := 1
	m.quarantineUntil(indiv, 10, true)
	m.quarantineRelease(indiv)

	if m.Population[indiv].Quarantined {
		t.Errorf(UnequalIntParameterError, "quarantined flag after release", 0, 1)
	}
	if m.Population[indiv].QuarantineReleaseEvent != noEvent {
		t.Errorf(UnequalIntParameterError, "quarantine release handle after release", noEvent, m.Population[indiv].QuarantineReleaseEvent)
	}
}

func TestQuarantineContacts_LegacyOffByOne(t *testing.T) {
	p := testParams()
	p.MeanDailyInteractions = 5
	rng := NewRNG(3)
	m := NewModel(p, rng)

	stubs := make([]int, p.NTotal*maxInt(p.MeanDailyInteractions, 1))
	buildDailyNetwork(m.RNG, m.Population, m.interactions, 0, stubs)
	m.interactionDayIdx = 0

	indiv := 0
	var neighbors []int
	h := m.Population[indiv].InteractionHead[0]
	for h != noInteraction {
		neighbors = append(neighbors, m.interactions.nodes[h].other)
		h = m.interactions.nodes[h].next
	}
	if len(neighbors) < 2 {
		t.Skip("not enough neighbors drawn to exercise the off-by-one path")
	}

	m.quarantineContacts(indiv, 50)

	if m.Population[neighbors[0]].Quarantined {
		t.Errorf(UnequalIntParameterError, "quarantined flag for skipped first contact", 0, 1)
	}
	if !m.Population[neighbors[1]].Quarantined {
		t.Errorf(UnequalIntParameterError, "quarantined flag for second contact", 1, 0)
	}
}

func TestOrderTest_SkipsWhenAlreadyCase(t *testing.T) {
	p := testParams()
	rng := NewRNG(4)
	m := NewModel(p, rng)

	indiv := 0
	m.Population[indiv].IsCase = true
	m.orderTest(indiv, 5)

	if m.Population[indiv].ScheduledTest != NoTest {
		t.Errorf(UnequalIntParameterError, "scheduled test state for a confirmed case", int(NoTest), int(m.Population[indiv].ScheduledTest))
	}
}
