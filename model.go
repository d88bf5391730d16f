package covidabm

// Model is the complete constructed simulation instance (§5, §6):
// population, every pool, every event list, and the running day index.
// All pools are process-local and single-threaded; running several
// simulations concurrently means constructing one Model per goroutine,
// each with its own RNG stream.
type Model struct {
	Params *Params
	RNG    RNG

	Population []Individual
	Households *HouseholdDirectory

	events      *eventPool
	lists       [numListKinds]*EventList
	interactions *interactionPool
	stubs       []int
	tokens      *traceTokenPool

	drawSymptomOnset         *drawList
	drawRecovery             *drawList
	drawDeath                *drawList
	drawAsymptRecovery       *drawList
	drawTimeToHospital       *drawList
	drawSymptomaticQuarantine *drawList
	drawTracedQuarantine      *drawList
	drawTestResultQuarantine  *drawList

	Day               int
	interactionDayIdx int
	caseCount         int
	QuarantinePersonDays int64
}

// NewModel constructs a fully wired simulation instance from a validated
// parameter snapshot (§6 new_model). Pool capacities are fixed constant
// multiples of NTotal (§4.1, §5). Construction panics if p fails Validate;
// a pool that runs out later panics at its allocation site (§7b), since
// exceeding these capacities is a programmer error, never a runtime one.
func NewModel(p *Params, rng RNG) *Model {
	if err := p.Validate(); err != nil {
		panic(err)
	}

	m := &Model{
		Params:     p,
		RNG:        rng,
		Population: make([]Individual, p.NTotal),
		Households: AssignHouseholds(p.NTotal, p.HouseholdSize),
		events:      newEventPool(p.NTotal * eventPoolMultiplier),
		interactions: newInteractionPool(p.NTotal * p.MeanDailyInteractions * p.DaysOfInteractions),
		stubs:       make([]int, p.NTotal*maxInt(p.MeanDailyInteractions, 1)),
		tokens:      newTraceTokenPool(p.NTotal * tokensPerPerson),
	}

	for i := range m.Population {
		m.Population[i] = newIndividual(i, p.DaysOfInteractions)
		m.Population[i].HouseholdID = m.Households.HouseholdOf(i)
		m.Population[i].MeanInteractions = p.MeanDailyInteractions
		m.Population[i].Hazard = rng.Exp1()
	}

	// Every event is scheduled at day = t + draw with t <= EndTime. Gamma
	// draws are clamped to maxEventDelay (drawlist.go); geometric-capped
	// and Bernoulli draws are already bounded by their own params, which
	// are themselves far smaller than maxEventDelay. Sizing by
	// maxEventDelay rather than maxInfectiousPeriod (a transmission-kernel
	// lookback bound, unrelated to how far out an event can be scheduled)
	// keeps every schedulable day in range.
	for k := ListKind(0); k < numListKinds; k++ {
		m.lists[k] = newEventList(k, p.EndTime+maxEventDelay+1)
	}

	scale := p.InfectiousRate / floatOrOne(p.MeanDailyInteractions)
	curve := infectiousCurve(p.MeanInfectiousPeriod, p.SDInfectiousPeriod, scale)
	asymptCurve := infectiousCurve(p.MeanInfectiousPeriod, p.SDInfectiousPeriod, scale*p.AsymptomaticInfectiousFactor)
	m.lists[ListPresymptomatic].infectiousCurve = curve
	m.lists[ListSymptomatic].infectiousCurve = curve
	m.lists[ListHospitalised].infectiousCurve = curve
	m.lists[ListAsymptomatic].infectiousCurve = asymptCurve

	m.drawSymptomOnset = newGammaDrawList(rng, p.MeanTimeToSymptoms, p.SDTimeToSymptoms, nDrawList)
	m.drawRecovery = newGammaDrawList(rng, p.MeanTimeToRecover, p.SDTimeToRecover, nDrawList)
	m.drawDeath = newGammaDrawList(rng, p.MeanTimeToDeath, p.SDTimeToDeath, nDrawList)
	m.drawAsymptRecovery = newGammaDrawList(rng, p.MeanAsymptToRecover, p.SDAsymptToRecover, nDrawList)
	m.drawTimeToHospital = newBernoulliDrawList(rng, p.MeanTimeToHospital, maxInfectiousPeriod, nDrawList)
	m.drawSymptomaticQuarantine = newGeometricCappedDrawList(rng, p.QuarantineDropoutSelf, p.QuarantineLengthSelf, nDrawList)
	m.drawTracedQuarantine = newGeometricCappedDrawList(rng, p.QuarantineDropoutTraced, p.QuarantineLengthTraced, nDrawList)
	m.drawTestResultQuarantine = newGeometricCappedDrawList(rng, p.QuarantineDropoutPositive, p.QuarantineLengthPositive, nDrawList)

	// App-user assignment is independent of the live AppTurnedOn toggle:
	// it reflects who will ever participate once the app is switched on,
	// not whether it happens to be on at construction time. Using only
	// the construction-time value would leave the whole population
	// without app users for the rest of the run whenever AppTurnedOnDay
	// activates the app later, since notifyContacts gates on app_user
	// being set, not on when it was set.
	appEverOn := p.AppTurnedOn || p.AppTurnedOnDay != 0
	for i := 0; i < p.NTotal; i++ {
		m.Population[i].AppUser = rng.Bernoulli(boolToFraction(appEverOn))
	}

	m.seedInfections()

	return m
}

func floatOrOne(v int) float64 {
	if v <= 0 {
		return 1
	}
	return float64(v)
}

func boolToFraction(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// seedInfections infects NSeedInfection individuals drawn uniformly with
// replacement from the whole population — duplicate draws are not
// filtered out (SPEC_FULL.md SUPPLEMENTED FEATURES). Runs at construction
// time, day 0, before the tick driver has ever called updateCounters, so
// it promotes day 0's presymptomatic/asymptomatic presence buckets into
// nCurrent itself; otherwise the seeds' presences would count as live
// nodes without ever having been promoted, and removing them later would
// drive nCurrent negative.
func (m *Model) seedInfections() {
	for i := 0; i < m.Params.NSeedInfection; i++ {
		who := m.RNG.UniformInt(m.Params.NTotal)
		m.newInfection(who, who)
	}
	m.lists[ListPresymptomatic].updateCounters(0)
	m.lists[ListAsymptomatic].updateCounters(0)
}

// NCurrent returns a list's running "still present" total, keyed by kind.
func (m *Model) NCurrent(kind ListKind) int { return m.lists[kind].NCurrent() }

// NTotal returns a list's running "ever added" total, keyed by kind.
func (m *Model) NTotal(kind ListKind) int { return m.lists[kind].NTotal() }

// CaseCount returns the cumulative count of confirmed cases (§3 GLOSSARY).
func (m *Model) CaseCount() int { return m.caseCount }

// TotalInfected returns the number of individuals who have ever left the
// Uninfected state.
func (m *Model) TotalInfected() int {
	n := 0
	for i := range m.Population {
		if m.Population[i].Infected() {
			n++
		}
	}
	return n
}

// OneTimeStep advances the simulation by exactly one day, following the
// fixed pipeline of §4.7. Returns 1 on success (§6 one_time_step).
func (m *Model) OneTimeStep() int {
	m.Day++
	t := m.Day

	m.tokens.reset()
	m.updatePolicy(t)

	for _, k := range []ListKind{ListSymptomatic, ListHospitalised, ListRecovered, ListDeath, ListTestTake, ListTestResult, ListQuarantineRelease} {
		m.lists[k].updateCounters(t)
	}

	daySlot := m.interactionDayIdx
	buildDailyNetwork(m.RNG, m.Population, m.interactions, daySlot, m.stubs)

	m.transmitAll(t, daySlot)

	m.drainSymptomatic(t)
	m.drainHospitalised(t)
	m.drainRecovered(t)
	m.drainDeath(t)
	m.drainTestTake(t)
	m.drainTestResult(t)
	m.drainQuarantineRelease(t)

	for _, k := range []ListKind{ListPresymptomatic, ListAsymptomatic, ListQuarantined} {
		m.lists[k].updateCounters(t)
	}

	for i := range m.Population {
		if m.Population[i].Quarantined {
			m.QuarantinePersonDays++
		}
	}

	m.interactionDayIdx = ringInc(m.interactionDayIdx, m.Params.DaysOfInteractions)

	return 1
}

// updatePolicy flips configured policy booleans at their on/off day
// numbers. The tick driver calls it at the start of every step, since
// nothing else does.
func (m *Model) updatePolicy(t int) {
	if m.Params.AppTurnedOnDay != 0 && t == m.Params.AppTurnedOnDay {
		m.Params.AppTurnedOn = true
	}
	if m.Params.LockdownOnDay != 0 && t == m.Params.LockdownOnDay {
		m.Params.LockdownOn = true
	}
	if m.Params.LockdownOffDay != 0 && t == m.Params.LockdownOffDay {
		m.Params.LockdownOn = false
	}
}
