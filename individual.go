package covidabm

// Status is an individual's disease state (§3, §4.5).
type Status int

const (
	Uninfected Status = iota
	Presymptomatic
	Asymptomatic
	Symptomatic
	Hospitalised
	Recovered
	Death
)

func (s Status) String() string {
	switch s {
	case Uninfected:
		return "uninfected"
	case Presymptomatic:
		return "presymptomatic"
	case Asymptomatic:
		return "asymptomatic"
	case Symptomatic:
		return "symptomatic"
	case Hospitalised:
		return "hospitalised"
	case Recovered:
		return "recovered"
	case Death:
		return "death"
	default:
		return "unknown"
	}
}

// TestResult is the state of an individual's test slot (§4.6): NoTest when
// no test is in flight, TestOrdered from the order until its result is
// processed. The engine never stores TestNegative or TestPositive in the
// slot; the sampled outcome is carried in Individual.PendingTestPositive.
type TestResult int8

const (
	NoTest TestResult = iota
	TestOrdered
	TestNegative
	TestPositive
)

// unsetDay is the sentinel for "this timestamp has not happened".
const unsetDay = -1

// Individual is one agent's complete mutable state. Identity is a stable
// dense integer: its own slice index in Model.Population, never
// reassigned for the lifetime of a run.
type Individual struct {
	ID     int
	Status Status

	MeanInteractions int
	HouseholdID      int

	AppUser    bool
	IsCase     bool
	Quarantined bool

	TracedOnThisTrace bool
	IndexTraceToken   int

	Hazard float64

	TimeInfected      int
	TimeSymptomatic   int
	TimeAsymptomatic  int
	TimeHospitalised  int
	TimeRecovered     int
	TimeDeath         int
	TimeQuarantined   int

	// CurrentEvent is the handle of the scheduled transition out of the
	// individual's current status, sitting in the event list matching the
	// status's next-event-type (§3 invariant). PresenceEvent is a second,
	// internal handle sitting in the individual's CURRENT kind's own list,
	// dated the day that kind was entered: it exists purely so the
	// transmission kernel can bucket-scan "who has been infectious since
	// day d" without an O(N) population scan (§4.4). Both are reassigned
	// together on every disease transition: the fired CurrentEvent becomes
	// the new PresenceEvent. In RECOVERED or DEATH, PresenceEvent keeps the
	// terminal list's handle and CurrentEvent is noEvent.
	CurrentEvent            int
	PresenceEvent           int
	ScheduledQuarantineEnd  int
	QuarantineReleaseEvent  int
	QuarantineEvent         int
	ScheduledTest           TestResult
	TestEvent               int
	PendingTestPositive     bool
	TraceTokenDay           int

	// InteractionHead/InteractionCount are indexed by day-of-week slot
	// (len == daysOfInteractions, §3, §4.3), recycled wrap-around by
	// buildDailyNetwork rather than per individual.
	InteractionHead  []int
	InteractionCount []int
}

// newIndividual returns a zeroed individual with every timestamp and handle
// at its sentinel value, ready to join the population at index id.
func newIndividual(id, daysOfInteractions int) Individual {
	ind := Individual{
		ID:                     id,
		Status:                 Uninfected,
		HouseholdID:            -1,
		IndexTraceToken:        noToken,
		TimeInfected:           unsetDay,
		TimeSymptomatic:        unsetDay,
		TimeAsymptomatic:       unsetDay,
		TimeHospitalised:       unsetDay,
		TimeRecovered:          unsetDay,
		TimeDeath:              unsetDay,
		TimeQuarantined:        unsetDay,
		CurrentEvent:           noEvent,
		PresenceEvent:          noEvent,
		ScheduledQuarantineEnd: unsetDay,
		QuarantineReleaseEvent: noEvent,
		QuarantineEvent:        noEvent,
		ScheduledTest:          NoTest,
		TestEvent:              noEvent,
		TraceTokenDay:          unsetDay,
		InteractionHead:        make([]int, daysOfInteractions),
		InteractionCount:       make([]int, daysOfInteractions),
	}
	for d := range ind.InteractionHead {
		ind.InteractionHead[d] = noInteraction
	}
	return ind
}

// Infected reports whether the individual has ever been infected. This is
// the invariant of §3: Status == Uninfected iff TimeInfected == unsetDay.
func (ind *Individual) Infected() bool {
	return ind.TimeInfected != unsetDay
}
