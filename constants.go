package covidabm

// Fixed sizing constants, values matching the published OpenABM-Covid19
// defaults.
const (
	// nDrawList is the length of each precomputed draw-list cache (§4.2).
	nDrawList = 10000
	// maxInfectiousPeriod bounds how many days back the transmission
	// kernel walks when accumulating hazard from infectious contacts (§4.4).
	maxInfectiousPeriod = 28
	// eventPoolMultiplier is the constant multiple of n_total used to size
	// the event pool (§4.1: "six times suffices for the kinds used here").
	eventPoolMultiplier = 6
	// tokensPerPerson sizes the trace-token pool relative to population.
	tokensPerPerson = 3
	// maxEventDelay bounds how many days past the day it is drawn a
	// gamma-sampled transition delay (symptom onset, recovery, death,
	// asymptomatic recovery) may schedule into. Gamma draws have no
	// natural upper bound; the draw-list cache clamps to this value so
	// event-list day arrays can be sized to a fixed horizon beyond
	// end_time rather than an unbounded one.
	maxEventDelay = 365
)
