package covidabm

// drainSymptomatic processes today's due presymptomatic -> symptomatic
// transitions (§4.5 row 2): evicts the presymptomatic presence marker,
// schedules the next transition (hospitalisation, or direct recovery when
// the hospital-admission draw misses — a completion the literal
// transition table omits but mass conservation across §8's invariants
// requires), and invokes the on-symptoms intervention.
//
// The fired CurrentEvent handle h already lives in ListSymptomatic's
// day-t bucket (scheduled there when symptom onset was first drawn), and
// OneTimeStep's step-1 updateCounters(t) has already promoted that
// bucket into ListSymptomatic.nCurrent before this runs. So h becomes
// the new PresenceEvent directly rather than being released and
// replaced: replacing it would add a second, as-yet-unpromoted live node
// to the same bucket, desynchronising nCurrent from the live event count.
func (m *Model) drainSymptomatic(t int) {
	for _, h := range m.lists[ListSymptomatic].handlesAt(m.events, t) {
		infected := m.events.individualAt(h)
		ind := &m.Population[infected]

		m.lists[ListPresymptomatic].remove(m.events, ind.PresenceEvent, ind.TimeInfected)

		ind.Status = Symptomatic
		ind.TimeSymptomatic = t
		ind.CurrentEvent = noEvent
		ind.PresenceEvent = h

		hospWait := m.drawTimeToHospital.sample()
		if hospWait < maxInfectiousPeriod {
			day := t + hospWait
			ind.CurrentEvent = m.lists[ListHospitalised].add(m.events, infected, day)
		} else {
			day := t + m.drawRecovery.sample()
			ind.CurrentEvent = m.lists[ListRecovered].add(m.events, infected, day)
		}

		m.onSymptoms(infected, t)
	}
}

// drainHospitalised processes today's due symptomatic -> hospitalised
// transitions (§4.5 row 3): schedules death (probability cfr) or
// recovery, and releases any held quarantine (on-hospitalised). As in
// drainSymptomatic, the fired handle becomes the new presence instead of
// being released and replaced.
func (m *Model) drainHospitalised(t int) {
	for _, h := range m.lists[ListHospitalised].handlesAt(m.events, t) {
		infected := m.events.individualAt(h)
		ind := &m.Population[infected]

		m.lists[ListSymptomatic].remove(m.events, ind.PresenceEvent, ind.TimeSymptomatic)

		ind.Status = Hospitalised
		ind.TimeHospitalised = t
		ind.CurrentEvent = noEvent
		ind.PresenceEvent = h

		if m.RNG.Bernoulli(m.Params.CFR) {
			day := t + m.drawDeath.sample()
			ind.CurrentEvent = m.lists[ListDeath].add(m.events, infected, day)
		} else {
			day := t + m.drawRecovery.sample()
			ind.CurrentEvent = m.lists[ListRecovered].add(m.events, infected, day)
		}

		m.onHospitalised(infected, t)
	}
}

// drainRecovered processes today's due recovery transitions, arriving from
// any of ASYMPT, SYMPT (direct) or HOSP (§4.5 rows 4 and 6). Recovered is
// terminal, so the fired handle is kept as a permanent presence rather
// than released: nCurrent for RECOVERED is a cumulative, never-decreasing
// count, matching how DEATH is handled below.
func (m *Model) drainRecovered(t int) {
	for _, h := range m.lists[ListRecovered].handlesAt(m.events, t) {
		infected := m.events.individualAt(h)
		ind := &m.Population[infected]

		switch ind.Status {
		case Asymptomatic:
			m.lists[ListAsymptomatic].remove(m.events, ind.PresenceEvent, ind.TimeAsymptomatic)
		case Symptomatic:
			m.lists[ListSymptomatic].remove(m.events, ind.PresenceEvent, ind.TimeSymptomatic)
		case Hospitalised:
			m.lists[ListHospitalised].remove(m.events, ind.PresenceEvent, ind.TimeHospitalised)
		}

		ind.Status = Recovered
		ind.TimeRecovered = t
		ind.CurrentEvent = noEvent
		ind.PresenceEvent = h
	}
}

// drainDeath processes today's due HOSP -> DEATH transitions (§4.5 row 5).
// Terminal, like RECOVERED: the fired handle is kept as a permanent
// presence rather than released.
func (m *Model) drainDeath(t int) {
	for _, h := range m.lists[ListDeath].handlesAt(m.events, t) {
		infected := m.events.individualAt(h)
		ind := &m.Population[infected]

		m.lists[ListHospitalised].remove(m.events, ind.PresenceEvent, ind.TimeHospitalised)

		ind.Status = Death
		ind.TimeDeath = t
		ind.CurrentEvent = noEvent
		ind.PresenceEvent = h
	}
}
