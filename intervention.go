package covidabm

// quarantineUntil enqueues or extends a quarantine release (§4.6). On
// first quarantine of an individual it also adds a presence marker to
// ListQuarantined dated today, mirroring the presence-bucket pattern used
// for the infectious kinds. maxof selects the "never move release
// earlier" monotonic semantics (§8 law); maxof=false is a hard override.
func (m *Model) quarantineUntil(indiv, tRelease int, maxof bool) {
	t := m.Day
	if tRelease == t {
		return
	}
	ind := &m.Population[indiv]

	if !ind.Quarantined {
		ind.Quarantined = true
		ind.TimeQuarantined = t
		ind.QuarantineEvent = m.lists[ListQuarantined].add(m.events, indiv, t)
		ind.ScheduledQuarantineEnd = tRelease
		ind.QuarantineReleaseEvent = m.lists[ListQuarantineRelease].add(m.events, indiv, tRelease)
		return
	}

	if maxof && tRelease <= ind.ScheduledQuarantineEnd {
		return
	}
	m.lists[ListQuarantineRelease].remove(m.events, ind.QuarantineReleaseEvent, ind.ScheduledQuarantineEnd)
	ind.ScheduledQuarantineEnd = tRelease
	ind.QuarantineReleaseEvent = m.lists[ListQuarantineRelease].add(m.events, indiv, tRelease)
}

// quarantineRelease cancels any pending release and pending quarantine
// presence, clearing the quarantined flag (§4.6).
func (m *Model) quarantineRelease(indiv int) {
	ind := &m.Population[indiv]
	if !ind.Quarantined {
		return
	}
	m.lists[ListQuarantineRelease].remove(m.events, ind.QuarantineReleaseEvent, ind.ScheduledQuarantineEnd)
	m.lists[ListQuarantined].remove(m.events, ind.QuarantineEvent, ind.TimeQuarantined)
	ind.Quarantined = false
	ind.QuarantineReleaseEvent = noEvent
	ind.QuarantineEvent = noEvent
	ind.ScheduledQuarantineEnd = unsetDay
}

// drainQuarantineRelease processes today's due quarantine releases (§4.7
// step 4, last in the drain order since test results must land first).
func (m *Model) drainQuarantineRelease(t int) {
	for _, h := range m.lists[ListQuarantineRelease].handlesAt(m.events, t) {
		indiv := m.events.individualAt(h)
		m.quarantineRelease(indiv)
	}
}

// orderTest enqueues a TEST_TAKE event for day, unless a test is already
// in flight or the individual is already a confirmed case (§4.6 Test
// pipeline: Order).
func (m *Model) orderTest(indiv, day int) {
	ind := &m.Population[indiv]
	if ind.ScheduledTest != NoTest || ind.IsCase {
		return
	}
	ind.ScheduledTest = TestOrdered
	ind.TestEvent = m.lists[ListTestTake].add(m.events, indiv, day)
}

// drainTestTake processes today's due test samples: positive iff infected
// long enough to clear the test's insensitive period (§4.6 Test pipeline:
// Take).
func (m *Model) drainTestTake(t int) {
	for _, h := range m.lists[ListTestTake].handlesAt(m.events, t) {
		indiv := m.events.individualAt(h)
		ind := &m.Population[indiv]
		m.lists[ListTestTake].remove(m.events, h, t)

		ind.PendingTestPositive = ind.Infected() && (t-ind.TimeInfected) >= m.Params.TestInsensitivePeriod
		day := t + m.Params.TestResultWait
		ind.TestEvent = m.lists[ListTestResult].add(m.events, indiv, day)
	}
}

// drainTestResult processes today's due test results (§4.6 Test pipeline:
// Result). Negative releases any held quarantine; positive marks the
// individual a case and triggers the positive-result cascade unless
// they're already hospitalised under clinical diagnosis.
func (m *Model) drainTestResult(t int) {
	for _, h := range m.lists[ListTestResult].handlesAt(m.events, t) {
		indiv := m.events.individualAt(h)
		ind := &m.Population[indiv]
		m.lists[ListTestResult].remove(m.events, h, t)

		if ind.PendingTestPositive {
			ind.IsCase = true
			m.caseCount++
			if !(ind.Status == Hospitalised && m.Params.AllowClinicalDiagnosis) {
				m.onPositiveResult(indiv, t)
			}
		} else if ind.Quarantined {
			m.quarantineRelease(indiv)
		}

		ind.ScheduledTest = NoTest
		ind.TestEvent = noEvent
	}
}

// onSymptoms fires when an individual transitions to SYMPTOMATIC (§4.6).
func (m *Model) onSymptoms(indiv, t int) {
	ind := &m.Population[indiv]
	token := m.indexTraceToken(indiv)

	if ind.Quarantined || m.RNG.Bernoulli(m.Params.SelfQuarantineFraction) {
		day := t + m.drawSymptomaticQuarantine.sample()
		m.quarantineUntil(indiv, day, true)
		if m.Params.QuarantineHouseholdOnSymptoms {
			m.quarantineHousehold(indiv, day, false)
		}
	}
	if m.Params.TestOnSymptoms {
		m.orderTest(indiv, t+m.Params.TestOrderWait)
	}
	if m.Params.TraceOnSymptoms && (m.Params.QuarantineOnTraced || m.Params.TestOnTraced) {
		m.notifyContacts(indiv, 1, token, t)
	}
}

// onHospitalised fires when an individual transitions to HOSPITALISED
// (§4.5 row 3 side effect): releases any held quarantine, and runs the
// legacy quarantine_contacts path kept alongside notifyContacts (DESIGN
// NOTES open question — see quarantineContacts).
func (m *Model) onHospitalised(indiv, t int) {
	ind := &m.Population[indiv]
	if ind.Quarantined {
		m.quarantineRelease(indiv)
	}
	m.quarantineContacts(indiv, t+m.Params.QuarantineLengthPositive)
}

// onPositiveResult fires from drainTestResult on a positive result (§4.6).
func (m *Model) onPositiveResult(indiv, t int) {
	ind := &m.Population[indiv]
	token := m.indexTraceToken(indiv)

	if ind.Status != Hospitalised {
		day := t + m.drawTestResultQuarantine.sample()
		m.quarantineUntil(indiv, day, true)
		if m.Params.QuarantineHouseholdOnPositive {
			m.quarantineHousehold(indiv, day, m.Params.QuarantineHouseholdContactsOnPositive)
		}
	}
	if m.Params.TraceOnPositive {
		m.notifyContacts(indiv, 1, token, t)
	}
}

// quarantineHousehold applies the same release time to every other member
// of indiv's household (§4.6). contactTrace additionally starts a
// depth-1 notifyContacts cascade from each housemate.
func (m *Model) quarantineHousehold(indiv, releaseDay int, contactTrace bool) {
	hid := m.Population[indiv].HouseholdID
	if hid < 0 {
		return
	}
	for _, member := range m.Households.Members(hid) {
		if member == indiv {
			continue
		}
		m.quarantineUntil(member, releaseDay, true)
		if contactTrace {
			token := m.indexTraceToken(member)
			m.notifyContacts(member, 1, token, m.Day)
		}
	}
}

// notifyContacts walks indiv's interaction history over the last
// quarantine_days days and recurses into onTraced for each traceable,
// app-using contact (§4.6). No-op unless indiv is an app user and the app
// is switched on.
func (m *Model) notifyContacts(indiv, depth, token, t int) {
	ind := &m.Population[indiv]
	if !ind.AppUser || !m.Params.AppTurnedOn {
		return
	}

	d := m.Params.DaysOfInteractions
	for back := 0; back < m.Params.QuarantineDays && back < d; back++ {
		slot := m.interactionDayIdx - back
		for slot < 0 {
			slot += d
		}
		slot = slot % d

		h := ind.InteractionHead[slot]
		for h != noInteraction {
			node := &m.interactions.nodes[h]
			contact := node.other
			if m.Population[contact].AppUser {
				if node.traceable == TraceUnknown {
					if m.RNG.Bernoulli(m.Params.TraceableInteractionFraction) {
						node.traceable = TraceYes
					} else {
						node.traceable = TraceNo
					}
				}
				if node.traceable == TraceYes {
					contactTime := t - back
					m.onTraced(contact, contactTime, depth, token)
				}
			}
			h = node.next
		}
	}
}

// onTraced is invoked for each traced contact. Terminates at hospitalised
// or already-a-case individuals, and at the configured depth bound — the
// sole cycle-termination mechanism; the shared token threads through
// purely for cascade identity, not as a visited-set.
func (m *Model) onTraced(indiv, contactTime, depth, token int) {
	ind := &m.Population[indiv]
	if ind.Status == Hospitalised || ind.IsCase {
		return
	}
	ind.IndexTraceToken = token
	ind.TraceTokenDay = m.Day
	ind.TracedOnThisTrace = true

	t := m.Day
	if m.Params.QuarantineOnTraced {
		day := t + m.drawTracedQuarantine.sample()
		m.quarantineUntil(indiv, day, true)
		if m.Params.QuarantineHouseholdOnTraced {
			m.quarantineHousehold(indiv, day, false)
		}
	}
	if m.Params.TestOnTraced {
		day := maxInt(t+m.Params.TestOrderWait, contactTime+m.Params.TestInsensitivePeriod)
		m.orderTest(indiv, day)
	}
	if depth < m.Params.TracingNetworkDepth {
		m.notifyContacts(indiv, depth+1, token, t)
	}
}

// quarantineContacts is the legacy hospitalisation-transition path: it
// walks today's interaction list and quarantines contacts directly,
// starting at index 1 rather than 0 and so deliberately skipping the
// first contact of the day. notifyContacts is the authoritative tracing
// path; this one is carried for behavioural parity and is pinned by a
// regression test.
func (m *Model) quarantineContacts(indiv, releaseDay int) {
	slot := m.interactionDayIdx
	var neighbors []int
	h := m.Population[indiv].InteractionHead[slot]
	for h != noInteraction {
		neighbors = append(neighbors, m.interactions.nodes[h].other)
		h = m.interactions.nodes[h].next
	}
	for idx := 1; idx < len(neighbors); idx++ {
		m.quarantineUntil(neighbors[idx], releaseDay, true)
	}
}

// indexTraceToken lazily allocates the root token for one tracing cascade,
// memoised for the remainder of today (§4.6, GLOSSARY "index trace
// token").
func (m *Model) indexTraceToken(indiv int) int {
	ind := &m.Population[indiv]
	if ind.TraceTokenDay == m.Day && ind.IndexTraceToken != noToken {
		return ind.IndexTraceToken
	}
	tok := m.tokens.newToken()
	ind.IndexTraceToken = tok
	ind.TraceTokenDay = m.Day
	ind.TracedOnThisTrace = true
	return tok
}
