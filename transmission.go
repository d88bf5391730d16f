package covidabm

import "math"

// infectiousCurve evaluates a Gamma(mean, sd) probability density at
// integer day offsets 0..maxInfectiousPeriod-1 and scales it by scale,
// giving the per-contact hazard decrement. transmitKind applies offset
// t-1-d on day t to an infector who entered the kind's state on day d, so
// offset k is used k+1 days after entry (§4.4, SPEC_FULL.md SUPPLEMENTED
// FEATURES: "gamma_rate_curve" in the original).
func infectiousCurve(mean, sd, scale float64) []float64 {
	curve := make([]float64, maxInfectiousPeriod)
	if mean <= 0 {
		return curve
	}
	shape, gscale := gammaShapeScale(mean, sd)
	for d := 0; d < maxInfectiousPeriod; d++ {
		x := float64(d)
		if x == 0 {
			x = 1e-9
		}
		curve[d] = gammaPDF(x, shape, gscale) * scale
	}
	return curve
}

// gammaPDF evaluates the Gamma(shape, scale) density at x.
func gammaPDF(x, shape, scale float64) float64 {
	if x <= 0 {
		return 0
	}
	logPDF := (shape-1)*math.Log(x) - x/scale - lgamma(shape) - shape*math.Log(scale)
	return math.Exp(logPDF)
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// transmitAll runs the transmission kernel for day t over all four
// infectious kinds (§4.4). daySlot is the ring index today's interaction
// network was just built into.
func (m *Model) transmitAll(t, daySlot int) {
	for _, kind := range []ListKind{ListPresymptomatic, ListSymptomatic, ListAsymptomatic, ListHospitalised} {
		m.transmitKind(kind, t, daySlot)
	}
}

func (m *Model) transmitKind(kind ListKind, t, daySlot int) {
	list := m.lists[kind]
	lo := maxInt(0, t-maxInfectiousPeriod)
	for d := lo; d < t; d++ {
		offset := t - 1 - d
		if offset < 0 || offset >= len(list.infectiousCurve) {
			continue
		}
		decrement := list.infectiousCurve[offset]
		if decrement <= 0 {
			continue
		}
		for _, h := range list.handlesAt(m.events, d) {
			infector := m.events.individualAt(h)
			m.infectContactsOf(infector, daySlot, decrement, t)
		}
	}
}

// infectContactsOf walks infector's today interaction list (§4.4) and
// decrements hazard on every uninfected contact, in the list's physical
// order.
func (m *Model) infectContactsOf(infector, daySlot int, decrement float64, t int) {
	h := m.Population[infector].InteractionHead[daySlot]
	for h != noInteraction {
		node := m.interactions.nodes[h]
		contact := node.other
		if m.Population[contact].Status == Uninfected {
			m.Population[contact].Hazard -= decrement
			if m.Population[contact].Hazard < 0 {
				m.newInfection(contact, infector)
			}
		}
		h = node.next
	}
}

// newInfection moves an uninfected individual into the infected branch of
// the disease state machine (§4.4, §4.5) and schedules its forward
// trajectory. infector == infected is permitted only for seed infections
// (§8 law); the transmission kernel itself never calls this with equal
// arguments since it only ever touches Uninfected contacts.
func (m *Model) newInfection(infected, infector int) {
	t := m.Day
	ind := &m.Population[infected]
	ind.TimeInfected = t

	if m.RNG.Bernoulli(m.Params.FractionAsymptomatic) {
		ind.Status = Asymptomatic
		ind.TimeAsymptomatic = t
		ind.PresenceEvent = m.lists[ListAsymptomatic].add(m.events, infected, t)
		day := t + m.drawAsymptRecovery.sample()
		ind.CurrentEvent = m.lists[ListRecovered].add(m.events, infected, day)
	} else {
		ind.Status = Presymptomatic
		ind.PresenceEvent = m.lists[ListPresymptomatic].add(m.events, infected, t)
		day := t + m.drawSymptomOnset.sample()
		ind.CurrentEvent = m.lists[ListSymptomatic].add(m.events, infected, day)
	}
}
