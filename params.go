package covidabm

import "github.com/pkg/errors"

// Params is the immutable construction-contract snapshot taken at model
// construction (§6). A small subset (the booleans gated by the *_on/*_off
// day fields) is mutated only by the policy-update hook at the top of each
// tick (§4.6), never elsewhere; the day fields themselves are not changed.
type Params struct {
	NTotal           int
	NSeedInfection   int
	EndTime          int
	MeanDailyInteractions int
	DaysOfInteractions    int
	HouseholdSize         int

	InfectiousRate               float64
	MeanInfectiousPeriod         float64
	SDInfectiousPeriod           float64
	AsymptomaticInfectiousFactor float64
	FractionAsymptomatic         float64

	MeanTimeToSymptoms float64
	SDTimeToSymptoms   float64
	MeanTimeToRecover  float64
	SDTimeToRecover    float64
	MeanTimeToDeath    float64
	SDTimeToDeath      float64
	MeanAsymptToRecover float64
	SDAsymptToRecover   float64
	MeanTimeToHospital  float64

	CFR float64

	QuarantineDays int

	QuarantineDropoutSelf     float64
	QuarantineDropoutTraced   float64
	QuarantineDropoutPositive float64
	QuarantineLengthSelf      int
	QuarantineLengthTraced    int
	QuarantineLengthPositive  int

	TestInsensitivePeriod int
	TestOrderWait         int
	TestResultWait        int

	SelfQuarantineFraction      float64
	QuarantineFraction          float64
	TraceableInteractionFraction float64
	TracingNetworkDepth         int

	AppTurnedOn    bool
	LockdownOn     bool
	QuarantineOnTraced bool
	TestOnTraced       bool
	TraceOnSymptoms    bool
	TraceOnPositive    bool

	QuarantineHouseholdOnSymptoms         bool
	QuarantineHouseholdOnPositive         bool
	QuarantineHouseholdOnTraced           bool
	QuarantineHouseholdContactsOnPositive bool

	TestOnSymptoms        bool
	AllowClinicalDiagnosis bool

	AppTurnedOnDay int
	LockdownOnDay  int
	LockdownOffDay int

	Seed int64
}

// Validate checks the construction-contract's semantic constraints,
// wrapping each failure with the offending section name.
func (p *Params) Validate() error {
	if p.NTotal <= 0 {
		return errors.Wrapf(errInvalidInt("n_total", p.NTotal, "must be positive"), "population")
	}
	if p.NSeedInfection < 0 || p.NSeedInfection > p.NTotal {
		return errors.Wrapf(errInvalidInt("n_seed_infection", p.NSeedInfection, "must be within [0, n_total]"), "population")
	}
	if p.EndTime <= 0 {
		return errors.Wrapf(errInvalidInt("end_time", p.EndTime, "must be positive"), "schedule")
	}
	if p.DaysOfInteractions <= 0 {
		return errors.Wrapf(errInvalidInt("days_of_interactions", p.DaysOfInteractions, "must be positive"), "network")
	}
	if p.MeanDailyInteractions < 0 {
		return errors.Wrapf(errInvalidInt("mean_daily_interactions", p.MeanDailyInteractions, "must be non-negative"), "network")
	}
	if p.InfectiousRate < 0 {
		return errors.Wrapf(errInvalidFloat("infectious_rate", p.InfectiousRate, "must be non-negative"), "transmission")
	}
	if p.MeanInfectiousPeriod <= 0 || p.SDInfectiousPeriod < 0 {
		return errors.Wrapf(errInvalidFloat("mean_infectious_period", p.MeanInfectiousPeriod, "mean must be positive, sd non-negative"), "transmission")
	}
	if p.FractionAsymptomatic < 0 || p.FractionAsymptomatic > 1 {
		return errors.Wrapf(errInvalidFloat("fraction_asymptomatic", p.FractionAsymptomatic, "must be within [0, 1]"), "transmission")
	}
	if p.CFR < 0 || p.CFR > 1 {
		return errors.Wrapf(errInvalidFloat("cfr", p.CFR, "must be within [0, 1]"), "disease")
	}
	if p.SelfQuarantineFraction < 0 || p.SelfQuarantineFraction > 1 {
		return errors.Wrapf(errInvalidFloat("self_quarantine_fraction", p.SelfQuarantineFraction, "must be within [0, 1]"), "intervention")
	}
	if p.TraceableInteractionFraction < 0 || p.TraceableInteractionFraction > 1 {
		return errors.Wrapf(errInvalidFloat("traceable_interaction_fraction", p.TraceableInteractionFraction, "must be within [0, 1]"), "intervention")
	}
	if p.TracingNetworkDepth < 0 {
		return errors.Wrapf(errInvalidInt("tracing_network_depth", p.TracingNetworkDepth, "must be non-negative"), "intervention")
	}
	if p.QuarantineDays <= 0 {
		return errors.Wrapf(errInvalidInt("quarantine_days", p.QuarantineDays, "must be positive"), "intervention")
	}
	if p.HouseholdSize <= 0 {
		return errors.Wrapf(errInvalidInt("household_size", p.HouseholdSize, "must be positive"), "population")
	}

	capacity := p.NTotal * eventPoolMultiplier
	_ = capacity // NewModel (model.go) always sizes the event pool to this multiple of n_total, so no separate capacity check is made
	return nil
}

func errInvalidInt(name string, v int, reason string) error {
	return errors.Errorf(InvalidIntParameterError, name, v, reason)
}

func errInvalidFloat(name string, v float64, reason string) error {
	return errors.Errorf(InvalidFloatParameterError, name, v, reason)
}
