package covidabm

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// tomlParams mirrors Params with TOML field tags under a single
// [simulation] table.
type tomlParams struct {
	Simulation struct {
		NTotal                int     `toml:"n_total"`
		NSeedInfection        int     `toml:"n_seed_infection"`
		EndTime               int     `toml:"end_time"`
		MeanDailyInteractions int     `toml:"mean_daily_interactions"`
		DaysOfInteractions    int     `toml:"days_of_interactions"`
		HouseholdSize         int     `toml:"household_size"`

		InfectiousRate               float64 `toml:"infectious_rate"`
		MeanInfectiousPeriod         float64 `toml:"mean_infectious_period"`
		SDInfectiousPeriod           float64 `toml:"sd_infectious_period"`
		AsymptomaticInfectiousFactor float64 `toml:"asymptomatic_infectious_factor"`
		FractionAsymptomatic         float64 `toml:"fraction_asymptomatic"`

		MeanTimeToSymptoms  float64 `toml:"mean_time_to_symptoms"`
		SDTimeToSymptoms    float64 `toml:"sd_time_to_symptoms"`
		MeanTimeToRecover   float64 `toml:"mean_time_to_recover"`
		SDTimeToRecover     float64 `toml:"sd_time_to_recover"`
		MeanTimeToDeath     float64 `toml:"mean_time_to_death"`
		SDTimeToDeath       float64 `toml:"sd_time_to_death"`
		MeanAsymptToRecover float64 `toml:"mean_asympt_to_recover"`
		SDAsymptToRecover   float64 `toml:"sd_asympt_to_recover"`
		MeanTimeToHospital  float64 `toml:"mean_time_to_hospital"`

		CFR float64 `toml:"cfr"`

		QuarantineDays int `toml:"quarantine_days"`

		QuarantineDropoutSelf     float64 `toml:"quarantine_dropout_self"`
		QuarantineDropoutTraced   float64 `toml:"quarantine_dropout_traced"`
		QuarantineDropoutPositive float64 `toml:"quarantine_dropout_positive"`
		QuarantineLengthSelf      int     `toml:"quarantine_length_self"`
		QuarantineLengthTraced    int     `toml:"quarantine_length_traced"`
		QuarantineLengthPositive  int     `toml:"quarantine_length_positive"`

		TestInsensitivePeriod int `toml:"test_insensitive_period"`
		TestOrderWait         int `toml:"test_order_wait"`
		TestResultWait        int `toml:"test_result_wait"`

		SelfQuarantineFraction       float64 `toml:"self_quarantine_fraction"`
		QuarantineFraction           float64 `toml:"quarantine_fraction"`
		TraceableInteractionFraction float64 `toml:"traceable_interaction_fraction"`
		TracingNetworkDepth          int     `toml:"tracing_network_depth"`

		AppTurnedOn        bool `toml:"app_turned_on"`
		LockdownOn         bool `toml:"lockdown_on"`
		QuarantineOnTraced bool `toml:"quarantine_on_traced"`
		TestOnTraced       bool `toml:"test_on_traced"`
		TraceOnSymptoms    bool `toml:"trace_on_symptoms"`
		TraceOnPositive    bool `toml:"trace_on_positive"`

		QuarantineHouseholdOnSymptoms         bool `toml:"quarantine_household_on_symptoms"`
		QuarantineHouseholdOnPositive         bool `toml:"quarantine_household_on_positive"`
		QuarantineHouseholdOnTraced           bool `toml:"quarantine_household_on_traced"`
		QuarantineHouseholdContactsOnPositive bool `toml:"quarantine_household_contacts_on_positive"`

		TestOnSymptoms         bool `toml:"test_on_symptoms"`
		AllowClinicalDiagnosis bool `toml:"allow_clinical_diagnosis"`

		AppTurnedOnDay int `toml:"app_turned_on_day"`
		LockdownOnDay  int `toml:"lockdown_on_day"`
		LockdownOffDay int `toml:"lockdown_off_day"`

		Seed int64 `toml:"seed"`
	} `toml:"simulation"`
}

// LoadParams decodes a TOML configuration file into a validated Params
// snapshot (teacher: loader.go's DecodeFile-based loaders).
func LoadParams(path string) (*Params, error) {
	var raw tomlParams
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, errors.Wrapf(err, "decoding config file %s", path)
	}

	s := raw.Simulation
	p := &Params{
		NTotal:                s.NTotal,
		NSeedInfection:        s.NSeedInfection,
		EndTime:               s.EndTime,
		MeanDailyInteractions: s.MeanDailyInteractions,
		DaysOfInteractions:    s.DaysOfInteractions,
		HouseholdSize:         s.HouseholdSize,

		InfectiousRate:               s.InfectiousRate,
		MeanInfectiousPeriod:         s.MeanInfectiousPeriod,
		SDInfectiousPeriod:           s.SDInfectiousPeriod,
		AsymptomaticInfectiousFactor: s.AsymptomaticInfectiousFactor,
		FractionAsymptomatic:         s.FractionAsymptomatic,

		MeanTimeToSymptoms:  s.MeanTimeToSymptoms,
		SDTimeToSymptoms:    s.SDTimeToSymptoms,
		MeanTimeToRecover:   s.MeanTimeToRecover,
		SDTimeToRecover:     s.SDTimeToRecover,
		MeanTimeToDeath:     s.MeanTimeToDeath,
		SDTimeToDeath:       s.SDTimeToDeath,
		MeanAsymptToRecover: s.MeanAsymptToRecover,
		SDAsymptToRecover:   s.SDAsymptToRecover,
		MeanTimeToHospital:  s.MeanTimeToHospital,

		CFR: s.CFR,

		QuarantineDays: s.QuarantineDays,

		QuarantineDropoutSelf:     s.QuarantineDropoutSelf,
		QuarantineDropoutTraced:   s.QuarantineDropoutTraced,
		QuarantineDropoutPositive: s.QuarantineDropoutPositive,
		QuarantineLengthSelf:      s.QuarantineLengthSelf,
		QuarantineLengthTraced:    s.QuarantineLengthTraced,
		QuarantineLengthPositive:  s.QuarantineLengthPositive,

		TestInsensitivePeriod: s.TestInsensitivePeriod,
		TestOrderWait:         s.TestOrderWait,
		TestResultWait:        s.TestResultWait,

		SelfQuarantineFraction:       s.SelfQuarantineFraction,
		QuarantineFraction:           s.QuarantineFraction,
		TraceableInteractionFraction: s.TraceableInteractionFraction,
		TracingNetworkDepth:          s.TracingNetworkDepth,

		AppTurnedOn:        s.AppTurnedOn,
		LockdownOn:         s.LockdownOn,
		QuarantineOnTraced: s.QuarantineOnTraced,
		TestOnTraced:       s.TestOnTraced,
		TraceOnSymptoms:    s.TraceOnSymptoms,
		TraceOnPositive:    s.TraceOnPositive,

		QuarantineHouseholdOnSymptoms:         s.QuarantineHouseholdOnSymptoms,
		QuarantineHouseholdOnPositive:         s.QuarantineHouseholdOnPositive,
		QuarantineHouseholdOnTraced:           s.QuarantineHouseholdOnTraced,
		QuarantineHouseholdContactsOnPositive: s.QuarantineHouseholdContactsOnPositive,

		TestOnSymptoms:         s.TestOnSymptoms,
		AllowClinicalDiagnosis: s.AllowClinicalDiagnosis,

		AppTurnedOnDay: s.AppTurnedOnDay,
		LockdownOnDay:  s.LockdownOnDay,
		LockdownOffDay: s.LockdownOffDay,

		Seed: s.Seed,
	}

	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validating config file %s", path)
	}
	return p, nil
}
