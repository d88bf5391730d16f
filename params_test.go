package covidabm

import "testing"

func TestParams_Validate_RejectsNonPositiveTotal(t *testing.T) {
	p := testParams()
	p.NTotal = 0
	if err := p.Validate(); err == nil {
		t.Errorf(ExpectedErrorWhileError, "validating n_total=0")
	}
}

func TestParams_Validate_RejectsFractionOutOfRange(t *testing.T) {
	p := testParams()
	p.FractionAsymptomatic = 1.5
	if err := p.Validate(); err == nil {
		t.Errorf(ExpectedErrorWhileError, "validating fraction_asymptomatic > 1")
	}
}

func TestParams_Validate_AcceptsWellFormedParams(t *testing.T) {
	p := testParams()
	if err := p.Validate(); err != nil {
		t.Errorf(UnexpectedErrorWhileError, "validating a well-formed params struct", err.Error())
	}
}
