package covidabm

import "testing"

func TestAssignHouseholds_BucketsSequentially(t *testing.T) {
	d := AssignHouseholds(11, 5)

	if got := d.Size(); got != 3 {
		t.Errorf(UnequalIntParameterError, "number of households", 3, got)
	}
	if got := len(d.Members(2)); got != 1 {
		t.Errorf(UnequalIntParameterError, "size of remainder household", 1, got)
	}
	if got := d.HouseholdOf(0); got != 0 {
		t.Errorf(UnequalIntParameterError, "household of individual 0", 0, got)
	}
	if got := d.HouseholdOf(10); got != 2 {
		t.Errorf(UnequalIntParameterError, "household of last individual", 2, got)
	}
}
