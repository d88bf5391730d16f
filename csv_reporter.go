package covidabm

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/segmentio/ksuid"
)

// CSVReporter is a Reporter that writes one comma-delimited row per tick:
// a header written at Init, then one appended row per write.
type CSVReporter struct {
	path   string
	runID  ksuid.KSUID
	file   *os.File
}

// NewCSVReporter creates a reporter that writes to basepath, suffixing it
// with the run's ksuid so repeated runs never collide.
func NewCSVReporter(basepath string) *CSVReporter {
	r := &CSVReporter{runID: ksuid.New()}
	r.path = strings.TrimSuffix(basepath, ".csv") + fmt.Sprintf(".%s.csv", r.runID.String())
	return r
}

// Init creates the file and writes the header row.
func (r *CSVReporter) Init() error {
	var b bytes.Buffer
	b.WriteString("day,n_current_symptomatic,n_total_symptomatic,n_current_hospitalised,n_total_hospitalised,n_current_recovered,n_total_recovered,n_current_death,n_total_death,cases,quarantine_person_days,total_infected\n")
	return os.WriteFile(r.path, b.Bytes(), 0o644)
}

// WriteTick appends one CSV row.
func (r *CSVReporter) WriteTick(snap TickSnapshot) error {
	if r.file == nil {
		f, err := os.OpenFile(r.path, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		r.file = f
	}
	line := fmt.Sprintf("%d,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d\n",
		snap.Day,
		snap.NCurrent[ListSymptomatic], snap.NTotal[ListSymptomatic],
		snap.NCurrent[ListHospitalised], snap.NTotal[ListHospitalised],
		snap.NCurrent[ListRecovered], snap.NTotal[ListRecovered],
		snap.NCurrent[ListDeath], snap.NTotal[ListDeath],
		snap.CaseCount, snap.QuarantinePersonDays, snap.TotalInfected,
	)
	_, err := r.file.WriteString(line)
	return err
}

// Close flushes and closes the underlying file.
func (r *CSVReporter) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}
