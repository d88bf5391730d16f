package covidabm

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/segmentio/ksuid"
)

// SQLiteReporter is a Reporter that persists one row per tick into a
// per-run SQLite table, name-suffixed by an identifier so repeated runs
// against the same database file don't collide.
type SQLiteReporter struct {
	path      string
	tableName string
	runID     ksuid.KSUID
	db        *sql.DB
	insert    *sql.Stmt
}

// NewSQLiteReporter creates a reporter writing into path, with a table
// named "tick_<runID>".
func NewSQLiteReporter(path string) *SQLiteReporter {
	runID := ksuid.New()
	return &SQLiteReporter{
		path:      path,
		tableName: fmt.Sprintf("tick_%s", runID.String()),
		runID:     runID,
	}
}

// Init opens the database and creates this run's table.
func (r *SQLiteReporter) Init() error {
	db, err := openSQLiteDB(r.path)
	if err != nil {
		return err
	}
	r.db = db

	schema := fmt.Sprintf(`create table %s (
		day integer not null primary key,
		n_current_symptomatic integer, n_total_symptomatic integer,
		n_current_hospitalised integer, n_total_hospitalised integer,
		n_current_recovered integer, n_total_recovered integer,
		n_current_death integer, n_total_death integer,
		cases integer, quarantine_person_days integer, total_infected integer
	)`, r.tableName)
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%q: %s", err, schema)
	}

	stmt, err := db.Prepare(fmt.Sprintf(`insert into %s values (?,?,?,?,?,?,?,?,?,?,?,?)`, r.tableName))
	if err != nil {
		return err
	}
	r.insert = stmt
	return nil
}

// WriteTick inserts one row for the tick's snapshot.
func (r *SQLiteReporter) WriteTick(snap TickSnapshot) error {
	_, err := r.insert.Exec(
		snap.Day,
		snap.NCurrent[ListSymptomatic], snap.NTotal[ListSymptomatic],
		snap.NCurrent[ListHospitalised], snap.NTotal[ListHospitalised],
		snap.NCurrent[ListRecovered], snap.NTotal[ListRecovered],
		snap.NCurrent[ListDeath], snap.NTotal[ListDeath],
		snap.CaseCount, snap.QuarantinePersonDays, snap.TotalInfected,
	)
	return err
}

// Close releases the prepared statement and database handle.
func (r *SQLiteReporter) Close() error {
	if r.insert != nil {
		r.insert.Close()
	}
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func openSQLiteDB(path string) (*sql.DB, error) {
	return sql.Open("sqlite3", path)
}
