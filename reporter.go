package covidabm

// Reporter is the observable-outputs collaborator: one per-tick snapshot,
// written wherever the concrete implementation persists it. A single
// simulation run only has one snapshot shape per tick, so this collapses
// to one write method.
type Reporter interface {
	// Init prepares the destination (creating a file or table). The run
	// identifier is assigned earlier, by the reporter's constructor.
	Init() error
	// WriteTick persists one day's snapshot.
	WriteTick(snap TickSnapshot) error
	// Close releases any held resources (open files, database handles).
	Close() error
}

// TickSnapshot is the set of observable outputs spec §6 names: per-list
// current/total counts, cumulative case count, and cumulative
// quarantine-person-days.
type TickSnapshot struct {
	Day                  int
	NCurrent             [numListKinds]int
	NTotal               [numListKinds]int
	CaseCount            int
	QuarantinePersonDays int64
	TotalInfected        int
}

// Snapshot captures the model's current observable state for one tick
// (§6 "Observable outputs per tick").
func (m *Model) Snapshot() TickSnapshot {
	snap := TickSnapshot{
		Day:                  m.Day,
		CaseCount:            m.caseCount,
		QuarantinePersonDays: m.QuarantinePersonDays,
		TotalInfected:        m.TotalInfected(),
	}
	for k := ListKind(0); k < numListKinds; k++ {
		snap.NCurrent[k] = m.lists[k].NCurrent()
		snap.NTotal[k] = m.lists[k].NTotal()
	}
	return snap
}
