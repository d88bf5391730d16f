package covidabm

import "fmt"

// ListKind enumerates the ten (list, day) bucket families events flow
// through (§3, §4.1). CASE is tracked separately as a plain counter (see
// Model.caseCount) since the original's CASE marker is never drained or
// re-examined — it only ever grows.
type ListKind int

const (
	ListPresymptomatic ListKind = iota
	ListAsymptomatic
	ListSymptomatic
	ListHospitalised
	ListRecovered
	ListDeath
	ListQuarantined
	ListQuarantineRelease
	ListTestTake
	ListTestResult
	numListKinds
)

func (k ListKind) String() string {
	switch k {
	case ListPresymptomatic:
		return "presymptomatic"
	case ListAsymptomatic:
		return "asymptomatic"
	case ListSymptomatic:
		return "symptomatic"
	case ListHospitalised:
		return "hospitalised"
	case ListRecovered:
		return "recovered"
	case ListDeath:
		return "death"
	case ListQuarantined:
		return "quarantined"
	case ListQuarantineRelease:
		return "quarantine_release"
	case ListTestTake:
		return "test_take"
	case ListTestResult:
		return "test_result"
	default:
		return "unknown"
	}
}

// noEvent is the sentinel handle meaning "no event"/"empty bucket".
const noEvent = -1

// eventPoolNode is one slot of the event ring. It is either free (part of
// the pool's single free arc, indiv == -1) or live (spliced into exactly
// one (list, day) bucket ring, indiv set to the owning individual).
type eventPoolNode struct {
	next, prev int
	indiv      int
}

// eventPool is the fixed-size doubly-linked ring backing every event list
// (§4.1, §5). All scheduled work flows through this single pool; capacity
// is fixed at construction and exhaustion is a fatal programmer error
// (§7b), never a recoverable condition.
type eventPool struct {
	nodes     []eventPoolNode
	nextFree  int
	freeCount int
}

// newEventPool builds a pool of the given capacity, wiring every slot into
// one big free ring.
func newEventPool(capacity int) *eventPool {
	nodes := make([]eventPoolNode, capacity)
	for i := range nodes {
		nodes[i] = eventPoolNode{
			next:  ringInc(i, capacity),
			prev:  ringDec(i, capacity),
			indiv: -1,
		}
	}
	return &eventPool{nodes: nodes, nextFree: 0, freeCount: capacity}
}

// alloc removes a node from the free arc's head and returns its handle.
// The returned node's next/prev are left stale until the caller links it
// into a bucket ring.
func (p *eventPool) alloc() int {
	if p.freeCount == 0 {
		panic(fmt.Sprintf(PoolExhaustedError, "event", len(p.nodes), len(p.nodes)-p.freeCount))
	}
	h := p.nextFree
	if p.freeCount > 1 {
		nxt := p.nodes[h].next
		prv := p.nodes[h].prev
		p.nodes[prv].next = nxt
		p.nodes[nxt].prev = prv
		p.nextFree = nxt
	}
	p.freeCount--
	return h
}

// release splices a freed node back into the free arc, immediately before
// the cursor, keeping the free arc contiguous (§4.1).
func (p *eventPool) release(h int) {
	if p.freeCount == 0 {
		p.nodes[h].next = h
		p.nodes[h].prev = h
		p.nextFree = h
	} else {
		cur := p.nextFree
		prv := p.nodes[cur].prev
		p.nodes[prv].next = h
		p.nodes[h].prev = prv
		p.nodes[h].next = cur
		p.nodes[cur].prev = h
	}
	p.nodes[h].indiv = -1
	p.freeCount++
}

// freeArcLen returns the number of nodes in the free arc, as tracked by
// the freeCount counter; used only by invariant tests (§8), never the hot
// path.
func (p *eventPool) freeArcLen() int {
	return p.freeCount
}

// EventList is one (kind, day-indexed) family of buckets (§3). head,
// nDaily and nDailyCurrent are indexed by absolute day; nCurrent/nTotal
// are running totals promoted once per day by updateCounters.
type EventList struct {
	Kind            ListKind
	head            []int
	nDaily          []int
	nDailyCurrent   []int
	nCurrent        int
	nTotal          int
	infectiousCurve []float64
}

// newEventList allocates the per-day arrays for [0, endTime).
func newEventList(kind ListKind, endTime int) *EventList {
	l := &EventList{
		Kind:          kind,
		head:          make([]int, endTime),
		nDaily:        make([]int, endTime),
		nDailyCurrent: make([]int, endTime),
	}
	for d := range l.head {
		l.head[d] = noEvent
	}
	return l
}

// NCurrent returns the list's running "still present" total.
func (l *EventList) NCurrent() int { return l.nCurrent }

// NTotal returns the list's running "ever added" total.
func (l *EventList) NTotal() int { return l.nTotal }

// add links a new event for indiv at the head of day's bucket ring and
// returns its handle.
func (l *EventList) add(pool *eventPool, indiv, day int) int {
	h := pool.alloc()
	pool.nodes[h].indiv = indiv
	if l.nDailyCurrent[day] == 0 {
		pool.nodes[h].next = h
		pool.nodes[h].prev = h
	} else {
		head := l.head[day]
		tail := pool.nodes[head].prev
		pool.nodes[h].next = head
		pool.nodes[h].prev = tail
		pool.nodes[tail].next = h
		pool.nodes[head].prev = h
	}
	l.head[day] = h
	l.nDaily[day]++
	l.nDailyCurrent[day]++
	return h
}

// remove unlinks an event (handle h, scheduled for day) from its bucket and
// returns it to the pool's free arc. Handles the three cases of §4.1: sole
// element, head, interior.
func (l *EventList) remove(pool *eventPool, h, day int) {
	if l.nDailyCurrent[day] == 1 {
		l.head[day] = noEvent
	} else {
		prv := pool.nodes[h].prev
		nxt := pool.nodes[h].next
		pool.nodes[prv].next = nxt
		pool.nodes[nxt].prev = prv
		if l.head[day] == h {
			l.head[day] = nxt
		}
	}
	l.nDailyCurrent[day]--
	l.nCurrent--
	pool.release(h)
}

// updateCounters promotes day's bucket totals into the list's running
// totals; called once per tick per list (§4.1, §4.7).
func (l *EventList) updateCounters(day int) {
	l.nCurrent += l.nDailyCurrent[day]
	l.nTotal += l.nDaily[day]
}

// liveCount sums nDailyCurrent across every day, including days not yet
// promoted by updateCounters. Unlike NCurrent, which only reflects
// buckets whose day has already been promoted, this is the true number
// of pool nodes this list currently holds live — used only by pool
// capacity invariant tests, never the hot path.
func (l *EventList) liveCount() int {
	n := 0
	for _, c := range l.nDailyCurrent {
		n += c
	}
	return n
}

// handlesAt returns a snapshot of the handles present in day's bucket, in
// physical ring order starting from the head. Snapshotting mirrors the
// original's "capture next_event before the body can mutate the list"
// idiom, since transition/intervention code removes events from the very
// list being walked.
func (l *EventList) handlesAt(pool *eventPool, day int) []int {
	n := l.nDailyCurrent[day]
	if n == 0 {
		return nil
	}
	out := make([]int, 0, n)
	h := l.head[day]
	for i := 0; i < n; i++ {
		out = append(out, h)
		h = pool.nodes[h].next
	}
	return out
}

// individualAt returns the owning individual index of a live handle.
func (p *eventPool) individualAt(h int) int {
	return p.nodes[h].indiv
}
