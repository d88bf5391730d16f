package covidabm

import "fmt"

// traceTokenNode is one node of a tracing-cascade identifier tree (§3). The
// parent/firstChild/sibling fields are carried for data-model completeness
// (GLOSSARY: "index trace token"); the engine's own cascade logic (§4.6)
// only ever allocates the root token of a cascade and threads it unchanged
// through notifyContacts/onTraced, exactly as the source does, so no code
// path currently links a child token to a parent.
type traceTokenNode struct {
	parent, firstChild, sibling int
}

const noToken = -1

// traceTokenPool is a pre-allocated pool of cascade identifiers, recycled
// in bulk once per day (§3 component #9) rather than released node by
// node: a cascade only ever lives within the tick that spawned it, so the
// whole pool is rewound to empty at the start of every tick instead of
// tracking per-node frees.
type traceTokenPool struct {
	nodes []traceTokenNode
	used  int
}

func newTraceTokenPool(capacity int) *traceTokenPool {
	return &traceTokenPool{nodes: make([]traceTokenNode, capacity)}
}

// reset rewinds the pool to fully free; called once at the top of each
// tick (§4.7's policy-update hook time).
func (p *traceTokenPool) reset() {
	p.used = 0
}

// newToken allocates the next token.
func (p *traceTokenPool) newToken() int {
	if p.used >= len(p.nodes) {
		panic(fmt.Sprintf(PoolExhaustedError, "trace token", len(p.nodes), len(p.nodes)))
	}
	h := p.used
	p.nodes[h] = traceTokenNode{parent: noToken, firstChild: noToken, sibling: noToken}
	p.used++
	return h
}
