package ibc

import (
	"sync"

	"github.com/fourbytes/ibtws-go/pkg/twsmsg"
)

// waiter is one outstanding request's delivery channel. kind decides
// whether it is closed after its first response (Oneshot) or only once a
// twsmsg.IsEndOfStream marker arrives (Stream, Multi) or the caller issues
// an ErrMsg arrives. Stream and Multi differ only in intent — Stream names
// a request that is always expected to terminate (contract details,
// executions, snapshot market data, ...), Multi a request that may or may
// not (account summary ends on AccountSummaryEnd, while account updates
// keep flowing after AcctDownloadEnd, which is not an IsEndOfStream
// marker) — both honor an end-marker the same way in deliver.
type waiter struct {
	ch   chan twsmsg.Response
	kind waiterKind
}

type waiterKind int

const (
	waiterOneshot waiterKind = iota
	waiterStream
	waiterMulti
)

const waiterChanBuf = 16

func newWaiter(kind waiterKind) *waiter {
	return &waiter{ch: make(chan twsmsg.Response, waiterChanBuf), kind: kind}
}

// waiterTable is the pending-request table: a single map keyed by the
// twsmsg.RouteKey of the messages it expects, guarded by one mutex. It is
// deliberately simple — franz-go shards its promisedReq map per broker
// connection, but this client only ever speaks to one.
type waiterTable struct {
	mu sync.Mutex
	m  map[int32]*waiter
}

func newWaiterTable() *waiterTable {
	return &waiterTable{m: make(map[int32]*waiter)}
}

// register adds w under key, replacing whatever was registered before. A
// Global request issued again rebinds its fixed opcode key this way; the
// replaced waiter's channel is left open and receives nothing further.
func (t *waiterTable) register(key int32, w *waiter) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[key] = w
}

func (t *waiterTable) lookup(key int32) (*waiter, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, ok := t.m[key]
	return w, ok
}

// remove deletes and returns the waiter at key, if any, so the caller can
// close its channel outside the lock.
func (t *waiterTable) remove(key int32) (*waiter, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, ok := t.m[key]
	delete(t.m, key)
	return w, ok
}

// deliver routes resp to its waiter, if one is registered, closing the
// waiter's channel when resp is a terminal message for it. Responses with
// no registered waiter are dropped; client.go logs these at debug level.
func (t *waiterTable) deliver(resp twsmsg.Response) (delivered bool) {
	key, ok := twsmsg.RouteKey(resp)
	if !ok {
		return false
	}

	t.mu.Lock()
	w, ok := t.m[key]
	if !ok {
		t.mu.Unlock()
		return false
	}
	_, isErr := resp.(*twsmsg.ErrMsg)
	terminal := w.kind == waiterOneshot || twsmsg.IsEndOfStream(resp) || isErr
	if terminal {
		delete(t.m, key)
	}
	t.mu.Unlock()

	select {
	case w.ch <- resp:
	default:
		// Slow consumer: drop rather than block the read loop. Streams
		// that can't keep up should be cancelled by the caller.
	}
	if terminal {
		close(w.ch)
	}
	return true
}

// closeAll closes every pending waiter's channel; called once when the
// connection dies so blocked callers unblock instead of hanging forever.
func (t *waiterTable) closeAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, w := range t.m {
		close(w.ch)
		delete(t.m, key)
	}
}
