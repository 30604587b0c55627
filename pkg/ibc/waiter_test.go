package ibc

import (
	"testing"

	"github.com/fourbytes/ibtws-go/pkg/twsbin"
	"github.com/fourbytes/ibtws-go/pkg/twsmsg"
)

func TestWaiterTableOneshotClosesAfterFirstDelivery(t *testing.T) {
	table := newWaiterTable()
	w := newWaiter(waiterOneshot)
	table.register(42, w)

	resp := &twsmsg.CurrentTimeMsg{}
	if !table.deliver(respWithKey(resp, 42)) {
		t.Fatal("deliver reported no waiter for a registered key")
	}
	if _, ok := <-w.ch; !ok {
		t.Fatal("expected a value before closure")
	}
	if _, ok := <-w.ch; ok {
		t.Fatal("oneshot waiter should close after its first delivery")
	}
	if _, ok := table.lookup(42); ok {
		t.Fatal("oneshot waiter should be removed from the table after delivery")
	}
}

func TestWaiterTableMultiStaysOpenAcrossDeliveries(t *testing.T) {
	table := newWaiterTable()
	w := newWaiter(waiterMulti)
	table.register(7, w)

	for i := 0; i < 3; i++ {
		if !table.deliver(respWithKey(&twsmsg.CurrentTimeMsg{}, 7)) {
			t.Fatalf("delivery %d: no waiter found", i)
		}
	}
	for i := 0; i < 3; i++ {
		select {
		case _, ok := <-w.ch:
			if !ok {
				t.Fatalf("channel closed early at delivery %d", i)
			}
		default:
			t.Fatalf("expected a buffered value at delivery %d", i)
		}
	}
	if _, ok := table.lookup(7); !ok {
		t.Fatal("multi waiter should remain registered")
	}
}

func TestWaiterTableMultiClosesOnEndOfStreamMarker(t *testing.T) {
	table := newWaiterTable()
	w := newWaiter(waiterMulti)
	// IsEndOfStream matches concrete message types, so the end marker must be
	// a real decoded PositionEndMsg rather than a respWithKey wrapper.
	key, _ := twsmsg.RouteKey(&twsmsg.PositionMsg{})
	table.register(key, w)

	ctx := twsmsg.NewContext()
	ctx.OnServerVersion(151)
	endFrame := twsbin.NewWriter(nil)
	endFrame.PushInt(62) // positionEnd opcode
	endFrame.PushInt(1)
	endMsg, err := twsmsg.DecodeMessage(ctx, endFrame.Buf)
	if err != nil {
		t.Fatalf("DecodeMessage(positionEnd): %v", err)
	}

	if !table.deliver(&twsmsg.PositionMsg{}) {
		t.Fatal("deliver reported no waiter for a registered key")
	}
	if _, ok := <-w.ch; !ok {
		t.Fatal("expected the PositionMsg row before closure")
	}

	if !table.deliver(endMsg) {
		t.Fatal("deliver reported no waiter for PositionEndMsg")
	}
	if _, ok := <-w.ch; ok {
		t.Fatal("multi waiter should close once its IsEndOfStream marker arrives")
	}
	if _, ok := table.lookup(key); ok {
		t.Fatal("waiter should be removed from the table after its end marker")
	}
}

func TestWaiterTableDeliverUnknownKeyIsNoop(t *testing.T) {
	table := newWaiterTable()
	if table.deliver(&twsmsg.CurrentTimeMsg{}) {
		t.Fatal("no waiter is registered under CurrentTimeMsg's key; deliver should report false")
	}
}

func TestWaiterTableCloseAllUnblocksEveryWaiter(t *testing.T) {
	table := newWaiterTable()
	a := newWaiter(waiterMulti)
	b := newWaiter(waiterStream)
	table.register(1, a)
	table.register(2, b)

	table.closeAll()

	if _, ok := <-a.ch; ok {
		t.Error("waiter a should be closed")
	}
	if _, ok := <-b.ch; ok {
		t.Error("waiter b should be closed")
	}
	if _, ok := table.lookup(1); ok {
		t.Error("closeAll should clear the table")
	}
}

// respWithKey wraps resp so twsmsg.RouteKey reports key directly, without
// needing a real message type for every key this package's tests exercise.
type keyedResponse struct {
	twsmsg.Response
	key int32
}

func (k keyedResponse) RequestID() (int32, bool) { return k.key, true }

func respWithKey(resp twsmsg.Response, key int32) twsmsg.Response {
	return keyedResponse{Response: resp, key: key}
}
