package twsmsg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/fourbytes/ibtws-go/pkg/twsbin"
)

// newTestReader builds a *twsbin.Reader over a single NUL-terminated string
// field, for decoders that take one directly rather than a whole frame.
func newTestReader(field string) *twsbin.Reader {
	w := twsbin.NewWriter(nil)
	_ = w.PushString(field)
	return twsbin.NewReader(w.Buf)
}

func TestRouteKeyReqScopedResponse(t *testing.T) {
	resp := &ExecutionDataEndMsg{reqIDResponse{42}}
	key, ok := RouteKey(resp)
	if !ok || key != 42 {
		t.Fatalf("RouteKey(%+v) = (%d, %v), want (42, true)", resp, key, ok)
	}
}

func TestRouteKeyUnsolicitedAccountRows(t *testing.T) {
	cases := []Response{
		&AcctValueMsg{},
		&PortfolioValueMsg{},
		&AcctUpdateTimeMsg{},
		&AcctDownloadEndMsg{},
	}
	for _, resp := range cases {
		key, ok := RouteKey(resp)
		if !ok || key != acctDownloadEnd {
			t.Errorf("RouteKey(%T) = (%d, %v), want (%d, true)", resp, key, ok, acctDownloadEnd)
		}
	}
}

func TestRouteKeyUnsolicitedPositionRow(t *testing.T) {
	key, ok := RouteKey(&PositionMsg{})
	if !ok || key != positionEnd {
		t.Fatalf("RouteKey(*PositionMsg) = (%d, %v), want (%d, true)", key, ok, positionEnd)
	}
}

func TestRouteKeyUnsolicitedOrderRows(t *testing.T) {
	for _, resp := range []Response{&OpenOrderMsg{}, &OrderStatusMsg{}} {
		key, ok := RouteKey(resp)
		if !ok || key != openOrderEnd {
			t.Errorf("RouteKey(%T) = (%d, %v), want (%d, true)", resp, key, ok, openOrderEnd)
		}
	}
}

func TestRouteKeyUnknownDrops(t *testing.T) {
	key, ok := RouteKey(&TickSnapshotEndMsg{reqIDResponse{7}})
	if !ok || key != 7 {
		t.Fatalf("TickSnapshotEndMsg carries its own req-id, got (%d, %v)", key, ok)
	}
	key, ok = RouteKey(&CommissionReportMsg{known: false})
	if ok {
		t.Fatalf("unresolved CommissionReportMsg should not route, got key=%d", key)
	}
}

func TestIsEndOfStream(t *testing.T) {
	terminal := []Response{
		&ContractDataEndMsg{reqIDResponse{1}},
		&SecurityDefinitionOptionalParameterEndMsg{reqIDResponse{1}},
		&TickSnapshotEndMsg{reqIDResponse{1}},
		&HistoricalNewsEndMsg{reqIDResponse{1}},
		&ExecutionDataEndMsg{reqIDResponse{1}},
		&PositionMultiEndMsg{reqIDResponse{1}},
		&AccountUpdateMultiEndMsg{reqIDResponse{1}},
		&AccountSummaryEndMsg{reqIDResponse{1}},
		&PositionEndMsg{},
		&OpenOrderEndMsg{},
	}
	for _, resp := range terminal {
		if !IsEndOfStream(resp) {
			t.Errorf("IsEndOfStream(%T) = false, want true", resp)
		}
	}

	nonTerminal := []Response{
		&PositionMsg{},
		&OpenOrderMsg{},
		&ExecutionDataMsg{},
		&ErrMsg{ID: 3},
	}
	for _, resp := range nonTerminal {
		if IsEndOfStream(resp) {
			t.Errorf("IsEndOfStream(%T) = true, want false", resp)
		}
	}
}

func TestBootstrapKeysMatchDispatch(t *testing.T) {
	idKey, acctsKey := BootstrapKeys()
	if idKey != nextValidID {
		t.Errorf("BootstrapKeys nextValidIDKey = %d, want %d", idKey, nextValidID)
	}
	if acctsKey != managedAccts {
		t.Errorf("BootstrapKeys managedAcctsKey = %d, want %d", acctsKey, managedAccts)
	}

	ctx := NewContext()
	ctx.OnServerVersion(minServerVerLastLiquidity)
	if _, dispatch, err := EncodeMessage(ctx, &ReqIds{}); err != nil || dispatch.Value() != idKey {
		t.Errorf("ReqIds dispatches to %v, want Global(%d)", dispatch, idKey)
	}
	if _, dispatch, err := EncodeMessage(ctx, &ReqManagedAccts{}); err != nil || dispatch.Value() != acctsKey {
		t.Errorf("ReqManagedAccts dispatches to %v, want Global(%d)", dispatch, acctsKey)
	}
}

func TestVerifyAndAuthKeysMatchDispatch(t *testing.T) {
	msgKey, completedKey := VerifyAndAuthKeys()
	ctx := NewContext()
	ctx.OnServerVersion(minServerVerLastLiquidity)

	_, dispatch, err := EncodeMessage(ctx, &VerifyAndAuthRequest{})
	if err != nil || dispatch.Value() != msgKey {
		t.Errorf("VerifyAndAuthRequest dispatches to %v, want Global(%d)", dispatch, msgKey)
	}
	_, dispatch, err = EncodeMessage(ctx, &VerifyAndAuthMessage{})
	if err != nil || dispatch.Value() != completedKey {
		t.Errorf("VerifyAndAuthMessage dispatches to %v, want Global(%d)", dispatch, completedKey)
	}

	// The plain Verify (non-auth) pair correlates the same way:
	// VerifyRequest's immediate reply is VerifyMessageAPIMsg, and
	// VerifyMessage's is VerifyCompletedMsg.
	_, dispatch, _ = EncodeMessage(ctx, &VerifyRequest{})
	if dispatch.Value() != verifyMessageAPI {
		t.Errorf("VerifyRequest dispatches to %v, want Global(%d)", dispatch, verifyMessageAPI)
	}
	_, dispatch, _ = EncodeMessage(ctx, &VerifyMessage{})
	if dispatch.Value() != verifyCompleted {
		t.Errorf("VerifyMessage dispatches to %v, want Global(%d)", dispatch, verifyCompleted)
	}
}

func TestCommissionReportCorrelatesToExecutionRequest(t *testing.T) {
	ctx := NewContext()
	ctx.RecordExecID("0001f4a7.abc", 55)

	reqID, ok := ctx.ResolveExecID("0001f4a7.abc")
	if !ok || reqID != 55 {
		t.Fatalf("ResolveExecID = (%d, %v), want (55, true)", reqID, ok)
	}

	resolved := &CommissionReportMsg{reqID: reqID, known: ok}
	key, ok := resolved.RequestID()
	if !ok || key != 55 {
		t.Errorf("resolved CommissionReportMsg.RequestID() = (%d, %v), want (55, true)", key, ok)
	}

	unresolved := &CommissionReportMsg{}
	if _, ok := unresolved.RequestID(); ok {
		t.Errorf("unresolved CommissionReportMsg.RequestID() reported ok=true")
	}
}

func TestErrMsgNotificationVsRequestScoped(t *testing.T) {
	notification := &ErrMsg{ID: -1, ErrorCode: 2104, ErrorMessage: "Market data farm connection is OK"}
	if _, ok := notification.RequestID(); ok {
		t.Errorf("notification ErrMsg (ID=-1) should not correlate to a waiter")
	}

	scoped := &ErrMsg{ID: 17, ErrorCode: 200, ErrorMessage: "No security definition has been found"}
	id, ok := scoped.RequestID()
	if !ok || id != 17 {
		t.Errorf("scoped ErrMsg.RequestID() = (%d, %v), want (17, true)", id, ok)
	}
}

func TestDecodeHandshakeAckRedirect(t *testing.T) {
	ctx := NewContext()
	// Raw frame: int32 version, then a NUL-terminated "host:port" string.
	frame := append(encodeIntForTest(151), []byte("127.0.0.1:4002\x00")...)
	resp, err := DecodeMessage(ctx, frame)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	ack, ok := resp.(*HandshakeAck)
	if !ok {
		t.Fatalf("decoded %T, want *HandshakeAck", resp)
	}
	want := &HandshakeAck{ServerVersion: 151, AddrOrTime: "127.0.0.1:4002"}
	if diff := cmp.Diff(want, ack); diff != "" {
		t.Fatalf("decoded ack mismatch (-want +got):\n%s", diff)
	}
	if ctx.ServerVersion() != 151 {
		t.Fatalf("ctx.ServerVersion() = %d after handshake ack, want 151", ctx.ServerVersion())
	}
}

func TestCommissionReportMsgEquality(t *testing.T) {
	resolved := &CommissionReportMsg{
		Report: CommissionReport{ExecID: "0001f4a7.abc", Commission: 1.5, Currency: "USD"},
		reqID:  55,
		known:  true,
	}
	same := &CommissionReportMsg{
		Report: CommissionReport{ExecID: "0001f4a7.abc", Commission: 1.5, Currency: "USD"},
		reqID:  55,
		known:  true,
	}
	if diff := cmp.Diff(resolved, same, cmp.AllowUnexported(CommissionReportMsg{})); diff != "" {
		t.Errorf("identical CommissionReportMsg values compare unequal (-want +got):\n%s", diff)
	}

	differentReqID := &CommissionReportMsg{Report: same.Report, reqID: 99, known: true}
	if diff := cmp.Diff(resolved, differentReqID, cmp.AllowUnexported(CommissionReportMsg{})); diff == "" {
		t.Error("CommissionReportMsg values with different reqID compared equal")
	}
}

func TestManagedAcctsMsgEmptyListIsEquivalentToNil(t *testing.T) {
	ctx := NewContext()
	msg := decodeManagedAcctsMsg(ctx, newTestReader(""))
	if diff := cmp.Diff([]string(nil), msg.Accounts, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("empty managed-accts string should decode to an empty list (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{}, ctx.Accounts(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Context.Accounts() after an empty push (-want +got):\n%s", diff)
	}
}

// encodeIntForTest mirrors twsbin's ASCII-decimal-then-NUL int encoding
// without importing the package's unexported writer internals twice.
func encodeIntForTest(n int32) []byte {
	if n == 0 {
		return []byte{0}
	}
	s := itoaForTest(n)
	return append([]byte(s), 0)
}

func itoaForTest(n int32) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
