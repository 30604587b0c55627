package ibc

import (
	"context"
	"fmt"

	"github.com/fourbytes/ibtws-go/pkg/twsauth"
	"github.com/fourbytes/ibtws-go/pkg/twsmsg"
)

// sendFireAndForget writes req without registering a waiter. Cancel*
// requests and a handful of others have no in-band acknowledgement at all,
// so waiting for one would leak the pending-table entry forever.
func (c *Client) sendFireAndForget(req twsmsg.Request) error {
	select {
	case <-c.done:
		return c.closeErrVal()
	default:
	}

	payload, _, err := twsmsg.EncodeMessage(c.ctx, req)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	err = c.t.writeFramed(payload)
	c.writeMu.Unlock()
	if err != nil {
		c.teardown(err)
		return c.closeErrVal()
	}
	return nil
}

// RequestOne stamps req with a fresh request id (if it carries one) and
// blocks for its single reply, matching spec's request_one. ctx bounds the
// wait; it does not cancel the request on the wire.
func (c *Client) RequestOne(ctx context.Context, req twsmsg.Request) (twsmsg.Response, error) {
	req.SetRequestID(c.NextRequestID())
	return c.sendAndWaitOne(ctx, req)
}

// RequestStream stamps req with a fresh request id and returns a channel of
// every reply sharing it, closing at the family's end-marker, an ErrMsg, or
// connection death. Matches spec's request_stream.
func (c *Client) RequestStream(req twsmsg.Request) (<-chan twsmsg.Response, error) {
	req.SetRequestID(c.NextRequestID())
	return c.sendAndStream(req)
}

// RequestGlobal sends req, which correlates by a fixed opcode rather than a
// per-call request id (e.g. ReqPositions, ReqOpenOrders), and returns the
// channel every reply in that family arrives on.
func (c *Client) RequestGlobal(req twsmsg.Request) (<-chan twsmsg.Response, error) {
	return c.sendAndStream(req)
}

// Cancel sends a Cancel* request with no expectation of a reply. It is the
// only cancellation mechanism the wire protocol offers; dropping a stream
// returned by RequestStream does not itself stop the server from sending
// more updates for the families spec.md calls out (market data, historical
// data, real-time bars, scanner, P&L, tick-by-tick, market depth, news
// bulletins, positions, account summary, account-updates-multi,
// position-multi, histogram, calc-implied-vol, calc-option-price).
func (c *Client) Cancel(req twsmsg.Request) error {
	return c.sendFireAndForget(req)
}

// --- Typed conveniences for the headline request families. Everything not
// named here is still reachable through RequestOne/RequestStream/Cancel
// with the matching twsmsg.Request/twsmsg.Cancel* value; these wrappers
// exist for the flows a caller is expected to reach for constantly.

// ReqMktData subscribes to streaming top-of-book ticks for contract,
// returning a channel of TickPriceMsg/TickSizeMsg/TickGenericMsg/
// TickStringMsg/TickEFPMsg until CancelMktData is called.
func (c *Client) ReqMktData(contract twsmsg.Contract, genericTicks string, snapshot, regulatorySnapshot bool) (<-chan twsmsg.Response, int32, error) {
	req := &twsmsg.ReqMktData{Contract: contract, GenericTickList: genericTicks, Snapshot: snapshot, RegulatorySnapshot: regulatorySnapshot}
	req.SetRequestID(c.NextRequestID())
	ch, err := c.sendAndStream(req)
	return ch, req.ReqID, err
}

// CancelMktData stops a streaming market-data subscription started with
// ReqMktData.
func (c *Client) CancelMktData(reqID int32) error {
	req := &twsmsg.CancelMktData{}
	req.SetRequestID(reqID)
	return c.Cancel(req)
}

// ReqHistoricalData requests historical bars; if req.KeepUpToDate is set
// the reply is an open stream of updates instead of a single bar set.
func (c *Client) ReqHistoricalData(req *twsmsg.ReqHistoricalData) (<-chan twsmsg.Response, error) {
	req.SetRequestID(c.NextRequestID())
	return c.sendAndStream(req)
}

// CancelHistoricalData stops a KeepUpToDate historical-data subscription.
func (c *Client) CancelHistoricalData(reqID int32) error {
	req := &twsmsg.CancelHistoricalData{}
	req.SetRequestID(reqID)
	return c.Cancel(req)
}

// ReqContractDetails resolves contract, streaming ContractDataMsg values
// until ContractDataEndMsg.
func (c *Client) ReqContractDetails(contract twsmsg.Contract) (<-chan twsmsg.Response, error) {
	req := &twsmsg.ReqContractDetails{Contract: contract}
	return c.RequestStream(req)
}

// PlaceOrder sends a new order. Acknowledgements (OrderStatusMsg,
// OpenOrderMsg) arrive on the OpenOrders/OrderStatus global stream, not on
// a per-call channel, since TWS broadcasts order state to every listener.
func (c *Client) PlaceOrder(orderID int32, contract twsmsg.Contract, order twsmsg.Order) error {
	req := &twsmsg.PlaceOrder{Contract: contract, Order: order}
	req.SetRequestID(orderID)
	return c.sendFireAndForget(req)
}

// CancelOrder cancels a previously placed order by id.
func (c *Client) CancelOrder(orderID int32) error {
	req := &twsmsg.CancelOrder{}
	req.SetRequestID(orderID)
	return c.sendFireAndForget(req)
}

// ReqOpenOrders subscribes to the OpenOrderMsg/OrderStatusMsg broadcast for
// orders placed by this client, terminated by OpenOrderEndMsg.
func (c *Client) ReqOpenOrders() (<-chan twsmsg.Response, error) {
	return c.RequestGlobal(&twsmsg.ReqOpenOrders{})
}

// ReqAllOpenOrders subscribes to the OpenOrderMsg/OrderStatusMsg broadcast
// for every client connected with this client id's master, terminated by
// OpenOrderEndMsg.
func (c *Client) ReqAllOpenOrders() (<-chan twsmsg.Response, error) {
	return c.RequestGlobal(&twsmsg.ReqAllOpenOrders{})
}

// ReqPositions subscribes to the PositionMsg broadcast across all accounts,
// terminated by PositionEndMsg.
func (c *Client) ReqPositions() (<-chan twsmsg.Response, error) {
	return c.RequestGlobal(&twsmsg.ReqPositions{})
}

// CancelPositions stops the ReqPositions subscription.
func (c *Client) CancelPositions() error {
	return c.Cancel(&twsmsg.CancelPositions{})
}

// ReqAccountSummary requests a streaming summary of the named tags across
// group, terminated by AccountSummaryEndMsg.
func (c *Client) ReqAccountSummary(group, tags string) (<-chan twsmsg.Response, int32, error) {
	req := &twsmsg.ReqAccountSummary{Group: group, Tags: tags}
	req.SetRequestID(c.NextRequestID())
	ch, err := c.sendAndStream(req)
	return ch, req.ReqID, err
}

// CancelAccountSummary stops a ReqAccountSummary subscription.
func (c *Client) CancelAccountSummary(reqID int32) error {
	req := &twsmsg.CancelAccountSummary{}
	req.SetRequestID(reqID)
	return c.Cancel(req)
}

// ReqExecutions streams ExecutionDataMsg values matching filter, terminated
// by ExecutionDataEndMsg. A CommissionReportMsg for one of these fills
// carries the request id recorded for its execution id (see
// Context.RecordExecID/ResolveExecID), so it arrives on this channel while
// the channel is still open.
func (c *Client) ReqExecutions(filter twsmsg.ExecutionFilter) (<-chan twsmsg.Response, error) {
	req := &twsmsg.ReqExecutions{Filter: filter}
	return c.RequestStream(req)
}

// ReqScannerSubscription starts a market scanner, streaming ScannerDataMsg
// updates until CancelScannerSubscription is called.
func (c *Client) ReqScannerSubscription(sub twsmsg.ScannerSubscription, options []twsmsg.TagValue) (<-chan twsmsg.Response, int32, error) {
	req := &twsmsg.ReqScannerSubscription{Subscribe: sub, Options: options}
	req.SetRequestID(c.NextRequestID())
	ch, err := c.sendAndStream(req)
	return ch, req.ReqID, err
}

// CancelScannerSubscription stops a running scanner subscription.
func (c *Client) CancelScannerSubscription(reqID int32) error {
	req := &twsmsg.CancelScannerSubscription{}
	req.SetRequestID(reqID)
	return c.Cancel(req)
}

// VerifyAndAuth runs the three-way extra-auth challenge/response exchange:
// it asks the server for a challenge, computes the DES response with
// secretKeyBase64 (see pkg/twsauth), and returns nil only if the server's
// VerifyAndAuthCompleted reports success. Requires Config.WithExtraAuth(true).
//
// The two replies in this exchange (VerifyAndAuthMessageAPIMsg, then
// VerifyAndAuthCompletedMsg) each correlate by their own fixed opcode, not
// by a shared request id, so this method registers its own waiters rather
// than going through send/sendAndWaitOne.
func (c *Client) VerifyAndAuth(ctx context.Context, apiName, apiVersion, secretKeyBase64 string) error {
	if !c.ctx.ExtraAuth() {
		return fmt.Errorf("ibc: verify and auth requires WithExtraAuth(true)")
	}
	msgKey, completedKey := twsmsg.VerifyAndAuthKeys()
	msgWaiter := newWaiter(waiterOneshot)
	c.waiters.register(msgKey, msgWaiter)
	completedWaiter := newWaiter(waiterOneshot)
	c.waiters.register(completedKey, completedWaiter)

	authReq := &twsmsg.VerifyAndAuthRequest{APIName: apiName, APIVersion: apiVersion, ExtraAuth: true}
	if err := c.sendFireAndForget(authReq); err != nil {
		return fmt.Errorf("ibc: verify and auth request: %w", err)
	}

	resp, err := c.awaitOne(ctx, msgWaiter)
	if err != nil {
		return fmt.Errorf("ibc: awaiting challenge: %w", err)
	}
	challengeMsg, ok := resp.(*twsmsg.VerifyAndAuthMessageAPIMsg)
	if !ok {
		return fmt.Errorf("ibc: unexpected reply to VerifyAndAuthRequest: %T", resp)
	}

	xyzResponse, err := twsauth.ComputeResponse(secretKeyBase64, challengeMsg.XyzChallenge)
	if err != nil {
		return fmt.Errorf("ibc: compute challenge response: %w", err)
	}

	msg := &twsmsg.VerifyAndAuthMessage{APIData: challengeMsg.APIData, XyzResponse: xyzResponse}
	if err := c.sendFireAndForget(msg); err != nil {
		return fmt.Errorf("ibc: verify and auth message: %w", err)
	}

	resp, err = c.awaitOne(ctx, completedWaiter)
	if err != nil {
		return fmt.Errorf("ibc: awaiting completion: %w", err)
	}
	completed, ok := resp.(*twsmsg.VerifyAndAuthCompletedMsg)
	if !ok {
		return fmt.Errorf("ibc: unexpected reply to VerifyAndAuthMessage: %T", resp)
	}
	if !completed.IsSuccessful {
		return fmt.Errorf("ibc: verify and auth failed: %s", completed.ErrorText)
	}
	return nil
}

// awaitOne blocks for w's single delivery, bounded by ctx and the client's
// lifetime.
func (c *Client) awaitOne(ctx context.Context, w *waiter) (twsmsg.Response, error) {
	select {
	case resp, ok := <-w.ch:
		if !ok {
			return nil, c.closeErrVal()
		}
		if em, ok := resp.(*twsmsg.ErrMsg); ok {
			return nil, apiErrorFrom(em)
		}
		return resp, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return nil, c.closeErrVal()
	}
}
