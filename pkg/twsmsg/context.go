package twsmsg

// DispatchID declares how a response correlates back to a waiter, decided
// by the encoder that emitted the originating request.
type DispatchID struct {
	kind  dispatchKind
	value int32
}

type dispatchKind int

const (
	dispatchOneshot dispatchKind = iota
	dispatchStream
	dispatchMulti
	dispatchGlobal
)

// Oneshot tags a request whose reply is a single response sharing its id.
func Oneshot(reqID int32) DispatchID { return DispatchID{dispatchOneshot, reqID} }

// Stream tags a request whose replies are a sequence terminated by a
// per-opcode end-marker, all sharing its id.
func Stream(reqID int32) DispatchID { return DispatchID{dispatchStream, reqID} }

// Multi tags a request whose replies are an unsolicited-shaped sequence
// keyed by id that may or may not end in a terminal marker (e.g. order
// status updates that continue until cancel, or an account summary that
// ends with AccountSummaryEnd).
func Multi(reqID int32) DispatchID { return DispatchID{dispatchMulti, reqID} }

// Global tags a request whose reply correlates by a fixed opcode rather
// than a per-call id (e.g. ManagedAccts, NextValidID, CurrentTime).
func Global(opcode int32) DispatchID { return DispatchID{dispatchGlobal, opcode} }

func (d DispatchID) IsOneshot() bool { return d.kind == dispatchOneshot }
func (d DispatchID) IsStream() bool  { return d.kind == dispatchStream }
func (d DispatchID) IsMulti() bool   { return d.kind == dispatchMulti }
func (d DispatchID) IsGlobal() bool  { return d.kind == dispatchGlobal }
func (d DispatchID) Value() int32    { return d.value }

// BootstrapKeys returns the RouteKey values the unsolicited NextValidId and
// ManagedAccts messages arrive under, so a client can register waiters for
// them before sending anything — TWS pushes both immediately after StartApi
// without being asked.
func BootstrapKeys() (nextValidIDKey, managedAcctsKey int32) {
	return nextValidID, managedAccts
}

// VerifyAndAuthKeys returns the RouteKey values VerifyAndAuthMessageAPIMsg
// and VerifyAndAuthCompletedMsg arrive under. EncodeMessage's own DispatchID
// for VerifyAndAuthRequest points at the challenge-message opcode and for
// VerifyAndAuthMessage at the completed opcode, so each send alone covers
// only one reply; a caller driving the handshake by hand uses these to
// register waiters for both replies before sending anything.
func VerifyAndAuthKeys() (messageKey, completedKey int32) {
	return verifyAndAuthMessageAPI, verifyAndAuthCompleted
}

// Context is the process-lifetime mutable record threaded through every
// encode/decode call: negotiated server version, the extra-auth flag set
// before connect, the bootstrap next-valid-id and managed-accounts values,
// and the exec-id -> req-id table used to attribute unsolicited commission
// reports to the execution that produced them.
//
// Decoders mutate Context only through the methods below, never directly,
// so the field-by-field wire parsing in each family file stays free of
// cross-cutting state management.
type Context struct {
	serverVersion  int32
	extraAuth      bool
	nextValidID    int32
	accounts       []string
	execIDToReqID  map[string]int32
}

// NewContext returns a Context in its pre-handshake state.
func NewContext() *Context {
	return &Context{
		serverVersion: -1,
		nextValidID:   -1,
		execIDToReqID: make(map[string]int32),
	}
}

func (c *Context) ServerVersion() int32 { return c.serverVersion }

// OnServerVersion is called exactly once, by the handshake-ack decoder,
// before any other frame is decoded.
func (c *Context) OnServerVersion(v int32) { c.serverVersion = v }

func (c *Context) ExtraAuth() bool        { return c.extraAuth }
func (c *Context) SetExtraAuth(v bool)    { c.extraAuth = v }

// IsConnected reports whether the bootstrap NextValidID has been observed.
func (c *Context) IsConnected() bool { return c.nextValidID > 0 }

func (c *Context) NextValidID() int32 { return c.nextValidID }

// OnNextValidID is called by the NextValidId decoder.
func (c *Context) OnNextValidID(id int32) { c.nextValidID = id }

func (c *Context) Accounts() []string { return c.accounts }

// OnManagedAccts is called by the ManagedAccts decoder with the
// comma-separated account list split into individual codes.
func (c *Context) OnManagedAccts(accounts []string) { c.accounts = accounts }

// RecordExecID is called by the ExecutionData decoder as it decodes each
// execution, so a later CommissionReport sharing that exec id can be
// attributed back to the request that produced the execution.
func (c *Context) RecordExecID(execID string, reqID int32) {
	c.execIDToReqID[execID] = reqID
}

// ResolveExecID looks up the req-id a prior ExecutionData recorded for
// execID. Used by the CommissionReport decoder; per SPEC_FULL's resolution
// of the source's open question, this value becomes the correlation key
// instead of the unsolicited/None the original implementation returned.
func (c *Context) ResolveExecID(execID string) (int32, bool) {
	id, ok := c.execIDToReqID[execID]
	return id, ok
}
