package twsmsg

import "github.com/fourbytes/ibtws-go/pkg/twsbin"

func encodeReqExecutions(req *ReqExecutions) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqExecutions)
	w.PushInt(3)
	w.PushInt(req.ReqID)
	f := &req.Filter
	w.PushInt(f.ClientID)
	_ = w.PushString(f.AcctCode)
	_ = w.PushString(f.Time)
	_ = w.PushString(f.Symbol)
	_ = w.PushString(f.SecType)
	_ = w.PushString(f.Exchange)
	_ = w.PushString(f.Side)
	return w.Buf
}

func decodeExecutionDataMsg(ctx *Context, r *twsbin.Reader) *ExecutionDataMsg {
	reqID := r.ReadInt()
	var c Contract
	c.ConID = r.ReadInt()
	c.Symbol = r.ReadString()
	c.SecType = r.ReadString()
	c.LastTradeDateOrContractMonth = r.ReadString()
	c.Strike = r.ReadDouble()
	c.Right = r.ReadString()
	c.Multiplier = r.ReadString()
	c.Exchange = r.ReadString()
	c.Currency = r.ReadString()
	c.LocalSymbol = r.ReadString()
	c.TradingClass = r.ReadString()

	var e Execution
	e.OrderID = r.ReadInt()
	e.ClientID = r.ReadInt()
	e.ExecID = r.ReadString()
	e.Time = r.ReadString()
	e.AcctNumber = r.ReadString()
	e.Exchange = r.ReadString()
	e.Side = r.ReadString()
	e.Shares = r.ReadDouble()
	e.Price = r.ReadDouble()
	e.PermID = r.ReadInt()
	e.Liquidation = r.ReadInt()
	e.CumQty = r.ReadDouble()
	e.AvgPrice = r.ReadDouble()
	e.OrderRef = r.ReadString()
	e.EvRule = r.ReadString()
	e.EvMultiplier = r.ReadDoubleMax()
	e.ModelCode = r.ReadString()
	if ctx.ServerVersion() >= minServerVerLastLiquidity {
		e.LastLiquidity = Liquidity(r.ReadInt())
	}

	ctx.RecordExecID(e.ExecID, reqID)
	return &ExecutionDataMsg{reqIDResponse{reqID}, c, e}
}

func decodeExecutionDataEndMsg(r *twsbin.Reader) *ExecutionDataEndMsg {
	return &ExecutionDataEndMsg{reqIDResponse{r.ReadInt()}}
}

func decodeCommissionReportMsg(ctx *Context, r *twsbin.Reader) *CommissionReportMsg {
	var c CommissionReport
	c.ExecID = r.ReadString()
	c.Commission = r.ReadDouble()
	c.Currency = r.ReadString()
	c.RealizedPnL = r.ReadDoubleMax()
	c.Yield = r.ReadDoubleMax()
	c.YieldRedemptionDate = r.ReadIntMax()

	reqID, known := ctx.ResolveExecID(c.ExecID)
	return &CommissionReportMsg{Report: c, reqID: reqID, known: known}
}
