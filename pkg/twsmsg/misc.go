package twsmsg

import "github.com/fourbytes/ibtws-go/pkg/twsbin"

func encodeReqIds(req *ReqIds) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqIds)
	w.PushInt(1)
	w.PushInt(req.NumIds)
	return w.Buf
}

func decodeNextValidIDMsg(ctx *Context, r *twsbin.Reader) *NextValidIDMsg {
	id := r.ReadInt()
	ctx.OnNextValidID(id)
	return &NextValidIDMsg{OrderID: id}
}

func encodeReqManagedAccts() []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqManagedAccts)
	w.PushInt(1)
	return w.Buf
}

func encodeReqCurrentTime() []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqCurrentTime)
	w.PushInt(1)
	return w.Buf
}

func decodeCurrentTimeMsg(r *twsbin.Reader) *CurrentTimeMsg {
	return &CurrentTimeMsg{Time: r.ReadLong()}
}

func encodeReqMarketRule(req *ReqMarketRule) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqMarketRule)
	w.PushInt(req.MarketRuleID)
	return w.Buf
}

func encodeReqFamilyCodes() []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqFamilyCodes)
	return w.Buf
}

func encodeReqMktDepthExchanges() []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqMktDepthExchanges)
	return w.Buf
}

func encodeReqNewsProvider() []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqNewsProviders)
	return w.Buf
}

func encodeReqSoftDollarTiers(req *ReqSoftDollarTiers) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqSoftDollarTiers)
	w.PushInt(req.ReqID)
	return w.Buf
}

func encodeMatchingSymbol(req *MatchingSymbol) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqMatchingSymbols)
	w.PushInt(req.ReqID)
	_ = w.PushString(req.Pattern)
	return w.Buf
}

func encodeReqSecDefOptParams(req *ReqSecDefOptParams) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqSecDefOptParams)
	w.PushInt(req.ReqID)
	_ = w.PushString(req.UnderlyingSymbol)
	_ = w.PushString(req.FutFopExchange)
	_ = w.PushString(req.UnderlyingSecType)
	w.PushInt(req.UnderlyingConID)
	return w.Buf
}

func encodeExerciseOptions(req *ExerciseOptions) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(exerciseOptions)
	w.PushInt(2)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, true)
	w.PushInt(req.ExerciseAction)
	w.PushInt(req.ExerciseQuantity)
	_ = w.PushString(req.Account)
	w.PushInt(req.Override)
	return w.Buf
}

func encodeReqOpenOrders() []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqOpenOrders)
	w.PushInt(1)
	return w.Buf
}

func encodeReqAllOpenOrders() []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqAllOpenOrders)
	w.PushInt(1)
	return w.Buf
}

func encodeReqAutoOpenOrders(req *ReqAutoOpenOrders) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqAutoOpenOrders)
	w.PushInt(1)
	w.PushBool(req.AutoBind)
	return w.Buf
}

func encodeReqGlobalCancel() []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqGlobalCancel)
	w.PushInt(1)
	return w.Buf
}

func encodeCalculateImpliedVolatility(req *CalculateImpliedVolatility) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqCalcImpliedVolatility)
	w.PushInt(3)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, true)
	w.PushDouble(req.OptionPrice)
	w.PushDouble(req.UnderPrice)
	return w.Buf
}

func encodeCancelCalculateImpliedVolatility(req *CancelCalculateImpliedVolatility) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelCalcImpliedVolatility)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	return w.Buf
}

func encodeCalculateOptionPrice(req *CalculateOptionPrice) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqCalcOptionPrice)
	w.PushInt(3)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, true)
	w.PushDouble(req.Volatility)
	w.PushDouble(req.UnderPrice)
	return w.Buf
}

func encodeCancelCalculateOptionPrice(req *CancelCalculateOptionPrice) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelCalcOptionPrice)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	return w.Buf
}

func encodeSetServerLogLevel(req *SetServerLogLevel) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(setServerLogLevel)
	w.PushInt(1)
	w.PushInt(req.LogLevel)
	return w.Buf
}

func encodeReqNewsBulletins(req *ReqNewsBulletins) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqNewsBulletins)
	w.PushInt(1)
	w.PushBool(req.AllMsgs)
	return w.Buf
}

func encodeCancelNewsBulletins() []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelNewsBulletins)
	w.PushInt(1)
	return w.Buf
}

func decodeErrMsg(r *twsbin.Reader, wireVersion int32) *ErrMsg {
	msg := &ErrMsg{}
	if wireVersion < 2 {
		msg.ID = -1
		msg.ErrorMessage = r.ReadString()
		return msg
	}
	msg.ID = r.ReadInt()
	msg.ErrorCode = r.ReadInt()
	msg.ErrorMessage = r.ReadString()
	if r.Len() > 0 {
		msg.AdvancedOrderRejectJSON = r.ReadString()
	}
	return msg
}
