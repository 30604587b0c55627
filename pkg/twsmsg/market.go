package twsmsg

import "github.com/fourbytes/ibtws-go/pkg/twsbin"

func encodeReqMktData(req *ReqMktData) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqMktData)
	w.PushInt(11)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, true)
	if req.Contract.isCombo() {
		encodeComboLegs(w, req.Contract.ComboLegs, false)
	} else {
		w.PushInt(0)
	}
	if req.Contract.DeltaNeutralContract != nil {
		w.PushBool(true)
		dn := req.Contract.DeltaNeutralContract
		w.PushInt(dn.ConID)
		w.PushDouble(dn.Delta)
		w.PushDouble(dn.Price)
	} else {
		w.PushBool(false)
	}
	_ = w.PushString(req.GenericTickList)
	w.PushBool(req.Snapshot)
	w.PushBool(req.RegulatorySnapshot)
	_ = w.PushString(EncodeTagValueList(req.MktDataOptions))
	return w.Buf
}

func encodeCancelMktData(req *CancelMktData) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelMktData)
	w.PushInt(2)
	w.PushInt(req.ReqID)
	return w.Buf
}

func encodeReqMktDepth(req *ReqMktDepth) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqMktDepth)
	w.PushInt(5)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, true)
	w.PushInt(req.NumRows)
	_ = w.PushString(EncodeTagValueList(req.Options))
	return w.Buf
}

func encodeCancelMktDepth(req *CancelMktDepth) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelMktDepth)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	return w.Buf
}

func encodeReqSmartComponents(req *ReqSmartComponents) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqSmartComponents)
	w.PushInt(req.ReqID)
	_ = w.PushString(req.BboExchange)
	return w.Buf
}

func encodeReqMarketDataType(req *ReqMarketDataType) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqMarketDataType)
	w.PushInt(1)
	w.PushInt(req.MarketDataType)
	return w.Buf
}

func encodeReqTickByTickData(req *ReqTickByTickData) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqTickByTickData)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, true)
	_ = w.PushString(req.TickType)
	w.PushInt(req.NumberOfTicks)
	w.PushBool(req.IgnoreSize)
	return w.Buf
}

func encodeCancelTickByTickData(req *CancelTickByTickData) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelTickByTickData)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodeTickPriceMsg(ctx *Context, r *twsbin.Reader) *TickPriceMsg {
	reqID := r.ReadInt()
	tickType := r.ReadInt()
	price := r.ReadDoubleMax()
	size := r.ReadInt()
	mask := r.ReadInt()
	return &TickPriceMsg{
		reqIDResponse: reqIDResponse{reqID},
		TickType:      tickType,
		Price:         price,
		Size:          size,
		Attribs:       decodeTickAttr(mask, ctx.ServerVersion() >= minServerVerPastLimit),
	}
}

func decodeTickSizeMsg(r *twsbin.Reader) *TickSizeMsg {
	return &TickSizeMsg{reqIDResponse{r.ReadInt()}, r.ReadInt(), r.ReadInt()}
}

func decodeTickStringMsg(r *twsbin.Reader) *TickStringMsg {
	return &TickStringMsg{reqIDResponse{r.ReadInt()}, r.ReadInt(), r.ReadString()}
}

func decodeTickGenericMsg(r *twsbin.Reader) *TickGenericMsg {
	return &TickGenericMsg{reqIDResponse{r.ReadInt()}, r.ReadInt(), r.ReadDouble()}
}

func decodeTickEFPMsg(r *twsbin.Reader) *TickEFPMsg {
	msg := &TickEFPMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.TickType = r.ReadInt()
	msg.BasisPoints = r.ReadDouble()
	msg.FormattedBasisPoints = r.ReadString()
	msg.ImpliedFuturesPrice = r.ReadDouble()
	msg.HoldDays = r.ReadInt()
	msg.FutureLastTradeDate = r.ReadString()
	msg.DividendImpact = r.ReadDouble()
	msg.DividendsToLastTradeDate = r.ReadDouble()
	return msg
}

func decodeTickOptionComputationMsg(r *twsbin.Reader) *TickOptionComputationMsg {
	msg := &TickOptionComputationMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.TickType = r.ReadInt()
	msg.ImpliedVol = r.ReadDoubleMax()
	msg.Delta = r.ReadDoubleMax()
	if msg.ImpliedVol < 0 {
		msg.ImpliedVol = twsbin.MaxFloat
	}
	if msg.Delta > 1 || msg.Delta < -1 {
		msg.Delta = twsbin.MaxFloat
	}
	msg.OptPrice = r.ReadDoubleMax()
	msg.PvDividend = r.ReadDoubleMax()
	msg.Gamma = r.ReadDoubleMax()
	msg.Vega = r.ReadDoubleMax()
	msg.Theta = r.ReadDoubleMax()
	msg.UndPrice = r.ReadDoubleMax()
	return msg
}

func decodeTickSnapshotEndMsg(r *twsbin.Reader) *TickSnapshotEndMsg {
	return &TickSnapshotEndMsg{reqIDResponse{r.ReadInt()}}
}

func decodeMarketDataTypeMsg(r *twsbin.Reader) *MarketDataTypeMsg {
	return &MarketDataTypeMsg{reqIDResponse{r.ReadInt()}, r.ReadInt()}
}

func decodeMarketDepthMsg(r *twsbin.Reader) *MarketDepthMsg {
	msg := &MarketDepthMsg{}
	msg.ID = r.ReadInt()
	msg.Position = r.ReadInt()
	msg.Operation = r.ReadInt()
	msg.Side = r.ReadInt()
	msg.Price = r.ReadDouble()
	msg.Size = r.ReadInt()
	return msg
}

func decodeMarketDepthL2Msg(r *twsbin.Reader) *MarketDepthL2Msg {
	msg := &MarketDepthL2Msg{}
	msg.ID = r.ReadInt()
	msg.Position = r.ReadInt()
	msg.MarketMaker = r.ReadString()
	msg.Operation = r.ReadInt()
	msg.Side = r.ReadInt()
	msg.Price = r.ReadDouble()
	msg.Size = r.ReadInt()
	return msg
}

func decodeSmartComponentsMsg(r *twsbin.Reader) *SmartComponentsMsg {
	msg := &SmartComponentsMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	n := r.ReadInt()
	msg.Components = make(map[int32]SmartComponent, n)
	for i := int32(0); i < n; i++ {
		bit := r.ReadInt()
		msg.Components[bit] = SmartComponent{Exchange: r.ReadString(), BitNum: uint8(r.ReadInt())}
	}
	return msg
}

func decodeTickReqParamsMsg(r *twsbin.Reader) *TickReqParamsMsg {
	return &TickReqParamsMsg{
		reqIDResponse:       reqIDResponse{r.ReadInt()},
		MinTick:             r.ReadDouble(),
		BboExchange:         r.ReadString(),
		SnapshotPermissions: r.ReadInt(),
	}
}

func decodeDeltaNeutralValidationMsg(r *twsbin.Reader) *DeltaNeutralValidationMsg {
	reqID := r.ReadInt()
	dn := DeltaNeutralContract{ConID: r.ReadInt(), Delta: r.ReadDouble(), Price: r.ReadDouble()}
	return &DeltaNeutralValidationMsg{reqIDResponse{reqID}, dn}
}

func decodeRerouteMktDataReqMsg(r *twsbin.Reader) *RerouteMktDataReqMsg {
	return &RerouteMktDataReqMsg{reqIDResponse{r.ReadInt()}, r.ReadInt(), r.ReadString()}
}

func decodeRerouteMktDepthReqMsg(r *twsbin.Reader) *RerouteMktDepthReqMsg {
	return &RerouteMktDepthReqMsg{reqIDResponse{r.ReadInt()}, r.ReadInt(), r.ReadString()}
}

func decodeMktDepthExchangesMsg(r *twsbin.Reader) *MktDepthExchangesMsg {
	msg := &MktDepthExchangesMsg{}
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		msg.Descriptions = append(msg.Descriptions, DepthMktDataDescription{
			Exchange:        r.ReadString(),
			SecType:         r.ReadString(),
			ListingExchange: r.ReadString(),
			ServiceDataType: r.ReadString(),
			AggGroup:        r.ReadIntMax(),
		})
	}
	return msg
}

func decodeTickByTick(ctx *Context, r *twsbin.Reader) Response {
	reqID := r.ReadInt()
	tickType := r.ReadInt()
	switch tickType {
	case 0:
		return &TickByTickNoneMsg{}
	case 1, 2:
		time := r.ReadLong()
		price := r.ReadDouble()
		size := r.ReadInt()
		mask := r.ReadInt()
		exchange := r.ReadString()
		cond := r.ReadString()
		return &TickByTickAllLastMsg{
			reqIDResponse: reqIDResponse{reqID}, TickType: tickType, Time: time, Price: price, Size: size,
			Attribs:           decodeTickAttr(mask, true),
			Exchange:          exchange,
			SpecialConditions: cond,
		}
	case 3:
		time := r.ReadLong()
		bid := r.ReadDouble()
		ask := r.ReadDouble()
		bidSz := r.ReadInt()
		askSz := r.ReadInt()
		mask := r.ReadInt()
		return &TickByTickBidAskMsg{
			reqIDResponse: reqIDResponse{reqID}, Time: time, BidPrice: bid, AskPrice: ask,
			BidSize: bidSz, AskSize: askSz, Attribs: decodeTickAttr(mask, true),
		}
	default: // 4: MidPoint
		time := r.ReadLong()
		mid := r.ReadDouble()
		return &TickByTickMidPointMsg{reqIDResponse{reqID}, time, mid}
	}
}
