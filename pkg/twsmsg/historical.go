package twsmsg

import "github.com/fourbytes/ibtws-go/pkg/twsbin"

func encodeReqHistoricalData(ctx *Context, req *ReqHistoricalData) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqHistoricalData)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, true)
	w.PushBool(req.Contract.IncludeExpired)
	_ = w.PushString(req.EndDateTime)
	_ = w.PushString(req.BarSizeSetting)
	_ = w.PushString(req.DurationStr)
	w.PushInt(req.UseRTH)
	_ = w.PushString(req.WhatToShow)
	w.PushInt(req.FormatDate)
	if req.Contract.isCombo() {
		encodeComboLegs(w, req.Contract.ComboLegs, false)
	} else {
		w.PushInt(0)
	}
	w.PushBool(req.KeepUpToDate)
	_ = w.PushString(EncodeTagValueList(req.ChartOptions))
	return w.Buf
}

func encodeCancelHistoricalData(req *CancelHistoricalData) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelHistoricalData)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodeBar(r *twsbin.Reader) Bar {
	return Bar{
		Time: r.ReadString(), Open: r.ReadDouble(), High: r.ReadDouble(), Low: r.ReadDouble(),
		Close: r.ReadDouble(), Volume: r.ReadLong(), Wap: r.ReadDouble(), Count: r.ReadInt(),
	}
}

func decodeHistoricalDataMsg(r *twsbin.Reader) *HistoricalDataMsg {
	msg := &HistoricalDataMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.StartDate = r.ReadString()
	msg.EndDate = r.ReadString()
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		msg.Bars = append(msg.Bars, decodeBar(r))
	}
	return msg
}

func decodeHistoricalDataUpdateMsg(r *twsbin.Reader) *HistoricalDataUpdateMsg {
	reqID := r.ReadInt()
	return &HistoricalDataUpdateMsg{reqIDResponse{reqID}, decodeBar(r)}
}

func encodeReqRealtimeBars(req *ReqRealtimeBars) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqRealTimeBars)
	w.PushInt(3)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, true)
	w.PushInt(req.BarSize)
	_ = w.PushString(req.WhatToShow)
	w.PushBool(req.UseRTH)
	_ = w.PushString(EncodeTagValueList(req.Options))
	return w.Buf
}

func encodeCancelRealtimeBars(req *CancelRealtimeBars) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelRealTimeBars)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodeRealTimeBarsMsg(r *twsbin.Reader) *RealTimeBarsMsg {
	msg := &RealTimeBarsMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.Time = r.ReadLong()
	msg.Open = r.ReadDouble()
	msg.High = r.ReadDouble()
	msg.Low = r.ReadDouble()
	msg.Close = r.ReadDouble()
	msg.Volume = r.ReadLong()
	msg.Wap = r.ReadDouble()
	msg.Count = r.ReadInt()
	return msg
}

func encodeReqHeadTimestamp(req *ReqHeadTimestamp) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqHeadTimestamp)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, true)
	w.PushBool(req.Contract.IncludeExpired)
	w.PushInt(req.UseRTH)
	_ = w.PushString(req.WhatToShow)
	w.PushInt(req.FormatDate)
	return w.Buf
}

func encodeCancelHeadTimestamp(req *CancelHeadTimestamp) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelHeadTimestamp)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodeHeadTimestampMsg(r *twsbin.Reader) *HeadTimestampMsg {
	return &HeadTimestampMsg{reqIDResponse{r.ReadInt()}, r.ReadString()}
}

func encodeReqHistogramData(req *ReqHistogramData) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqHistogramData)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, true)
	w.PushBool(req.UseRTH)
	_ = w.PushString(req.TimePeriod)
	return w.Buf
}

func encodeCancelHistogramData(req *CancelHistogramData) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelHistogramData)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodeHistogramDataMsg(r *twsbin.Reader) *HistogramDataMsg {
	msg := &HistogramDataMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		msg.Items = append(msg.Items, HistogramEntry{Price: r.ReadDouble(), Size: r.ReadLong()})
	}
	return msg
}

func encodeReqHistoricalTicks(req *ReqHistoricalTicks) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqHistoricalTicks)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, true)
	w.PushBool(req.Contract.IncludeExpired)
	_ = w.PushString(req.StartTime)
	_ = w.PushString(req.EndTime)
	w.PushInt(req.NumberOfTicks)
	_ = w.PushString(req.WhatToShow)
	w.PushInt(req.UseRTH)
	w.PushBool(req.IgnoreSize)
	_ = w.PushString(EncodeTagValueList(req.Options))
	return w.Buf
}

func decodeHistoricalTicksMsg(r *twsbin.Reader) *HistoricalTicksMsg {
	msg := &HistoricalTicksMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		msg.Ticks = append(msg.Ticks, HistoricalTick{Time: r.ReadLong(), Price: r.ReadDouble(), Size: r.ReadLong()})
	}
	msg.Done = r.ReadBool()
	return msg
}

func decodeHistoricalTickBidAskMsg(r *twsbin.Reader) *HistoricalTickBidAskMsg {
	msg := &HistoricalTickBidAskMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		time := r.ReadLong()
		mask := r.ReadInt()
		msg.Ticks = append(msg.Ticks, HistoricalTickBidAsk{
			Time: time, Attribs: decodeTickAttr(mask, true),
			PriceBid: r.ReadDouble(), PriceAsk: r.ReadDouble(),
			SizeBid: r.ReadLong(), SizeAsk: r.ReadLong(),
		})
	}
	msg.Done = r.ReadBool()
	return msg
}

func decodeHistoricalTickLastMsg(r *twsbin.Reader) *HistoricalTickLastMsg {
	msg := &HistoricalTickLastMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		time := r.ReadLong()
		mask := r.ReadInt()
		msg.Ticks = append(msg.Ticks, HistoricalTickLast{
			Time: time, Attribs: decodeTickAttr(mask, true),
			Price: r.ReadDouble(), Size: r.ReadLong(),
			Exchange: r.ReadString(), SpecialConditions: r.ReadString(),
		})
	}
	msg.Done = r.ReadBool()
	return msg
}
