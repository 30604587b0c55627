package twsmsg

import "github.com/fourbytes/ibtws-go/pkg/twsbin"

func encodeReqScannerSubscription(req *ReqScannerSubscription) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqScannerSubscription)
	w.PushInt(req.ReqID)
	s := &req.Subscribe
	w.PushIntMax(s.NumberOfRows)
	_ = w.PushString(s.Instrument)
	_ = w.PushString(s.LocationCode)
	_ = w.PushString(s.ScanCode)
	w.PushDoubleMax(s.AbovePrice)
	w.PushDoubleMax(s.BelowPrice)
	w.PushIntMax(s.AboveVolume)
	w.PushDoubleMax(s.MarketCapAbove)
	w.PushDoubleMax(s.MarketCapBelow)
	_ = w.PushString(s.MoodyRatingAbove)
	_ = w.PushString(s.MoodyRatingBelow)
	_ = w.PushString(s.SpRatingAbove)
	_ = w.PushString(s.SpRatingBelow)
	_ = w.PushString(s.MaturityDateAbove)
	_ = w.PushString(s.MaturityDateBelow)
	w.PushDoubleMax(s.CouponRateAbove)
	w.PushDoubleMax(s.CouponRateBelow)
	w.PushBool(s.ExcludeConvertible)
	w.PushIntMax(s.AverageOptionVolumeAbove)
	_ = w.PushString(s.ScannerSettingPairs)
	_ = w.PushString(s.StockTypeFilter)
	_ = w.PushString(EncodeTagValueList(req.Options))
	return w.Buf
}

func encodeCancelScannerSubscription(req *CancelScannerSubscription) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelScannerSubscription)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodeScannerParametersMsg(r *twsbin.Reader) *ScannerParametersMsg {
	return &ScannerParametersMsg{XML: r.ReadString()}
}

func decodeScannerDataMsg(r *twsbin.Reader) *ScannerDataMsg {
	msg := &ScannerDataMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		var row ScannerData
		row.Rank = r.ReadInt()
		row.ContractDetails = decodeContractDetails(r, 0, false)
		row.Distance = r.ReadString()
		row.Benchmark = r.ReadString()
		row.Projection = r.ReadString()
		row.Legs = r.ReadString()
		msg.Data = append(msg.Data, row)
	}
	return msg
}
