package twsmsg

import "github.com/fourbytes/ibtws-go/pkg/twsbin"

func decodePositionMsg(r *twsbin.Reader) *PositionMsg {
	msg := &PositionMsg{}
	msg.Account = r.ReadString()
	msg.Contract = decodeContract(r)
	msg.Pos = r.ReadDouble()
	msg.AvgCost = r.ReadDouble()
	return msg
}

func encodeReqPositionsMulti(req *ReqPositionsMulti) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqPositionsMulti)
	w.PushInt(req.ReqID)
	_ = w.PushString(req.Account)
	_ = w.PushString(req.ModelCode)
	return w.Buf
}

func encodeCancelPositionsMulti(req *CancelPositionsMulti) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelPositionsMulti)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodePositionMultiMsg(r *twsbin.Reader) *PositionMultiMsg {
	msg := &PositionMultiMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.Account = r.ReadString()
	msg.ModelCode = r.ReadString()
	msg.Contract = decodeContract(r)
	msg.Pos = r.ReadDouble()
	msg.AvgCost = r.ReadDouble()
	return msg
}

func decodePositionMultiEndMsg(r *twsbin.Reader) *PositionMultiEndMsg {
	return &PositionMultiEndMsg{reqIDResponse{r.ReadInt()}}
}

func encodeReqAccountUpdatesMulti(req *ReqAccountUpdatesMulti) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqAccountUpdatesMulti)
	w.PushInt(req.ReqID)
	_ = w.PushString(req.Account)
	_ = w.PushString(req.ModelCode)
	w.PushBool(req.LedgerAndNLV)
	return w.Buf
}

func encodeCancelAccountUpdatesMulti(req *CancelAccountUpdatesMulti) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelAccountUpdatesMulti)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodeAccountUpdateMultiMsg(r *twsbin.Reader) *AccountUpdateMultiMsg {
	msg := &AccountUpdateMultiMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.Account = r.ReadString()
	msg.ModelCode = r.ReadString()
	msg.Key = r.ReadString()
	msg.Value = r.ReadString()
	msg.Currency = r.ReadString()
	return msg
}

func decodeAccountUpdateMultiEndMsg(r *twsbin.Reader) *AccountUpdateMultiEndMsg {
	return &AccountUpdateMultiEndMsg{reqIDResponse{r.ReadInt()}}
}

func encodeReqPnl(req *ReqPnl) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqPnl)
	w.PushInt(req.ReqID)
	_ = w.PushString(req.Account)
	_ = w.PushString(req.ModelCode)
	return w.Buf
}

func encodeCancelPnl(req *CancelPnl) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelPnl)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodePnlMsg(r *twsbin.Reader) *PnlMsg {
	msg := &PnlMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.DailyPnL = r.ReadDouble()
	msg.UnrealizedPnL = r.ReadDoubleMax()
	msg.RealizedPnL = r.ReadDoubleMax()
	return msg
}

func encodeReqPnlSingle(req *ReqPnlSingle) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqPnlSingle)
	w.PushInt(req.ReqID)
	_ = w.PushString(req.Account)
	_ = w.PushString(req.ModelCode)
	w.PushInt(req.ConID)
	return w.Buf
}

func encodeCancelPnlSingle(req *CancelPnlSingle) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelPnlSingle)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodePnlSingleMsg(r *twsbin.Reader) *PnlSingleMsg {
	msg := &PnlSingleMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.Pos = r.ReadInt()
	msg.DailyPnL = r.ReadDouble()
	msg.UnrealizedPnL = r.ReadDoubleMax()
	msg.RealizedPnL = r.ReadDoubleMax()
	msg.Value = r.ReadDouble()
	return msg
}
