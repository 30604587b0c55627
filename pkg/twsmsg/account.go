package twsmsg

import "github.com/fourbytes/ibtws-go/pkg/twsbin"

func encodeReqAccountUpdates(req *ReqAccountUpdates) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqAccountData)
	w.PushInt(2)
	w.PushBool(req.Subscribe)
	_ = w.PushString(req.AcctCode)
	return w.Buf
}

func decodeAcctValueMsg(r *twsbin.Reader) *AcctValueMsg {
	msg := &AcctValueMsg{}
	msg.Key = r.ReadString()
	msg.Val = r.ReadString()
	msg.Currency = r.ReadString()
	msg.AccountName = r.ReadString()
	return msg
}

func decodePortfolioValueMsg(r *twsbin.Reader) *PortfolioValueMsg {
	msg := &PortfolioValueMsg{}
	msg.Contract = decodeContract(r)
	msg.Position = r.ReadDouble()
	msg.MarketPrice = r.ReadDouble()
	msg.MarketValue = r.ReadDouble()
	msg.AverageCost = r.ReadDouble()
	msg.UnrealizedPnL = r.ReadDouble()
	msg.RealizedPnL = r.ReadDouble()
	msg.AccountName = r.ReadString()
	return msg
}

func decodeAcctUpdateTimeMsg(r *twsbin.Reader) *AcctUpdateTimeMsg {
	return &AcctUpdateTimeMsg{TimeStamp: r.ReadString()}
}

func decodeAcctDownloadEndMsg(r *twsbin.Reader) *AcctDownloadEndMsg {
	return &AcctDownloadEndMsg{AccountName: r.ReadString()}
}

func encodeReqAccountSummary(req *ReqAccountSummary) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqAccountSummary)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	_ = w.PushString(req.Group)
	_ = w.PushString(req.Tags)
	return w.Buf
}

func encodeCancelAccountSummary(req *CancelAccountSummary) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelAccountSummary)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodeAccountSummaryMsg(r *twsbin.Reader) *AccountSummaryMsg {
	msg := &AccountSummaryMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.Account = r.ReadString()
	msg.Tag = r.ReadString()
	msg.Value = r.ReadString()
	msg.Currency = r.ReadString()
	return msg
}

func decodeAccountSummaryEndMsg(r *twsbin.Reader) *AccountSummaryEndMsg {
	return &AccountSummaryEndMsg{reqIDResponse{r.ReadInt()}}
}

func decodeManagedAcctsMsg(ctx *Context, r *twsbin.Reader) *ManagedAcctsMsg {
	list := splitCSV(r.ReadString())
	ctx.OnManagedAccts(list)
	return &ManagedAcctsMsg{Accounts: list}
}

func splitCSV(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

func decodeReceiveFaMsg(r *twsbin.Reader) *ReceiveFaMsg {
	return &ReceiveFaMsg{FaDataType: r.ReadInt(), XML: r.ReadString()}
}

func encodeRequestFA(req *RequestFA) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(requestFA)
	w.PushInt(1)
	w.PushInt(req.FaDataType)
	return w.Buf
}

func encodeReplaceFA(req *ReplaceFA) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(replaceFA)
	w.PushInt(1)
	w.PushInt(req.FaDataType)
	_ = w.PushString(req.XML)
	return w.Buf
}

func decodeFundamentalDataMsg(r *twsbin.Reader) *FundamentalDataMsg {
	return &FundamentalDataMsg{reqIDResponse{r.ReadInt()}, r.ReadString()}
}

func encodeReqFundamentalData(req *ReqFundamentalData) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqFundamentalData)
	w.PushInt(2)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, false)
	_ = w.PushString(req.ReportType)
	return w.Buf
}

func encodeCancelFundamentalData(req *CancelFundamentalData) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelFundamentalData)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	return w.Buf
}

// --- verify / auth / display groups -----------------------------------------------

func encodeVerifyRequest(req *VerifyRequest) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(verifyRequest)
	w.PushInt(1)
	_ = w.PushString(req.APIName)
	_ = w.PushString(req.APIVersion)
	return w.Buf
}

func encodeVerifyMessage(req *VerifyMessage) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(verifyMessage)
	w.PushInt(1)
	_ = w.PushString(req.APIData)
	return w.Buf
}

func decodeVerifyMessageAPIMsg(r *twsbin.Reader) *VerifyMessageAPIMsg {
	return &VerifyMessageAPIMsg{APIData: r.ReadString()}
}

func decodeVerifyCompletedMsg(r *twsbin.Reader) *VerifyCompletedMsg {
	return &VerifyCompletedMsg{IsSuccessful: r.ReadBoolFromString(), ErrorText: r.ReadString()}
}

func encodeVerifyAndAuthRequest(req *VerifyAndAuthRequest) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(verifyAndAuthRequest)
	w.PushInt(1)
	_ = w.PushString(req.APIName)
	_ = w.PushString(req.APIVersion)
	_ = w.PushString(req.OpaqueIsVKey)
	return w.Buf
}

func encodeVerifyAndAuthMessage(req *VerifyAndAuthMessage) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(verifyAndAuthMessage)
	w.PushInt(1)
	_ = w.PushString(req.APIData)
	_ = w.PushString(req.XyzResponse)
	return w.Buf
}

func decodeVerifyAndAuthMessageAPIMsg(r *twsbin.Reader) *VerifyAndAuthMessageAPIMsg {
	return &VerifyAndAuthMessageAPIMsg{APIData: r.ReadString(), XyzChallenge: r.ReadString()}
}

func decodeVerifyAndAuthCompletedMsg(r *twsbin.Reader) *VerifyAndAuthCompletedMsg {
	return &VerifyAndAuthCompletedMsg{IsSuccessful: r.ReadBoolFromString(), ErrorText: r.ReadString()}
}

func encodeQueryDisplayGroups(req *QueryDisplayGroups) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(queryDisplayGroups)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodeDisplayGroupListMsg(r *twsbin.Reader) *DisplayGroupListMsg {
	return &DisplayGroupListMsg{reqIDResponse{r.ReadInt()}, r.ReadString()}
}

func encodeSubscribeToGroupEvent(req *SubscribeToGroupEvent) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(subscribeToGroupEvents)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	w.PushInt(req.GroupID)
	return w.Buf
}

func decodeDisplayGroupUpdatedMsg(r *twsbin.Reader) *DisplayGroupUpdatedMsg {
	return &DisplayGroupUpdatedMsg{reqIDResponse{r.ReadInt()}, r.ReadString()}
}

func encodeUpdateDisplayGroup(req *UpdateDisplayGroup) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(updateDisplayGroup)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	_ = w.PushString(req.ContractInfo)
	return w.Buf
}

func encodeUnsubscribeFromGroupEvents(req *UnsubscribeFromGroupEvents) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(unsubscribeFromGroupEvents)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	return w.Buf
}
