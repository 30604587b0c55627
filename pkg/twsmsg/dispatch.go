package twsmsg

import (
	"fmt"

	"github.com/fourbytes/ibtws-go/pkg/twsbin"
	"github.com/fourbytes/ibtws-go/pkg/twserr"
)

// EncodeMessage renders req to its wire form and reports how the eventual
// reply should be matched back to a waiter. ctx is read (never mutated) by
// encoders that need to version-gate a field.
func EncodeMessage(ctx *Context, req Request) ([]byte, DispatchID, error) {
	switch r := req.(type) {
	case *Handshake:
		return encodeHandshake(r), Global(opcodeHandshake), nil
	case *StartApi:
		return encodeStartAPI(r), Global(opStartAPI), nil

	case *ReqScannerParameters:
		w := twsbin.NewWriter(nil)
		w.PushInt(reqScannerParameters)
		w.PushInt(1)
		return w.Buf, Global(reqScannerParameters), nil
	case *ReqScannerSubscription:
		return encodeReqScannerSubscription(r), Multi(r.ReqID), nil
	case *CancelScannerSubscription:
		return encodeCancelScannerSubscription(r), Oneshot(r.ReqID), nil

	case *ReqMktData:
		kind := Multi(r.ReqID)
		if r.Snapshot {
			kind = Stream(r.ReqID) // terminates on TickSnapshotEnd, unlike a standing subscription
		}
		return encodeReqMktData(r), kind, nil
	case *CancelMktData:
		return encodeCancelMktData(r), Oneshot(r.ReqID), nil
	case *ReqMktDepth:
		return encodeReqMktDepth(r), Multi(r.ReqID), nil
	case *CancelMktDepth:
		return encodeCancelMktDepth(r), Oneshot(r.ReqID), nil
	case *ReqMktDepthExchanges:
		return encodeReqMktDepthExchanges(), Global(mktDepthExchanges), nil
	case *ReqSmartComponents:
		return encodeReqSmartComponents(r), Oneshot(r.ReqID), nil
	case *ReqMarketDataType:
		return encodeReqMarketDataType(r), Global(reqMarketDataType), nil
	case *ReqTickByTickData:
		return encodeReqTickByTickData(r), Multi(r.ReqID), nil
	case *CancelTickByTickData:
		return encodeCancelTickByTickData(r), Oneshot(r.ReqID), nil

	case *ReqHistoricalData:
		kind := Oneshot(r.ReqID)
		if r.KeepUpToDate {
			kind = Multi(r.ReqID)
		}
		return encodeReqHistoricalData(ctx, r), kind, nil
	case *CancelHistoricalData:
		return encodeCancelHistoricalData(r), Oneshot(r.ReqID), nil
	case *ReqHeadTimestamp:
		return encodeReqHeadTimestamp(r), Oneshot(r.ReqID), nil
	case *CancelHeadTimestamp:
		return encodeCancelHeadTimestamp(r), Oneshot(r.ReqID), nil
	case *ReqRealtimeBars:
		return encodeReqRealtimeBars(r), Multi(r.ReqID), nil
	case *CancelRealtimeBars:
		return encodeCancelRealtimeBars(r), Oneshot(r.ReqID), nil
	case *ReqHistoricalTicks:
		return encodeReqHistoricalTicks(r), Oneshot(r.ReqID), nil

	case *ReqContractDetails:
		return encodeReqContractDetails(ctx, r), Stream(r.ReqID), nil
	case *ReqSecDefOptParams:
		return encodeReqSecDefOptParams(r), Stream(r.ReqID), nil
	case *ReqMarketRule:
		return encodeReqMarketRule(r), Global(marketRule), nil
	case *MatchingSymbol:
		return encodeMatchingSymbol(r), Oneshot(r.ReqID), nil
	case *ReqFamilyCodes:
		return encodeReqFamilyCodes(), Global(familyCodes), nil
	case *ReqSoftDollarTiers:
		return encodeReqSoftDollarTiers(r), Oneshot(r.ReqID), nil

	case *ExerciseOptions:
		return encodeExerciseOptions(r), Oneshot(r.ReqID), nil
	case *PlaceOrder:
		return encodePlaceOrder(ctx, r), Multi(r.ReqID), nil
	case *CancelOrder:
		return encodeCancelOrder(r), Oneshot(r.ReqID), nil
	case *ReqOpenOrders:
		return encodeReqOpenOrders(), Global(openOrderEnd), nil
	case *ReqAllOpenOrders:
		return encodeReqAllOpenOrders(), Global(openOrderEnd), nil
	case *ReqAutoOpenOrders:
		return encodeReqAutoOpenOrders(r), Global(openOrder), nil
	case *ReqGlobalCancel:
		return encodeReqGlobalCancel(), Global(reqGlobalCancel), nil
	case *CalculateImpliedVolatility:
		return encodeCalculateImpliedVolatility(r), Stream(r.ReqID), nil
	case *CancelCalculateImpliedVolatility:
		return encodeCancelCalculateImpliedVolatility(r), Oneshot(r.ReqID), nil
	case *CalculateOptionPrice:
		return encodeCalculateOptionPrice(r), Stream(r.ReqID), nil
	case *CancelCalculateOptionPrice:
		return encodeCancelCalculateOptionPrice(r), Oneshot(r.ReqID), nil

	case *ReqAccountUpdates:
		return encodeReqAccountUpdates(r), Global(acctDownloadEnd), nil
	case *ReqAccountSummary:
		return encodeReqAccountSummary(r), Multi(r.ReqID), nil
	case *CancelAccountSummary:
		return encodeCancelAccountSummary(r), Oneshot(r.ReqID), nil
	case *ReqPositions:
		w := twsbin.NewWriter(nil)
		w.PushInt(reqPositions)
		w.PushInt(1)
		return w.Buf, Global(positionEnd), nil
	case *CancelPositions:
		w := twsbin.NewWriter(nil)
		w.PushInt(cancelPositions)
		w.PushInt(1)
		return w.Buf, Global(cancelPositions), nil
	case *ReqPositionsMulti:
		return encodeReqPositionsMulti(r), Stream(r.ReqID), nil
	case *CancelPositionsMulti:
		return encodeCancelPositionsMulti(r), Oneshot(r.ReqID), nil
	case *ReqAccountUpdatesMulti:
		return encodeReqAccountUpdatesMulti(r), Multi(r.ReqID), nil
	case *CancelAccountUpdatesMulti:
		return encodeCancelAccountUpdatesMulti(r), Oneshot(r.ReqID), nil
	case *ReqPnl:
		return encodeReqPnl(r), Multi(r.ReqID), nil
	case *CancelPnl:
		return encodeCancelPnl(r), Oneshot(r.ReqID), nil
	case *ReqPnlSingle:
		return encodeReqPnlSingle(r), Multi(r.ReqID), nil
	case *CancelPnlSingle:
		return encodeCancelPnlSingle(r), Oneshot(r.ReqID), nil

	case *ReqExecutions:
		return encodeReqExecutions(r), Stream(r.ReqID), nil

	case *ReqIds:
		return encodeReqIds(r), Global(nextValidID), nil
	case *ReqManagedAccts:
		return encodeReqManagedAccts(), Global(managedAccts), nil
	case *ReqCurrentTime:
		return encodeReqCurrentTime(), Global(currentTime), nil
	case *RequestFA:
		return encodeRequestFA(r), Global(receiveFA), nil
	case *ReplaceFA:
		return encodeReplaceFA(r), Global(receiveFA), nil
	case *ReqFundamentalData:
		return encodeReqFundamentalData(r), Oneshot(r.ReqID), nil
	case *CancelFundamentalData:
		return encodeCancelFundamentalData(r), Oneshot(r.ReqID), nil
	case *SetServerLogLevel:
		return encodeSetServerLogLevel(r), Global(setServerLogLevel), nil
	case *ReqNewsBulletins:
		return encodeReqNewsBulletins(r), Global(newsBulletins), nil
	case *CancelNewsBulletins:
		return encodeCancelNewsBulletins(), Global(cancelNewsBulletins), nil
	case *ReqNewsProvider:
		return encodeReqNewsProvider(), Global(newsProviders), nil
	case *ReqNewsArticle:
		return encodeReqNewsArticle(r), Oneshot(r.ReqID), nil
	case *ReqHistoricalNews:
		return encodeReqHistoricalNews(r), Stream(r.ReqID), nil
	case *ReqHistogramData:
		return encodeReqHistogramData(r), Oneshot(r.ReqID), nil
	case *CancelHistogramData:
		return encodeCancelHistogramData(r), Oneshot(r.ReqID), nil

	case *VerifyRequest:
		return encodeVerifyRequest(r), Global(verifyMessageAPI), nil
	case *VerifyMessage:
		return encodeVerifyMessage(r), Global(verifyCompleted), nil
	case *VerifyAndAuthRequest:
		return encodeVerifyAndAuthRequest(r), Global(verifyAndAuthMessageAPI), nil
	case *VerifyAndAuthMessage:
		return encodeVerifyAndAuthMessage(r), Global(verifyAndAuthCompleted), nil
	case *QueryDisplayGroups:
		return encodeQueryDisplayGroups(r), Oneshot(r.ReqID), nil
	case *SubscribeToGroupEvent:
		return encodeSubscribeToGroupEvent(r), Multi(r.ReqID), nil
	case *UpdateDisplayGroup:
		return encodeUpdateDisplayGroup(r), Oneshot(r.ReqID), nil
	case *UnsubscribeFromGroupEvents:
		return encodeUnsubscribeFromGroupEvents(r), Oneshot(r.ReqID), nil

	default:
		return nil, DispatchID{}, fmt.Errorf("twsmsg: %w: %T", twserr.ErrUnknownMessageType, req)
	}
}

// DecodeMessage parses one complete frame (the payload already stripped of
// its 4-byte length prefix) into a Response. Before ctx has observed a
// server version, every frame is the handshake ack and carries no leading
// message-id field.
func DecodeMessage(ctx *Context, frame []byte) (Response, error) {
	if ctx.ServerVersion() < 0 {
		return decodeHandshakeAckAndApply(ctx, frame)
	}

	r := twsbin.NewReader(frame)
	id := r.ReadInt()
	if id != errMsg && id != tickByTick {
		r.ReadInt() // per-message wire version, superseded by server-version gating
	}

	var resp Response
	switch id {
	case errMsg:
		resp = decodeErrMsg(r, r.ReadInt())
	case nextValidID:
		resp = decodeNextValidIDMsg(ctx, r)
	case managedAccts:
		resp = decodeManagedAcctsMsg(ctx, r)
	case currentTime:
		resp = decodeCurrentTimeMsg(r)
	case scannerParameters:
		resp = decodeScannerParametersMsg(r)
	case scannerData:
		resp = decodeScannerDataMsg(r)
	case receiveFA:
		resp = decodeReceiveFaMsg(r)
	case mktDepthExchanges:
		resp = decodeMktDepthExchangesMsg(r)
	case familyCodes:
		resp = decodeFamilyCodesMsg(r)
	case newsProviders:
		resp = decodeNewsProviderMsg(r)
	case marketRule:
		resp = decodeMarketRuleMsg(r)
	case verifyCompleted:
		resp = decodeVerifyCompletedMsg(r)
	case verifyMessageAPI:
		resp = decodeVerifyMessageAPIMsg(r)
	case verifyAndAuthCompleted:
		resp = decodeVerifyAndAuthCompletedMsg(r)
	case verifyAndAuthMessageAPI:
		resp = decodeVerifyAndAuthMessageAPIMsg(r)

	case acctValue:
		resp = decodeAcctValueMsg(r)
	case portfolioValue:
		resp = decodePortfolioValueMsg(r)
	case acctUpdateTime:
		resp = decodeAcctUpdateTimeMsg(r)
	case acctDownloadEnd:
		resp = decodeAcctDownloadEndMsg(r)
	case accountSummary:
		resp = decodeAccountSummaryMsg(r)
	case accountSummaryEnd:
		resp = decodeAccountSummaryEndMsg(r)
	case positionMsg:
		resp = decodePositionMsg(r)
	case positionEnd:
		resp = &PositionEndMsg{globalResponse{positionEnd}}
	case positionMulti:
		resp = decodePositionMultiMsg(r)
	case positionMultiEnd:
		resp = decodePositionMultiEndMsg(r)
	case accountUpdateMulti:
		resp = decodeAccountUpdateMultiMsg(r)
	case accountUpdateMultiEnd:
		resp = decodeAccountUpdateMultiEndMsg(r)
	case pnl:
		resp = decodePnlMsg(r)
	case pnlSingle:
		resp = decodePnlSingleMsg(r)

	case contractData:
		resp = decodeContractDataMsg(ctx, r)
	case bondContractData:
		resp = decodeBondContractDataMsg(ctx, r)
	case contractDataEnd:
		resp = decodeContractDataEndMsg(r)
	case symbolSamples:
		resp = decodeSymbolSamplesMsg(r)
	case securityDefinitionOptionParameter:
		resp = decodeSecurityDefinitionOptionalParameterMsg(r)
	case securityDefinitionOptionParameterEnd:
		resp = &SecurityDefinitionOptionalParameterEndMsg{reqIDResponse{r.ReadInt()}}
	case softDollarTiers:
		resp = decodeSoftDollarTiersMsg(r)
	case smartComponents:
		resp = decodeSmartComponentsMsg(r)
	case tickReqParams:
		resp = decodeTickReqParamsMsg(r)

	case tickPrice:
		resp = decodeTickPriceMsg(ctx, r)
	case tickSize:
		resp = decodeTickSizeMsg(r)
	case tickString:
		resp = decodeTickStringMsg(r)
	case tickGeneric:
		resp = decodeTickGenericMsg(r)
	case tickEFP:
		resp = decodeTickEFPMsg(r)
	case tickOptionComputation:
		resp = decodeTickOptionComputationMsg(r)
	case tickSnapshotEnd:
		resp = decodeTickSnapshotEndMsg(r)
	case marketDataType:
		resp = decodeMarketDataTypeMsg(r)
	case marketDepth:
		resp = decodeMarketDepthMsg(r)
	case marketDepthL2:
		resp = decodeMarketDepthL2Msg(r)
	case deltaNeutralValidation:
		resp = decodeDeltaNeutralValidationMsg(r)
	case rerouteMktDataReq:
		resp = decodeRerouteMktDataReqMsg(r)
	case rerouteMktDepthReq:
		resp = decodeRerouteMktDepthReqMsg(r)
	case tickByTick:
		resp = decodeTickByTick(ctx, r)

	case historicalData:
		resp = decodeHistoricalDataMsg(r)
	case historicalDataUpdate:
		resp = decodeHistoricalDataUpdateMsg(r)
	case realTimeBars:
		resp = decodeRealTimeBarsMsg(r)
	case headTimestamp:
		resp = decodeHeadTimestampMsg(r)
	case histogramData:
		resp = decodeHistogramDataMsg(r)
	case historicalTicks:
		resp = decodeHistoricalTicksMsg(r)
	case historicalTicksBidAsk:
		resp = decodeHistoricalTickBidAskMsg(r)
	case historicalTicksLast:
		resp = decodeHistoricalTickLastMsg(r)

	case orderStatus:
		resp = decodeOrderStatusMsg(r)
	case openOrder:
		resp = decodeOpenOrderMsg(ctx, r)
	case openOrderEnd:
		resp = &OpenOrderEndMsg{globalResponse{openOrderEnd}}
	case executionData:
		resp = decodeExecutionDataMsg(ctx, r)
	case executionDataEnd:
		resp = decodeExecutionDataEndMsg(r)
	case commissionReport:
		resp = decodeCommissionReportMsg(ctx, r)

	case fundamentalData:
		resp = decodeFundamentalDataMsg(r)
	case displayGroupList:
		resp = decodeDisplayGroupListMsg(r)
	case displayGroupUpdated:
		resp = decodeDisplayGroupUpdatedMsg(r)

	case newsBulletins:
		resp = decodeNewsBulletinsMsg(r)
	case tickNews:
		resp = decodeTickNewsMsg(r)
	case newsArticle:
		resp = decodeNewsArticleMsg(r)
	case historicalNews:
		resp = decodeHistoricalNewsMsg(r)
	case historicalNewsEnd:
		resp = decodeHistoricalNewsEndMsg(r)

	default:
		return nil, fmt.Errorf("twsmsg: %w: id=%d", twserr.ErrUnknownMessageType, id)
	}

	// Singleton responses correlate on the opcode they arrived under.
	if g, ok := resp.(interface{ setOpcode(int32) }); ok {
		g.setOpcode(id)
	}

	if r.Err() != nil {
		return nil, r.Err()
	}
	return resp, nil
}

func (r *globalResponse) setOpcode(op int32) { r.opcode = op }

// RouteKey reports the waiter table key resp belongs to: a request id for
// ordinary oneshot/stream/multi responses, or a fixed opcode for global
// responses and the handful of broadcast messages that carry no id of their
// own (account/position/open-order rows). These two numeric spaces never
// collide in practice (issued request ids start well above the highest
// opcode), so callers may keep a single map keyed by this value. ok is false
// for responses nothing can be waiting on.
func RouteKey(resp Response) (key int32, ok bool) {
	if id, has := resp.RequestID(); has {
		return id, true
	}
	switch resp.(type) {
	case *AcctValueMsg, *PortfolioValueMsg, *AcctUpdateTimeMsg, *AcctDownloadEndMsg:
		return acctDownloadEnd, true
	case *PositionMsg:
		return positionEnd, true
	case *OpenOrderMsg, *OrderStatusMsg:
		return openOrderEnd, true
	default:
		return 0, false
	}
}

// IsEndOfStream reports whether resp is the terminal message of a Stream- or
// Multi-dispatched request (ContractDataEndMsg and its siblings), signaling
// the waiter's channel should be closed rather than left open for more.
func IsEndOfStream(resp Response) bool {
	switch resp.(type) {
	case *ContractDataEndMsg,
		*SecurityDefinitionOptionalParameterEndMsg,
		*TickSnapshotEndMsg,
		*HistoricalNewsEndMsg,
		*ExecutionDataEndMsg,
		*PositionMultiEndMsg,
		*AccountUpdateMultiEndMsg,
		*AccountSummaryEndMsg,
		*PositionEndMsg,
		*OpenOrderEndMsg:
		return true
	default:
		return false
	}
}

func decodeHandshakeAckAndApply(ctx *Context, frame []byte) (Response, error) {
	ack, err := decodeHandshakeAck(frame)
	if err != nil {
		return nil, err
	}
	ctx.OnServerVersion(ack.ServerVersion)
	return ack, nil
}
