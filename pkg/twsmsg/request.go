package twsmsg

// Request is the closed catalogue of outgoing message variants. Every
// concrete type is a *T satisfying this interface; requestKey identifies
// the variant for routing in EncodeMessage and is not meant to be called
// by application code.
type Request interface {
	SetRequestID(id int32)
	requestKey() int32
}

// reqIDField is embedded by every request variant that carries a req-id,
// giving it SetRequestID/GetRequestID for free. Variants without a req-id
// (handshake, start-api, req-managed-accts, req-positions, ...) implement
// SetRequestID themselves as a no-op, per spec: "no-op for request-id-less
// requests".
type reqIDField struct{ ReqID int32 }

func (f *reqIDField) SetRequestID(id int32) { f.ReqID = id }
func (f *reqIDField) GetRequestID() int32   { return f.ReqID }

// --- handshake / start-api -------------------------------------------------

type Handshake struct {
	MinVersion int32
	MaxVersion int32
	Option     string // optional; empty means absent
}

func (r *Handshake) SetRequestID(int32)  {}
func (r *Handshake) requestKey() int32   { return opHandshake }

type StartApi struct {
	ClientID             int32
	OptionalCapabilities string
}

func (r *StartApi) SetRequestID(int32) {}
func (r *StartApi) requestKey() int32  { return opStartAPI }

// --- scanner ----------------------------------------------------------------

type CancelScannerSubscription struct{ reqIDField }

func (r *CancelScannerSubscription) requestKey() int32 { return cancelScannerSubscription }

type ReqScannerParameters struct{}

func (r *ReqScannerParameters) SetRequestID(int32) {}
func (r *ReqScannerParameters) requestKey() int32  { return reqScannerParameters }

type ReqScannerSubscription struct {
	reqIDField
	Subscribe ScannerSubscription
	Options   []TagValue
}

func (r *ReqScannerSubscription) requestKey() int32 { return reqScannerSubscription }

// --- market data -------------------------------------------------------------

type ReqMktData struct {
	reqIDField
	Contract           Contract
	GenericTickList    string
	Snapshot           bool
	RegulatorySnapshot bool
	MktDataOptions     []TagValue
}

func (r *ReqMktData) requestKey() int32 { return reqMktData }

type CancelMktData struct{ reqIDField }

func (r *CancelMktData) requestKey() int32 { return cancelMktData }

type ReqMktDepth struct {
	reqIDField
	Contract Contract
	NumRows  int32
	Options  []TagValue
}

func (r *ReqMktDepth) requestKey() int32 { return reqMktDepth }

type CancelMktDepth struct{ reqIDField }

func (r *CancelMktDepth) requestKey() int32 { return cancelMktDepth }

type ReqMktDepthExchanges struct{}

func (r *ReqMktDepthExchanges) SetRequestID(int32) {}
func (r *ReqMktDepthExchanges) requestKey() int32  { return reqMktDepthExchanges }

type ReqSmartComponents struct {
	reqIDField
	BboExchange string
}

func (r *ReqSmartComponents) requestKey() int32 { return reqSmartComponents }

type ReqMarketDataType struct{ MarketDataType int32 }

func (r *ReqMarketDataType) SetRequestID(int32) {}
func (r *ReqMarketDataType) requestKey() int32  { return reqMarketDataType }

type ReqTickByTickData struct {
	reqIDField
	Contract    Contract
	TickType    string
	NumberOfTicks int32
	IgnoreSize  bool
}

func (r *ReqTickByTickData) requestKey() int32 { return reqTickByTickData }

type CancelTickByTickData struct{ reqIDField }

func (r *CancelTickByTickData) requestKey() int32 { return cancelTickByTickData }

// --- historical data ----------------------------------------------------------

type ReqHistoricalData struct {
	reqIDField
	Contract      Contract
	EndDateTime   string
	DurationStr   string
	BarSizeSetting string
	WhatToShow    string
	UseRTH        int32
	FormatDate    int32
	KeepUpToDate  bool
	ChartOptions  []TagValue
}

func (r *ReqHistoricalData) requestKey() int32 { return reqHistoricalData }

type CancelHistoricalData struct{ reqIDField }

func (r *CancelHistoricalData) requestKey() int32 { return cancelHistoricalData }

type ReqHeadTimestamp struct {
	reqIDField
	Contract   Contract
	WhatToShow string
	UseRTH     int32
	FormatDate int32
}

func (r *ReqHeadTimestamp) requestKey() int32 { return reqHeadTimestamp }

type CancelHeadTimestamp struct{ reqIDField }

func (r *CancelHeadTimestamp) requestKey() int32 { return cancelHeadTimestamp }

type ReqRealtimeBars struct {
	reqIDField
	Contract   Contract
	BarSize    int32
	WhatToShow string
	UseRTH     bool
	Options    []TagValue
}

func (r *ReqRealtimeBars) requestKey() int32 { return reqRealTimeBars }

type CancelRealtimeBars struct{ reqIDField }

func (r *CancelRealtimeBars) requestKey() int32 { return cancelRealTimeBars }

type ReqHistoricalTicks struct {
	reqIDField
	Contract    Contract
	StartTime   string
	EndTime     string
	NumberOfTicks int32
	WhatToShow  string
	UseRTH      int32
	IgnoreSize  bool
	Options     []TagValue
}

func (r *ReqHistoricalTicks) requestKey() int32 { return reqHistoricalTicks }

// --- contract details ---------------------------------------------------------

type ReqContractDetails struct {
	reqIDField
	Contract Contract
}

func (r *ReqContractDetails) requestKey() int32 { return reqContractData }

type ReqSecDefOptParams struct {
	reqIDField
	UnderlyingSymbol   string
	FutFopExchange     string
	UnderlyingSecType  string
	UnderlyingConID    int32
}

func (r *ReqSecDefOptParams) requestKey() int32 { return reqSecDefOptParams }

type ReqMarketRule struct{ MarketRuleID int32 }

func (r *ReqMarketRule) SetRequestID(int32) {}
func (r *ReqMarketRule) requestKey() int32  { return reqMarketRule }

type MatchingSymbol struct {
	reqIDField
	Pattern string
}

func (r *MatchingSymbol) requestKey() int32 { return reqMatchingSymbols }

type ReqFamilyCodes struct{}

func (r *ReqFamilyCodes) SetRequestID(int32) {}
func (r *ReqFamilyCodes) requestKey() int32  { return reqFamilyCodes }

type ReqSoftDollarTiers struct{ reqIDField }

func (r *ReqSoftDollarTiers) requestKey() int32 { return reqSoftDollarTiers }

// --- orders ---------------------------------------------------------------------

type ExerciseOptions struct {
	reqIDField
	Contract         Contract
	ExerciseAction   int32
	ExerciseQuantity int32
	Account          string
	Override         int32
}

func (r *ExerciseOptions) requestKey() int32 { return exerciseOptions }

type PlaceOrder struct {
	reqIDField // ReqID doubles as the order id
	Contract Contract
	Order    Order
}

func (r *PlaceOrder) requestKey() int32 { return placeOrder }

type CancelOrder struct{ reqIDField }

func (r *CancelOrder) requestKey() int32 { return cancelOrder }

type ReqOpenOrders struct{}

func (r *ReqOpenOrders) SetRequestID(int32) {}
func (r *ReqOpenOrders) requestKey() int32  { return reqOpenOrders }

type ReqAllOpenOrders struct{}

func (r *ReqAllOpenOrders) SetRequestID(int32) {}
func (r *ReqAllOpenOrders) requestKey() int32  { return reqAllOpenOrders }

type ReqAutoOpenOrders struct{ AutoBind bool }

func (r *ReqAutoOpenOrders) SetRequestID(int32) {}
func (r *ReqAutoOpenOrders) requestKey() int32  { return reqAutoOpenOrders }

type ReqGlobalCancel struct{}

func (r *ReqGlobalCancel) SetRequestID(int32) {}
func (r *ReqGlobalCancel) requestKey() int32  { return reqGlobalCancel }

type CalculateImpliedVolatility struct {
	reqIDField
	Contract    Contract
	OptionPrice float64
	UnderPrice  float64
}

func (r *CalculateImpliedVolatility) requestKey() int32 { return reqCalcImpliedVolatility }

type CancelCalculateImpliedVolatility struct{ reqIDField }

func (r *CancelCalculateImpliedVolatility) requestKey() int32 { return cancelCalcImpliedVolatility }

type CalculateOptionPrice struct {
	reqIDField
	Contract   Contract
	Volatility float64
	UnderPrice float64
}

func (r *CalculateOptionPrice) requestKey() int32 { return reqCalcOptionPrice }

type CancelCalculateOptionPrice struct{ reqIDField }

func (r *CancelCalculateOptionPrice) requestKey() int32 { return cancelCalcOptionPrice }

// --- account / portfolio / positions -----------------------------------------------

type ReqAccountUpdates struct {
	Subscribe bool
	AcctCode  string
}

func (r *ReqAccountUpdates) SetRequestID(int32) {}
func (r *ReqAccountUpdates) requestKey() int32  { return reqAccountData }

type ReqAccountSummary struct {
	reqIDField
	Group string
	Tags  string
}

func (r *ReqAccountSummary) requestKey() int32 { return reqAccountSummary }

type CancelAccountSummary struct{ reqIDField }

func (r *CancelAccountSummary) requestKey() int32 { return cancelAccountSummary }

type ReqPositions struct{}

func (r *ReqPositions) SetRequestID(int32) {}
func (r *ReqPositions) requestKey() int32  { return reqPositions }

type CancelPositions struct{}

func (r *CancelPositions) SetRequestID(int32) {}
func (r *CancelPositions) requestKey() int32  { return cancelPositions }

type ReqPositionsMulti struct {
	reqIDField
	Account   string
	ModelCode string
}

func (r *ReqPositionsMulti) requestKey() int32 { return reqPositionsMulti }

type CancelPositionsMulti struct{ reqIDField }

func (r *CancelPositionsMulti) requestKey() int32 { return cancelPositionsMulti }

type ReqAccountUpdatesMulti struct {
	reqIDField
	Account      string
	ModelCode    string
	LedgerAndNLV bool
}

func (r *ReqAccountUpdatesMulti) requestKey() int32 { return reqAccountUpdatesMulti }

type CancelAccountUpdatesMulti struct{ reqIDField }

func (r *CancelAccountUpdatesMulti) requestKey() int32 { return cancelAccountUpdatesMulti }

type ReqPnl struct {
	reqIDField
	Account   string
	ModelCode string
}

func (r *ReqPnl) requestKey() int32 { return reqPnl }

type CancelPnl struct{ reqIDField }

func (r *CancelPnl) requestKey() int32 { return cancelPnl }

type ReqPnlSingle struct {
	reqIDField
	Account   string
	ModelCode string
	ConID     int32
}

func (r *ReqPnlSingle) requestKey() int32 { return reqPnlSingle }

type CancelPnlSingle struct{ reqIDField }

func (r *CancelPnlSingle) requestKey() int32 { return cancelPnlSingle }

// --- executions -----------------------------------------------------------------

type ReqExecutions struct {
	reqIDField
	Filter ExecutionFilter
}

func (r *ReqExecutions) requestKey() int32 { return reqExecutions }

// --- misc / ids / time / FA ------------------------------------------------------

type ReqIds struct{ NumIds int32 }

func (r *ReqIds) SetRequestID(int32) {}
func (r *ReqIds) requestKey() int32  { return reqIds }

type ReqManagedAccts struct{}

func (r *ReqManagedAccts) SetRequestID(int32) {}
func (r *ReqManagedAccts) requestKey() int32  { return reqManagedAccts }

type ReqCurrentTime struct{}

func (r *ReqCurrentTime) SetRequestID(int32) {}
func (r *ReqCurrentTime) requestKey() int32  { return reqCurrentTime }

type RequestFA struct{ FaDataType int32 }

func (r *RequestFA) SetRequestID(int32) {}
func (r *RequestFA) requestKey() int32  { return requestFA }

type ReplaceFA struct {
	FaDataType int32
	XML        string
}

func (r *ReplaceFA) SetRequestID(int32) {}
func (r *ReplaceFA) requestKey() int32  { return replaceFA }

type ReqFundamentalData struct {
	reqIDField
	Contract   Contract
	ReportType string
}

func (r *ReqFundamentalData) requestKey() int32 { return reqFundamentalData }

type CancelFundamentalData struct{ reqIDField }

func (r *CancelFundamentalData) requestKey() int32 { return cancelFundamentalData }

type SetServerLogLevel struct{ LogLevel int32 }

func (r *SetServerLogLevel) SetRequestID(int32) {}
func (r *SetServerLogLevel) requestKey() int32  { return setServerLogLevel }

type ReqNewsBulletins struct{ AllMsgs bool }

func (r *ReqNewsBulletins) SetRequestID(int32) {}
func (r *ReqNewsBulletins) requestKey() int32  { return reqNewsBulletins }

type CancelNewsBulletins struct{}

func (r *CancelNewsBulletins) SetRequestID(int32) {}
func (r *CancelNewsBulletins) requestKey() int32  { return cancelNewsBulletins }

type ReqNewsProvider struct{}

func (r *ReqNewsProvider) SetRequestID(int32) {}
func (r *ReqNewsProvider) requestKey() int32  { return reqNewsProviders }

type ReqNewsArticle struct {
	reqIDField
	ProviderCode string
	ArticleID    string
	Options      []TagValue
}

func (r *ReqNewsArticle) requestKey() int32 { return reqNewsArticle }

type ReqHistoricalNews struct {
	reqIDField
	ConID        int32
	ProviderCode string
	StartTime    string
	EndTime      string
	TotalResults int32
	Options      []TagValue
}

func (r *ReqHistoricalNews) requestKey() int32 { return reqHistoricalNews }

type ReqHistogramData struct {
	reqIDField
	Contract   Contract
	UseRTH     bool
	TimePeriod string
}

func (r *ReqHistogramData) requestKey() int32 { return reqHistogramData }

type CancelHistogramData struct{ reqIDField }

func (r *CancelHistogramData) requestKey() int32 { return cancelHistogramData }

// --- verify / auth / display groups -----------------------------------------------

type VerifyRequest struct {
	APIName    string
	APIVersion string
	ExtraAuth  bool
}

func (r *VerifyRequest) SetRequestID(int32) {}
func (r *VerifyRequest) requestKey() int32  { return verifyRequest }

type VerifyMessage struct{ APIData string }

func (r *VerifyMessage) SetRequestID(int32) {}
func (r *VerifyMessage) requestKey() int32  { return verifyMessage }

type VerifyAndAuthRequest struct {
	APIName      string
	APIVersion   string
	OpaqueIsVKey string
	ExtraAuth    bool
}

func (r *VerifyAndAuthRequest) SetRequestID(int32) {}
func (r *VerifyAndAuthRequest) requestKey() int32  { return verifyAndAuthRequest }

type VerifyAndAuthMessage struct {
	APIData     string
	XyzResponse string
}

func (r *VerifyAndAuthMessage) SetRequestID(int32) {}
func (r *VerifyAndAuthMessage) requestKey() int32  { return verifyAndAuthMessage }

type QueryDisplayGroups struct{ reqIDField }

func (r *QueryDisplayGroups) requestKey() int32 { return queryDisplayGroups }

type SubscribeToGroupEvent struct {
	reqIDField
	GroupID int32
}

func (r *SubscribeToGroupEvent) requestKey() int32 { return subscribeToGroupEvents }

type UpdateDisplayGroup struct {
	reqIDField
	ContractInfo string
}

func (r *UpdateDisplayGroup) requestKey() int32 { return updateDisplayGroup }

type UnsubscribeFromGroupEvents struct{ reqIDField }

func (r *UnsubscribeFromGroupEvents) requestKey() int32 { return unsubscribeFromGroupEvents }
