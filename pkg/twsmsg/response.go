package twsmsg

// Response is the closed catalogue of incoming message variants. RequestID
// returns the correlation key as defined by spec: Some(req-id) for
// request-scoped messages, Some(fixed opcode) for globally-correlated
// singleton responses, or (0, false) for unsolicited broadcasts.
type Response interface {
	RequestID() (int32, bool)
	responseKey() int32
}

// reqIDResponse is embedded by response variants that carry their own
// req-id field and always correlate to it.
type reqIDResponse struct{ ReqID int32 }

func (r reqIDResponse) RequestID() (int32, bool) { return r.ReqID, true }

// globalResponse is embedded by singleton responses that correlate via a
// fixed opcode rather than a per-call id.
type globalResponse struct{ opcode int32 }

func (r globalResponse) RequestID() (int32, bool) { return r.opcode, true }

// unsolicited is embedded by broadcast-only responses with no correlation
// key at all (portfolio/account value updates, bare position rows).
type unsolicited struct{}

func (unsolicited) RequestID() (int32, bool) { return 0, false }

// --- handshake ---------------------------------------------------------------

type HandshakeAck struct {
	ServerVersion int32
	AddrOrTime    string
}

func (r *HandshakeAck) RequestID() (int32, bool) { return opcodeHandshake, true }
func (r *HandshakeAck) responseKey() int32       { return opcodeHandshake }

// --- errors / notifications ---------------------------------------------------

// ErrMsg carries a server error or notification. Per spec §4.4.2, id == -1
// marks an unsolicited notification rather than a request-scoped failure.
type ErrMsg struct {
	ID                      int32
	ErrorCode               int32
	ErrorMessage            string
	AdvancedOrderRejectJSON string
}

func (r *ErrMsg) RequestID() (int32, bool) {
	if r.ID == -1 {
		return 0, false
	}
	return r.ID, true
}
func (r *ErrMsg) responseKey() int32 { return errMsg }

// --- bootstrap singletons ------------------------------------------------------

type NextValidIDMsg struct {
	globalResponse
	OrderID int32
}

func (r *NextValidIDMsg) responseKey() int32 { return nextValidID }

type ManagedAcctsMsg struct {
	globalResponse
	Accounts []string
}

func (r *ManagedAcctsMsg) responseKey() int32 { return managedAccts }

type CurrentTimeMsg struct {
	globalResponse
	Time int64
}

func (r *CurrentTimeMsg) responseKey() int32 { return currentTime }

type ScannerParametersMsg struct {
	globalResponse
	XML string
}

func (r *ScannerParametersMsg) responseKey() int32 { return scannerParameters }

type ReceiveFaMsg struct {
	globalResponse
	FaDataType int32
	XML        string
}

func (r *ReceiveFaMsg) responseKey() int32 { return receiveFA }

type MktDepthExchangesMsg struct {
	globalResponse
	Descriptions []DepthMktDataDescription
}

func (r *MktDepthExchangesMsg) responseKey() int32 { return mktDepthExchanges }

type FamilyCodesMsg struct {
	globalResponse
	FamilyCodes []FamilyCode
}

func (r *FamilyCodesMsg) responseKey() int32 { return familyCodes }

type NewsProviderMsg struct {
	globalResponse
	Providers []NewsProvider
}

func (r *NewsProviderMsg) responseKey() int32 { return newsProviders }

type VerifyCompletedMsg struct {
	globalResponse
	IsSuccessful bool
	ErrorText    string
}

func (r *VerifyCompletedMsg) responseKey() int32 { return verifyCompleted }

type VerifyMessageAPIMsg struct {
	globalResponse
	APIData string
}

func (r *VerifyMessageAPIMsg) responseKey() int32 { return verifyMessageAPI }

type VerifyAndAuthCompletedMsg struct {
	globalResponse
	IsSuccessful bool
	ErrorText    string
}

func (r *VerifyAndAuthCompletedMsg) responseKey() int32 { return verifyAndAuthCompleted }

type VerifyAndAuthMessageAPIMsg struct {
	globalResponse
	APIData      string
	XyzChallenge string
}

func (r *VerifyAndAuthMessageAPIMsg) responseKey() int32 { return verifyAndAuthMessageAPI }

// --- account / portfolio (unsolicited) -------------------------------------------

type AcctValueMsg struct {
	unsolicited
	Key         string
	Val         string
	Currency    string
	AccountName string
}

func (r *AcctValueMsg) responseKey() int32 { return acctValue }

type PortfolioValueMsg struct {
	unsolicited
	Contract      Contract
	Position      float64
	MarketPrice   float64
	MarketValue   float64
	AverageCost   float64
	UnrealizedPnL float64
	RealizedPnL   float64
	AccountName   string
}

func (r *PortfolioValueMsg) responseKey() int32 { return portfolioValue }

type AcctUpdateTimeMsg struct {
	unsolicited
	TimeStamp string
}

func (r *AcctUpdateTimeMsg) responseKey() int32 { return acctUpdateTime }

type AcctDownloadEndMsg struct {
	unsolicited
	AccountName string
}

func (r *AcctDownloadEndMsg) responseKey() int32 { return acctDownloadEnd }

type AccountSummaryMsg struct {
	reqIDResponse
	Account  string
	Tag      string
	Value    string
	Currency string
}

func (r *AccountSummaryMsg) responseKey() int32 { return accountSummary }

type AccountSummaryEndMsg struct {
	reqIDResponse
}

func (r *AccountSummaryEndMsg) responseKey() int32 { return accountSummaryEnd }

type PositionMsg struct {
	unsolicited
	Account  string
	Contract Contract
	Pos      float64
	AvgCost  float64
}

func (r *PositionMsg) responseKey() int32 { return positionMsg }

type PositionEndMsg struct{ globalResponse }

func (r *PositionEndMsg) responseKey() int32 { return positionEnd }

type PositionMultiMsg struct {
	reqIDResponse
	Account   string
	ModelCode string
	Contract  Contract
	Pos       float64
	AvgCost   float64
}

func (r *PositionMultiMsg) responseKey() int32 { return positionMulti }

type PositionMultiEndMsg struct{ reqIDResponse }

func (r *PositionMultiEndMsg) responseKey() int32 { return positionMultiEnd }

type AccountUpdateMultiMsg struct {
	reqIDResponse
	Account   string
	ModelCode string
	Key       string
	Value     string
	Currency  string
}

func (r *AccountUpdateMultiMsg) responseKey() int32 { return accountUpdateMulti }

type AccountUpdateMultiEndMsg struct{ reqIDResponse }

func (r *AccountUpdateMultiEndMsg) responseKey() int32 { return accountUpdateMultiEnd }

// --- PnL ---------------------------------------------------------------------------

type PnlMsg struct {
	reqIDResponse
	DailyPnL      float64
	UnrealizedPnL float64
	RealizedPnL   float64
}

func (r *PnlMsg) responseKey() int32 { return pnl }

type PnlSingleMsg struct {
	reqIDResponse
	Pos           int32
	DailyPnL      float64
	UnrealizedPnL float64
	RealizedPnL   float64
	Value         float64
}

func (r *PnlSingleMsg) responseKey() int32 { return pnlSingle }

// --- contract details ----------------------------------------------------------------

type ContractDataMsg struct {
	reqIDResponse
	ContractDetails ContractDetails
}

func (r *ContractDataMsg) responseKey() int32 { return contractData }

type BondContractDataMsg struct {
	reqIDResponse
	ContractDetails ContractDetails
}

func (r *BondContractDataMsg) responseKey() int32 { return bondContractData }

type ContractDataEndMsg struct{ reqIDResponse }

func (r *ContractDataEndMsg) responseKey() int32 { return contractDataEnd }

type SecurityDefinitionOptionalParameterMsg struct {
	reqIDResponse
	Exchange        string
	UnderlyingConID int32
	TradingClass    string
	Multiplier      string
	Expirations     []string
	Strikes         []float64
}

func (r *SecurityDefinitionOptionalParameterMsg) responseKey() int32 {
	return securityDefinitionOptionParameter
}

type SecurityDefinitionOptionalParameterEndMsg struct{ reqIDResponse }

func (r *SecurityDefinitionOptionalParameterEndMsg) responseKey() int32 {
	return securityDefinitionOptionParameterEnd
}

type SoftDollarTiersMsg struct {
	reqIDResponse
	Tiers []SoftDollarTier
}

func (r *SoftDollarTiersMsg) responseKey() int32 { return softDollarTiers }

type SymbolSamplesMsg struct {
	reqIDResponse
	ContractDescriptions []ContractDescription
}

func (r *SymbolSamplesMsg) responseKey() int32 { return symbolSamples }

type MarketRuleMsg struct {
	MarketRuleID    int32
	PriceIncrements []PriceIncrement
}

func (r *MarketRuleMsg) RequestID() (int32, bool) { return marketRule, true }
func (r *MarketRuleMsg) responseKey() int32       { return marketRule }

type SmartComponentsMsg struct {
	reqIDResponse
	Components map[int32]SmartComponent
}

// SmartComponent is one (exchange, bit index) entry of a smart-routing
// component map.
type SmartComponent struct {
	Exchange string
	BitNum   uint8
}

func (r *SmartComponentsMsg) responseKey() int32 { return smartComponents }

type TickReqParamsMsg struct {
	reqIDResponse
	MinTick            float64
	BboExchange        string
	SnapshotPermissions int32
}

func (r *TickReqParamsMsg) responseKey() int32 { return tickReqParams }

// --- market data -----------------------------------------------------------------------

type TickPriceMsg struct {
	reqIDResponse
	TickType int32
	Price    float64
	Size     int32
	Attribs  TickAttr
}

func (r *TickPriceMsg) responseKey() int32 { return tickPrice }

type TickSizeMsg struct {
	reqIDResponse
	TickType int32
	Size     int32
}

func (r *TickSizeMsg) responseKey() int32 { return tickSize }

type TickStringMsg struct {
	reqIDResponse
	TickType int32
	Value    string
}

func (r *TickStringMsg) responseKey() int32 { return tickString }

type TickGenericMsg struct {
	reqIDResponse
	TickType int32
	Value    float64
}

func (r *TickGenericMsg) responseKey() int32 { return tickGeneric }

type TickEFPMsg struct {
	reqIDResponse
	TickType                  int32
	BasisPoints               float64
	FormattedBasisPoints      string
	ImpliedFuturesPrice       float64
	HoldDays                  int32
	FutureLastTradeDate       string
	DividendImpact            float64
	DividendsToLastTradeDate  float64
}

func (r *TickEFPMsg) responseKey() int32 { return tickEFP }

type TickOptionComputationMsg struct {
	reqIDResponse
	TickType    int32
	ImpliedVol  float64
	Delta       float64
	OptPrice    float64
	PvDividend  float64
	Gamma       float64
	Vega        float64
	Theta       float64
	UndPrice    float64
}

func (r *TickOptionComputationMsg) responseKey() int32 { return tickOptionComputation }

type TickSnapshotEndMsg struct{ reqIDResponse }

func (r *TickSnapshotEndMsg) responseKey() int32 { return tickSnapshotEnd }

type MarketDataTypeMsg struct {
	reqIDResponse
	MarketDataType int32
}

func (r *MarketDataTypeMsg) responseKey() int32 { return marketDataType }

type MarketDepthMsg struct {
	unsolicited
	ID        int32
	Position  int32
	Operation int32
	Side      int32
	Price     float64
	Size      int32
}

func (r *MarketDepthMsg) responseKey() int32 { return marketDepth }

type MarketDepthL2Msg struct {
	unsolicited
	ID           int32
	Position     int32
	MarketMaker  string
	Operation    int32
	Side         int32
	Price        float64
	Size         int32
}

func (r *MarketDepthL2Msg) responseKey() int32 { return marketDepthL2 }

type DeltaNeutralValidationMsg struct {
	reqIDResponse
	DeltaNeutralContract DeltaNeutralContract
}

func (r *DeltaNeutralValidationMsg) responseKey() int32 { return deltaNeutralValidation }

type RerouteMktDataReqMsg struct {
	reqIDResponse
	ConID    int32
	Exchange string
}

func (r *RerouteMktDataReqMsg) responseKey() int32 { return rerouteMktDataReq }

type RerouteMktDepthReqMsg struct {
	reqIDResponse
	ConID    int32
	Exchange string
}

func (r *RerouteMktDepthReqMsg) responseKey() int32 { return rerouteMktDepthReq }

// --- tick-by-tick ------------------------------------------------------------------------

type TickByTickNoneMsg struct{ unsolicited }

func (r *TickByTickNoneMsg) responseKey() int32 { return tickByTick }

type TickByTickAllLastMsg struct {
	reqIDResponse
	TickType          int32
	Time              int64
	Price             float64
	Size              int32
	Attribs           TickAttr
	Exchange          string
	SpecialConditions string
}

func (r *TickByTickAllLastMsg) responseKey() int32 { return tickByTick }

type TickByTickBidAskMsg struct {
	reqIDResponse
	Time     int64
	BidPrice float64
	AskPrice float64
	BidSize  int32
	AskSize  int32
	Attribs  TickAttr
}

func (r *TickByTickBidAskMsg) responseKey() int32 { return tickByTick }

type TickByTickMidPointMsg struct {
	reqIDResponse
	Time     int64
	MidPoint float64
}

func (r *TickByTickMidPointMsg) responseKey() int32 { return tickByTick }

// --- historical data / bars ---------------------------------------------------------------

type HistoricalDataMsg struct {
	reqIDResponse
	StartDate string
	EndDate   string
	Bars      []Bar
}

func (r *HistoricalDataMsg) responseKey() int32 { return historicalData }

type HistoricalDataUpdateMsg struct {
	reqIDResponse
	Bar Bar
}

func (r *HistoricalDataUpdateMsg) responseKey() int32 { return historicalDataUpdate }

type RealTimeBarsMsg struct {
	reqIDResponse
	Time   int64
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
	Wap    float64
	Count  int32
}

func (r *RealTimeBarsMsg) responseKey() int32 { return realTimeBars }

type HeadTimestampMsg struct {
	reqIDResponse
	HeadTimestamp string
}

func (r *HeadTimestampMsg) responseKey() int32 { return headTimestamp }

type HistogramDataMsg struct {
	reqIDResponse
	Items []HistogramEntry
}

func (r *HistogramDataMsg) responseKey() int32 { return histogramData }

type HistoricalTicksMsg struct {
	reqIDResponse
	Ticks []HistoricalTick
	Done  bool
}

func (r *HistoricalTicksMsg) responseKey() int32 { return historicalTicks }

type HistoricalTickBidAskMsg struct {
	reqIDResponse
	Ticks []HistoricalTickBidAsk
	Done  bool
}

func (r *HistoricalTickBidAskMsg) responseKey() int32 { return historicalTicksBidAsk }

type HistoricalTickLastMsg struct {
	reqIDResponse
	Ticks []HistoricalTickLast
	Done  bool
}

func (r *HistoricalTickLastMsg) responseKey() int32 { return historicalTicksLast }

// --- scanner -----------------------------------------------------------------------------

type ScannerDataMsg struct {
	reqIDResponse
	Data []ScannerData
}

func (r *ScannerDataMsg) responseKey() int32 { return scannerData }

// --- news --------------------------------------------------------------------------------

type NewsBulletinsMsg struct {
	unsolicited
	MsgID           int32
	MsgType         int32
	Message         string
	OriginatingExch string
}

func (r *NewsBulletinsMsg) responseKey() int32 { return newsBulletins }

type TickNewsMsg struct {
	reqIDResponse
	TimeStamp    int64
	ProviderCode string
	ArticleID    string
	Headline     string
	ExtraData    string
}

func (r *TickNewsMsg) responseKey() int32 { return tickNews }

type NewsArticleMsg struct {
	reqIDResponse
	ArticleType int32
	ArticleText string
}

func (r *NewsArticleMsg) responseKey() int32 { return newsArticle }

type HistoricalNewsMsg struct {
	reqIDResponse
	Time         string
	ProviderCode string
	ArticleID    string
	Headline     string
}

func (r *HistoricalNewsMsg) responseKey() int32 { return historicalNews }

type HistoricalNewsEndMsg struct {
	reqIDResponse
	HasMore bool
}

func (r *HistoricalNewsEndMsg) responseKey() int32 { return historicalNewsEnd }

// --- orders / executions ---------------------------------------------------------------

type OrderStatusMsg struct {
	unsolicited
	ID             int32
	Status         string
	Filled         float64
	Remaining      float64
	AvgFillPrice   float64
	PermID         int32
	ParentID       int32
	LastFillPrice  float64
	ClientID       int32
	WhyHeld        string
	MktCapPrice    float64
}

func (r *OrderStatusMsg) responseKey() int32 { return orderStatus }

type OpenOrderMsg struct {
	unsolicited
	OrderID    int32
	Contract   Contract
	Order      Order
	OrderState OrderState
}

func (r *OpenOrderMsg) responseKey() int32 { return openOrder }

type OpenOrderEndMsg struct{ globalResponse }

func (r *OpenOrderEndMsg) responseKey() int32 { return openOrderEnd }

type ExecutionDataMsg struct {
	reqIDResponse
	Contract Contract
	Exec     Execution
}

func (r *ExecutionDataMsg) responseKey() int32 { return executionData }

type ExecutionDataEndMsg struct{ reqIDResponse }

func (r *ExecutionDataEndMsg) responseKey() int32 { return executionDataEnd }

// CommissionReportMsg arrives with no req-id on the wire; RequestID
// resolves it via the exec-id -> req-id table recorded while decoding the
// matching ExecutionDataMsg.
type CommissionReportMsg struct {
	Report CommissionReport
	reqID  int32
	known  bool
}

func (r *CommissionReportMsg) RequestID() (int32, bool) { return r.reqID, r.known }
func (r *CommissionReportMsg) responseKey() int32       { return commissionReport }

// --- fundamental / display groups --------------------------------------------------------

type FundamentalDataMsg struct {
	reqIDResponse
	Data string
}

func (r *FundamentalDataMsg) responseKey() int32 { return fundamentalData }

type DisplayGroupListMsg struct {
	reqIDResponse
	Groups string
}

func (r *DisplayGroupListMsg) responseKey() int32 { return displayGroupList }

type DisplayGroupUpdatedMsg struct {
	reqIDResponse
	ContractInfo string
}

func (r *DisplayGroupUpdatedMsg) responseKey() int32 { return displayGroupUpdated }
