// Package twsmsg implements the TWS message catalogue: the closed set of
// Request and Response variants, the opcode/version-gate tables, and the
// server-version-gated encode/decode dispatch between them. It is the Go
// analogue of kmsg in a Kafka client — one file per message family, plus a
// shared dispatch table keyed by numeric message id.
package twsmsg

import "github.com/fourbytes/ibtws-go/pkg/twsbin"

// Contract identifies a tradable instrument. Only the fields needed to
// place orders and request data are required; the rest default to their
// zero value, which the encoders send as-is.
type Contract struct {
	ConID                        int32
	Symbol                       string
	SecType                      string
	LastTradeDateOrContractMonth string
	Strike                       float64
	Right                        string
	Multiplier                   string
	Exchange                     string
	PrimaryExchange              string
	Currency                     string
	LocalSymbol                  string
	TradingClass                 string
	SecIDType                    string
	SecID                        string
	DeltaNeutralContract         *DeltaNeutralContract
	IncludeExpired               bool
	ComboLegsDescription         string
	ComboLegs                    []ComboLeg
}

func (c *Contract) isCombo() bool { return len(c.ComboLegs) > 0 }

// DeltaNeutralContract describes the delta-neutral leg of an option combo.
type DeltaNeutralContract struct {
	ConID int32
	Delta float64
	Price float64
}

// ComboLeg is one leg of a BAG (combo) contract.
type ComboLeg struct {
	ConID               int32
	Ratio               int32
	Action              string
	Exchange            string
	OpenClose           int32
	ShortSaleSlot       int32
	DesignatedLocation  string
	ExemptCode          int32
}

// ContractDescription pairs a contract with the security types it can be
// traded as, as returned by matching-symbols requests.
type ContractDescription struct {
	Contract          Contract
	DerivativeSecTypes []string
}

// ContractDetails is the full security-master record returned by
// ReqContractDetails, shared between the stock and bond decode paths.
type ContractDetails struct {
	Contract          Contract
	MarketName        string
	MinTick           float64
	PriceMagnifier    int32
	OrderTypes        string
	ValidExchanges    string
	UnderConID        int32
	LongName          string
	ContractMonth     string
	Industry          string
	Category          string
	SubCategory       string
	TimezoneID        string
	TradingHours      string
	LiquidHours       string
	EvRule            string
	EvMultiplier      float64
	MdSizeMultiplier  int32
	SecIDList         []TagValue
	AggGroup          int32
	UnderSymbol       string
	UnderSecType      string
	MarketRuleIDs     string
	RealExpirationDate string
	LastTradeTime     string

	// Bond-only fields (IsBond == true).
	IsBond          bool
	CUSIP           string
	Ratings         string
	DescAppend      string
	BondType        string
	CouponType      string
	Callable        bool
	Putable         bool
	Coupon          float64
	Convertible     bool
	Maturity        string
	IssueDate       string
	NextOptionDate  string
	NextOptionType  string
	NextOptionPartial bool
	Notes           string
}

// TagValue is one entry of a "tag=value;" options list.
type TagValue struct {
	Tag   string
	Value string
}

// EncodeTagValueList renders a tag-value slice as the wire's single
// "tag=value;"-repeated string field.
func EncodeTagValueList(tvs []TagValue) string {
	var out []byte
	for _, tv := range tvs {
		out = append(out, tv.Tag...)
		out = append(out, '=')
		out = append(out, tv.Value...)
		out = append(out, ';')
	}
	return string(out)
}

// FamilyCode pairs an account id with its account-family code.
type FamilyCode struct {
	AccountID  string
	FamilyCode string
}

// PriceIncrement is one row of a market-rule's tick table.
type PriceIncrement struct {
	LowEdge   float64
	Increment float64
}

// NewsProvider identifies a news content provider.
type NewsProvider struct {
	Code string
	Name string
}

// SoftDollarTier names a soft-dollar routing tier.
type SoftDollarTier struct {
	Name        string
	Value       string
	DisplayName string
}

// DepthMktDataDescription describes one exchange's market-depth capability.
type DepthMktDataDescription struct {
	Exchange        string
	SecType         string
	ListingExchange string
	ServiceDataType string
	AggGroup        int32
}

// TickAttr is the bitset carried by tick-price (server ver >= PastLimit) and
// tick-by-tick messages: bit 0 = can auto-execute, bit 1 = past limit,
// bit 2 = pre-open (server ver >= PreOpenBidAsk).
type TickAttr struct {
	CanAutoExecute bool
	PastLimit      bool
	PreOpen        bool
}

func decodeTickAttr(mask int32, haveAutoExecute bool) TickAttr {
	if !haveAutoExecute {
		return TickAttr{}
	}
	return TickAttr{
		CanAutoExecute: mask&0x1 != 0,
		PastLimit:      mask&0x2 != 0,
		PreOpen:        mask&0x4 != 0,
	}
}

// Bar is one OHLCV bar of historical or real-time bar data.
type Bar struct {
	Time   string
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
	Wap    float64
	Count  int32
}

// HistogramEntry is one (price, size) bucket of histogram data.
type HistogramEntry struct {
	Price float64
	Size  int64
}

// HistoricalTick is a historical midpoint tick.
type HistoricalTick struct {
	Time  int64
	Price float64
	Size  int64
}

// HistoricalTickBidAsk is a historical bid/ask tick.
type HistoricalTickBidAsk struct {
	Time     int64
	Attribs  TickAttr
	PriceBid float64
	PriceAsk float64
	SizeBid  int64
	SizeAsk  int64
}

// HistoricalTickLast is a historical trade tick.
type HistoricalTickLast struct {
	Time             int64
	Attribs          TickAttr
	Price            float64
	Size             int64
	Exchange         string
	SpecialConditions string
}

// ScannerSubscription parameterizes a market scanner request.
type ScannerSubscription struct {
	NumberOfRows              int32
	Instrument                string
	LocationCode              string
	ScanCode                  string
	AbovePrice                float64
	BelowPrice                float64
	AboveVolume               int32
	MarketCapAbove            float64
	MarketCapBelow            float64
	MoodyRatingAbove          string
	MoodyRatingBelow          string
	SpRatingAbove             string
	SpRatingBelow             string
	MaturityDateAbove         string
	MaturityDateBelow         string
	CouponRateAbove           float64
	CouponRateBelow           float64
	ExcludeConvertible        bool
	AverageOptionVolumeAbove  int32
	ScannerSettingPairs       string
	StockTypeFilter           string
}

// ScannerData is one row of a scanner result set.
type ScannerData struct {
	Rank            int32
	ContractDetails ContractDetails
	Distance        string
	Benchmark       string
	Projection      string
	Legs            string
}

// ExecutionFilter narrows a ReqExecutions call.
type ExecutionFilter struct {
	ClientID int32
	AcctCode string
	Time     string
	Symbol   string
	SecType  string
	Exchange string
	Side     string
}

// Liquidity classifies a fill's liquidity contribution (server ver >=
// MinServerVerLastLiquidity).
type Liquidity int32

const (
	LiquidityNone     Liquidity = 0
	LiquidityAdded    Liquidity = 1
	LiquidityRemoved  Liquidity = 2
	LiquidityRoundedOut Liquidity = 3
)

// Execution is a single fill.
type Execution struct {
	OrderID       int32
	ClientID      int32
	ExecID        string
	Time          string
	AcctNumber    string
	Exchange      string
	Side          string
	Shares        float64
	Price         float64
	PermID        int32
	Liquidation   int32
	CumQty        float64
	AvgPrice      float64
	OrderRef      string
	EvRule        string
	EvMultiplier  float64
	ModelCode     string
	LastLiquidity Liquidity
}

// CommissionReport is delivered unsolicited after an ExecutionData whose
// exec id it shares; see Context.RecordExecID / Response.RequestID.
type CommissionReport struct {
	ExecID              string
	Commission          float64
	Currency            string
	RealizedPnL         float64
	Yield               float64
	YieldRedemptionDate int32
}

// OrderState is the server-computed margin/commission preview attached to
// PlaceOrder acks and OpenOrder responses.
type OrderState struct {
	Status                 string
	InitMarginBefore       string
	MaintMarginBefore      string
	EquityWithLoanBefore   string
	InitMarginChange       string
	MaintMarginChange      string
	EquityWithLoanChange   string
	InitMarginAfter        string
	MaintMarginAfter       string
	EquityWithLoanAfter    string
	Commission             float64
	MinCommission          float64
	MaxCommission          float64
	CommissionCurrency     string
	WarningText            string
}

// OrderComboLeg carries the per-leg price override of a combo order.
type OrderComboLeg struct {
	Price float64
}

// OrderConditionType discriminates the six OrderCondition shapes (wire
// value 2 is reserved/unused upstream, matching the gap in the source
// enum's discriminants 1,3,4,5,6,7).
type OrderConditionType int32

const (
	OrderConditionPrice         OrderConditionType = 1
	OrderConditionTime          OrderConditionType = 3
	OrderConditionMargin        OrderConditionType = 4
	OrderConditionExecution     OrderConditionType = 5
	OrderConditionVolume        OrderConditionType = 6
	OrderConditionPercentChange OrderConditionType = 7
)

// OrderCondition is the closed 6-shape order-condition list attached to
// orders with conditional triggers. Exactly one of the typed fields is set,
// selected by Type.
type OrderCondition struct {
	Type OrderConditionType

	// Shared by Price/Time/Margin/Volume/PercentChange.
	IsConjunctionConnection bool // "a" (AND) if true, "o" (OR) if false

	// Price/Volume/PercentChange (ContractCondition).
	ConID    int32
	Exchange string
	IsMore   bool

	// PriceCondition.
	Price       float64
	TriggerMode int32

	// TimeCondition.
	Time string

	// MarginCondition.
	Percent int32

	// ExecutionCondition.
	SecType string
	Symbol  string

	// VolumeCondition.
	Volume int32

	// PercentChangeCondition.
	ChangePercent float64
}

// connector returns the wire encoding of the condition's boolean connector:
// "a" for AND, "o" for OR.
func (c OrderCondition) connector() string {
	if c.IsConjunctionConnection {
		return "a"
	}
	return "o"
}

func encodeConnector(w *twsbin.Writer, isAnd bool) {
	if isAnd {
		_ = w.PushString("a")
	} else {
		_ = w.PushString("o")
	}
}

func decodeConnector(r *twsbin.Reader) bool {
	return r.ReadString() == "a"
}

// Order is the full order-ticket record carried by PlaceOrder and returned
// in OpenOrder. Fields follow the Java/Python reference client's grouping
// (primary attributes, clearing info, algo/combo orders, conditions,
// soft-dollar tier, MiFID II fields).
type Order struct {
	ClientID int32
	OrderID  int32
	PermID   int32
	ParentID int32

	Action        string
	TotalQuantity float64
	DisplaySize   int32
	OrderType     string
	LmtPrice      float64
	AuxPrice      float64
	TIF           string

	Account         string
	SettlingFirm    string
	ClearingAccount string
	ClearingIntent  string

	AllOrNone       bool
	BlockOrder      bool
	Hidden          bool
	OutsideRTH      bool
	SweepToFill     bool
	PercentOffset   float64
	TrailingPercent float64
	TrailStopPrice  float64
	MinQty          int32
	GoodAfterTime   string
	GoodTillDate    string
	OCAGroup        string
	OrderRef        string
	Rule80A         string
	OCAType         int32
	TriggerMethod   int32

	ActiveStartTime string
	ActiveStopTime  string

	FAGroup      string
	FAMethod     string
	FAPercentage string
	FAProfile    string

	Volatility                  float64
	VolatilityType              int32
	ContinuousUpdate            int32
	ReferencePriceType          int32
	DeltaNeutralOrderType       string
	DeltaNeutralAuxPrice        float64
	DeltaNeutralConID           int32
	DeltaNeutralOpenClose       string
	DeltaNeutralShortSale       bool
	DeltaNeutralShortSaleSlot   int32
	DeltaNeutralDesignatedLocation string

	ScaleInitLevelSize       int32
	ScaleSubsLevelSize       int32
	ScalePriceIncrement      float64
	ScalePriceAdjustValue    float64
	ScalePriceAdjustInterval int32
	ScaleProfitOffset        float64
	ScaleAutoReset           bool
	ScaleInitPosition        int32
	ScaleInitFillQty         int32
	ScaleRandomPercent       bool
	ScaleTable               string

	HedgeType  string
	HedgeParam string

	AlgoStrategy string
	AlgoParams   []TagValue
	AlgoID       string

	SmartComboRoutingParams []TagValue
	OrderComboLegs          []OrderComboLeg

	WhatIf                       bool
	Transmit                     bool
	OverridePercentageConstraints bool

	OpenClose                      string
	Origin                         int32
	ShortSaleSlot                  int32
	DesignatedLocation             string
	ExemptCode                     int32
	DeltaNeutralSettlingFirm       string
	DeltaNeutralClearingAccount    string
	DeltaNeutralClearingIntent     string

	DiscretionaryAmt    float64
	ETradeOnly          bool
	FirmQuoteOnly       bool
	NBBOPriceCap        float64
	OptOutSmartRouting  bool

	AuctionStrategy int32

	StartingPrice  float64
	StockRefPrice  float64
	Delta          float64

	StockRangeLower float64
	StockRangeUpper float64

	BasisPoints     float64
	BasisPointsType int32

	NotHeld bool

	OrderMiscOptions []TagValue

	Solicited      bool
	RandomizeSize  bool
	RandomizePrice bool

	ReferenceContractID           int32
	PeggedChangeAmount            float64
	IsPeggedChangeAmountDecrease  bool
	ReferenceChangeAmount         float64
	ReferenceExchangeID           string
	AdjustedOrderType             string
	TriggerPrice                  float64
	AdjustedStopPrice             float64
	AdjustedStopLimitPrice        float64
	AdjustedTrailingAmount        float64
	AdjustableTrailingUnit        int32
	LmtPriceOffset                float64

	Conditions             []OrderCondition
	ConditionsCancelOrder  bool
	ConditionsIgnoreRth    bool

	ModelCode      string
	ExtOperator    string
	SoftDollarTier SoftDollarTier

	CashQty                  float64
	Mifid2DecisionMaker      string
	Mifid2DecisionAlgo       string
	Mifid2ExecutionTrader    string
	Mifid2ExecutionAlgo      string

	DontUseAutoPriceForHedge bool
}

// DefaultOrder returns an Order with the sentinel/default values the
// reference client ships: unset numeric fields at their max sentinel,
// OrderType "LMT", TIF "DAY", OpenClose "O", Transmit true.
func DefaultOrder() Order {
	return Order{
		Action:                 "BUY",
		OrderType:              "LMT",
		LmtPrice:                twsbin.MaxFloat,
		AuxPrice:                twsbin.MaxFloat,
		TIF:                    "DAY",
		PercentOffset:          twsbin.MaxFloat,
		TrailingPercent:        twsbin.MaxFloat,
		TrailStopPrice:         twsbin.MaxFloat,
		MinQty:                 twsbin.MaxInt,
		Volatility:             twsbin.MaxFloat,
		VolatilityType:         twsbin.MaxInt,
		ReferencePriceType:     twsbin.MaxInt,
		DeltaNeutralAuxPrice:   twsbin.MaxFloat,
		ScaleInitLevelSize:     twsbin.MaxInt,
		ScaleSubsLevelSize:     twsbin.MaxInt,
		ScalePriceIncrement:    twsbin.MaxFloat,
		ScalePriceAdjustValue:  twsbin.MaxFloat,
		ScalePriceAdjustInterval: twsbin.MaxInt,
		ScaleProfitOffset:      twsbin.MaxFloat,
		ScaleInitPosition:      twsbin.MaxInt,
		ScaleInitFillQty:       twsbin.MaxInt,
		Transmit:               true,
		OpenClose:              "O",
		ExemptCode:             -1,
		DiscretionaryAmt:       twsbin.MaxFloat,
		NBBOPriceCap:           twsbin.MaxFloat,
		StartingPrice:          twsbin.MaxFloat,
		StockRefPrice:          twsbin.MaxFloat,
		Delta:                  twsbin.MaxFloat,
		StockRangeLower:        twsbin.MaxFloat,
		StockRangeUpper:        twsbin.MaxFloat,
		BasisPoints:            twsbin.MaxFloat,
		BasisPointsType:        twsbin.MaxInt,
		TriggerPrice:           twsbin.MaxFloat,
		AdjustedStopPrice:      twsbin.MaxFloat,
		AdjustedStopLimitPrice: twsbin.MaxFloat,
		AdjustedTrailingAmount: twsbin.MaxFloat,
		LmtPriceOffset:         twsbin.MaxFloat,
		CashQty:                twsbin.MaxFloat,
	}
}
