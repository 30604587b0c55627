package twsmsg

// Outgoing (client -> server) message type opcodes. Values match the
// published TWS API's EClient constants. opHandshake is a synthetic id used
// only to tag the handshake's Global dispatch, since the handshake request
// is the bare version string and carries no opcode on the wire; start-api
// carries the literal opcode 71 below.
const (
	opHandshake = -1 // synthetic: no opcode on the wire
	opStartAPI  = 71

	reqMktData                     = 1
	cancelMktData                  = 2
	reqOrders                      = 3 // placeOrder shares opcode 3
	placeOrder                     = 3
	cancelOrder                    = 4
	reqOpenOrders                  = 5
	reqAccountData                 = 6
	reqExecutions                  = 7
	reqIds                         = 8
	reqContractData                = 9
	reqMktDepth                    = 10
	cancelMktDepth                 = 11
	reqNewsBulletins               = 12
	cancelNewsBulletins            = 13
	setServerLogLevel              = 14
	reqAutoOpenOrders              = 15
	reqAllOpenOrders               = 16
	reqManagedAccts                = 17
	requestFA                      = 18
	replaceFA                      = 19
	reqHistoricalData              = 20
	exerciseOptions                = 21
	reqScannerSubscription         = 22
	cancelScannerSubscription      = 23
	reqScannerParameters           = 24
	cancelHistoricalData           = 25
	reqCurrentTime                 = 49
	reqRealTimeBars                = 50
	cancelRealTimeBars             = 51
	reqFundamentalData             = 52
	cancelFundamentalData          = 53
	reqCalcImpliedVolatility       = 54
	reqCalcOptionPrice             = 55
	cancelCalcImpliedVolatility    = 56
	cancelCalcOptionPrice          = 57
	reqGlobalCancel                = 58
	reqMarketDataType              = 59
	reqPositions                   = 61
	reqAccountSummary              = 62
	cancelAccountSummary           = 63
	cancelPositions                = 64
	verifyRequest                  = 65
	verifyMessage                  = 66
	queryDisplayGroups             = 67
	subscribeToGroupEvents         = 68
	updateDisplayGroup             = 69
	unsubscribeFromGroupEvents     = 70
	startAPI                       = 71
	verifyAndAuthRequest           = 72
	verifyAndAuthMessage           = 73
	reqPositionsMulti              = 74
	cancelPositionsMulti           = 75
	reqAccountUpdatesMulti         = 76
	cancelAccountUpdatesMulti      = 77
	reqSecDefOptParams             = 78
	reqSoftDollarTiers             = 79
	reqFamilyCodes                 = 80
	reqMatchingSymbols             = 81
	reqMktDepthExchanges           = 82
	reqSmartComponents             = 83
	reqNewsArticle                 = 84
	reqNewsProviders               = 85
	reqHistoricalNews              = 86
	reqHeadTimestamp               = 87
	reqHistogramData               = 88
	cancelHistogramData            = 89
	cancelHeadTimestamp            = 90
	reqMarketRule                  = 91
	reqPnl                         = 92
	cancelPnl                      = 93
	reqPnlSingle                   = 94
	cancelPnlSingle                = 95
	reqHistoricalTicks             = 96
	reqTickByTickData              = 97
	cancelTickByTickData           = 98
)

// Incoming (server -> client) message ids. OPCODE_HANDSHAKE tags the
// synthetic "pre-version-set" ack that precedes every other message id.
const (
	opcodeHandshake = opHandshake

	tickPrice                             = 1
	tickSize                               = 2
	orderStatus                           = 3
	errMsg                                 = 4
	openOrder                              = 5
	acctValue                              = 6
	portfolioValue                         = 7
	acctUpdateTime                         = 8
	nextValidID                            = 9
	contractData                          = 10
	executionData                         = 11
	marketDepth                            = 12
	marketDepthL2                         = 13
	newsBulletins                         = 14
	managedAccts                          = 15
	receiveFA                             = 16
	historicalData                        = 17
	bondContractData                      = 18
	scannerParameters                     = 19
	scannerData                           = 20
	tickOptionComputation                 = 21
	tickGeneric                           = 45
	tickString                            = 46
	tickEFP                                = 47
	currentTime                           = 49
	realTimeBars                          = 50
	fundamentalData                       = 51
	contractDataEnd                       = 52
	openOrderEnd                          = 53
	acctDownloadEnd                       = 54
	executionDataEnd                      = 55
	deltaNeutralValidation                = 56
	tickSnapshotEnd                       = 57
	marketDataType                        = 58
	commissionReport                      = 59
	positionMsg                           = 61
	positionEnd                           = 62
	accountSummary                        = 63
	accountSummaryEnd                     = 64
	verifyMessageAPI                      = 65
	verifyCompleted                       = 66
	displayGroupList                      = 67
	displayGroupUpdated                   = 68
	verifyAndAuthMessageAPI               = 69
	verifyAndAuthCompleted                = 70
	positionMulti                         = 71
	positionMultiEnd                      = 72
	accountUpdateMulti                    = 73
	accountUpdateMultiEnd                 = 74
	securityDefinitionOptionParameter     = 75
	securityDefinitionOptionParameterEnd  = 76
	softDollarTiers                       = 77
	familyCodes                           = 78
	symbolSamples                         = 79
	mktDepthExchanges                     = 80
	tickReqParams                        = 81
	smartComponents                       = 82
	newsArticle                          = 83
	tickNews                             = 84
	newsProviders                        = 85
	historicalNews                       = 86
	historicalNewsEnd                    = 87
	headTimestamp                        = 88
	histogramData                        = 89
	historicalDataUpdate                 = 90
	rerouteMktDataReq                    = 91
	rerouteMktDepthReq                   = 92
	marketRule                           = 93
	pnl                                  = 94
	pnlSingle                            = 95
	historicalTicks                      = 96
	historicalTicksBidAsk                = 97
	historicalTicksLast                  = 98
	tickByTick                           = 99
)

// Server-version feature gates. The encoders/decoders consult the
// PastLimit, CashQty, LastLiquidity, AggGroup, UnderlyingInfo and
// ScaleTable gates; the others are named here but not consulted.
const (
	minServerVerFractionalPositions = 101
	minServerVerCashQty             = 125
	minServerVerModelsSupport       = 103
	minServerVerPastLimit           = 109
	minServerVerPreOpenBidAsk       = 92
	minServerVerReqSmartComponents  = 128
	minServerVerLastLiquidity       = 134
	minServerVerSynthRealtimeBars   = 106
	minServerVerServiceDataType     = 130
	minServerVerAggGroup            = 129
	minServerVerUnderlyingInfo      = 131
	minServerVerLinking             = 107
	minServerVerScaleTable          = 110
	minServerVerTradingClass        = 68
)
