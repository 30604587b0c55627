package twsmsg

import "github.com/fourbytes/ibtws-go/pkg/twsbin"

func encodeOrderCondition(w *twsbin.Writer, c OrderCondition) {
	w.PushInt(int32(c.Type))
	switch c.Type {
	case OrderConditionPrice:
		w.PushInt(c.ConID)
		_ = w.PushString(c.Exchange)
		w.PushBool(c.IsMore)
		w.PushDouble(c.Price)
		w.PushInt(c.TriggerMode)
	case OrderConditionTime:
		w.PushBool(c.IsMore)
		_ = w.PushString(c.Time)
	case OrderConditionMargin:
		w.PushBool(c.IsMore)
		w.PushInt(c.Percent)
	case OrderConditionExecution:
		_ = w.PushString(c.SecType)
		_ = w.PushString(c.Exchange)
		_ = w.PushString(c.Symbol)
	case OrderConditionVolume:
		w.PushInt(c.ConID)
		_ = w.PushString(c.Exchange)
		w.PushBool(c.IsMore)
		w.PushInt(c.Volume)
	case OrderConditionPercentChange:
		w.PushInt(c.ConID)
		_ = w.PushString(c.Exchange)
		w.PushBool(c.IsMore)
		w.PushDouble(c.ChangePercent)
	}
	if c.Type != OrderConditionExecution {
		encodeConnector(w, c.IsConjunctionConnection)
	}
}

func decodeOrderCondition(r *twsbin.Reader) OrderCondition {
	var c OrderCondition
	c.Type = OrderConditionType(r.ReadInt())
	switch c.Type {
	case OrderConditionPrice:
		c.ConID = r.ReadInt()
		c.Exchange = r.ReadString()
		c.IsMore = r.ReadBool()
		c.Price = r.ReadDouble()
		c.TriggerMode = r.ReadInt()
	case OrderConditionTime:
		c.IsMore = r.ReadBool()
		c.Time = r.ReadString()
	case OrderConditionMargin:
		c.IsMore = r.ReadBool()
		c.Percent = r.ReadInt()
	case OrderConditionExecution:
		c.SecType = r.ReadString()
		c.Exchange = r.ReadString()
		c.Symbol = r.ReadString()
	case OrderConditionVolume:
		c.ConID = r.ReadInt()
		c.Exchange = r.ReadString()
		c.IsMore = r.ReadBool()
		c.Volume = r.ReadInt()
	case OrderConditionPercentChange:
		c.ConID = r.ReadInt()
		c.Exchange = r.ReadString()
		c.IsMore = r.ReadBool()
		c.ChangePercent = r.ReadDouble()
	}
	if c.Type != OrderConditionExecution {
		c.IsConjunctionConnection = decodeConnector(r)
	}
	return c
}

func encodePlaceOrder(ctx *Context, req *PlaceOrder) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(placeOrder)
	w.PushInt(req.ReqID)
	c := &req.Contract
	o := &req.Order
	encodeContract(w, c, true)
	encodeSecID(w, c)
	_ = w.PushString(o.Action)
	w.PushDouble(o.TotalQuantity)
	_ = w.PushString(o.OrderType)
	w.PushDoubleMax(o.LmtPrice)
	w.PushDoubleMax(o.AuxPrice)
	_ = w.PushString(o.TIF)
	_ = w.PushString(o.OCAGroup)
	_ = w.PushString(o.Account)
	_ = w.PushString(o.OpenClose)
	w.PushInt(o.Origin)
	_ = w.PushString(o.OrderRef)
	w.PushBool(o.Transmit)
	w.PushInt(o.ParentID)
	w.PushBool(o.BlockOrder)
	w.PushBool(o.SweepToFill)
	w.PushInt(o.DisplaySize)
	w.PushInt(o.TriggerMethod)
	w.PushBool(o.OutsideRTH)
	w.PushBool(o.Hidden)
	if c.isCombo() {
		encodeComboLegs(w, c.ComboLegs, true)
		w.PushInt(int32(len(o.OrderComboLegs)))
		for _, leg := range o.OrderComboLegs {
			w.PushDoubleMax(leg.Price)
		}
		w.PushInt(int32(len(o.SmartComboRoutingParams)))
		for _, tv := range o.SmartComboRoutingParams {
			_ = w.PushString(tv.Tag)
			_ = w.PushString(tv.Value)
		}
	}
	_ = w.PushString("") // deprecated shares allocation field
	w.PushDoubleMax(o.DiscretionaryAmt)
	_ = w.PushString(o.GoodAfterTime)
	_ = w.PushString(o.GoodTillDate)
	_ = w.PushString(o.FAGroup)
	_ = w.PushString(o.FAMethod)
	_ = w.PushString(o.FAPercentage)
	_ = w.PushString(o.FAProfile)
	_ = w.PushString(o.ModelCode)
	w.PushInt(o.ShortSaleSlot)
	_ = w.PushString(o.DesignatedLocation)
	w.PushInt(o.ExemptCode)
	w.PushInt(o.OCAType)
	w.PushBool(o.Solicited)
	w.PushDoubleMax(o.NBBOPriceCap)
	w.PushInt(o.AuctionStrategy)
	w.PushDoubleMax(o.StartingPrice)
	w.PushDoubleMax(o.StockRefPrice)
	w.PushDoubleMax(o.Delta)
	w.PushDoubleMax(o.StockRangeLower)
	w.PushDoubleMax(o.StockRangeUpper)
	w.PushBool(o.OverridePercentageConstraints)
	w.PushDoubleMax(o.Volatility)
	w.PushIntMax(o.VolatilityType)
	_ = w.PushString(o.DeltaNeutralOrderType)
	w.PushDoubleMax(o.DeltaNeutralAuxPrice)
	if o.DeltaNeutralOrderType != "" {
		w.PushInt(o.DeltaNeutralConID)
		_ = w.PushString(o.DeltaNeutralSettlingFirm)
		_ = w.PushString(o.DeltaNeutralClearingAccount)
		_ = w.PushString(o.DeltaNeutralClearingIntent)
		_ = w.PushString(o.DeltaNeutralOpenClose)
		w.PushBool(o.DeltaNeutralShortSale)
		w.PushInt(o.DeltaNeutralShortSaleSlot)
		_ = w.PushString(o.DeltaNeutralDesignatedLocation)
	}
	w.PushIntMax(o.ContinuousUpdate)
	w.PushIntMax(o.ReferencePriceType)
	w.PushDoubleMax(o.TrailStopPrice)
	w.PushDoubleMax(o.TrailingPercent)
	w.PushIntMax(o.ScaleInitLevelSize)
	w.PushIntMax(o.ScaleSubsLevelSize)
	w.PushDoubleMax(o.ScalePriceIncrement)
	if o.ScalePriceIncrement != twsbin.MaxFloat && o.ScalePriceIncrement > 0 {
		w.PushDoubleMax(o.ScalePriceAdjustValue)
		w.PushIntMax(o.ScalePriceAdjustInterval)
		w.PushDoubleMax(o.ScaleProfitOffset)
		w.PushBool(o.ScaleAutoReset)
		w.PushIntMax(o.ScaleInitPosition)
		w.PushIntMax(o.ScaleInitFillQty)
		w.PushBool(o.ScaleRandomPercent)
	}
	_ = w.PushString(o.ScaleTable)
	_ = w.PushString(o.ActiveStartTime)
	_ = w.PushString(o.ActiveStopTime)
	_ = w.PushString(o.HedgeType)
	if o.HedgeType != "" {
		_ = w.PushString(o.HedgeParam)
	}
	w.PushBool(o.OptOutSmartRouting)
	_ = w.PushString(o.ClearingAccount)
	_ = w.PushString(o.ClearingIntent)
	w.PushBool(o.NotHeld)
	if c.DeltaNeutralContract != nil {
		w.PushBool(true)
		w.PushInt(c.DeltaNeutralContract.ConID)
		w.PushDouble(c.DeltaNeutralContract.Delta)
		w.PushDouble(c.DeltaNeutralContract.Price)
	} else {
		w.PushBool(false)
	}
	w.PushBool(o.AlgoStrategy != "")
	if o.AlgoStrategy != "" {
		_ = w.PushString(o.AlgoStrategy)
		w.PushInt(int32(len(o.AlgoParams)))
		for _, tv := range o.AlgoParams {
			_ = w.PushString(tv.Tag)
			_ = w.PushString(tv.Value)
		}
	}
	_ = w.PushString(o.AlgoID)
	w.PushBool(o.WhatIf)
	_ = w.PushString(EncodeTagValueList(o.OrderMiscOptions))
	w.PushBool(o.Solicited)
	w.PushBool(o.RandomizeSize)
	w.PushBool(o.RandomizePrice)
	if o.OrderType == "PEG BENCH" {
		w.PushInt(o.ReferenceContractID)
		w.PushBool(o.IsPeggedChangeAmountDecrease)
		w.PushDouble(o.PeggedChangeAmount)
		w.PushDouble(o.ReferenceChangeAmount)
		_ = w.PushString(o.ReferenceExchangeID)
	}
	w.PushInt(int32(len(o.Conditions)))
	for _, cond := range o.Conditions {
		encodeOrderCondition(w, cond)
	}
	if len(o.Conditions) > 0 {
		w.PushBool(o.ConditionsIgnoreRth)
		w.PushBool(o.ConditionsCancelOrder)
	}
	_ = w.PushString(o.AdjustedOrderType)
	w.PushDoubleMax(o.TriggerPrice)
	w.PushDoubleMax(o.LmtPriceOffset)
	w.PushDoubleMax(o.AdjustedStopPrice)
	w.PushDoubleMax(o.AdjustedStopLimitPrice)
	w.PushDoubleMax(o.AdjustedTrailingAmount)
	w.PushIntMax(o.AdjustableTrailingUnit)
	_ = w.PushString(o.ExtOperator)
	if ctx.ServerVersion() >= minServerVerCashQty {
		w.PushDoubleMax(o.CashQty)
	}
	_ = w.PushString(o.Mifid2DecisionMaker)
	_ = w.PushString(o.Mifid2DecisionAlgo)
	_ = w.PushString(o.Mifid2ExecutionTrader)
	_ = w.PushString(o.Mifid2ExecutionAlgo)
	w.PushBool(o.DontUseAutoPriceForHedge)
	return w.Buf
}

func encodeCancelOrder(req *CancelOrder) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(cancelOrder)
	w.PushInt(1)
	w.PushInt(req.ReqID)
	return w.Buf
}

func decodeOrderStatusMsg(r *twsbin.Reader) *OrderStatusMsg {
	msg := &OrderStatusMsg{}
	msg.ID = r.ReadInt()
	msg.Status = r.ReadString()
	msg.Filled = r.ReadDouble()
	msg.Remaining = r.ReadDouble()
	msg.AvgFillPrice = r.ReadDouble()
	msg.PermID = r.ReadInt()
	msg.ParentID = r.ReadInt()
	msg.LastFillPrice = r.ReadDouble()
	msg.ClientID = r.ReadInt()
	msg.WhyHeld = r.ReadString()
	msg.MktCapPrice = r.ReadDoubleMax()
	return msg
}

func decodeOrderState(r *twsbin.Reader) OrderState {
	var s OrderState
	s.Status = r.ReadString()
	s.InitMarginBefore = r.ReadString()
	s.MaintMarginBefore = r.ReadString()
	s.EquityWithLoanBefore = r.ReadString()
	s.InitMarginChange = r.ReadString()
	s.MaintMarginChange = r.ReadString()
	s.EquityWithLoanChange = r.ReadString()
	s.InitMarginAfter = r.ReadString()
	s.MaintMarginAfter = r.ReadString()
	s.EquityWithLoanAfter = r.ReadString()
	s.Commission = r.ReadDoubleMax()
	s.MinCommission = r.ReadDoubleMax()
	s.MaxCommission = r.ReadDoubleMax()
	s.CommissionCurrency = r.ReadString()
	s.WarningText = r.ReadString()
	return s
}

func decodeOpenOrderMsg(ctx *Context, r *twsbin.Reader) *OpenOrderMsg {
	msg := &OpenOrderMsg{}
	msg.OrderID = r.ReadInt()
	msg.Contract = decodeContract(r)
	o := &msg.Order
	o.OrderID = msg.OrderID
	o.Action = r.ReadString()
	o.TotalQuantity = r.ReadDouble()
	o.OrderType = r.ReadString()
	o.LmtPrice = r.ReadDoubleMax()
	o.AuxPrice = r.ReadDoubleMax()
	o.TIF = r.ReadString()
	o.OCAGroup = r.ReadString()
	o.Account = r.ReadString()
	o.OpenClose = r.ReadString()
	o.Origin = r.ReadInt()
	o.OrderRef = r.ReadString()
	o.ClientID = r.ReadInt()
	o.PermID = r.ReadInt()
	o.OutsideRTH = r.ReadBool()
	o.Hidden = r.ReadBool()
	o.DiscretionaryAmt = r.ReadDouble()
	o.GoodAfterTime = r.ReadString()
	r.ReadString() // deprecated sharesAllocation
	o.FAGroup = r.ReadString()
	o.FAMethod = r.ReadString()
	o.FAPercentage = r.ReadString()
	o.FAProfile = r.ReadString()
	o.ModelCode = r.ReadString()
	o.GoodTillDate = r.ReadString()
	o.Rule80A = r.ReadString()
	o.PercentOffset = r.ReadDoubleMax()
	o.SettlingFirm = r.ReadString()
	o.ShortSaleSlot = r.ReadInt()
	o.DesignatedLocation = r.ReadString()
	o.ExemptCode = r.ReadInt()
	o.AuctionStrategy = r.ReadInt()
	o.StartingPrice = r.ReadDoubleMax()
	o.StockRefPrice = r.ReadDoubleMax()
	o.Delta = r.ReadDoubleMax()
	o.StockRangeLower = r.ReadDoubleMax()
	o.StockRangeUpper = r.ReadDoubleMax()
	o.DisplaySize = r.ReadInt()
	o.BlockOrder = r.ReadBool()
	o.SweepToFill = r.ReadBool()
	o.AllOrNone = r.ReadBool()
	o.MinQty = r.ReadIntMax()
	o.OCAType = r.ReadInt()
	o.ETradeOnly = r.ReadBool()
	o.FirmQuoteOnly = r.ReadBool()
	o.NBBOPriceCap = r.ReadDoubleMax()
	o.ParentID = r.ReadInt()
	o.TriggerMethod = r.ReadInt()
	o.Volatility = r.ReadDoubleMax()
	o.VolatilityType = r.ReadIntMax()
	o.DeltaNeutralOrderType = r.ReadString()
	o.DeltaNeutralAuxPrice = r.ReadDoubleMax()
	if o.DeltaNeutralOrderType != "" {
		o.DeltaNeutralConID = r.ReadInt()
		o.DeltaNeutralShortSale = r.ReadBool()
		o.DeltaNeutralShortSaleSlot = r.ReadInt()
		o.DeltaNeutralDesignatedLocation = r.ReadString()
	}
	o.ContinuousUpdate = r.ReadInt()
	o.ReferencePriceType = r.ReadIntMax()
	o.TrailStopPrice = r.ReadDoubleMax()
	o.TrailingPercent = r.ReadDoubleMax()
	o.BasisPoints = r.ReadDoubleMax()
	o.BasisPointsType = r.ReadIntMax()
	msg.Contract.ComboLegsDescription = r.ReadString()
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		msg.Contract.ComboLegs = append(msg.Contract.ComboLegs, ComboLeg{
			ConID: r.ReadInt(), Ratio: r.ReadInt(), Action: r.ReadString(), Exchange: r.ReadString(),
			OpenClose: r.ReadInt(), ShortSaleSlot: r.ReadInt(), DesignatedLocation: r.ReadString(), ExemptCode: r.ReadInt(),
		})
	}
	m := r.ReadInt()
	for i := int32(0); i < m; i++ {
		o.OrderComboLegs = append(o.OrderComboLegs, OrderComboLeg{Price: r.ReadDoubleMax()})
	}
	k := r.ReadInt()
	for i := int32(0); i < k; i++ {
		o.SmartComboRoutingParams = append(o.SmartComboRoutingParams, TagValue{Tag: r.ReadString(), Value: r.ReadString()})
	}
	o.ScaleInitLevelSize = r.ReadIntMax()
	o.ScaleSubsLevelSize = r.ReadIntMax()
	o.ScalePriceIncrement = r.ReadDoubleMax()
	if o.ScalePriceIncrement != twsbin.MaxFloat && o.ScalePriceIncrement > 0 {
		o.ScalePriceAdjustValue = r.ReadDoubleMax()
		o.ScalePriceAdjustInterval = r.ReadIntMax()
		o.ScaleProfitOffset = r.ReadDoubleMax()
		o.ScaleAutoReset = r.ReadBool()
		o.ScaleInitPosition = r.ReadIntMax()
		o.ScaleInitFillQty = r.ReadIntMax()
		o.ScaleRandomPercent = r.ReadBool()
	}
	o.ScaleTable = r.ReadString()
	o.ActiveStartTime = r.ReadString()
	o.ActiveStopTime = r.ReadString()
	o.HedgeType = r.ReadString()
	if o.HedgeType != "" {
		o.HedgeParam = r.ReadString()
	}
	o.OptOutSmartRouting = r.ReadBool()
	o.ClearingAccount = r.ReadString()
	o.ClearingIntent = r.ReadString()
	o.NotHeld = r.ReadBool()
	if r.ReadBool() {
		msg.Contract.DeltaNeutralContract = &DeltaNeutralContract{ConID: r.ReadInt(), Delta: r.ReadDouble(), Price: r.ReadDouble()}
	}
	o.AlgoStrategy = r.ReadString()
	if o.AlgoStrategy != "" {
		p := r.ReadInt()
		for i := int32(0); i < p; i++ {
			o.AlgoParams = append(o.AlgoParams, TagValue{Tag: r.ReadString(), Value: r.ReadString()})
		}
	}
	o.Solicited = r.ReadBool()
	msg.OrderState = decodeOrderState(r)
	o.WhatIf = r.ReadBool()
	o.RandomizeSize = r.ReadBool()
	o.RandomizePrice = r.ReadBool()
	if o.OrderType == "PEG BENCH" {
		o.ReferenceContractID = r.ReadInt()
		o.IsPeggedChangeAmountDecrease = r.ReadBool()
		o.PeggedChangeAmount = r.ReadDouble()
		o.ReferenceChangeAmount = r.ReadDouble()
		o.ReferenceExchangeID = r.ReadString()
	}
	nc := r.ReadInt()
	for i := int32(0); i < nc; i++ {
		o.Conditions = append(o.Conditions, decodeOrderCondition(r))
	}
	if len(o.Conditions) > 0 {
		o.ConditionsIgnoreRth = r.ReadBool()
		o.ConditionsCancelOrder = r.ReadBool()
	}
	o.AdjustedOrderType = r.ReadString()
	o.TriggerPrice = r.ReadDoubleMax()
	o.TrailStopPrice = r.ReadDoubleMax()
	o.LmtPriceOffset = r.ReadDoubleMax()
	o.AdjustedStopPrice = r.ReadDoubleMax()
	o.AdjustedStopLimitPrice = r.ReadDoubleMax()
	o.AdjustedTrailingAmount = r.ReadDoubleMax()
	o.AdjustableTrailingUnit = r.ReadIntMax()
	o.SoftDollarTier = SoftDollarTier{Name: r.ReadString(), Value: r.ReadString(), DisplayName: r.ReadString()}
	if ctx.ServerVersion() >= minServerVerCashQty {
		o.CashQty = r.ReadDoubleMax()
	}
	return msg
}
