package twsmsg

import "github.com/fourbytes/ibtws-go/pkg/twsbin"

// encodeContract writes the common contract-identification fields shared by
// every request that carries a Contract. withTradingClass controls the
// trailing TradingClass field some call sites omit.
func encodeContract(w *twsbin.Writer, c *Contract, withTradingClass bool) {
	w.PushInt(c.ConID)
	_ = w.PushString(c.Symbol)
	_ = w.PushString(c.SecType)
	_ = w.PushString(c.LastTradeDateOrContractMonth)
	w.PushDoubleMax(c.Strike)
	_ = w.PushString(c.Right)
	_ = w.PushString(c.Multiplier)
	_ = w.PushString(c.Exchange)
	_ = w.PushString(c.PrimaryExchange)
	_ = w.PushString(c.Currency)
	_ = w.PushString(c.LocalSymbol)
	if withTradingClass {
		_ = w.PushString(c.TradingClass)
	}
}

func encodeSecID(w *twsbin.Writer, c *Contract) {
	_ = w.PushString(c.SecIDType)
	_ = w.PushString(c.SecID)
}

func encodeComboLegs(w *twsbin.Writer, legs []ComboLeg, withExempt bool) {
	w.PushInt(int32(len(legs)))
	for _, l := range legs {
		w.PushInt(l.ConID)
		w.PushInt(l.Ratio)
		_ = w.PushString(l.Action)
		_ = w.PushString(l.Exchange)
		w.PushInt(l.OpenClose)
		w.PushInt(l.ShortSaleSlot)
		_ = w.PushString(l.DesignatedLocation)
		if withExempt {
			w.PushInt(l.ExemptCode)
		}
	}
}

func decodeContract(r *twsbin.Reader) Contract {
	var c Contract
	c.ConID = r.ReadInt()
	c.Symbol = r.ReadString()
	c.SecType = r.ReadString()
	c.LastTradeDateOrContractMonth = r.ReadString()
	c.Strike = r.ReadDoubleMax()
	c.Right = r.ReadString()
	c.Multiplier = r.ReadString()
	c.Exchange = r.ReadString()
	c.Currency = r.ReadString()
	c.LocalSymbol = r.ReadString()
	c.TradingClass = r.ReadString()
	return c
}

// decodeContractDetails parses the shared prefix of ContractData and
// BondContractData; isBond selects the bond-only suffix.
func decodeContractDetails(r *twsbin.Reader, serverVersion int32, isBond bool) ContractDetails {
	var d ContractDetails
	d.Contract.Symbol = r.ReadString()
	d.Contract.SecType = r.ReadString()
	if isBond {
		d.CUSIP = r.ReadString()
		d.Coupon = r.ReadDouble()
		d.Maturity = r.ReadString()
		d.IssueDate = r.ReadString()
		d.Ratings = r.ReadString()
		d.BondType = r.ReadString()
		d.CouponType = r.ReadString()
		d.Convertible = r.ReadBool()
		d.Callable = r.ReadBool()
		d.Putable = r.ReadBool()
		d.DescAppend = r.ReadString()
	} else {
		d.Contract.LastTradeDateOrContractMonth = r.ReadString()
		d.Contract.Strike = r.ReadDouble()
		d.Contract.Right = r.ReadString()
	}
	d.Contract.Exchange = r.ReadString()
	d.Contract.Currency = r.ReadString()
	d.Contract.LocalSymbol = r.ReadString()
	d.MarketName = r.ReadString()
	d.Contract.TradingClass = r.ReadString()
	d.Contract.ConID = r.ReadInt()
	d.MinTick = r.ReadDouble()
	d.Contract.Multiplier = r.ReadString()
	d.OrderTypes = r.ReadString()
	d.ValidExchanges = r.ReadString()
	d.PriceMagnifier = r.ReadInt()
	d.UnderConID = r.ReadInt()
	d.LongName = r.ReadString()
	d.Contract.PrimaryExchange = r.ReadString()
	if isBond {
		d.NextOptionDate = r.ReadString()
		d.NextOptionType = r.ReadString()
		d.NextOptionPartial = r.ReadBool()
		d.Notes = r.ReadString()
	} else {
		d.ContractMonth = r.ReadString()
		d.Industry = r.ReadString()
		d.Category = r.ReadString()
		d.SubCategory = r.ReadString()
		d.TimezoneID = r.ReadString()
		d.TradingHours = r.ReadString()
		d.LiquidHours = r.ReadString()
		d.EvRule = r.ReadString()
		d.EvMultiplier = r.ReadDouble()
	}
	d.IsBond = isBond
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		d.SecIDList = append(d.SecIDList, TagValue{Tag: r.ReadString(), Value: r.ReadString()})
	}
	if serverVersion >= minServerVerAggGroup {
		d.AggGroup = r.ReadIntMax()
	}
	if serverVersion >= minServerVerUnderlyingInfo {
		d.UnderSymbol = r.ReadString()
		d.UnderSecType = r.ReadString()
	}
	if serverVersion >= minServerVerScaleTable {
		d.MarketRuleIDs = r.ReadString()
	}
	d.RealExpirationDate = r.ReadString()
	return d
}

func decodeContractDescription(r *twsbin.Reader) ContractDescription {
	var cd ContractDescription
	cd.Contract.ConID = r.ReadInt()
	cd.Contract.Symbol = r.ReadString()
	cd.Contract.SecType = r.ReadString()
	cd.Contract.PrimaryExchange = r.ReadString()
	cd.Contract.Currency = r.ReadString()
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		cd.DerivativeSecTypes = append(cd.DerivativeSecTypes, r.ReadString())
	}
	return cd
}

func encodeReqContractDetails(ctx *Context, req *ReqContractDetails) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqContractData)
	w.PushInt(8)
	w.PushInt(req.ReqID)
	encodeContract(w, &req.Contract, true)
	w.PushBool(req.Contract.IncludeExpired)
	_ = w.PushString(req.Contract.SecIDType)
	_ = w.PushString(req.Contract.SecID)
	return w.Buf
}

func decodeContractDataMsg(ctx *Context, r *twsbin.Reader) *ContractDataMsg {
	reqID := r.ReadInt()
	d := decodeContractDetails(r, ctx.ServerVersion(), false)
	return &ContractDataMsg{reqIDResponse{reqID}, d}
}

func decodeBondContractDataMsg(ctx *Context, r *twsbin.Reader) *BondContractDataMsg {
	reqID := r.ReadInt()
	d := decodeContractDetails(r, ctx.ServerVersion(), true)
	return &BondContractDataMsg{reqIDResponse{reqID}, d}
}

func decodeContractDataEndMsg(r *twsbin.Reader) *ContractDataEndMsg {
	return &ContractDataEndMsg{reqIDResponse{r.ReadInt()}}
}

func decodeSymbolSamplesMsg(r *twsbin.Reader) *SymbolSamplesMsg {
	reqID := r.ReadInt()
	n := r.ReadInt()
	msg := &SymbolSamplesMsg{reqIDResponse: reqIDResponse{reqID}}
	for i := int32(0); i < n; i++ {
		msg.ContractDescriptions = append(msg.ContractDescriptions, decodeContractDescription(r))
	}
	return msg
}

func decodeMarketRuleMsg(r *twsbin.Reader) *MarketRuleMsg {
	msg := &MarketRuleMsg{MarketRuleID: r.ReadInt()}
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		msg.PriceIncrements = append(msg.PriceIncrements, PriceIncrement{LowEdge: r.ReadDouble(), Increment: r.ReadDouble()})
	}
	return msg
}

func decodeFamilyCodesMsg(r *twsbin.Reader) *FamilyCodesMsg {
	n := r.ReadInt()
	msg := &FamilyCodesMsg{}
	for i := int32(0); i < n; i++ {
		msg.FamilyCodes = append(msg.FamilyCodes, FamilyCode{AccountID: r.ReadString(), FamilyCode: r.ReadString()})
	}
	return msg
}

func decodeSecurityDefinitionOptionalParameterMsg(r *twsbin.Reader) *SecurityDefinitionOptionalParameterMsg {
	msg := &SecurityDefinitionOptionalParameterMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.Exchange = r.ReadString()
	msg.UnderlyingConID = r.ReadInt()
	msg.TradingClass = r.ReadString()
	msg.Multiplier = r.ReadString()
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		msg.Expirations = append(msg.Expirations, r.ReadString())
	}
	m := r.ReadInt()
	for i := int32(0); i < m; i++ {
		msg.Strikes = append(msg.Strikes, r.ReadDouble())
	}
	return msg
}

func decodeSoftDollarTiersMsg(r *twsbin.Reader) *SoftDollarTiersMsg {
	msg := &SoftDollarTiersMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		msg.Tiers = append(msg.Tiers, SoftDollarTier{Name: r.ReadString(), Value: r.ReadString(), DisplayName: r.ReadString()})
	}
	return msg
}
