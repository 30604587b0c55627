package twsmsg

import "github.com/fourbytes/ibtws-go/pkg/twsbin"

func decodeNewsBulletinsMsg(r *twsbin.Reader) *NewsBulletinsMsg {
	msg := &NewsBulletinsMsg{}
	msg.MsgID = r.ReadInt()
	msg.MsgType = r.ReadInt()
	msg.Message = r.ReadString()
	msg.OriginatingExch = r.ReadString()
	return msg
}

func decodeNewsProviderMsg(r *twsbin.Reader) *NewsProviderMsg {
	msg := &NewsProviderMsg{}
	n := r.ReadInt()
	for i := int32(0); i < n; i++ {
		msg.Providers = append(msg.Providers, NewsProvider{Code: r.ReadString(), Name: r.ReadString()})
	}
	return msg
}

func encodeReqNewsArticle(req *ReqNewsArticle) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqNewsArticle)
	w.PushInt(req.ReqID)
	_ = w.PushString(req.ProviderCode)
	_ = w.PushString(req.ArticleID)
	_ = w.PushString(EncodeTagValueList(req.Options))
	return w.Buf
}

func decodeNewsArticleMsg(r *twsbin.Reader) *NewsArticleMsg {
	msg := &NewsArticleMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.ArticleType = r.ReadInt()
	msg.ArticleText = r.ReadString()
	return msg
}

func decodeTickNewsMsg(r *twsbin.Reader) *TickNewsMsg {
	msg := &TickNewsMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.TimeStamp = r.ReadLong()
	msg.ProviderCode = r.ReadString()
	msg.ArticleID = r.ReadString()
	msg.Headline = r.ReadString()
	msg.ExtraData = r.ReadString()
	return msg
}

func encodeReqHistoricalNews(req *ReqHistoricalNews) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(reqHistoricalNews)
	w.PushInt(req.ReqID)
	w.PushInt(req.ConID)
	_ = w.PushString(req.ProviderCode)
	_ = w.PushString(req.StartTime)
	_ = w.PushString(req.EndTime)
	w.PushInt(req.TotalResults)
	_ = w.PushString(EncodeTagValueList(req.Options))
	return w.Buf
}

func decodeHistoricalNewsMsg(r *twsbin.Reader) *HistoricalNewsMsg {
	msg := &HistoricalNewsMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.Time = r.ReadString()
	msg.ProviderCode = r.ReadString()
	msg.ArticleID = r.ReadString()
	msg.Headline = r.ReadString()
	return msg
}

func decodeHistoricalNewsEndMsg(r *twsbin.Reader) *HistoricalNewsEndMsg {
	msg := &HistoricalNewsEndMsg{reqIDResponse: reqIDResponse{r.ReadInt()}}
	msg.HasMore = r.ReadBool()
	return msg
}
