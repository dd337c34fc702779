package btime

import (
	"strconv"
	"time"

	"github.com/banbox/banalpha/core"
)

var (
	CurTimeMS   = int64(0)
	LocTrade, _ = time.LoadLocation("Asia/Shanghai")
)

/*
UTCStamp
获取13位毫秒时间戳
*/
func UTCStamp() int64 {
	return time.Now().UnixMilli()
}

/*
TimeMS
获取当前13位毫秒时间戳；回测模式返回虚拟时钟
*/
func TimeMS() int64 {
	if core.LiveMode {
		return UTCStamp()
	}
	if CurTimeMS == 0 {
		CurTimeMS = UTCStamp()
	}
	return CurTimeMS
}

func MSToTime(timeMSecs int64) *time.Time {
	seconds := timeMSecs / 1000
	nanos := (timeMSecs % 1000) * 1000000
	res := time.Unix(seconds, nanos).In(LocTrade)
	return &res
}

func Now() *time.Time {
	return MSToTime(TimeMS())
}

/*
TradeDate 将13位毫秒时间戳转为YYYYMMDD整数交易日期（交易所时区）
*/
func TradeDate(timeMSecs int64) int64 {
	text := MSToTime(timeMSecs).Format(core.TradeDateFmt)
	res, _ := strconv.ParseInt(text, 10, 64)
	return res
}

func CurTradeDate() int64 {
	return TradeDate(TimeMS())
}
