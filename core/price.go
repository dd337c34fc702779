package core

import (
	"github.com/sasha-s/go-deadlock"
	"gonum.org/v1/gonum/floats"
)

var (
	askPrices  = map[string]float64{}
	bidPrices  = map[string]float64{}
	lastPrices = map[string]float64{} // 最新成交价，行情回调更新
	lockPrices deadlock.RWMutex
	lockLast   deadlock.RWMutex
)

func getPriceBySide(symbol string, side string) (float64, bool) {
	lockPrices.RLock()
	priceArr := make([]float64, 0, 2)
	if side == OdSideBuy || side == "" {
		if price, ok := bidPrices[symbol]; ok {
			priceArr = append(priceArr, price)
		}
	}
	if side == OdSideSell || side == "" {
		if price, ok := askPrices[symbol]; ok {
			priceArr = append(priceArr, price)
		}
	}
	lockPrices.RUnlock()
	if len(priceArr) > 0 {
		if len(priceArr) == 1 {
			return priceArr[0], true
		}
		return floats.Sum(priceArr) / float64(len(priceArr)), true
	}
	return 0, false
}

func GetPriceSafe(symbol string, side string) float64 {
	price, ok := getPriceBySide(symbol, side)
	if ok {
		return price
	}
	lockLast.RLock()
	price, ok = lastPrices[symbol]
	lockLast.RUnlock()
	if ok {
		return price
	}
	return -1
}

func SetBidAsk(symbol string, bid, ask float64) {
	lockPrices.Lock()
	if bid > 0 {
		bidPrices[symbol] = bid
	}
	if ask > 0 {
		askPrices[symbol] = ask
	}
	lockPrices.Unlock()
}

func SetPrice(symbol string, price float64) {
	lockLast.Lock()
	lastPrices[symbol] = price
	lockLast.Unlock()
}

/*
PriceMap 返回标的列表的最新价格快照；无行情的标的不在结果中
*/
func PriceMap(symbols []string) map[string]float64 {
	res := make(map[string]float64, len(symbols))
	for _, symbol := range symbols {
		price := GetPriceSafe(symbol, "")
		if price > 0 {
			res[symbol] = price
		}
	}
	return res
}

const (
	OdSideBuy  = "buy"
	OdSideSell = "sell"
)
