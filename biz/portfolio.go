package biz

import (
	"github.com/banbox/banalpha/trade"
	"github.com/sasha-s/go-deadlock"
)

/*
MemPortfolio 内存持仓记账，实现trade.PortfolioTracker。
真实柜台环境由外部组合管理接管；dry_run/回测用此实现。
*/
type MemPortfolio struct {
	lock      deadlock.Mutex
	orders    map[int64]*trade.Order // entrust_no -> order
	positions map[string]int64
}

func NewMemPortfolio() *MemPortfolio {
	return &MemPortfolio{
		orders:    make(map[int64]*trade.Order),
		positions: make(map[string]int64),
	}
}

func (p *MemPortfolio) AddOrder(od *trade.Order) {
	p.lock.Lock()
	p.orders[od.EntrustNo] = od
	p.lock.Unlock()
}

func (p *MemPortfolio) GetOrder(entrustNo int64) *trade.Order {
	p.lock.Lock()
	od := p.orders[entrustNo]
	p.lock.Unlock()
	return od
}

func (p *MemPortfolio) GetPosition(symbol string, tradeDate int64) *trade.Position {
	p.lock.Lock()
	size, ok := p.positions[symbol]
	p.lock.Unlock()
	if !ok {
		return nil
	}
	return &trade.Position{Symbol: symbol, CurrSize: size, TradeDate: tradeDate}
}

func (p *MemPortfolio) HoldingSymbols() map[string]bool {
	p.lock.Lock()
	res := make(map[string]bool, len(p.positions))
	for symbol, size := range p.positions {
		if size != 0 {
			res[symbol] = true
		}
	}
	p.lock.Unlock()
	return res
}

func (p *MemPortfolio) SetPosition(symbol string, size int64) {
	p.lock.Lock()
	p.positions[symbol] = size
	p.lock.Unlock()
}

func (p *MemPortfolio) OnTradeInd(ind *trade.TradeInd) {
	p.lock.Lock()
	od, ok := p.orders[ind.EntrustNo]
	delta := ind.Filled
	if ok && od.Action == trade.ActSell {
		delta = -delta
	}
	p.positions[ind.Symbol] += delta
	if ok {
		if od.Size <= ind.Filled {
			od.Status = trade.OdStatusFilled
		} else {
			od.Status = trade.OdStatusPartFilled
		}
	}
	p.lock.Unlock()
}

func (p *MemPortfolio) OnOrderStatus(ind *trade.OrderStatusInd) {
	p.lock.Lock()
	if od, ok := p.orders[ind.EntrustNo]; ok {
		od.Status = ind.Status
	}
	p.lock.Unlock()
}
