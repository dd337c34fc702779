package trade

import (
	"github.com/banbox/banexg/errs"
)

/*
Gateway 柜台接口。下单/撤单同步返回，nil表示已接受；
不在此层做重试或超时。
*/
type Gateway interface {
	PlaceOrder(od *Order) *errs.Error
	CancelOrder(entrustNo int64) *errs.Error
}

/*
OrderQuerier 可选的查询能力。柜台未实现时，TaskTracker返回
Unsupported错误，避免把"没有数据"误当成"查询成功为空"。
*/
type OrderQuerier interface {
	QueryOrders(taskID int64) ([]*Order, *errs.Error)
}

/*
PortfolioTracker 组合管理（持仓记账）接口，由外部实现。
成交/状态回报原样转发给它，本引擎不修改。
*/
type PortfolioTracker interface {
	AddOrder(od *Order)
	GetOrder(entrustNo int64) *Order                      // 未登记返回nil
	GetPosition(symbol string, tradeDate int64) *Position // 无持仓返回nil
	HoldingSymbols() map[string]bool
	OnTradeInd(ind *TradeInd)
	OnOrderStatus(ind *OrderStatusInd)
}
