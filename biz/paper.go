package biz

import (
	"github.com/banbox/banalpha/core"
	"github.com/banbox/banalpha/trade"
	"github.com/banbox/banexg/errs"
	"github.com/sasha-s/go-deadlock"
)

/*
PaperGateway 纸面柜台：接受全部委托并立即全量成交回报，
用于dry_run联调。实现trade.Gateway和trade.OrderQuerier。
*/
type PaperGateway struct {
	lock   deadlock.Mutex
	orders map[int64]*trade.Order   // entrust_no -> order
	tasks  map[int64][]*trade.Order // task_id -> orders

	// OnTradeInd/OnOrderStatus 回报出口，通常接事件引擎
	OnTradeInd    func(ind *trade.TradeInd)
	OnOrderStatus func(ind *trade.OrderStatusInd)
}

func NewPaperGateway() *PaperGateway {
	return &PaperGateway{
		orders: make(map[int64]*trade.Order),
		tasks:  make(map[int64][]*trade.Order),
	}
}

func (g *PaperGateway) PlaceOrder(od *trade.Order) *errs.Error {
	g.lock.Lock()
	g.orders[od.EntrustNo] = od
	g.tasks[od.TaskID] = append(g.tasks[od.TaskID], od)
	g.lock.Unlock()
	if g.OnOrderStatus != nil {
		g.OnOrderStatus(&trade.OrderStatusInd{
			Symbol: od.Symbol, EntrustNo: od.EntrustNo, TaskID: od.TaskID,
			Status: trade.OdStatusAccepted,
		})
	}
	if g.OnTradeInd != nil {
		price := od.Price
		if price <= 0 {
			price = core.GetPriceSafe(od.Symbol, "")
		}
		g.OnTradeInd(&trade.TradeInd{
			Symbol: od.Symbol, EntrustNo: od.EntrustNo, TaskID: od.TaskID,
			Price: price, Filled: od.Size, TradeDate: od.TradeDate,
		})
	}
	return nil
}

func (g *PaperGateway) CancelOrder(entrustNo int64) *errs.Error {
	g.lock.Lock()
	od, ok := g.orders[entrustNo]
	g.lock.Unlock()
	if !ok {
		return errs.NewMsg(core.ErrCancelFail, "unknown entrust no %v", entrustNo)
	}
	if od.Status >= trade.OdStatusFilled {
		return errs.NewMsg(core.ErrCancelFail, "entrust %v is final: %s",
			entrustNo, trade.OdStatusNames[od.Status])
	}
	if g.OnOrderStatus != nil {
		g.OnOrderStatus(&trade.OrderStatusInd{
			Symbol: od.Symbol, EntrustNo: od.EntrustNo, TaskID: od.TaskID,
			Status: trade.OdStatusCanceled,
		})
	}
	return nil
}

func (g *PaperGateway) QueryOrders(taskID int64) ([]*trade.Order, *errs.Error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	arr, ok := g.tasks[taskID]
	if !ok {
		return nil, errs.NewMsg(core.ErrUnknownTask, "no task id %v", taskID)
	}
	res := make([]*trade.Order, len(arr))
	copy(res, arr)
	return res, nil
}
