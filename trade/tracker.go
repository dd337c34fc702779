package trade

import (
	"strings"

	"github.com/banbox/banalpha/core"
	"github.com/banbox/banexg/errs"
	"github.com/banbox/banexg/log"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/zap"
)

/*
TaskTracker 任务-子委托跟踪。每个下单请求对应一个task_id，
可展开为多个entrust_no；按task整体查询/撤销。
会话内task映射只增不减，撤单不会删除映射。
*/
type TaskTracker struct {
	Gateway   Gateway
	PM        PortfolioTracker
	Seq       *SeqGen
	TradeDate int64

	// KeepRejected 柜台拒单后是否保留已登记的委托和task映射。
	// 默认true：保留记录，供之后对账。
	KeepRejected bool

	lock       deadlock.Mutex
	taskOrders map[int64][]int64
}

func NewTaskTracker(gateway Gateway, pm PortfolioTracker, tradeDate int64) *TaskTracker {
	return &TaskTracker{
		Gateway:      gateway,
		PM:           pm,
		Seq:          NewSeqGen(),
		TradeDate:    tradeDate,
		KeepRejected: true,
		taskOrders:   make(map[int64][]int64),
	}
}

func (t *TaskTracker) SetTradeDate(tradeDate int64) {
	t.TradeDate = tradeDate
}

func (t *TaskTracker) addEntrust(taskID, entrustNo int64) {
	t.lock.Lock()
	t.taskOrders[taskID] = append(t.taskOrders[taskID], entrustNo)
	t.lock.Unlock()
}

func (t *TaskTracker) dropTask(taskID int64) {
	t.lock.Lock()
	delete(t.taskOrders, taskID)
	t.lock.Unlock()
}

/*
TaskEntrusts 返回任务下全部子委托编号的副本；未知任务返回nil
*/
func (t *TaskTracker) TaskEntrusts(taskID int64) []int64 {
	t.lock.Lock()
	defer t.lock.Unlock()
	arr, ok := t.taskOrders[taskID]
	if !ok {
		return nil
	}
	res := make([]int64, len(arr))
	copy(res, arr)
	return res
}

func (t *TaskTracker) HasTask(taskID int64) bool {
	t.lock.Lock()
	_, ok := t.taskOrders[taskID]
	t.lock.Unlock()
	return ok
}

/*
PlaceOrder 提交单笔委托。返回task_id；柜台拒绝时返回0和错误，
已登记的委托按KeepRejected决定是否保留。
*/
func (t *TaskTracker) PlaceOrder(symbol, action string, price float64, size int64) (int64, *errs.Error) {
	od := NewOrder(symbol, action, price, size, t.TradeDate)
	od.TaskID = t.Seq.MakeID(t.TradeDate, core.KeyTaskID)
	od.EntrustNo = t.Seq.MakeID(t.TradeDate, core.KeyEntrustNo)
	t.addEntrust(od.TaskID, od.EntrustNo)
	t.PM.AddOrder(od)
	// 转发前置为submitted：同步成交的柜台会立即推进状态，之后不可回退
	od.Status = OdStatusSubmitted
	err := t.Gateway.PlaceOrder(od)
	if err != nil {
		if !t.KeepRejected {
			t.dropTask(od.TaskID)
		}
		log.Warn("place order rejected", zap.String("symbol", symbol),
			zap.Int64("entrust", od.EntrustNo), zap.Error(err))
		return 0, err
	}
	return od.TaskID, nil
}

/*
PlaceBatchOrder 批量提交，整批共用一个task_id，每笔独立entrust_no。
逐笔独立转发，不做回滚；失败的委托错误拼接后整体返回，
调用方需按标的通过委托状态查询对账。
*/
func (t *TaskTracker) PlaceBatchOrder(orders []*Order) (int64, *errs.Error) {
	taskID := t.Seq.MakeID(t.TradeDate, core.KeyTaskID)
	var fails []string
	for _, od := range orders {
		od.TaskID = taskID
		od.EntrustNo = t.Seq.MakeID(t.TradeDate, core.KeyEntrustNo)
		od.TradeDate = t.TradeDate
		t.PM.AddOrder(od)
		t.addEntrust(taskID, od.EntrustNo)
		od.Status = OdStatusSubmitted
		err := t.Gateway.PlaceOrder(od)
		if err != nil {
			fails = append(fails, err.Short())
		}
	}
	if len(fails) > 0 {
		return taskID, errs.NewMsg(core.ErrGatewayFail, "batch %v/%v orders fail: %s",
			len(fails), len(orders), strings.Join(fails, "; "))
	}
	return taskID, nil
}

/*
CancelTask 撤销任务下全部子委托。未知task直接报错且不触发柜台调用；
部分失败时聚合错误，子委托编号无论结果都保留在映射中。
*/
func (t *TaskTracker) CancelTask(taskID int64) *errs.Error {
	entrusts := t.TaskEntrusts(taskID)
	if entrusts == nil {
		return errs.NewMsg(core.ErrUnknownTask, "no task id %v", taskID)
	}
	var fails []string
	for _, no := range entrusts {
		err := t.Gateway.CancelOrder(no)
		if err != nil {
			fails = append(fails, err.Short())
		}
	}
	if len(fails) > 0 {
		return errs.NewMsg(core.ErrCancelFail, "cancel task %v fail: %s",
			taskID, strings.Join(fails, "; "))
	}
	return nil
}

/*
QueryOrders 查询任务下委托。柜台未实现查询能力时返回Unsupported，
与"查询成功但无数据"可区分。
*/
func (t *TaskTracker) QueryOrders(taskID int64) ([]*Order, *errs.Error) {
	qr, ok := t.Gateway.(OrderQuerier)
	if !ok {
		return nil, errs.NewMsg(core.ErrUnsupported, "gateway does not support order query")
	}
	return qr.QueryOrders(taskID)
}
