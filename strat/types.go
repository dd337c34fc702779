package strat

import (
	"github.com/anyongjin/cron"
	"github.com/banbox/banalpha/alpha"
	"github.com/banbox/banalpha/event"
	"github.com/banbox/banalpha/trade"
)

/*
AlphaStrat 组合策略：持有任务跟踪、权重构建、目标持仓转换
和事件引擎，按周期把权重变化转为目标持仓差额委托。
所有回调在事件引擎的单个goroutine里顺序执行。
*/
type AlphaStrat struct {
	Name      string
	Universe  []string
	TradeDate int64

	Tracker *trade.TaskTracker
	Builder *alpha.Builder
	Trans   *alpha.GoalTrans
	Engine  *event.Engine
	PM      trade.PortfolioTracker

	Cash          float64 // 可用资金，成交回报推进
	Period        string
	DaysDelay     int
	NPeriods      int
	PositionRatio float64
	ExecStyle     int

	Weights alpha.Weights         // 最近一次构建的目标权重
	Goals   []*trade.GoalPosition // 最近一次的目标持仓

	// 业务回调，不设置则走默认流程
	OnNewDay         func(s *AlphaStrat, tradeDate int64)
	OnQuote          func(s *AlphaStrat, q *trade.Quote)
	OnCycle          func(s *AlphaStrat)
	OnAfterRebalance func(s *AlphaStrat)
	OnTrade          func(s *AlphaStrat, ind *trade.TradeInd)
	OnOrderStatus    func(s *AlphaStrat, ind *trade.OrderStatusInd)

	suspends     map[string]bool // 最近行情标记的停牌集
	sched        *cron.Cron
	cycleNum     int
	pendingDelay int // days_delay倒计时，>0时等待交易日推进
}
