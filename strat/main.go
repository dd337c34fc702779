package strat

import (
	"sort"
	"time"

	"github.com/anyongjin/cron"
	"github.com/banbox/banalpha/alpha"
	"github.com/banbox/banalpha/btime"
	"github.com/banbox/banalpha/config"
	"github.com/banbox/banalpha/core"
	"github.com/banbox/banalpha/event"
	"github.com/banbox/banalpha/trade"
	"github.com/banbox/banalpha/utils"
	"github.com/banbox/banexg/errs"
	"github.com/banbox/banexg/log"
	"go.uber.org/zap"
)

/*
New 按全局配置组装策略。方法/执行基准在此解析为封闭枚举，
配置非法立即失败，不会带病进入运行期。
*/
func New(gateway trade.Gateway, pm trade.PortfolioTracker, revenue alpha.RevenueModel,
	cost alpha.CostModel, risk alpha.RiskModel, selector alpha.StockSelector) (*AlphaStrat, *errs.Error) {
	method, err := alpha.ParseMethod(config.PcMethod)
	if err != nil {
		return nil, err
	}
	style, err := alpha.ParseExecStyle(config.ExecStyle)
	if err != nil {
		return nil, err
	}
	s := &AlphaStrat{
		Name:          config.Name,
		Universe:      config.Universe,
		TradeDate:     btime.CurTradeDate(),
		PM:            pm,
		Cash:          config.InitBalance,
		Period:        config.Period,
		DaysDelay:     config.DaysDelay,
		NPeriods:      config.NPeriods,
		PositionRatio: config.PositionRatio,
		ExecStyle:     style,
		suspends:      make(map[string]bool),
	}
	if s.NPeriods <= 0 {
		s.NPeriods = 1
	}
	util := alpha.NewNetRevenueUtil(revenue, cost, risk, s.lastWeights)
	util.CostCoef = config.CostCoef
	util.RiskCoef = config.RiskCoef
	s.Builder = &alpha.Builder{
		Method:    method,
		Universe:  config.Universe,
		Revenue:   revenue,
		Cost:      cost,
		Risk:      risk,
		Selector:  selector,
		Util:      util,
		NumTrials: config.McTrials,
	}
	if err = s.Builder.Validate(); err != nil {
		return nil, err
	}
	s.Tracker = trade.NewTaskTracker(gateway, pm, s.TradeDate)
	s.Trans = alpha.NewGoalTrans(pm, s.TradeDate)
	if config.LotSize > 0 {
		s.Trans.Lot = config.LotSize
	}
	s.Engine = event.NewEngine(0)
	s.Engine.Register(event.EvtQuote, s.onQuoteEvt)
	s.Engine.Register(event.EvtTradeInd, s.onTradeEvt)
	s.Engine.Register(event.EvtOrderStatus, s.onStatusEvt)
	s.Engine.Register(event.EvtNewDay, s.onNewDayEvt)
	s.Engine.Register(event.EvtTimer, s.onTimerEvt)
	return s, nil
}

/*
TuneCoefs 开局对成本/风险系数做贝叶斯搜索，仅mc方法有意义。
tune_rounds为0时跳过。
*/
func (s *AlphaStrat) TuneCoefs() *errs.Error {
	if config.TuneRounds <= 0 || s.Builder.Method != alpha.WtMonteCarlo {
		return nil
	}
	tuner := alpha.NewCoefTuner(s.Universe, s.Builder.Util)
	tuner.Rounds = config.TuneRounds
	if s.Builder.NumTrials > 0 {
		tuner.NumTrials = s.Builder.NumTrials
	}
	costCoef, riskCoef, _, err := tuner.Run()
	if err != nil {
		return err
	}
	s.Builder.Util.CostCoef = costCoef
	s.Builder.Util.RiskCoef = riskCoef
	return nil
}

/*
lastWeights 当前持仓股数视为上期权重，未持仓标的为0。
不做归一化，成本模型按同口径消费。
*/
func (s *AlphaStrat) lastWeights() alpha.Weights {
	res := make(alpha.Weights, len(s.Universe))
	for _, symbol := range s.Universe {
		var size int64
		if pos := s.PM.GetPosition(symbol, s.TradeDate); pos != nil {
			size = pos.CurrSize
		}
		res[symbol] = float64(size)
	}
	return res
}

func (s *AlphaStrat) totalAssets(prices map[string]float64) float64 {
	total := s.Cash
	for _, symbol := range s.Universe {
		pos := s.PM.GetPosition(symbol, s.TradeDate)
		if pos == nil || pos.CurrSize == 0 {
			continue
		}
		price := prices[symbol]
		if price <= 0 {
			price = core.GetPriceSafe(symbol, "")
		}
		if price > 0 {
			total += float64(pos.CurrSize) * price
		}
	}
	return total
}

/*
Rebalance 完整调仓流水线：
构建权重 -> 停牌再加权 -> 转为目标持仓 -> 差额委托整批提交。
turnover = position_ratio * (现金 + 持仓市值)
*/
func (s *AlphaStrat) Rebalance(prices map[string]float64, suspends map[string]bool) *errs.Error {
	weights, err := s.Builder.Build(s.lastWeights())
	if err != nil {
		return err
	}
	weights, err = alpha.ReWeightSuspend(weights, suspends, len(s.Universe))
	if err != nil {
		return err
	}
	turnover := s.PositionRatio * s.totalAssets(prices)
	goals, cashLeft, err := s.Trans.Translate(weights, turnover, prices, s.ExecStyle, suspends)
	if err != nil {
		return err
	}
	s.Weights = weights
	s.Goals = goals
	taskID, err := s.GoalPortfolio(goals, prices)
	if err != nil {
		return err
	}
	log.Info("rebalance done", zap.Int64("date", s.TradeDate),
		zap.Int64("task", taskID), zap.Float64("cashLeft", cashLeft))
	if s.OnAfterRebalance != nil {
		s.OnAfterRebalance(s)
	}
	return nil
}

// RebalanceAuto 用最新行情快照和当前停牌集调仓
func (s *AlphaStrat) RebalanceAuto() *errs.Error {
	prices := core.PriceMap(s.Universe)
	suspends := make(map[string]bool, len(s.suspends))
	for symbol, v := range s.suspends {
		if v {
			suspends[symbol] = true
		}
	}
	return s.Rebalance(prices, suspends)
}

/*
GoalPortfolio 把目标持仓与当前持仓的差额转为整批委托。
目标必须覆盖整个标的池；差额为0的标的不产生委托。
无任何差额时返回task_id 0且不调用柜台。
*/
func (s *AlphaStrat) GoalPortfolio(goals []*trade.GoalPosition, prices map[string]float64) (int64, *errs.Error) {
	if len(goals) != len(s.Universe) {
		return 0, errs.NewMsg(core.ErrBadGoals, "goal positions %v != universe %v",
			len(goals), len(s.Universe))
	}
	var orders []*trade.Order
	for _, goal := range goals {
		var held int64
		if pos := s.PM.GetPosition(goal.Symbol, s.TradeDate); pos != nil {
			held = pos.CurrSize
		}
		diff := goal.Size - held
		if diff == 0 {
			continue
		}
		price := prices[goal.Symbol]
		if price <= 0 {
			price = core.GetPriceSafe(goal.Symbol, "")
		}
		action, size := trade.ActBuy, diff
		if utils.NumSign(float64(diff)) < 0 {
			action, size = trade.ActSell, -diff
		}
		od := trade.NewOrder(goal.Symbol, action, price, size, s.TradeDate)
		od.PriceTarget = alpha.ExecStyleNames[s.ExecStyle]
		orders = append(orders, od)
	}
	if len(orders) == 0 {
		return 0, nil
	}
	return s.Tracker.PlaceBatchOrder(orders)
}

/*
SendBullets 重新提交最近一次的目标持仓，价格取最新快照
*/
func (s *AlphaStrat) SendBullets() (int64, *errs.Error) {
	if s.Goals == nil {
		return 0, errs.NewMsg(core.ErrBadGoals, "no goal positions yet")
	}
	return s.GoalPortfolio(s.Goals, core.PriceMap(s.Universe))
}

/*
LiquidateAll 全部清仓：持仓标的以极低限价卖出，保证能成交。
无持仓时返回task_id 0。
*/
func (s *AlphaStrat) LiquidateAll() (int64, *errs.Error) {
	held := s.PM.HoldingSymbols()
	symbols := make([]string, 0, len(held))
	for symbol := range held {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	var orders []*trade.Order
	for _, symbol := range symbols {
		pos := s.PM.GetPosition(symbol, s.TradeDate)
		if pos == nil || pos.CurrSize <= 0 {
			continue
		}
		od := trade.NewOrder(symbol, trade.ActSell, 1e-3, pos.CurrSize, s.TradeDate)
		od.PriceTarget = alpha.ExecStyleNames[s.ExecStyle]
		orders = append(orders, od)
	}
	if len(orders) == 0 {
		return 0, nil
	}
	return s.Tracker.PlaceBatchOrder(orders)
}

// QueryPortfolio 返回当前持仓快照，按标的排序
func (s *AlphaStrat) QueryPortfolio() []*trade.Position {
	held := s.PM.HoldingSymbols()
	symbols := make([]string, 0, len(held))
	for symbol := range held {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	res := make([]*trade.Position, 0, len(symbols))
	for _, symbol := range symbols {
		if pos := s.PM.GetPosition(symbol, s.TradeDate); pos != nil {
			res = append(res, pos)
		}
	}
	return res
}

// LastQuote 进程缓存中最近一次的行情快照，无则返回nil
func (s *AlphaStrat) LastQuote(symbol string) *trade.Quote {
	return core.GetCacheVal[*trade.Quote]("qu_"+symbol, nil)
}

// SubscribeQuotes 向行情源登记标的池订阅，回报投递到事件引擎
func (s *AlphaStrat) SubscribeQuotes(pub event.Publisher) {
	for _, symbol := range s.Universe {
		pub.AddSubscriber(s.Engine, symbol)
	}
}

// FeedTrade 外部成交回报入口，可直接绑定柜台回调
func (s *AlphaStrat) FeedTrade(ind *trade.TradeInd) {
	s.Engine.Put(&event.Event{Type: event.EvtTradeInd, Data: ind})
}

func (s *AlphaStrat) FeedOrderStatus(ind *trade.OrderStatusInd) {
	s.Engine.Put(&event.Event{Type: event.EvtOrderStatus, Data: ind})
}

func (s *AlphaStrat) FeedQuote(q *trade.Quote) {
	s.Engine.Put(&event.Event{Type: event.EvtQuote, Data: q})
}

func (s *AlphaStrat) FeedNewDay(tradeDate int64) {
	s.Engine.Put(&event.Event{Type: event.EvtNewDay, Data: tradeDate})
}

func (s *AlphaStrat) FeedTimer() {
	s.Engine.Put(&event.Event{Type: event.EvtTimer})
}

func (s *AlphaStrat) onQuoteEvt(evt *event.Event) {
	q, ok := evt.Data.(*trade.Quote)
	if !ok {
		return
	}
	core.SetBidAsk(q.Symbol, q.Bid, q.Ask)
	if q.Last > 0 {
		core.SetPrice(q.Symbol, q.Last)
	}
	if q.Suspend {
		s.suspends[q.Symbol] = true
	} else {
		delete(s.suspends, q.Symbol)
	}
	if core.Cache != nil {
		core.Cache.SetWithTTL("qu_"+q.Symbol, q, 1, time.Minute*5)
	}
	if s.OnQuote != nil {
		s.OnQuote(s, q)
	}
}

func (s *AlphaStrat) onTradeEvt(evt *event.Event) {
	ind, ok := evt.Data.(*trade.TradeInd)
	if !ok {
		return
	}
	od := s.PM.GetOrder(ind.EntrustNo)
	s.PM.OnTradeInd(ind)
	if od != nil {
		amount := ind.Price * float64(ind.Filled)
		if od.Action == trade.ActBuy {
			s.Cash -= amount
		} else {
			s.Cash += amount
		}
	}
	if s.OnTrade != nil {
		s.OnTrade(s, ind)
	}
}

func (s *AlphaStrat) onStatusEvt(evt *event.Event) {
	ind, ok := evt.Data.(*trade.OrderStatusInd)
	if !ok {
		return
	}
	s.PM.OnOrderStatus(ind)
	if s.OnOrderStatus != nil {
		s.OnOrderStatus(s, ind)
	}
}

func (s *AlphaStrat) onNewDayEvt(evt *event.Event) {
	tradeDate, ok := evt.Data.(int64)
	if !ok {
		return
	}
	s.TradeDate = tradeDate
	s.Tracker.SetTradeDate(tradeDate)
	s.Trans.TradeDate = tradeDate
	if s.OnNewDay != nil {
		s.OnNewDay(s, tradeDate)
	}
	if s.pendingDelay > 0 {
		s.pendingDelay--
		if s.pendingDelay == 0 {
			s.runCycle()
		}
	}
}

func (s *AlphaStrat) onTimerEvt(evt *event.Event) {
	s.cycleNum++
	if s.cycleNum%s.NPeriods != 0 {
		return
	}
	if s.DaysDelay > 0 {
		s.pendingDelay = s.DaysDelay
		return
	}
	s.runCycle()
}

func (s *AlphaStrat) runCycle() {
	if s.OnCycle != nil {
		s.OnCycle(s)
		return
	}
	if err := s.RebalanceAuto(); err != nil {
		log.Error("rebalance fail", zap.Int64("date", s.TradeDate), zap.Error(err))
	}
}

/*
cycleSpec 调仓周期对应的cron表达式（6段，含秒）。
month在日历月首日触发，交易日修正由days_delay承担。
*/
func cycleSpec(period string) string {
	switch period {
	case "day":
		return "0 50 14 * * 1-5"
	case "week":
		return "0 50 14 * * 5"
	default:
		return "0 30 9 1 * *"
	}
}

/*
StartLive 启动事件引擎；实时模式下再挂定时任务：
交易日开盘推进日期，按周期触发调仓。
*/
func (s *AlphaStrat) StartLive() {
	s.Engine.Start()
	if !core.LiveMode || s.sched != nil {
		return
	}
	cron.FnTimeNow = func() time.Time {
		return *btime.Now()
	}
	c := cron.New(cron.WithSeconds())
	c.Add("0 5 9 * * 1-5", func() {
		s.FeedNewDay(btime.CurTradeDate())
	})
	c.Add(cycleSpec(s.Period), func() {
		s.FeedTimer()
	})
	c.Start()
	s.sched = c
}

func (s *AlphaStrat) Stop() {
	if s.sched != nil {
		s.sched.Stop()
		s.sched = nil
	}
	s.Engine.Stop()
}
