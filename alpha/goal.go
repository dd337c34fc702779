package alpha

import (
	"math"
	"sort"

	"github.com/banbox/banalpha/core"
	"github.com/banbox/banalpha/trade"
	"github.com/banbox/banalpha/utils"
	"github.com/banbox/banexg/errs"
	"github.com/shopspring/decimal"
)

/*
执行基准，封闭集合；其他取值在任何计算前直接报错
*/
const (
	ExecClose = iota + 1
	ExecVwap
)

var ExecStyleNames = map[int]string{
	ExecClose: "close",
	ExecVwap:  "vwap",
}

func ParseExecStyle(name string) (int, *errs.Error) {
	for style, text := range ExecStyleNames {
		if text == name {
			return style, nil
		}
	}
	return 0, errs.NewMsg(core.ErrUnsupported, "unsupported exec style: %s", name)
}

/*
GoalTrans 把权重向量+换手资金+现价转为按手取整的目标持仓。
*/
type GoalTrans struct {
	PM        trade.PortfolioTracker
	TradeDate int64
	Lot       int64 // 默认core.LotSize
}

func NewGoalTrans(pm trade.PortfolioTracker, tradeDate int64) *GoalTrans {
	return &GoalTrans{PM: pm, TradeDate: tradeDate, Lot: core.LotSize}
}

/*
Translate 逐标的生成目标股数：
  - 停牌：冻结在当前持仓，不受目标权重影响
  - |w|<1e-8：目标0，即清仓
  - 其余：raw = w*turnover/price，按手银行家舍入；
    不足一手的零头直接舍弃，不再投入

cashLeft = turnover - cashUsed，取整超买时可为负（接受的近似）。
每个输入标的都产出一条GoalPosition。
*/
func (t *GoalTrans) Translate(w Weights, turnover float64, prices map[string]float64,
	style int, suspends map[string]bool) ([]*trade.GoalPosition, float64, *errs.Error) {
	if _, ok := ExecStyleNames[style]; !ok {
		return nil, 0, errs.NewMsg(core.ErrUnsupported, "unsupported exec style: %v", style)
	}
	lot := t.Lot
	if lot <= 0 {
		lot = core.LotSize
	}
	// 排序只为输出稳定，遍历顺序不影响结果
	symbols := make([]string, 0, len(w))
	for symbol := range w {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	goals := make([]*trade.GoalPosition, 0, len(w))
	cashUsed := decimal.Zero
	for _, symbol := range symbols {
		weight := w[symbol]
		goal := &trade.GoalPosition{Symbol: symbol}
		if suspends[symbol] {
			if pos := t.PM.GetPosition(symbol, t.TradeDate); pos != nil {
				goal.Size = pos.CurrSize
			}
		} else if math.Abs(weight) < core.WeightDust {
			goal.Size = 0
		} else {
			price, ok := prices[symbol]
			if !ok || price <= 0 {
				return nil, 0, errs.NewMsg(core.ErrNoPrice, "no price for %s", symbol)
			}
			shares := utils.RoundLot(weight*turnover/price, lot)
			cashUsed = cashUsed.Add(utils.CashOf(shares, price))
			goal.Size = shares
		}
		goals = append(goals, goal)
	}
	used, _ := cashUsed.Float64()
	return goals, turnover - used, nil
}
