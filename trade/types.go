package trade

const (
	ActBuy  = "Buy"
	ActSell = "Sell"
)

const (
	OdStatusCreated = iota
	OdStatusSubmitted
	OdStatusAccepted
	OdStatusRejected
	OdStatusPartFilled
	OdStatusFilled
	OdStatusCanceled
)

var OdStatusNames = map[int]string{
	OdStatusCreated:    "created",
	OdStatusSubmitted:  "submitted",
	OdStatusAccepted:   "accepted",
	OdStatusRejected:   "rejected",
	OdStatusPartFilled: "part_filled",
	OdStatusFilled:     "filled",
	OdStatusCanceled:   "canceled",
}

/*
Order 单个委托。Symbol/Action/Price/Size等在创建时写入后不再变更；
Status只由柜台/组合管理的回报推进。
*/
type Order struct {
	Symbol      string
	Action      string // Buy/Sell
	Price       float64
	Size        int64 // 股数，始终为正，方向由Action表示
	TradeDate   int64 // YYYYMMDD
	EntrustNo   int64
	TaskID      int64
	Status      int
	PriceTarget string // close/vwap等执行基准，可为空
}

func NewOrder(symbol, action string, price float64, size int64, tradeDate int64) *Order {
	return &Order{
		Symbol:    symbol,
		Action:    action,
		Price:     price,
		Size:      size,
		TradeDate: tradeDate,
		Status:    OdStatusCreated,
	}
}

/*
GoalPosition 目标持仓：希望达到的绝对股数，而非增减量
*/
type GoalPosition struct {
	Symbol string
	Size   int64
}

type Position struct {
	Symbol    string
	CurrSize  int64
	TradeDate int64
}

// TradeInd 成交回报
type TradeInd struct {
	Symbol    string
	EntrustNo int64
	TaskID    int64
	Price     float64
	Filled    int64
	TradeDate int64
}

// OrderStatusInd 委托状态回报
type OrderStatusInd struct {
	Symbol    string
	EntrustNo int64
	TaskID    int64
	Status    int
	Msg       string
}

// Quote 实时行情快照
type Quote struct {
	Symbol  string
	Bid     float64
	Ask     float64
	Last    float64
	TimeMS  int64
	Suspend bool
}
