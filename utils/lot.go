package utils

import (
	"github.com/shopspring/decimal"
)

/*
RoundLot 将股数取整到最近的一手（银行家舍入，0.5取偶）

shares可为负数（做空/卖出方向的目标）
*/
func RoundLot(shares float64, lot int64) int64 {
	if lot <= 0 {
		lot = 1
	}
	lotDec := decimal.NewFromInt(lot)
	num := decimal.NewFromFloat(shares).Div(lotDec).RoundBank(0)
	return num.Mul(lotDec).IntPart()
}

/*
CashOf 计算股数*价格的金额，decimal避免浮点累计误差
*/
func CashOf(shares int64, price float64) decimal.Decimal {
	return decimal.NewFromInt(shares).Mul(decimal.NewFromFloat(price))
}
