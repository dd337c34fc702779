package alpha

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const (
	DefMcTrials = 5
	mcSentinel  = 1e30
)

func (b *Builder) searchMC(last Weights) (Weights, string) {
	util := b.Util
	if util == nil {
		// 不回写b.Util：闭包只对本次调用的last有效
		util = NewNetRevenueUtil(b.Revenue, b.Cost, b.Risk, func() Weights {
			return last
		})
	}
	numTrials := b.NumTrials
	if numTrials <= 0 {
		numTrials = DefMcTrials
	}
	return SearchMC(b.Universe, numTrials, util.Eval)
}

/*
SearchMC 蒙特卡洛朴素搜索：随机抽取numTrials组非负向量，
按行和归一投影到单纯形（有偏采样，非均匀分布，已知局限），
取效用最大者。内部以最小化负效用实现。
*/
func SearchMC(universe []string, numTrials int, util func(Weights) float64) (Weights, string) {
	numVar := len(universe)
	minF := mcSentinel
	var best Weights
	for i := 0; i < numTrials; i++ {
		row := make([]float64, numVar)
		for j := range row {
			row[j] = rand.Float64()
		}
		rowSum := floats.Sum(row)
		if rowSum <= 0 {
			continue
		}
		cand := make(Weights, numVar)
		for j, symbol := range universe {
			cand[symbol] = row[j] / rowSum
		}
		f := -util(cand)
		if f < minF {
			best = cand
			minF = f
		}
	}
	if best == nil {
		return nil, "no feasible weights found"
	}
	return best, ""
}
