package alpha

import (
	"github.com/banbox/banalpha/core"
	"github.com/banbox/banexg/errs"
)

/*
ReWeightSuspend 停牌处理：停牌标的权重清零后，剩余权重按绝对值
和重新归一。停牌集为空时原样返回；覆盖全部标的时无解，直接报错。
剩余权重和为0时保持全零。
*/
func ReWeightSuspend(w Weights, suspends map[string]bool, universeSize int) (Weights, *errs.Error) {
	if len(suspends) == 0 {
		return w, nil
	}
	if len(suspends) >= universeSize {
		return nil, errs.NewMsg(core.ErrAllSuspended, "all %v symbols suspended", universeSize)
	}
	res := make(Weights, len(w))
	for symbol, v := range w {
		if suspends[symbol] {
			res[symbol] = 0
		} else {
			res[symbol] = v
		}
	}
	if wSum := res.SumAbs(); wSum > 0 {
		for k := range res {
			res[k] /= wSum
		}
	}
	return res, nil
}
