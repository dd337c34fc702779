package trade

import (
	"github.com/banbox/banalpha/core"
	"github.com/sasha-s/go-deadlock"
)

/*
SeqGen 按key独立自增的计数器，从1开始，跟随实例生命周期，
进程重启后归零。task_id与entrust_no使用不同的key命名空间。
*/
type SeqGen struct {
	lock   deadlock.Mutex
	counts map[string]int64
}

func NewSeqGen() *SeqGen {
	return &SeqGen{counts: make(map[string]int64)}
}

func (g *SeqGen) Next(key string) int64 {
	g.lock.Lock()
	num := g.counts[key] + 1
	g.counts[key] = num
	g.lock.Unlock()
	return num
}

/*
MakeID 生成标识：trade_date*10000+计数器。
单日超过9999个后会与次日编号冲突，属已知未解决的边界情况。
*/
func (g *SeqGen) MakeID(tradeDate int64, key string) int64 {
	return tradeDate*core.DateIDMul + g.Next(key)
}
