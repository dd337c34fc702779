package alpha

import (
	"testing"

	"github.com/banbox/banalpha/core"
	"github.com/banbox/banalpha/utils"
)

func TestSearchMCPicksBest(t *testing.T) {
	// 记录每个候选的效用，校验返回的权重正是其中效用最大者
	var seen []float64
	util := func(w Weights) float64 {
		v := w["000001.SZ"] - w["600519.SH"]
		seen = append(seen, v)
		return v
	}
	best, msg := SearchMC(testUniverse, 5, util)
	if best == nil {
		t.Fatalf("expected weights, received msg: %s", msg)
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 candidates, received %v", len(seen))
	}
	maxSeen := seen[0]
	for _, v := range seen[1:] {
		if v > maxSeen {
			maxSeen = v
		}
	}
	got := best["000001.SZ"] - best["600519.SH"]
	if !utils.EqualNearly(got, maxSeen) {
		t.Errorf("returned weights utility %v != max candidate utility %v", got, maxSeen)
	}
}

func TestSearchMCSimplex(t *testing.T) {
	best, msg := SearchMC(testUniverse, 5, func(w Weights) float64 { return 0 })
	if best == nil {
		t.Fatalf("expected weights, received msg: %s", msg)
	}
	var wSum float64
	for _, v := range best {
		if v < 0 {
			t.Errorf("simplex weights should be non-negative, received %v", v)
		}
		wSum += v
	}
	if !utils.EqualIn(wSum, 1.0, core.WeightDust) {
		t.Errorf("sum expected 1.0, received %v", wSum)
	}
}

func TestSearchMCNoFeasible(t *testing.T) {
	// 效用差到无法越过初始哨兵时返回nil和提示
	best, msg := SearchMC(testUniverse, 5, func(w Weights) float64 { return -2e30 })
	if best != nil {
		t.Fatalf("expected nil weights")
	}
	if msg == "" {
		t.Errorf("expected message for no feasible weights")
	}
}

type recordCost struct {
	seen []Weights
}

func (c *recordCost) CalcCost(last, target Weights) float64 {
	c.seen = append(c.seen, last)
	return 0
}

func TestBuildMCCostSeesCurrentLast(t *testing.T) {
	rc := &recordCost{}
	b := &Builder{Method: WtMonteCarlo, Universe: testUniverse, Cost: rc}
	if err := b.Validate(); err != nil {
		t.Fatalf("validate fail: %v", err)
	}
	if _, err := b.Build(Weights{"000001.SZ": 1}); err != nil {
		t.Fatalf("build fail: %v", err)
	}
	n := len(rc.seen)
	if n == 0 {
		t.Fatalf("cost model not evaluated")
	}
	// 第二次构建持仓已变化，成本模型必须拿到最新持仓
	if _, err := b.Build(Weights{"600519.SH": 1}); err != nil {
		t.Fatalf("build fail: %v", err)
	}
	if len(rc.seen) == n {
		t.Fatalf("cost model not evaluated on second build")
	}
	for _, last := range rc.seen[n:] {
		if last["600519.SH"] != 1 || last["000001.SZ"] != 0 {
			t.Fatalf("cost model should see latest holdings, received %v", last)
		}
	}
}

func TestBuildMC(t *testing.T) {
	rev := &fakeRevenue{forecast: Weights{
		"000001.SZ": 0.2, "600036.SH": 0.1, "600519.SH": 0.05,
	}}
	b := &Builder{Method: WtMonteCarlo, Universe: testUniverse, Revenue: rev}
	if err := b.Validate(); err != nil {
		t.Fatalf("validate fail: %v", err)
	}
	w, err := b.Build(Weights{})
	if err != nil {
		t.Fatalf("build fail: %v", err)
	}
	if !utils.EqualIn(w.SumAbs(), 1.0, core.WeightDust) {
		t.Errorf("sum abs expected 1.0, received %v", w.SumAbs())
	}
}
