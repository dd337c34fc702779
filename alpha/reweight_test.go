package alpha

import (
	"testing"

	"github.com/banbox/banalpha/core"
	"github.com/banbox/banalpha/utils"
)

func TestReWeightSuspend(t *testing.T) {
	w := Weights{"000001.SZ": 0.5, "600036.SH": 0.3, "600519.SH": 0.2}
	suspends := map[string]bool{"600036.SH": true}
	res, err := ReWeightSuspend(w, suspends, 3)
	if err != nil {
		t.Fatalf("reweight fail: %v", err)
	}
	if res["600036.SH"] != 0 {
		t.Errorf("suspended symbol should be zero, received %v", res["600036.SH"])
	}
	if !utils.EqualIn(res.SumAbs(), 1.0, core.WeightDust) {
		t.Errorf("sum abs expected 1.0, received %v", res.SumAbs())
	}
	if !utils.EqualNearly(res["000001.SZ"], 0.5/0.7) {
		t.Errorf("expected %v, received %v", 0.5/0.7, res["000001.SZ"])
	}
}

func TestReWeightSuspendEmpty(t *testing.T) {
	w := Weights{"000001.SZ": 0.6, "600036.SH": 0.4}
	res, err := ReWeightSuspend(w, nil, 2)
	if err != nil {
		t.Fatalf("reweight fail: %v", err)
	}
	if !utils.EqualNearly(res["000001.SZ"], 0.6) {
		t.Errorf("empty suspend set should be a no-op")
	}
}

func TestReWeightAllSuspended(t *testing.T) {
	w := Weights{"000001.SZ": 0.6, "600036.SH": 0.4}
	suspends := map[string]bool{"000001.SZ": true, "600036.SH": true}
	_, err := ReWeightSuspend(w, suspends, 2)
	if err == nil || err.Code != core.ErrAllSuspended {
		t.Fatalf("expected all suspended error, received %v", err)
	}
}

func TestReWeightZeroRemain(t *testing.T) {
	// 未停牌的权重本就是0：保持全零，不做除0归一
	w := Weights{"000001.SZ": 1.0, "600036.SH": 0, "600519.SH": 0}
	suspends := map[string]bool{"000001.SZ": true}
	res, err := ReWeightSuspend(w, suspends, 3)
	if err != nil {
		t.Fatalf("reweight fail: %v", err)
	}
	if !utils.EqualIn(res.SumAbs(), 0, core.WeightDust) {
		t.Errorf("expected all zero weights, received sum %v", res.SumAbs())
	}
}
