package alpha

import (
	"math"
	"testing"

	"github.com/banbox/banalpha/core"
	"github.com/banbox/banalpha/utils"
)

type fakeRevenue struct {
	forecast Weights
}

func (m *fakeRevenue) ForecastRevenue(target Weights) float64 {
	var res float64
	for k, v := range target {
		res += v * m.forecast[k]
	}
	return res
}

func (m *fakeRevenue) MakeForecast() Weights {
	return m.forecast.Clone()
}

type fakeSelector struct {
	selected map[string]bool
}

func (s *fakeSelector) GetSelection() map[string]bool {
	return s.selected
}

var testUniverse = []string{"000001.SZ", "600036.SH", "600519.SH"}

func TestEqualWeight(t *testing.T) {
	b := &Builder{Method: WtEqual, Universe: testUniverse}
	if err := b.Validate(); err != nil {
		t.Fatalf("validate fail: %v", err)
	}
	w, err := b.Build(nil)
	if err != nil {
		t.Fatalf("build fail: %v", err)
	}
	if !utils.EqualIn(w.SumAbs(), 1.0, core.WeightDust) {
		t.Errorf("sum abs expected 1.0, received %v", w.SumAbs())
	}
	for _, symbol := range testUniverse {
		if !utils.EqualNearly(w[symbol], 1.0/3) {
			t.Errorf("%s expected 1/3, received %v", symbol, w[symbol])
		}
	}
}

func TestFactorValueWeight(t *testing.T) {
	rev := &fakeRevenue{forecast: Weights{
		"000001.SZ": 0.2, "600036.SH": -0.1, "600519.SH": math.NaN(),
	}}
	b := &Builder{Method: WtFactorValue, Universe: testUniverse, Revenue: rev}
	w, err := b.Build(nil)
	if err != nil {
		t.Fatalf("build fail: %v", err)
	}
	// NaN→0后min=-0.1，整体平移2*0.1：0.4/0.1/0.2，归一化后4/7 1/7 2/7
	if !utils.EqualNearly(w["000001.SZ"], 0.4/0.7) {
		t.Errorf("expected %v, received %v", 0.4/0.7, w["000001.SZ"])
	}
	if !utils.EqualNearly(w["600036.SH"], 0.1/0.7) {
		t.Errorf("expected %v, received %v", 0.1/0.7, w["600036.SH"])
	}
	for symbol, v := range w {
		if v < 0 {
			t.Errorf("%s weight should be non-negative, received %v", symbol, v)
		}
	}
	if !utils.EqualIn(w.SumAbs(), 1.0, core.WeightDust) {
		t.Errorf("sum abs expected 1.0, received %v", w.SumAbs())
	}
}

func TestSelectionFilter(t *testing.T) {
	b := &Builder{
		Method:   WtEqual,
		Universe: testUniverse,
		Selector: &fakeSelector{selected: map[string]bool{"600036.SH": true}},
	}
	w, err := b.Build(nil)
	if err != nil {
		t.Fatalf("build fail: %v", err)
	}
	if w["000001.SZ"] != 0 || w["600519.SH"] != 0 {
		t.Errorf("unselected symbols should be zeroed")
	}
	if !utils.EqualNearly(w["600036.SH"], 1.0) {
		t.Errorf("expected 1.0, received %v", w["600036.SH"])
	}
}

func TestAllZeroWeights(t *testing.T) {
	// 选股器排除全部标的：权重全0，跳过归一化
	b := &Builder{
		Method:   WtEqual,
		Universe: testUniverse,
		Selector: &fakeSelector{selected: map[string]bool{}},
	}
	w, err := b.Build(nil)
	if err != nil {
		t.Fatalf("build fail: %v", err)
	}
	if !utils.EqualIn(w.SumAbs(), 0, core.WeightDust) {
		t.Errorf("sum abs expected 0, received %v", w.SumAbs())
	}
}

func TestValidateBadMethod(t *testing.T) {
	b := &Builder{Method: 99, Universe: testUniverse}
	err := b.Validate()
	if err == nil || err.Code != core.ErrUnknownMethod {
		t.Fatalf("expected unknown method error, received %v", err)
	}
	if _, err = b.Build(nil); err == nil {
		t.Fatalf("build should fail for unknown method")
	}
}

func TestValidateModelRequired(t *testing.T) {
	b := &Builder{Method: WtFactorValue, Universe: testUniverse}
	if err := b.Validate(); err == nil {
		t.Errorf("factor_value_weight without revenue model should fail")
	}
	b = &Builder{Method: WtMonteCarlo, Universe: testUniverse}
	if err := b.Validate(); err == nil {
		t.Errorf("mc without any model should fail")
	}
}

func TestParseMethod(t *testing.T) {
	for method, name := range WtMethodNames {
		got, err := ParseMethod(name)
		if err != nil || got != method {
			t.Errorf("ParseMethod(%s) expected %v, received %v %v", name, method, got, err)
		}
	}
	if _, err := ParseMethod("quad_opt"); err == nil {
		t.Errorf("unknown name should fail")
	}
}
