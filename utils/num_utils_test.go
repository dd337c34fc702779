package utils

import (
	"math"
	"testing"
)

func TestEqualNearly(t *testing.T) {
	if !EqualNearly(0.1+0.2, 0.3) {
		t.Errorf("0.1+0.2 should equal 0.3 nearly")
	}
	if EqualNearly(1.0, 1.001) {
		t.Errorf("1.0 should not equal 1.001")
	}
	if !EqualNearly(math.NaN(), math.NaN()) {
		t.Errorf("NaN should equal NaN nearly")
	}
}

func TestSumAbs(t *testing.T) {
	data := map[string]float64{"a": 0.5, "b": -0.3, "c": 0.2}
	if !EqualNearly(SumAbs(data), 1.0) {
		t.Errorf("expected 1.0, received %v", SumAbs(data))
	}
	if SumAbs(map[string]float64{}) != 0 {
		t.Errorf("empty map should sum to 0")
	}
}

func TestIsFinite(t *testing.T) {
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Errorf("NaN/Inf should not be finite")
	}
	if !IsFinite(0) || !IsFinite(-1.5) {
		t.Errorf("0 and -1.5 are finite")
	}
}
