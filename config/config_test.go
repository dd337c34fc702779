package config

import (
	"testing"
)

func TestParseYmlConfig(t *testing.T) {
	text := `
name: alpha_demo
universe: ["000001.SZ", "600036.SH"]
period: week
position_ratio: 0.9
pc_method: mc
exec_style: vwap
`
	cfg, err := ParseYmlConfig([]byte(text))
	if err != nil {
		t.Fatalf("parse fail: %v", err)
	}
	if cfg.Name != "alpha_demo" || len(cfg.Universe) != 2 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Period != "week" || cfg.PcMethod != "mc" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParseYmlConfigInvalid(t *testing.T) {
	// universe必填
	if _, err := ParseYmlConfig([]byte("name: x")); err == nil {
		t.Errorf("missing universe should fail validation")
	}
	// period超出枚举
	text := `
universe: ["000001.SZ"]
period: year
`
	if _, err := ParseYmlConfig([]byte(text)); err == nil {
		t.Errorf("bad period should fail validation")
	}
	// position_ratio超出范围
	text = `
universe: ["000001.SZ"]
position_ratio: 1.5
`
	if _, err := ParseYmlConfig([]byte(text)); err == nil {
		t.Errorf("position_ratio > 1 should fail validation")
	}
}

func TestApplyConfigDefaults(t *testing.T) {
	cfg, err := ParseYmlConfig([]byte(`universe: ["000001.SZ"]`))
	if err != nil {
		t.Fatalf("parse fail: %v", err)
	}
	if err = ApplyConfig(&CmdArgs{}, cfg); err != nil {
		t.Fatalf("apply fail: %v", err)
	}
	if Period != "month" || PcMethod != "equal_weight" || ExecStyle != "close" {
		t.Errorf("defaults not applied: %v %v %v", Period, PcMethod, ExecStyle)
	}
	if PositionRatio != 0.98 || InitBalance != 100000000 {
		t.Errorf("defaults not applied: %v %v", PositionRatio, InitBalance)
	}
	if LotSize != 100 {
		t.Errorf("lot size default expected 100, received %v", LotSize)
	}
}
