package core

import "context"

var (
	BotName      string          // 当前机器人名称
	RunMode      string          // prod/dry_run/backtest
	RunEnv       string          // prod/test/dry_run
	LiveMode     bool            // 是否实时模式
	BackTestMode bool            // 是否回测模式
	EnvReal      bool            // 是否提交到真实柜台，run_env: prod
	StartAt      int64           // 启动时间，13位时间戳
	Ctx          context.Context // 用于全局任务停止控制
	StopAll      func()          // 停止全部任务
)

const (
	RunModeProd     = "prod"
	RunModeDryRun   = "dry_run"
	RunModeBackTest = "backtest"
)

const (
	RunEnvProd   = "prod"
	RunEnvTest   = "test"
	RunEnvDryRun = "dry_run"
)

const (
	LotSize    = 100  // 每手股数，A股市场惯例
	WeightDust = 1e-8 // 权重绝对值小于此视为0
	DateIDMul  = 10000
)

const (
	KeyTaskID    = "task_id"
	KeyEntrustNo = "entrust_no"
)

const (
	DefaultDateFmt = "2006-01-02 15:04:05"
	TradeDateFmt   = "20060102"
)
