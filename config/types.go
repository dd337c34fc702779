package config

var (
	Data   Config
	Loaded bool

	Name          string
	Universe      []string // 固定的策略标的池，顺序有意义
	Benchmark     string
	InitBalance   float64 // 初始资金
	Period        string  // 调仓周期 day/week/month
	DaysDelay     int     // 周期后第n个交易日执行
	NPeriods      int
	PositionRatio float64 // 换手资金占比，默认0.98
	PcMethod      string  // equal_weight/factor_value_weight/mc
	McTrials      int     // mc随机尝试次数
	CostCoef      float64
	RiskCoef      float64
	ExecStyle     string // close/vwap
	LotSize       int64
	TuneRounds    int // 贝叶斯系数搜索轮数，0禁用
)

var (
	noExtends = map[string]bool{
		"universe": true,
	}
)

type Config struct {
	Name          string   `yaml:"name" mapstructure:"name"`
	Env           string   `yaml:"env" mapstructure:"env" validate:"omitempty,oneof=prod test dry_run"`
	RunMode       string   `yaml:"run_mode" mapstructure:"run_mode" validate:"omitempty,oneof=prod dry_run backtest"`
	Universe      []string `yaml:"universe" mapstructure:"universe" validate:"required,min=1"`
	Benchmark     string   `yaml:"benchmark" mapstructure:"benchmark"`
	InitBalance   float64  `yaml:"init_balance" mapstructure:"init_balance" validate:"omitempty,gt=0"`
	Period        string   `yaml:"period" mapstructure:"period" validate:"omitempty,oneof=day week month"`
	DaysDelay     int      `yaml:"days_delay" mapstructure:"days_delay" validate:"gte=0"`
	NPeriods      int      `yaml:"n_periods" mapstructure:"n_periods" validate:"gte=0"`
	PositionRatio float64  `yaml:"position_ratio" mapstructure:"position_ratio" validate:"gte=0,lte=1"`
	PcMethod      string   `yaml:"pc_method" mapstructure:"pc_method" validate:"omitempty,oneof=equal_weight factor_value_weight mc"`
	McTrials      int      `yaml:"mc_trials" mapstructure:"mc_trials" validate:"gte=0"`
	CostCoef      float64  `yaml:"cost_coef" mapstructure:"cost_coef" validate:"gte=0"`
	RiskCoef      float64  `yaml:"risk_coef" mapstructure:"risk_coef" validate:"gte=0"`
	ExecStyle     string   `yaml:"exec_style" mapstructure:"exec_style" validate:"omitempty,oneof=close vwap"`
	LotSize       int64    `yaml:"lot_size" mapstructure:"lot_size" validate:"gte=0"`
	TuneRounds    int      `yaml:"tune_rounds" mapstructure:"tune_rounds" validate:"gte=0"`

	dataDir string `yaml:"-" mapstructure:"-"`
}

type CmdArgs struct {
	Configs   []string
	Logfile   string
	LogLevel  string
	DataDir   string
	NoDefault bool
	Debug     bool
}
