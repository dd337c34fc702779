package config

import (
	"os"
	"path/filepath"

	"github.com/banbox/banalpha/core"
	"github.com/banbox/banexg/errs"
	"github.com/banbox/banexg/log"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

func GetDataDir() string {
	dataDir := os.Getenv("BanDataDir")
	if dataDir != "" {
		return dataDir
	}
	return Data.dataDir
}

func LoadConfig(args *CmdArgs) *errs.Error {
	if Loaded {
		return nil
	}
	cfg, err := GetConfig(args, true)
	if err != nil {
		return err
	}
	return ApplyConfig(args, cfg)
}

func GetConfig(args *CmdArgs, showLog bool) (*Config, *errs.Error) {
	var paths []string
	if !args.NoDefault {
		dataDir := args.DataDir
		if dataDir == "" {
			dataDir = GetDataDir()
		}
		if dataDir != "" {
			tryNames := []string{"config.yml", "config.local.yml"}
			for _, name := range tryNames {
				path := filepath.Join(dataDir, name)
				if _, err := os.Stat(path); err == nil {
					paths = append(paths, path)
				}
			}
		}
	}
	paths = append(paths, args.Configs...)
	if len(paths) == 0 {
		return nil, errs.NewMsg(errs.CodeParamRequired, "-config or env `BanDataDir` is required")
	}
	return ParseConfigs(paths, showLog)
}

func ParseConfigs(paths []string, showLog bool) (*Config, *errs.Error) {
	var merged = make(map[string]interface{})
	for _, path := range paths {
		if showLog {
			log.Info("Using " + path)
		}
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.NewFull(core.ErrBadConfig, err, "Read %s Fail", path)
		}
		var unpak map[string]interface{}
		err = yaml.Unmarshal(fileData, &unpak)
		if err != nil {
			return nil, errs.NewFull(errs.CodeUnmarshalFail, err, "Unmarshal %s Fail", path)
		}
		for key := range noExtends {
			if _, ok := unpak[key]; ok {
				delete(merged, key)
			}
		}
		deepCopyMap(merged, unpak)
	}
	return decodeConfig(merged)
}

func ParseYmlConfig(fileData []byte) (*Config, *errs.Error) {
	var unpak map[string]interface{}
	err := yaml.Unmarshal(fileData, &unpak)
	if err != nil {
		return nil, errs.NewFull(errs.CodeUnmarshalFail, err, "Unmarshal yml Fail")
	}
	return decodeConfig(unpak)
}

func decodeConfig(data map[string]interface{}) (*Config, *errs.Error) {
	var res Config
	err := mapstructure.Decode(data, &res)
	if err != nil {
		return nil, errs.NewFull(errs.CodeUnmarshalFail, err, "decode Config Fail")
	}
	err = validate.Struct(&res)
	if err != nil {
		return nil, errs.NewFull(core.ErrBadConfig, err, "validate Config Fail")
	}
	return &res, nil
}

func deepCopyMap(dst, src map[string]interface{}) {
	for k, v := range src {
		if sv, ok := v.(map[string]interface{}); ok {
			if dv, ok := dst[k]; ok {
				if dvMap, ok := dv.(map[string]interface{}); ok {
					deepCopyMap(dvMap, sv)
					continue
				}
			}
		}
		dst[k] = v
	}
}

/*
ApplyConfig 刷新全局配置变量，填充缺省值
*/
func ApplyConfig(args *CmdArgs, cfg *Config) *errs.Error {
	Data = *cfg
	Data.dataDir = args.DataDir
	Loaded = true
	Name = cfg.Name
	if Name == "" {
		Name = "banalpha"
	}
	core.BotName = Name
	if cfg.RunMode != "" {
		core.SetRunMode(cfg.RunMode)
	} else {
		core.SetRunMode(core.RunModeBackTest)
	}
	if cfg.Env != "" {
		core.SetRunEnv(cfg.Env)
	} else {
		core.SetRunEnv(core.RunEnvTest)
	}
	Universe = cfg.Universe
	Benchmark = cfg.Benchmark
	InitBalance = defFloat(cfg.InitBalance, 100000000)
	Period = defStr(cfg.Period, "month")
	DaysDelay = cfg.DaysDelay
	NPeriods = defInt(cfg.NPeriods, 1)
	PositionRatio = defFloat(cfg.PositionRatio, 0.98)
	PcMethod = defStr(cfg.PcMethod, "equal_weight")
	McTrials = cfg.McTrials
	CostCoef = defFloat(cfg.CostCoef, 1.0)
	RiskCoef = defFloat(cfg.RiskCoef, 1.0)
	ExecStyle = defStr(cfg.ExecStyle, "close")
	LotSize = cfg.LotSize
	if LotSize <= 0 {
		LotSize = core.LotSize
	}
	TuneRounds = cfg.TuneRounds
	return nil
}

func defStr(val, defVal string) string {
	if val == "" {
		return defVal
	}
	return val
}

func defFloat(val, defVal float64) float64 {
	if val == 0 {
		return defVal
	}
	return val
}

func defInt(val, defVal int) int {
	if val == 0 {
		return defVal
	}
	return val
}
