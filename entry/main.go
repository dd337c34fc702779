package entry

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/banbox/banalpha/biz"
	"github.com/banbox/banalpha/btime"
	"github.com/banbox/banalpha/config"
	"github.com/banbox/banalpha/core"
	"github.com/banbox/banalpha/strat"
	"github.com/banbox/banexg/errs"
	"github.com/banbox/banexg/log"
	"go.uber.org/zap"
)

var Version = "0.1.0"

type arrString []string

func (a *arrString) String() string {
	return strings.Join(*a, ",")
}

func (a *arrString) Set(value string) error {
	*a = append(*a, value)
	return nil
}

func RunCmd() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}
	var err *errs.Error
	switch args[0] {
	case "trade":
		err = runTrade(args[1:])
	case "version":
		fmt.Printf("banalpha %v\n", Version)
	default:
		printUsage()
	}
	if err != nil {
		log.Error("run fail", zap.String("cmd", args[0]), zap.Error(err))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`banalpha %v
please run with a subcommand:
        trade:      run alpha strategy trading
        version:    show version
`, Version)
}

func bindSubFlags(args *config.CmdArgs, cmd *flag.FlagSet) {
	cmd.Var((*arrString)(&args.Configs), "config", "config path to use, Multiple -config options may be used")
	cmd.StringVar(&args.Logfile, "logfile", "", "Log to the file specified")
	cmd.StringVar(&args.LogLevel, "level", "info", "set logging level to debug")
	cmd.StringVar(&args.DataDir, "datadir", "", "Path to data dir.")
	cmd.BoolVar(&args.NoDefault, "nodefault", false, "ignore default: config.yml, config.local.yml")
	cmd.BoolVar(&args.Debug, "debug", false, "debug mode")
}

func runTrade(args []string) *errs.Error {
	var cmdArgs config.CmdArgs
	cmd := flag.NewFlagSet("trade", flag.ExitOnError)
	bindSubFlags(&cmdArgs, cmd)
	if err_ := cmd.Parse(args); err_ != nil {
		return errs.New(core.ErrBadConfig, err_)
	}
	if err := biz.SetupComs(&cmdArgs); err != nil {
		return err
	}
	if core.EnvReal {
		// 真实柜台网关未接入前，一律走纸面成交
		log.Warn("real counter gateway not configured, fallback to paper fills")
	}
	gw := biz.NewPaperGateway()
	pm := biz.NewMemPortfolio()
	sta, err := strat.New(gw, pm, nil, nil, nil, nil)
	if err != nil {
		return err
	}
	gw.OnTradeInd = sta.FeedTrade
	gw.OnOrderStatus = sta.FeedOrderStatus
	if err = sta.TuneCoefs(); err != nil {
		return err
	}
	sta.StartLive()
	defer sta.Stop()
	log.Info("trading started", zap.String("name", config.Name),
		zap.Int64("date", btime.CurTradeDate()),
		zap.Int("universe", len(config.Universe)))
	for core.Sleep(time.Second * 30) {
	}
	return nil
}
