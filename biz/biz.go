package biz

import (
	"context"

	"github.com/banbox/banalpha/btime"
	"github.com/banbox/banalpha/config"
	"github.com/banbox/banalpha/core"
	"github.com/banbox/banexg/errs"
	"github.com/banbox/banexg/log"
)

/*
SetupComs 初始化公共组件：配置、日志、全局缓存
*/
func SetupComs(args *config.CmdArgs) *errs.Error {
	ctx, cancel := context.WithCancel(context.Background())
	core.Ctx = ctx
	core.StopAll = cancel
	err := config.LoadConfig(args)
	if err != nil {
		return err
	}
	log.Setup(args.LogLevel, args.Logfile)
	err = core.Setup()
	if err != nil {
		return err
	}
	core.StartAt = btime.UTCStamp()
	return nil
}
