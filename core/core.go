package core

import (
	"time"

	"github.com/banbox/banexg/errs"
	"github.com/dgraph-io/ristretto"
)

var (
	Cache *ristretto.Cache
)

func SetRunMode(mode string) {
	RunMode = mode
	LiveMode = RunMode == RunModeProd || RunMode == RunModeDryRun
	BackTestMode = RunMode == RunModeBackTest
}

func SetRunEnv(env string) {
	RunEnv = env
	if LiveMode {
		EnvReal = RunEnv == RunEnvProd
	} else {
		EnvReal = false
	}
}

func Setup() *errs.Error {
	var err_ error
	Cache, err_ = ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 26,
		BufferItems: 64,
	})
	if err_ != nil {
		return errs.New(ErrRunTime, err_)
	}
	return nil
}

func GetCacheVal[T any](key interface{}, defVal T) T {
	if Cache == nil {
		return defVal
	}
	obj, has := Cache.Get(key)
	if has {
		if val, ok := obj.(T); ok {
			return val
		}
	}
	return defVal
}

func Sleep(d time.Duration) bool {
	if Ctx == nil {
		time.Sleep(d)
		return true
	}
	select {
	case <-time.After(d):
		return true
	case <-Ctx.Done():
		return false
	}
}
