package core

const (
	ErrBadConfig = -1*iota - 100
	ErrInvalidSymbol
	ErrNoPrice
	ErrUnknownTask
	ErrUnknownMethod
	ErrAllSuspended
	ErrBadGoals
	ErrUnsupported
	ErrGatewayFail
	ErrCancelFail
	ErrNoFeasible
	ErrRunTime
)

var ErrCodeNames = map[int]string{
	ErrBadConfig:     "BadConfig",
	ErrInvalidSymbol: "InvalidSymbol",
	ErrNoPrice:       "NoPrice",
	ErrUnknownTask:   "UnknownTask",
	ErrUnknownMethod: "UnknownMethod",
	ErrAllSuspended:  "AllSuspended",
	ErrBadGoals:      "BadGoals",
	ErrUnsupported:   "Unsupported",
	ErrGatewayFail:   "GatewayFail",
	ErrCancelFail:    "CancelFail",
	ErrNoFeasible:    "NoFeasible",
	ErrRunTime:       "RunTime",
}
