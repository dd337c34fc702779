package event

import (
	"github.com/banbox/banexg/log"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/zap"
)

const (
	EvtTimer = iota + 1
	EvtQuote
	EvtTradeInd
	EvtOrderStatus
	EvtNewDay
)

var EvtNames = map[int]string{
	EvtTimer:       "timer",
	EvtQuote:       "quote",
	EvtTradeInd:    "trade_ind",
	EvtOrderStatus: "order_status",
	EvtNewDay:      "new_day",
}

type Event struct {
	Type int
	Data interface{}
}

type FnHandler func(e *Event)

// Publisher 外部行情/回报源，向其登记订阅
type Publisher interface {
	AddSubscriber(sub Subscriber, topic string)
}

type Subscriber interface {
	OnEvent(e *Event)
}

/*
Engine 单消费者事件邮箱。所有回调由一个goroutine顺序派发，
策略内部无需加锁；不要在多个goroutine里调用处理结果。
*/
type Engine struct {
	lock     deadlock.Mutex
	handlers map[int][]FnHandler
	queue    chan *Event
	quit     chan struct{}
	running  bool
}

func NewEngine(capacity int) *Engine {
	if capacity <= 0 {
		capacity = 1000
	}
	return &Engine{
		handlers: make(map[int][]FnHandler),
		queue:    make(chan *Event, capacity),
		quit:     make(chan struct{}),
	}
}

func (e *Engine) Register(evtType int, handler FnHandler) {
	e.lock.Lock()
	e.handlers[evtType] = append(e.handlers[evtType], handler)
	e.lock.Unlock()
}

/*
Put 投递事件。队列满时丢弃并告警，调度线程不得被生产者阻塞
*/
func (e *Engine) Put(evt *Event) {
	select {
	case e.queue <- evt:
	default:
		log.Warn("event queue full, drop", zap.String("type", EvtNames[evt.Type]))
	}
}

// OnEvent 实现Subscriber，转投递到自身队列
func (e *Engine) OnEvent(evt *Event) {
	e.Put(evt)
}

func (e *Engine) dispatch(evt *Event) {
	e.lock.Lock()
	arr := e.handlers[evt.Type]
	e.lock.Unlock()
	for _, handler := range arr {
		handler(evt)
	}
}

func (e *Engine) Start() {
	e.lock.Lock()
	if e.running {
		e.lock.Unlock()
		return
	}
	e.running = true
	e.lock.Unlock()
	go func() {
		for {
			select {
			case evt := <-e.queue:
				e.dispatch(evt)
			case <-e.quit:
				return
			}
		}
	}()
}

func (e *Engine) Stop() {
	e.lock.Lock()
	if !e.running {
		e.lock.Unlock()
		return
	}
	e.running = false
	e.lock.Unlock()
	close(e.quit)
}
