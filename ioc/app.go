package ioc

import (
	"context"

	"github.com/ecodeclub/eshop/internal/order"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Web       *egin.Component
	Admin     AdminServer
	Crons     []ecron.Ecron
	Consumers []Consumer
}

// Consumer 常驻的消息消费者, 随应用启动
type Consumer interface {
	Start(ctx context.Context)
}

func initConsumers(oc *order.PaymentEventConsumer) []Consumer {
	return []Consumer{oc}
}
