// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package payment

import (
	"github.com/ecodeclub/eshop/internal/payment/internal/event"
	"github.com/ecodeclub/eshop/internal/payment/internal/service"
	"github.com/ecodeclub/eshop/internal/payment/internal/web"
	"github.com/ecodeclub/eshop/internal/payment/ioc"
	"github.com/ecodeclub/mq-api"
)

// Injectors from wire.go:

func InitModule(q mq.MQ) (*Module, error) {
	wechatConfig := ioc.InitWechatConfig()
	client := ioc.InitWechatClient(wechatConfig)
	nativeApiService := ioc.InitNativeApiService(client)
	nativePaymentService := ioc.InitWechatNativePaymentService(nativeApiService, wechatConfig)
	v := service.NewService(nativePaymentService)
	handler := ioc.InitWechatNotifyHandler(wechatConfig)
	paymentEventProducer, err := initProducer(q)
	if err != nil {
		return nil, err
	}
	v2 := web.NewWechatHandler(handler, nativePaymentService, paymentEventProducer)
	module := &Module{
		Svc:           v,
		WechatHandler: v2,
	}
	return module, nil
}

// wire.go:

func initProducer(q mq.MQ) (event.PaymentEventProducer, error) {
	p, err := q.Producer(event.PaymentEventName)
	if err != nil {
		return nil, err
	}
	return event.NewPaymentEventProducer(p)
}
