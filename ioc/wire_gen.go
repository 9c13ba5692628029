// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/inventory"
	"github.com/ecodeclub/eshop/internal/order"
	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/reservation"
	"github.com/ecodeclub/eshop/internal/shipping"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	cache := InitCache(cmdable)
	module := cart.InitModule(cache)
	v := module.Hdl
	v2 := InitDB()
	mq := InitMQ()
	v3 := module.Svc
	v4 := product.InitService(v2)
	reservationModule := reservation.InitModule(cmdable)
	v5 := reservationModule.Svc
	node := InitSnowflakeNode()
	inventoryModule := inventory.InitModule(v2, node, v4)
	v6 := inventoryModule.Svc
	v7 := shipping.InitService()
	paymentModule, err := payment.InitModule(mq)
	if err != nil {
		return nil, err
	}
	v8 := paymentModule.Svc
	orderModule, err := order.InitModule(v2, mq, cache, v3, v4, v5, v6, v7, v8)
	if err != nil {
		return nil, err
	}
	v9 := orderModule.Hdl
	v10 := paymentModule.WechatHandler
	component := initGinxServer(provider, v, v9, v10)
	v11 := inventoryModule.AdminHdl
	adminServer := InitAdminServer(v11)
	v12 := orderModule.CloseExpiredOrdersJob
	v13 := reservationModule.SweepJob
	v14 := initCronJobs(v12, v13)
	v15 := orderModule.Consumer
	v16 := initConsumers(v15)
	app := &App{
		Web:       component,
		Admin:     adminServer,
		Crons:     v14,
		Consumers: v16,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitMQ, InitRedis, InitCache)
