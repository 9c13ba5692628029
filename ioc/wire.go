//go:build wireinject

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

var BaseSet = wire.NewSet(InitDB, InitMQ, InitRedis, InitCache)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSnowflakeNode,
		product.InitService,
		cart.InitModule,
		wire.FieldsOf(new(*cart.Module), "Svc", "Hdl"),
		reservation.InitModule,
		wire.FieldsOf(new(*reservation.Module), "Svc", "SweepJob"),
		inventory.InitModule,
		wire.FieldsOf(new(*inventory.Module), "Svc", "AdminHdl"),
		shipping.InitService,
		payment.InitModule,
		wire.FieldsOf(new(*payment.Module), "Svc", "WechatHandler"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "Consumer", "CloseExpiredOrdersJob"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initConsumers)
	return new(App), nil
}
