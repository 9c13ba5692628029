// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package order

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/inventory"
	"github.com/ecodeclub/eshop/internal/order/internal/event"
	"github.com/ecodeclub/eshop/internal/order/internal/job"
	"github.com/ecodeclub/eshop/internal/order/internal/repository"
	"github.com/ecodeclub/eshop/internal/order/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/eshop/internal/order/internal/web"
	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/reservation"
	"github.com/ecodeclub/eshop/internal/shipping"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"sync"
	"time"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache, cartSvc cart.Service, productSvc product.Service, reservationSvc reservation.Service, inventorySvc inventory.Service, shippingSvc shipping.Service, paymentSvc payment.Service) (*Module, error) {
	orderDAO := InitTablesOnce(db)
	orderRepository := repository.NewRepository(orderDAO)
	generator := sequencenumber.NewGenerator()
	config := initServiceConfig()
	v := service.NewService(orderRepository, cartSvc, productSvc, reservationSvc, inventorySvc, shippingSvc, paymentSvc, generator, config)
	v2 := web.NewHandler(v, paymentSvc, ec)
	v3, err := event.NewPaymentEventConsumer(v, q)
	if err != nil {
		return nil, err
	}
	v4 := initCloseExpiredOrdersJob(v)
	module := &Module{
		Svc:                   v,
		Hdl:                   v2,
		Consumer:              v3,
		CloseExpiredOrdersJob: v4,
	}
	return module, nil
}

// wire.go:

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	initServiceConfig, repository.NewRepository, service.NewService, sequencenumber.NewGenerator, web.NewHandler, event.NewPaymentEventConsumer, initCloseExpiredOrdersJob, wire.Struct(new(Module), "*"))

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func initServiceConfig() service.Config {
	return service.Config{ReservationTTL: 15 * time.Minute}
}

func initCloseExpiredOrdersJob(svc service.Service) *job.CloseExpiredOrdersJob {

	return job.NewCloseExpiredOrdersJob(svc, 100, 15)
}
