// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package inventory

import (
	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/eshop/internal/inventory/internal/repository"
	"github.com/ecodeclub/eshop/internal/inventory/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/inventory/internal/service"
	"github.com/ecodeclub/eshop/internal/inventory/internal/web"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, node *snowflake.Node, productSvc product.Service) *Module {
	inventoryDAO := InitTablesOnce(db)
	inventoryRepository := repository.NewInventoryRepository(inventoryDAO)
	v := service.NewService(inventoryRepository, node)
	v2 := web.NewAdminHandler(v, productSvc)
	module := &Module{
		Svc:      v,
		AdminHdl: v2,
	}
	return module
}

// wire.go:

var ModuleSet = wire.NewSet(
	InitTablesOnce, repository.NewInventoryRepository, service.NewService, web.NewAdminHandler, wire.Struct(new(Module), "*"))

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.InventoryDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewInventoryGORMDAO(db)
}
