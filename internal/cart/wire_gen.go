// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package cart

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/cart/internal/service"
	"github.com/ecodeclub/eshop/internal/cart/internal/web"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitModule(ec ecache.Cache) *Module {
	cartCache := cache.NewCartECache(ec)
	v := service.NewService(cartCache)
	v2 := web.NewHandler(v)
	module := &Module{
		Svc: v,
		Hdl: v2,
	}
	return module
}

// wire.go:

var ModuleSet = wire.NewSet(cache.NewCartECache, service.NewService, web.NewHandler, wire.Struct(new(Module), "*"))
