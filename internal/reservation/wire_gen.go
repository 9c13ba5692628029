// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package reservation

import (
	"github.com/ecodeclub/eshop/internal/reservation/internal/job"
	"github.com/ecodeclub/eshop/internal/reservation/internal/repository"
	"github.com/ecodeclub/eshop/internal/reservation/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/reservation/internal/service"
	"github.com/redis/go-redis/v9"
)

// Injectors from wire.go:

func InitModule(rdb redis.Cmdable) *Module {
	reservationCache := cache.NewReservationRedisCache(rdb)
	reservationRepository := repository.NewReservationRepository(reservationCache)
	v := service.NewService(reservationRepository)
	v2 := job.NewSweepExpiredReservationsJob(v)
	module := &Module{
		Svc:      v,
		SweepJob: v2,
	}
	return module
}
