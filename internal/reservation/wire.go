// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package reservation

import (
	"github.com/ecodeclub/eshop/internal/reservation/internal/job"
	"github.com/ecodeclub/eshop/internal/reservation/internal/repository"
	"github.com/ecodeclub/eshop/internal/reservation/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/reservation/internal/service"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

func InitModule(rdb redis.Cmdable) *Module {
	wire.Build(
		cache.NewReservationRedisCache,
		repository.NewReservationRepository,
		service.NewService,
		job.NewSweepExpiredReservationsJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
