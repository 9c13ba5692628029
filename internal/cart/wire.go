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

package cart

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/eshop/internal/cart/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/cart/internal/service"
	"github.com/ecodeclub/eshop/internal/cart/internal/web"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	cache.NewCartECache,
	service.NewService,
	web.NewHandler,
	wire.Struct(new(Module), "*"))

func InitModule(ec ecache.Cache) *Module {
	wire.Build(ModuleSet)
	return new(Module)
}
