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

package payment

import (
	"github.com/ecodeclub/eshop/internal/payment/internal/event"
	"github.com/ecodeclub/eshop/internal/payment/internal/service"
	"github.com/ecodeclub/eshop/internal/payment/internal/service/wechat"
	"github.com/ecodeclub/eshop/internal/payment/internal/web"
	"github.com/ecodeclub/eshop/internal/payment/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
)

func InitModule(q mq.MQ) (*Module, error) {
	wire.Build(
		ioc.InitWechatConfig,
		ioc.InitWechatClient,
		ioc.InitNativeApiService,
		wire.Bind(new(wechat.NativeAPIService), new(*native.NativeApiService)),
		ioc.InitWechatNativePaymentService,
		ioc.InitWechatNotifyHandler,
		initProducer,
		service.NewService,
		web.NewWechatHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initProducer(q mq.MQ) (event.PaymentEventProducer, error) {
	p, err := q.Producer(event.PaymentEventName)
	if err != nil {
		return nil, err
	}
	return event.NewPaymentEventProducer(p)
}
