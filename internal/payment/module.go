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

package payment

import (
	"github.com/ecodeclub/eshop/internal/payment/internal/domain"
	"github.com/ecodeclub/eshop/internal/payment/internal/event"
	"github.com/ecodeclub/eshop/internal/payment/internal/service"
	"github.com/ecodeclub/eshop/internal/payment/internal/web"
)

type Module struct {
	Svc           Service
	WechatHandler *WechatHandler
}

type (
	Service       = service.Service
	Channel       = domain.Channel
	ChannelType   = domain.ChannelType
	PaymentStatus = domain.PaymentStatus
	PaymentEvent  = event.PaymentEvent
	WechatHandler = web.WechatHandler
)

const (
	ChannelTypeCOD    = domain.ChannelTypeCOD
	ChannelTypeWechat = domain.ChannelTypeWechat

	PaymentStatusPaidSuccess = domain.PaymentStatusPaidSuccess
	PaymentStatusPaidFailed  = domain.PaymentStatusPaidFailed

	PaymentEventName = event.PaymentEventName
)

var ErrUnknownChannel = service.ErrUnknownChannel
