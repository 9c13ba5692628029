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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/eshop/internal/payment/internal/domain"
	"github.com/ecodeclub/eshop/internal/payment/internal/service/wechat"
)

var ErrUnknownChannel = errors.New("未知的支付渠道")

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go Service
type Service interface {
	GetPaymentChannels(ctx context.Context) []domain.Channel
	// CreatePaymentURL 为在线支付渠道生成支付链接。
	// 货到付款没有支付环节, 对其调用是编程错误
	CreatePaymentURL(ctx context.Context, channel domain.ChannelType, orderSN, description string, amount int64) (string, error)
}

func NewService(native *wechat.NativePaymentService) Service {
	return &service{native: native}
}

type service struct {
	native *wechat.NativePaymentService
}

func (s *service) GetPaymentChannels(_ context.Context) []domain.Channel {
	return []domain.Channel{
		{Type: domain.ChannelTypeCOD, Desc: "货到付款"},
		{Type: domain.ChannelTypeWechat, Desc: "微信支付"},
	}
}

func (s *service) CreatePaymentURL(ctx context.Context, channel domain.ChannelType,
	orderSN, description string, amount int64) (string, error) {
	switch channel {
	case domain.ChannelTypeWechat:
		return s.native.Prepay(ctx, orderSN, description, amount)
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownChannel, channel)
	}
}
