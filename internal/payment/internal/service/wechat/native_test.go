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

package wechat

import (
	"context"
	"testing"

	"github.com/ecodeclub/eshop/internal/payment/internal/domain"
	wechatmocks "github.com/ecodeclub/eshop/internal/payment/internal/service/wechat/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"go.uber.org/mock/gomock"
)

func newTestService(api NativeAPIService) *NativePaymentService {
	return NewNativePaymentService(api, "appid-test", "mchid-test", "http://localhost:8080/pay/callback")
}

func TestNativePaymentService_Prepay(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	api := wechatmocks.NewMockNativeAPIService(ctrl)
	api.EXPECT().Prepay(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req native.PrepayRequest) (*native.PrepayResponse, *core.APIResult, error) {
			assert.Equal(t, "appid-test", *req.Appid)
			assert.Equal(t, "mchid-test", *req.Mchid)
			assert.Equal(t, "orderSN-1", *req.OutTradeNo)
			assert.Equal(t, "机械键盘 等2件商品", *req.Description)
			assert.Equal(t, "http://localhost:8080/pay/callback", *req.NotifyUrl)
			assert.Equal(t, "CNY", *req.Amount.Currency)
			assert.Equal(t, int64(68500), *req.Amount.Total)
			return &native.PrepayResponse{CodeUrl: core.String("weixin://wxpay/bizpayurl?pr=xyz")}, nil, nil
		})

	codeURL, err := newTestService(api).Prepay(context.Background(), "orderSN-1", "机械键盘 等2件商品", 68500)
	require.NoError(t, err)
	assert.Equal(t, "weixin://wxpay/bizpayurl?pr=xyz", codeURL)
}

func TestNativePaymentService_Prepay_InvalidAmount(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	// 金额不合法时不应该触达微信
	api := wechatmocks.NewMockNativeAPIService(ctrl)

	_, err := newTestService(api).Prepay(context.Background(), "orderSN-1", "desc", 0)
	assert.Error(t, err)
	_, err = newTestService(api).Prepay(context.Background(), "orderSN-1", "desc", -100)
	assert.Error(t, err)
}

func TestNativePaymentService_ConvertCallbackTransaction(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		tradeState string
		wantSN     string
		wantStatus domain.PaymentStatus
		assertErr  assert.ErrorAssertionFunc
	}{
		{
			name:       "支付成功",
			tradeState: "SUCCESS",
			wantSN:     "orderSN-1",
			wantStatus: domain.PaymentStatusPaidSuccess,
			assertErr:  assert.NoError,
		},
		{
			name:       "支付失败",
			tradeState: "PAYERROR",
			wantSN:     "orderSN-1",
			wantStatus: domain.PaymentStatusPaidFailed,
			assertErr:  assert.NoError,
		},
		{
			name:       "已关闭",
			tradeState: "CLOSED",
			wantSN:     "orderSN-1",
			wantStatus: domain.PaymentStatusPaidFailed,
			assertErr:  assert.NoError,
		},
		{
			name:       "未支付被忽略",
			tradeState: "NOTPAY",
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrIgnoredPaymentStatus)
			},
		},
		{
			name:       "支付中被忽略",
			tradeState: "USERPAYING",
			assertErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrIgnoredPaymentStatus)
			},
		},
		{
			name:       "未知状态",
			tradeState: "SOMETHING_NEW",
			assertErr:  assert.Error,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := newTestService(wechatmocks.NewMockNativeAPIService(ctrl))

			sn, status, err := svc.ConvertCallbackTransaction(&payments.Transaction{
				OutTradeNo: core.String("orderSN-1"),
				TradeState: core.String(tc.tradeState),
			})
			tc.assertErr(t, err)
			if err == nil {
				assert.Equal(t, tc.wantSN, sn)
				assert.Equal(t, tc.wantStatus, status)
			}
		})
	}
}

func TestNativePaymentService_QueryOrderBySN(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		tradeState string
		wantStatus domain.PaymentStatus
	}{
		{
			name:       "支付成功",
			tradeState: "SUCCESS",
			wantStatus: domain.PaymentStatusPaidSuccess,
		},
		{
			name:       "支付失败",
			tradeState: "PAYERROR",
			wantStatus: domain.PaymentStatusPaidFailed,
		},
		{
			// 对账时非终态一律按失败处理
			name:       "未支付按失败处理",
			tradeState: "NOTPAY",
			wantStatus: domain.PaymentStatusPaidFailed,
		},
		{
			name:       "支付中按失败处理",
			tradeState: "USERPAYING",
			wantStatus: domain.PaymentStatusPaidFailed,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			api := wechatmocks.NewMockNativeAPIService(ctrl)
			api.EXPECT().QueryOrderByOutTradeNo(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req native.QueryOrderByOutTradeNoRequest) (*payments.Transaction, *core.APIResult, error) {
					assert.Equal(t, "orderSN-1", *req.OutTradeNo)
					assert.Equal(t, "mchid-test", *req.Mchid)
					return &payments.Transaction{
						OutTradeNo: core.String("orderSN-1"),
						TradeState: core.String(tc.tradeState),
					}, nil, nil
				})

			status, err := newTestService(api).QueryOrderBySN(context.Background(), "orderSN-1")
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}
