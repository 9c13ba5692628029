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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/eshop/internal/payment/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
)

var (
	errUnknownTransactionState = errors.New("未知的微信事务状态")
	ErrIgnoredPaymentStatus    = errors.New("忽略的支付状态")
)

//go:generate mockgen -source=./native.go -package=wechatmocks -destination=./mocks/native.mock.go NativeAPIService
type NativeAPIService interface {
	Prepay(ctx context.Context, req native.PrepayRequest) (resp *native.PrepayResponse, result *core.APIResult, err error)
	QueryOrderByOutTradeNo(ctx context.Context, req native.QueryOrderByOutTradeNoRequest) (resp *payments.Transaction, result *core.APIResult, err error)
}

type NativePaymentService struct {
	svc NativeAPIService
	l   *elog.Component

	appID     string
	mchID     string
	notifyURL string
	// 在微信 native 里面，分别是
	// SUCCESS：支付成功
	// REFUND：转入退款
	// NOTPAY：未支付
	// CLOSED：已关闭
	// REVOKED：已撤销（付款码支付）
	// USERPAYING：用户支付中（付款码支付）
	// PAYERROR：支付失败(其他原因，如银行返回失败)
	nativeCallBackTypeToPaymentStatus map[string]domain.PaymentStatus
}

func NewNativePaymentService(svc NativeAPIService, appid, mchid, notifyURL string) *NativePaymentService {
	return &NativePaymentService{
		svc:       svc,
		l:         elog.DefaultLogger,
		appID:     appid,
		mchID:     mchid,
		notifyURL: notifyURL,
		nativeCallBackTypeToPaymentStatus: map[string]domain.PaymentStatus{
			"SUCCESS":    domain.PaymentStatusPaidSuccess,
			"PAYERROR":   domain.PaymentStatusPaidFailed,
			"CLOSED":     domain.PaymentStatusPaidFailed,
			"REVOKED":    domain.PaymentStatusPaidFailed,
			"NOTPAY":     domain.PaymentStatusUnpaid,
			"USERPAYING": domain.PaymentStatusProcessing,
		},
	}
}

// Prepay 发起预支付, 返回二维码链接。amount 单位: 分
func (n *NativePaymentService) Prepay(ctx context.Context, orderSN, description string, amount int64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("非法支付金额: %d", amount)
	}
	resp, _, err := n.svc.Prepay(ctx,
		native.PrepayRequest{
			Appid:       core.String(n.appID),
			Mchid:       core.String(n.mchID),
			Description: core.String(description),
			OutTradeNo:  core.String(orderSN),
			TimeExpire:  core.Time(time.Now().Add(time.Minute * 30)),
			NotifyUrl:   core.String(n.notifyURL),
			Amount: &native.Amount{
				Currency: core.String("CNY"),
				Total:    core.Int64(amount),
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("微信预支付失败: %w", err)
	}
	return *resp.CodeUrl, nil
}

// ConvertCallbackTransaction 把回调事务转成订单号+终态,
// 非终态的通知被忽略, 等微信重试或者对账任务兜底
func (n *NativePaymentService) ConvertCallbackTransaction(txn *payments.Transaction) (string, domain.PaymentStatus, error) {
	status, err := n.convertoPaymentStatus(*txn.TradeState)
	if err != nil {
		return "", 0, err
	}
	if status != domain.PaymentStatusPaidSuccess && status != domain.PaymentStatusPaidFailed {
		n.l.Warn("忽略的微信支付通知状态",
			elog.String("TradeState", *txn.TradeState),
			elog.Any("PaymentStatus", status),
		)
		return "", 0, fmt.Errorf("%w, %d", ErrIgnoredPaymentStatus, status.ToUint8())
	}
	return *txn.OutTradeNo, status, nil
}

func (n *NativePaymentService) convertoPaymentStatus(tradeState string) (domain.PaymentStatus, error) {
	status, ok := n.nativeCallBackTypeToPaymentStatus[tradeState]
	if !ok {
		return 0, fmt.Errorf("%w, %s", errUnknownTransactionState, tradeState)
	}
	return status, nil
}

// QueryOrderBySN 主动查单, 对账任务用来兜底丢失的回调
func (n *NativePaymentService) QueryOrderBySN(ctx context.Context, orderSN string) (domain.PaymentStatus, error) {
	txn, _, err := n.svc.QueryOrderByOutTradeNo(ctx, native.QueryOrderByOutTradeNoRequest{
		OutTradeNo: core.String(orderSN),
		Mchid:      core.String(n.mchID),
	})
	if err != nil {
		return 0, err
	}
	status, err := n.convertoPaymentStatus(*txn.TradeState)
	if err != nil {
		return 0, err
	}
	if status != domain.PaymentStatusPaidSuccess && status != domain.PaymentStatusPaidFailed {
		// 主动查单时不再忽略, 超过支付窗口一律按失败处理
		status = domain.PaymentStatusPaidFailed
	}
	return status, nil
}
