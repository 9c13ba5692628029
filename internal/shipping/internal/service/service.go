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
	"fmt"
	"time"

	"github.com/ecodeclub/eshop/internal/shipping/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

var (
	ErrShipmentCreationFailed = errors.New("创建运单失败")
	ErrFeeCalculationFailed   = errors.New("计算运费失败")
)

//go:generate mockgen -source=./service.go -package=shippingmocks -destination=../../mocks/shipping.mock.go Service
type Service interface {
	// CalculateFee 按收货地址计算运费, 单位: 分
	CalculateFee(ctx context.Context, address domain.Address) (int64, error)
	// CreateShipment 向承运商下揽收单, codAmount 为0表示非货到付款
	CreateShipment(ctx context.Context, orderSN string, receiver domain.Receiver,
		address domain.Address, codAmount int64) (domain.Shipment, error)
}

type Config struct {
	BaseURL string `mapstructure:"baseURL"`
	Token   string `mapstructure:"token"`
	Carrier string `mapstructure:"carrier"`
	Timeout int64  `mapstructure:"timeout"`
}

func NewService(cfg Config) Service {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.Token).
		SetTimeout(time.Duration(cfg.Timeout) * time.Millisecond)
	return &carrierGatewayService{
		client:  client,
		carrier: cfg.Carrier,
	}
}

// carrierGatewayService 对接承运商开放平台的HTTP网关
type carrierGatewayService struct {
	client  *resty.Client
	carrier string
}

type feeRequest struct {
	Province string `json:"province"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
}

type feeResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Fee  int64  `json:"fee"`
}

type shipmentRequest struct {
	OrderSN       string `json:"orderSn"`
	ReceiverName  string `json:"receiverName"`
	ReceiverPhone string `json:"receiverPhone"`
	Province      string `json:"province"`
	City          string `json:"city"`
	Detail        string `json:"detail"`
	Zip           string `json:"zip"`
	CODAmount     int64  `json:"codAmount"`
}

type shipmentResponse struct {
	Code           int    `json:"code"`
	Msg            string `json:"msg"`
	TrackingNumber string `json:"trackingNumber"`
}

func (s *carrierGatewayService) CalculateFee(ctx context.Context, address domain.Address) (int64, error) {
	var res feeResponse
	httpRes, err := s.client.R().
		SetContext(ctx).
		SetBody(feeRequest{
			Province: address.Province,
			City:     address.City,
			Zip:      address.Zip,
		}).
		SetResult(&res).
		Post("/fees/calculate")
	if err != nil {
		return 0, errors.Wrap(ErrFeeCalculationFailed, err.Error())
	}
	if httpRes.IsError() || res.Code != 0 {
		return 0, errors.Wrapf(ErrFeeCalculationFailed,
			"http status = %d, code = %d, msg = %s", httpRes.StatusCode(), res.Code, res.Msg)
	}
	return res.Fee, nil
}

func (s *carrierGatewayService) CreateShipment(ctx context.Context, orderSN string, receiver domain.Receiver,
	address domain.Address, codAmount int64) (domain.Shipment, error) {
	var res shipmentResponse
	httpRes, err := s.client.R().
		SetContext(ctx).
		SetBody(shipmentRequest{
			OrderSN:       orderSN,
			ReceiverName:  receiver.Name,
			ReceiverPhone: receiver.Phone,
			Province:      address.Province,
			City:          address.City,
			Detail:        address.Detail,
			Zip:           address.Zip,
			CODAmount:     codAmount,
		}).
		SetResult(&res).
		Post("/shipments")
	if err != nil {
		return domain.Shipment{}, errors.Wrapf(ErrShipmentCreationFailed,
			"order_sn = %s: %s", orderSN, err.Error())
	}
	if httpRes.IsError() || res.Code != 0 {
		return domain.Shipment{}, errors.Wrapf(ErrShipmentCreationFailed,
			"order_sn = %s, http status = %d, code = %d, msg = %s",
			orderSN, httpRes.StatusCode(), res.Code, res.Msg)
	}
	if res.TrackingNumber == "" {
		return domain.Shipment{}, fmt.Errorf("%w: 承运商未返回运单号, order_sn = %s",
			ErrShipmentCreationFailed, orderSN)
	}
	return domain.Shipment{
		OrderSN:        orderSN,
		Carrier:        s.carrier,
		TrackingNumber: res.TrackingNumber,
	}, nil
}
