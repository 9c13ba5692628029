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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/eshop/internal/shipping/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(Config{
		BaseURL: srv.URL,
		Token:   "test-token",
		Carrier: "SF",
		Timeout: 1000,
	})
}

func testShippingAddress() domain.Address {
	return domain.Address{Province: "广东", City: "深圳", Detail: "南山区科技园1号", Zip: "518000"}
}

func TestCarrierGatewayService_CalculateFee(t *testing.T) {
	t.Parallel()
	svc := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fees/calculate", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		var req feeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, feeRequest{Province: "广东", City: "深圳", Zip: "518000"}, req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(feeResponse{Code: 0, Fee: 800})
	})

	fee, err := svc.CalculateFee(context.Background(), testShippingAddress())
	require.NoError(t, err)
	assert.Equal(t, int64(800), fee)
}

func TestCarrierGatewayService_CalculateFee_GatewayError(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "HTTP错误",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "业务错误码",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(feeResponse{Code: 1001, Msg: "地址不在服务范围"})
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestGateway(t, tc.handler)
			_, err := svc.CalculateFee(context.Background(), testShippingAddress())
			assert.ErrorIs(t, err, ErrFeeCalculationFailed)
		})
	}
}

func TestCarrierGatewayService_CreateShipment(t *testing.T) {
	t.Parallel()
	svc := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipments", r.URL.Path)
		var req shipmentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, shipmentRequest{
			OrderSN:       "order-sn-1",
			ReceiverName:  "王二",
			ReceiverPhone: "13800000000",
			Province:      "广东",
			City:          "深圳",
			Detail:        "南山区科技园1号",
			Zip:           "518000",
			CODAmount:     68500,
		}, req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(shipmentResponse{Code: 0, TrackingNumber: "SF123456789"})
	})

	shipment, err := svc.CreateShipment(context.Background(), "order-sn-1",
		domain.Receiver{Name: "王二", Phone: "13800000000"}, testShippingAddress(), 68500)
	require.NoError(t, err)
	assert.Equal(t, domain.Shipment{
		OrderSN:        "order-sn-1",
		Carrier:        "SF",
		TrackingNumber: "SF123456789",
	}, shipment)
}

func TestCarrierGatewayService_CreateShipment_MissingTrackingNumber(t *testing.T) {
	t.Parallel()
	svc := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(shipmentResponse{Code: 0})
	})

	_, err := svc.CreateShipment(context.Background(), "order-sn-1",
		domain.Receiver{Name: "王二", Phone: "13800000000"}, testShippingAddress(), 0)
	assert.ErrorIs(t, err, ErrShipmentCreationFailed)
}

func TestCarrierGatewayService_CreateShipment_Rejected(t *testing.T) {
	t.Parallel()
	svc := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(shipmentResponse{Code: 2001, Msg: "承运商拒单"})
	})

	_, err := svc.CreateShipment(context.Background(), "order-sn-1",
		domain.Receiver{Name: "王二", Phone: "13800000000"}, testShippingAddress(), 0)
	assert.ErrorIs(t, err, ErrShipmentCreationFailed)
}
