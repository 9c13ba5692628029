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

package order

import (
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/event"
	"github.com/ecodeclub/eshop/internal/order/internal/job"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/eshop/internal/order/internal/web"
)

type Module struct {
	Svc                   Service
	Hdl                   *Handler
	Consumer              *PaymentEventConsumer
	CloseExpiredOrdersJob *CloseExpiredOrdersJob
}

type (
	Service               = service.Service
	Handler               = web.Handler
	PaymentEventConsumer  = event.PaymentEventConsumer
	CloseExpiredOrdersJob = job.CloseExpiredOrdersJob
	Order                 = domain.Order
	OrderItem             = domain.OrderItem
	OrderStatus           = domain.OrderStatus
	Receiver              = domain.Receiver
	Address               = domain.Address
	CheckoutResult        = domain.CheckoutResult
)

const (
	StatusPending       = domain.StatusPending
	StatusPaid          = domain.StatusPaid
	StatusCancelled     = domain.StatusCancelled
	StatusPaymentFailed = domain.StatusPaymentFailed
	StatusShipped       = domain.StatusShipped
	StatusDelivered     = domain.StatusDelivered
)

var (
	ErrEmptyCart              = service.ErrEmptyCart
	ErrOutOfStock             = service.ErrOutOfStock
	ErrInsufficientBatchStock = service.ErrInsufficientBatchStock
	ErrPaymentSetupFailed     = service.ErrPaymentSetupFailed
	ErrShipmentCreationFailed = service.ErrShipmentCreationFailed
	ErrInvalidOrderStatus     = service.ErrInvalidOrderStatus
)
