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

package web

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/errs"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc             service.Service
	paymentSvc      payment.Service
	cache           ecache.Cache
	checkoutCounter *prometheus.CounterVec
}

func NewHandler(svc service.Service, paymentSvc payment.Service, cache ecache.Cache) *Handler {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eshop",
		Subsystem: "order",
		Name:      "checkout_total",
		Help:      "结算结果计数",
	}, []string{"result"})
	prometheus.MustRegister(counter)
	return &Handler{
		svc:             svc,
		paymentSvc:      paymentSvc,
		cache:           cache,
		checkoutCounter: counter,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/checkout", ginx.BS[CheckoutReq](h.Checkout))
	g.POST("", ginx.BS[RetrieveOrderStatusReq](h.RetrieveOrderStatus))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
	g.POST("/channels", ginx.W(h.RetrievePaymentChannels))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Checkout 把购物车结算成订单
func (h *Handler) Checkout(ctx *ginx.Context, req CheckoutReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return errorResult(errs.DuplicateCheckoutAttempt), fmt.Errorf("请求ID错误: %w", err)
	}

	res, err := h.svc.Checkout(ctx.Request.Context(), sess.Claims().Uid,
		payment.ChannelType(req.Channel),
		domain.Receiver{Name: req.Receiver.Name, Phone: req.Receiver.Phone},
		domain.Address{
			Province: req.Address.Province,
			City:     req.Address.City,
			Detail:   req.Address.Detail,
			Zip:      req.Address.Zip,
		})
	if err != nil {
		code := h.toErrorCode(err)
		h.checkoutCounter.WithLabelValues(code.Msg).Inc()
		return errorResult(code), fmt.Errorf("结算失败: %w", err)
	}
	h.checkoutCounter.WithLabelValues("成功").Inc()
	return ginx.Result{
		Data: CheckoutResp{
			OrderSN:        res.Order.SN,
			Status:         res.Order.Status.ToUint8(),
			TotalAmount:    res.Order.TotalAmount,
			WechatCodeURL:  res.WechatCodeURL,
			Carrier:        res.Order.Carrier,
			TrackingNumber: res.Order.TrackingNumber,
		},
	}, nil
}

func (h *Handler) toErrorCode(err error) errs.ErrorCode {
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		return errs.EmptyCart
	case errors.Is(err, service.ErrOutOfStock):
		return errs.OutOfStock
	case errors.Is(err, service.ErrInsufficientBatchStock):
		return errs.InsufficientBatchStock
	case errors.Is(err, service.ErrPaymentSetupFailed):
		return errs.PaymentSetupFailed
	case errors.Is(err, service.ErrShipmentCreationFailed):
		return errs.ShipmentCreationFailed
	default:
		return errs.SystemError
	}
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := h.checkoutRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) checkoutRequestKey(requestID string) string {
	return fmt.Sprintf("order:checkout:%s", requestID)
}

// RetrieveOrderStatus 获取订单状态, 前端扫码支付后轮询用
func (h *Handler) RetrieveOrderStatus(ctx *ginx.Context, req RetrieveOrderStatusReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if err != nil {
		return errorResult(errs.OrderNotFound), fmt.Errorf("订单未找到: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderStatusResp{
			OrderStatus: order.Status.ToUint8(),
		},
	}, nil
}

// ListOrders 分页查询用户订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return h.toOrderVO(src)
			}),
		},
	}, nil
}

// RetrieveOrderDetail 查看订单详情
func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if err != nil {
		return errorResult(errs.OrderNotFound), fmt.Errorf("订单未找到: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{
			Order: h.toOrderVO(order),
		},
	}, nil
}

// CancelOrder 取消订单, 只有待支付的订单可以取消
func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrderStatus) {
			return errorResult(errs.InvalidOrderStatus), fmt.Errorf("取消订单失败: %w", err)
		}
		return systemErrorResult, fmt.Errorf("取消订单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

// RetrievePaymentChannels 获取可用支付渠道
func (h *Handler) RetrievePaymentChannels(ctx *ginx.Context) (ginx.Result, error) {
	channels := h.paymentSvc.GetPaymentChannels(ctx.Request.Context())
	return ginx.Result{
		Data: ChannelsResp{
			Channels: slice.Map(channels, func(idx int, src payment.Channel) ChannelItem {
				return ChannelItem{Type: int64(src.Type), Desc: src.Desc}
			}),
		},
	}, nil
}

func (h *Handler) toOrderVO(order domain.Order) Order {
	return Order{
		SN:             order.SN,
		Channel:        order.Channel,
		SubtotalAmount: order.SubtotalAmount,
		ShippingFee:    order.ShippingFee,
		TotalAmount:    order.TotalAmount,
		Receiver:       Receiver{Name: order.Receiver.Name, Phone: order.Receiver.Phone},
		Address: Address{
			Province: order.Address.Province,
			City:     order.Address.City,
			Detail:   order.Address.Detail,
			Zip:      order.Address.Zip,
		},
		Carrier:        order.Carrier,
		TrackingNumber: order.TrackingNumber,
		Status:         order.Status.ToUint8(),
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				SKUSN:     src.SKUSN,
				SKUName:   src.SKUName,
				Price:     src.Price,
				Quantity:  src.Quantity,
				BatchCode: src.BatchCode,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
