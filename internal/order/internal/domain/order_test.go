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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		from   OrderStatus
		to     OrderStatus
		wantOK bool
	}{
		{
			name:   "待支付到已支付",
			from:   StatusPending,
			to:     StatusPaid,
			wantOK: true,
		},
		{
			name:   "待支付到已取消",
			from:   StatusPending,
			to:     StatusCancelled,
			wantOK: true,
		},
		{
			name:   "待支付到支付失败",
			from:   StatusPending,
			to:     StatusPaymentFailed,
			wantOK: true,
		},
		{
			name:   "待支付不能直接签收",
			from:   StatusPending,
			to:     StatusDelivered,
			wantOK: false,
		},
		{
			name:   "已支付到已揽收",
			from:   StatusPaid,
			to:     StatusShipped,
			wantOK: true,
		},
		{
			name:   "已支付不能取消",
			from:   StatusPaid,
			to:     StatusCancelled,
			wantOK: false,
		},
		{
			name:   "已揽收到已签收",
			from:   StatusShipped,
			to:     StatusDelivered,
			wantOK: true,
		},
		{
			name:   "已揽收不能取消",
			from:   StatusShipped,
			to:     StatusCancelled,
			wantOK: false,
		},
		{
			name:   "已取消是终态",
			from:   StatusCancelled,
			to:     StatusPending,
			wantOK: false,
		},
		{
			name:   "已签收是终态",
			from:   StatusDelivered,
			to:     StatusShipped,
			wantOK: false,
		},
		{
			name:   "支付失败是终态",
			from:   StatusPaymentFailed,
			to:     StatusPaid,
			wantOK: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantOK, tc.from.CanTransitionTo(tc.to))
		})
	}
}
