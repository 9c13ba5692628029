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

package reservation

import (
	"github.com/ecodeclub/eshop/internal/reservation/internal/domain"
	"github.com/ecodeclub/eshop/internal/reservation/internal/job"
	"github.com/ecodeclub/eshop/internal/reservation/internal/service"
)

type Module struct {
	Svc      Service
	SweepJob *SweepExpiredReservationsJob
}

type (
	Service                     = service.Service
	Reservation                 = domain.Reservation
	ReservationItem             = domain.ReservationItem
	ReservationStatus           = domain.ReservationStatus
	SweepExpiredReservationsJob = job.SweepExpiredReservationsJob
)

const (
	ReservationStatusReserved  = domain.ReservationStatusReserved
	ReservationStatusConfirmed = domain.ReservationStatusConfirmed
	ReservationStatusReleased  = domain.ReservationStatusReleased
)

var (
	ErrDuplicateReservation = service.ErrDuplicateReservation
	ErrInsufficientStock    = service.ErrInsufficientStock
	ErrReservationNotFound  = service.ErrReservationNotFound
)
