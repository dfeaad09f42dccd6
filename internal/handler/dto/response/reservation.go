package response

import (
	"time"

	"libris/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBookResponse struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	Genre  string    `json:"genre"`
}

type ReservationResponse struct {
	ID            uuid.UUID               `json:"id"`
	Book          ReservationBookResponse `json:"book"`
	Status        string                  `json:"status"`
	ReservedAt    time.Time               `json:"reserved_at"`
	ExpiresAt     time.Time               `json:"expires_at"`
	CollectedAt   *time.Time              `json:"collected_at,omitempty"`
	DaysRemaining *int                    `json:"days_remaining,omitempty"`
}

type UserReservationsResponse struct {
	Active  []*ReservationResponse `json:"active"`
	History []*ReservationResponse `json:"history"`
}

type SweepResponse struct {
	ExpiredCount int64 `json:"expired_count"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID: view.ID,
		Book: ReservationBookResponse{
			ID:     view.Book.ID,
			Title:  view.Book.Title,
			Author: view.Book.Author,
			Genre:  view.Book.Genre,
		},
		Status:        view.Status,
		ReservedAt:    view.ReservedAt,
		ExpiresAt:     view.ExpiresAt,
		CollectedAt:   view.CollectedAt,
		DaysRemaining: view.DaysRemaining,
	}
}

func FromUserReservations(views *queries.UserReservations) *UserReservationsResponse {
	resp := &UserReservationsResponse{
		Active:  make([]*ReservationResponse, len(views.Active)),
		History: make([]*ReservationResponse, len(views.History)),
	}
	for i, v := range views.Active {
		resp.Active[i] = FromReservationView(v)
	}
	for i, v := range views.History {
		resp.History[i] = FromReservationView(v)
	}
	return resp
}
