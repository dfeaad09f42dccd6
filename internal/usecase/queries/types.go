package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type BookSummary struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	Genre  string    `json:"genre"`
}

type ReservationView struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	Book        BookSummary `json:"book"`
	Status      string      `json:"status"`
	ReservedAt  time.Time   `json:"reserved_at"`
	ExpiresAt   time.Time   `json:"expires_at"`
	CollectedAt *time.Time  `json:"collected_at,omitempty"`
	// DaysRemaining is derived from expires_at at read time; only set
	// while the reservation is active.
	DaysRemaining *int `json:"days_remaining,omitempty"`
}

// UserReservations partitions one user's reservations into the active
// hold (at most one) and everything terminal.
type UserReservations struct {
	Active  []*ReservationView `json:"active"`
	History []*ReservationView `json:"history"`
}

type BookView struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	ISBN              string    `json:"isbn"`
	Genre             string    `json:"genre"`
	PublicationYear   int32     `json:"publication_year"`
	Synopsis          *string   `json:"synopsis,omitempty"`
	StockQuantity     int32     `json:"stock_quantity"`
	AvailableQuantity int32     `json:"available_quantity"`
	IsAvailable       bool      `json:"is_available"`
}

type BookDetailView struct {
	BookView
	ActiveReservations int64 `json:"active_reservations_count"`
	CanReserve         bool  `json:"can_reserve"`
}

type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	LastPage    int   `json:"last_page"`
	Total       int64 `json:"total"`
}

type BookCatalogFilters struct {
	Genres []string `json:"genres"`
	Years  []int32  `json:"years"`
}

type BookCatalogPage struct {
	Items   []*BookView        `json:"data"`
	Meta    PageMeta           `json:"meta"`
	Filters BookCatalogFilters `json:"filters"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type ProfileStats struct {
	ActiveReservations int64  `json:"active_reservations"`
	TotalBorrowed      int64  `json:"total_borrowed"`
	AccountStatus      string `json:"account_status"`
}

type ProfileView struct {
	User  UserView     `json:"user"`
	Stats ProfileStats `json:"stats"`
}
