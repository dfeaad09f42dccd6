package response

import (
	"libris/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookResponse struct {
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

type BookDetailResponse struct {
	BookResponse
	ActiveReservations int64 `json:"active_reservations_count"`
	CanReserve         bool  `json:"can_reserve"`
}

type PageMetaResponse struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	LastPage    int   `json:"last_page"`
	Total       int64 `json:"total"`
}

type BookCatalogResponse struct {
	Data    []*BookResponse  `json:"data"`
	Meta    PageMetaResponse `json:"meta"`
	Filters struct {
		Genres []string `json:"genres"`
		Years  []int32  `json:"years"`
	} `json:"filters"`
}

func FromBookView(view *queries.BookView) *BookResponse {
	return &BookResponse{
		ID:                view.ID,
		Title:             view.Title,
		Author:            view.Author,
		ISBN:              view.ISBN,
		Genre:             view.Genre,
		PublicationYear:   view.PublicationYear,
		Synopsis:          view.Synopsis,
		StockQuantity:     view.StockQuantity,
		AvailableQuantity: view.AvailableQuantity,
		IsAvailable:       view.IsAvailable,
	}
}

func FromBookDetailView(view *queries.BookDetailView) *BookDetailResponse {
	return &BookDetailResponse{
		BookResponse:       *FromBookView(&view.BookView),
		ActiveReservations: view.ActiveReservations,
		CanReserve:         view.CanReserve,
	}
}

func FromBookCatalogPage(page *queries.BookCatalogPage) *BookCatalogResponse {
	resp := &BookCatalogResponse{
		Data: make([]*BookResponse, len(page.Items)),
		Meta: PageMetaResponse{
			CurrentPage: page.Meta.CurrentPage,
			PerPage:     page.Meta.PerPage,
			LastPage:    page.Meta.LastPage,
			Total:       page.Meta.Total,
		},
	}
	for i, item := range page.Items {
		resp.Data[i] = FromBookView(item)
	}
	resp.Filters.Genres = page.Filters.Genres
	resp.Filters.Years = page.Filters.Years
	return resp
}
