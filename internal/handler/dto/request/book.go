package request

// BookCatalogRequest carries the catalog filter query string. Zero values
// mean unfiltered.
type BookCatalogRequest struct {
	Search    *string `form:"search"`
	Genre     *string `form:"genre"`
	Year      *int32  `form:"year"`
	ISBN      *string `form:"isbn"`
	SortBy    string  `form:"sort_by"`
	Direction string  `form:"direction" binding:"omitempty,oneof=asc desc"`
	Page      int     `form:"page" binding:"omitempty,min=1"`
	PerPage   int     `form:"per_page" binding:"omitempty,min=1,max=50"`
}

type BookSearchRequest struct {
	Query string `form:"q" binding:"required,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=50"`
}
