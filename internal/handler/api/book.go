package api

import (
	"errors"
	"net/http"

	"libris/internal/handler/dto/request"
	"libris/internal/handler/dto/response"
	"libris/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookHandler struct {
	books queries.BookQueries
}

func NewBookHandler(books queries.BookQueries) *BookHandler {
	return &BookHandler{
		books: books,
	}
}

func (h *BookHandler) ListBooks(c *gin.Context) {
	var req request.BookCatalogRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	page, err := h.books.Catalog(c.Request.Context(), queries.BookFilter{
		Search:    req.Search,
		Genre:     req.Genre,
		Year:      req.Year,
		ISBN:      req.ISBN,
		SortBy:    req.SortBy,
		Direction: req.Direction,
		Page:      req.Page,
		PerPage:   req.PerPage,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response.FromBookCatalogPage(page))
}

func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid book ID format",
		})
		return
	}

	view, err := h.books.GetDetail(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Book not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, response.FromBookDetailView(view))
}

func (h *BookHandler) SearchBooks(c *gin.Context) {
	var req request.BookSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Search query is required",
		})
		return
	}

	views, err := h.books.Search(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	results := make([]*response.BookResponse, len(views))
	for i, v := range views {
		results[i] = response.FromBookView(v)
	}
	c.JSON(http.StatusOK, gin.H{"data": results})
}
