package book

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"locallibrary/internal/httpx"

	"go.uber.org/zap"
)

type HTTPHandler struct {
	service *Service
	logger  *zap.Logger
}

func NewHTTPHandler(service *Service, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

// Get handles GET /books/{id}
// @Summary Get book details
// @Description Title, author name and copies (imprint, status) of a book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} book.Detail
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		id = strings.TrimPrefix(r.URL.Path, "/books/")
	}
	if id == "" {
		http.NotFound(w, r)
		return
	}

	h.ShowBookDtls(r.Context(), httpx.NewResponse(w), id)
}

// ShowBookDtls sends the detail of the book identified by id. An id that is
// not a string is answered 404 without touching the stores.
func (h *HTTPHandler) ShowBookDtls(ctx context.Context, res httpx.Response, id any) {
	bookID, ok := id.(string)
	if !ok {
		h.reply(res, http.StatusNotFound, notFound(id))
		return
	}

	b, copies, err := h.service.Fetch(ctx, bookID)
	switch {
	case err != nil:
		h.logger.Warn("book detail query failed", zap.String("book_id", bookID), zap.Error(err))
		h.reply(res, http.StatusInternalServerError, fmt.Sprintf("Error fetching book %s", bookID))
	case b == nil, copies == nil:
		h.reply(res, http.StatusNotFound, notFound(bookID))
	default:
		h.reply(res, 0, NewDetail(b, copies))
	}
}

func (h *HTTPHandler) reply(res httpx.Response, code int, body any) {
	if err := httpx.Reply(res, code, body); err != nil {
		h.logger.Error("send book detail failed", zap.Int("status", code), zap.Error(err))
	}
}

func notFound(id any) string {
	return fmt.Sprintf("Book %v not found", id)
}
