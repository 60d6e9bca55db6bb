package author

import (
	"context"
	"net/http"

	"locallibrary/internal/httpx"

	"go.uber.org/zap"
)

// NoAuthorsFound is sent when the author list is empty or unavailable.
const NoAuthorsFound = "No authors found"

type HTTPHandler struct {
	svc    *Service
	logger *zap.Logger
}

func NewHTTPHandler(svc *Service, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, logger: logger}
}

// List handles GET /authors
// @Summary List authors
// @Description All authors ordered by family name, as "family, first: birth - death"
// @Tags authors
// @Produce json
// @Success 200 {array} string
// @Router /authors [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	h.ShowAllAuthors(r.Context(), httpx.NewResponse(w))
}

// ShowAllAuthors sends the formatted author list, or NoAuthorsFound when
// there is nothing to show. If sending fails before anything reached the
// client, NoAuthorsFound is sent once more as a fallback.
func (h *HTTPHandler) ShowAllAuthors(ctx context.Context, res httpx.Response) {
	var body any = NoAuthorsFound
	if lines := h.svc.lines(ctx, displayEntry); len(lines) > 0 {
		body = lines
	}

	if err := httpx.Reply(res, 0, body); err != nil {
		h.logger.Error("send author list failed", zap.Error(err))
		if sent(res) {
			return
		}
		if err := httpx.Reply(res, 0, NoAuthorsFound); err != nil {
			h.logger.Error("send author list fallback failed", zap.Error(err))
		}
	}
}

// sent reports whether res already wrote its body, in which case a fallback
// can only fail with httpx.ErrAlreadySent.
func sent(res httpx.Response) bool {
	s, ok := res.(interface{ Sent() bool })
	return ok && s.Sent()
}
