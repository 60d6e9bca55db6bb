package testutil

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"locallibrary/internal/httpx"
)

// ErrSendFailed is returned by Response.Send while FailSends is positive.
var ErrSendFailed = errors.New("response error")

// Response is a recording httpx.Response for handler tests.
// Every Send is recorded, including the ones that fail.
type Response struct {
	mu       sync.Mutex
	Statuses []int
	Bodies   []any

	// FailSends makes the next n Send calls return ErrSendFailed.
	FailSends int
	// OnSend, when set, decides the outcome of Send instead of FailSends.
	OnSend func(body any) error
}

func (r *Response) Status(code int) httpx.Response {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Statuses = append(r.Statuses, code)
	return r
}

func (r *Response) Send(body any) error {
	r.mu.Lock()
	r.Bodies = append(r.Bodies, body)
	onSend := r.OnSend
	fail := r.FailSends > 0
	if fail {
		r.FailSends--
	}
	r.mu.Unlock()

	if onSend != nil {
		return onSend(body)
	}
	if fail {
		return ErrSendFailed
	}
	return nil
}

// LastBody returns the most recent body passed to Send.
func (r *Response) LastBody() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Bodies) == 0 {
		return nil
	}
	return r.Bodies[len(r.Bodies)-1]
}

// LastStatus returns the most recent status code, or 0 if none was set.
func (r *Response) LastStatus() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Statuses) == 0 {
		return 0
	}
	return r.Statuses[len(r.Statuses)-1]
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   string
}

// Do serves a request against h and records the response.
func Do(h http.Handler, method, path string) RecordResponse {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))

	result := w.Result()
	defer result.Body.Close()
	body, _ := io.ReadAll(result.Body)

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   string(body),
	}
}
