package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// ErrAlreadySent is returned by Send when the response body was already written.
var ErrAlreadySent = errors.New("response already sent")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response is the reply side of a request as page handlers see it.
// Status sets the code used by the next Send; without it Send replies 200.
type Response interface {
	Status(code int) Response
	Send(body any) error
}

// Writer adapts an http.ResponseWriter to Response. Strings are sent as
// plain text, byte slices as-is and every other value as JSON.
type Writer struct {
	w      http.ResponseWriter
	status int
	sent   bool
}

func NewResponse(w http.ResponseWriter) *Writer {
	return &Writer{w: w, status: http.StatusOK}
}

func (rw *Writer) Status(code int) Response {
	rw.status = code
	return rw
}

func (rw *Writer) Send(body any) error {
	if rw.sent {
		return ErrAlreadySent
	}

	var (
		payload     []byte
		contentType string
	)
	switch v := body.(type) {
	case nil:
	case string:
		payload, contentType = []byte(v), "text/plain; charset=utf-8"
	case []byte:
		payload, contentType = v, "application/octet-stream"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode response body: %w", err)
		}
		payload, contentType = b, "application/json; charset=utf-8"
	}

	rw.sent = true
	h := rw.w.Header()
	if contentType != "" && h.Get("Content-Type") == "" {
		h.Set("Content-Type", contentType)
	}
	h.Set("Content-Length", strconv.Itoa(len(payload)))
	rw.w.WriteHeader(rw.status)
	if len(payload) == 0 {
		return nil
	}
	_, err := rw.w.Write(payload)
	return err
}

// Sent reports whether a body has been written.
func (rw *Writer) Sent() bool { return rw.sent }

// Reply sends body through res, setting code first unless it is zero.
// A Response that panics is reported as an error.
func Reply(res Response, code int, body any) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("send panicked: %v", p)
		}
	}()
	if code != 0 {
		res = res.Status(code)
	}
	return res.Send(body)
}
