package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

// AppResp is what a controller hands back: a component to render plus the
// status to render it under. A nil response means the controller already
// wrote to the ResponseWriter (redirects, plain-text bodies).
type AppResp struct {
	Error       error
	Message     string
	Code        int
	ContentType string
	Component   templ.Component
}

type ComponentHandler func(http.ResponseWriter, *http.Request) *AppResp

func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := ch(w, r)

	if resp == nil {
		return
	}

	if resp.Error != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", resp.Error.Error()))
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "text/html; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)

	if resp.Code != 0 {
		w.WriteHeader(resp.Code)
	}

	if resp.Component == nil {
		return
	}

	err := resp.Component.Render(r.Context(), w)

	if err != nil {
		slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
	}
}
