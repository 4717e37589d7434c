package testutils

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// WithURLParams подставляет параметры пути в контекст chi запроса для тестов
func WithURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for k, v := range params {
		chiCtx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}
