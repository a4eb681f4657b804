package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"net/http"
)

const invocationsPath = "/2015-03-31/functions/{function}/invocations"

func NewChiMux(invoke InvokeHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger, middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.With(invoke.CheckFunction).
		Post(invocationsPath, invoke.Invoke)

	return r
}
