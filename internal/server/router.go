package server

import (
	"net/http"

	"stockquotes/internal/metrics"
)

// Router is a ServeMux that instruments every route it registers.
type Router struct {
	mux     *http.ServeMux
	metrics *metrics.Metrics
}

// NewRouter returns a Router. m may be nil.
func NewRouter(m *metrics.Metrics) *Router {
	return &Router{mux: http.NewServeMux(), metrics: m}
}

// Handle registers h for a Go 1.22 mux pattern such as "GET /quote".
// The pattern doubles as the route label.
func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.Handle(pattern, r.metrics.InstrumentRoute(pattern, h))
}

// Mount registers h without instrumentation.
func (r *Router) Mount(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
