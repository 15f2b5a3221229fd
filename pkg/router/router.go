package router

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
	routes map[string]HandlerFunc // key = METHOD:PATH
	paths  map[string]bool        // track registered paths
	order  []string               // registration order of paths, used for wildcard matching
}

func New(logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Router{
		mux:    http.NewServeMux(),
		logger: logger,
		routes: make(map[string]HandlerFunc),
		paths:  make(map[string]bool),
	}

	// Catch-all handler for every path
	r.mux.HandleFunc("/", r.dispatch)
	return r
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	if h, ok := r.routes[req.Method+":"+req.URL.Path]; ok {
		h(lrw, req)
	} else if routePath, ok := r.matchWildcard(req.URL.Path); ok {
		if h, ok := r.routes[req.Method+":"+routePath]; ok {
			h(lrw, req)
		} else {
			http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	} else if r.paths[req.URL.Path] {
		// Path exists but method not allowed
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	} else {
		http.Error(lrw, "Not Found", http.StatusNotFound)
	}

	r.logger.Info("request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", lrw.statusCode),
		zap.Duration("duration", time.Since(start)),
	)
}

// matchWildcard returns the first registered wildcard route matching path.
// Routes are tried in registration order, so specific routes go first.
func (r *Router) matchWildcard(path string) (string, bool) {
	for _, routePath := range r.order {
		if strings.Contains(routePath, "*") && matchWildcardRoute(path, routePath) {
			return routePath, true
		}
	}
	return "", false
}

// matchWildcardRoute checks if a request path matches a wildcard route pattern
func matchWildcardRoute(requestPath, routePattern string) bool {
	// Split both paths into segments
	requestSegments := strings.Split(strings.Trim(requestPath, "/"), "/")
	routeSegments := strings.Split(strings.Trim(routePattern, "/"), "/")

	// A trailing wildcard matches any number of remaining segments
	if len(routeSegments) > 0 && routeSegments[len(routeSegments)-1] == "*" {
		if len(requestSegments) < len(routeSegments)-1 {
			return false
		}
		for i := 0; i < len(routeSegments)-1; i++ {
			if requestSegments[i] != routeSegments[i] {
				return false
			}
		}
		return true
	}

	if len(requestSegments) != len(routeSegments) {
		return false
	}
	for i, routeSegment := range routeSegments {
		if routeSegment == "*" {
			continue
		}
		if requestSegments[i] != routeSegment {
			return false
		}
	}
	return true
}

// --- Register paths ---
func (r *Router) register(method, path string, handler HandlerFunc) {
	key := method + ":" + path
	r.routes[key] = handler
	if !r.paths[path] {
		r.order = append(r.order, path)
	}
	r.paths[path] = true
}

func (r *Router) GET(path string, handler HandlerFunc) { r.register(http.MethodGet, path, handler) }

// Handler exposes the router as an http.Handler
func (r *Router) Handler() http.Handler {
	return r.mux
}

// --- Start server ---
func (r *Router) Start(addr string) error {
	r.logger.Info("🚀 Server started", zap.String("addr", addr))
	return http.ListenAndServe(addr, r.mux)
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
