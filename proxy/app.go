package proxy

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/swift-aid/admin-console/config"
)

// App stores the router and config, so it can be reused
type App struct {
	Router *mux.Router
	Config config.Config
}

// Initialize builds the dev-proxy router: /api/* is forwarded to the backend
// origin with CORS headers so a local console can call it without the
// production origin's restrictions
func (a *App) Initialize() error {
	target, err := url.Parse(a.Config.APIBaseURL)
	if err != nil {
		return err
	}

	rp := httputil.NewSingleHostReverseProxy(target)
	director := rp.Director
	rp.Director = func(req *http.Request) {
		director(req)
		req.Host = target.Host
	}
	rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		config.ErrorStatus("failed to reach backend", http.StatusBadGateway, w, err)
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", healthCheckHandler)
	r.PathPrefix("/api/").Handler(
		corsMiddleware(requestLogger(http.StripPrefix("/api", rp))),
	)

	a.Router = r
	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"alive": true}`))
}

// corsMiddleware answers preflights and stamps the permissive headers the
// local console needs
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept, X-Request-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		zap.S().Infow("proxied request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
