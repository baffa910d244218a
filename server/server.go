package server

import (
	"embed"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/hupe1980/careermentor/chat"
	"github.com/hupe1980/careermentor/logging"
)

//go:embed static
var staticFiles embed.FS

// Options configures the HTTP server.
type Options struct {
	Logger logging.Logger
	// RequestLogging enables chi's access log middleware.
	RequestLogging bool
	// AllowedOrigins lists extra origins (scheme://host[:port]) that may open
	// the chat socket. Same-origin requests are always accepted; "*" accepts
	// any origin.
	AllowedOrigins []string
}

// Server routes HTTP and websocket traffic to a chat.Handler.
type Server struct {
	chat     *chat.Handler
	logger   logging.Logger
	upgrader websocket.Upgrader
	router   chi.Router
}

// New creates a Server for the given chat handler.
func New(handler *chat.Handler, optFns ...func(o *Options)) *Server {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Server{
		chat:   handler,
		logger: opts.Logger,
		upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(opts.AllowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if opts.RequestLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.handleWebSocket)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/*", http.FileServer(http.FS(static)))

	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// originChecker accepts requests without an Origin header, same-origin
// requests and origins listed in allowed.
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[strings.ToLower(strings.TrimRight(strings.TrimSpace(o), "/"))] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		if _, ok := set["*"]; ok {
			return true
		}

		u, err := url.Parse(origin)
		if err != nil {
			return false
		}

		if strings.EqualFold(u.Host, r.Host) {
			return true
		}

		_, ok := set[strings.ToLower(u.Scheme+"://"+u.Host)]

		return ok
	}
}
