package server

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fastreader/internal/documents"
	"fastreader/internal/readinglogs"
	"fastreader/internal/shared/config"
	"fastreader/internal/shared/metrics"
	"fastreader/internal/shared/server/middleware"
	"fastreader/internal/shared/server/respond"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Deps carries the handlers the router wires up.
type Deps struct {
	Config      config.Config
	Documents   *documents.Handler
	ReadingLogs *readinglogs.Handler
	Pages       *Pages
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"UPLOAD": {Rate: 1, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.Request.URL.Path == "/upload" {
					return "UPLOAD"
				}
				return ""
			},
		}),
		countRequests(),
	)

	tmpl := template.Must(template.ParseFS(templateFiles, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/healthz", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	deps.Pages.RegisterRoutes(r)
	deps.Documents.RegisterRoutes(r)
	deps.ReadingLogs.RegisterRoutes(r)

	return r
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.CountRequest(path, strconv.Itoa(c.Writer.Status()))
	}
}

// Addr normalizes the listen address.
func Addr(host, port string) string {
	if port == "" {
		port = "8080"
	}
	if port[0] == ':' {
		return port
	}
	return host + ":" + port
}
