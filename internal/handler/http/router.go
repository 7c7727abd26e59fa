package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/likeboard/internal/domain/contract"
	"github.com/mikiasgoitom/likeboard/internal/handler/http/middleware"
	"github.com/mikiasgoitom/likeboard/internal/infrastructure/uuidgen"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// RouterOptions carries the non-usecase dependencies of the router.
type RouterOptions struct {
	Logger         *zap.Logger
	Registry       *prometheus.Registry
	AllowedOrigins []string
	StaticDir      string
	UUIDGenerator  contract.IUUIDGenerator
}

type Router struct {
	likesHandler  *LikesHandler
	healthHandler *HealthHandler
	opts          RouterOptions
}

func NewRouter(likeUsecase usecasecontract.ILikeUseCase, opts RouterOptions) *Router {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.UUIDGenerator == nil {
		opts.UUIDGenerator = uuidgen.NewRequestIDGenerator()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return &Router{
		likesHandler:  NewLikesHandler(likeUsecase),
		healthHandler: NewHealthHandler(likeUsecase),
		opts:          opts,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(
		middleware.RequestID(r.opts.UUIDGenerator),
		middleware.GinZap(r.opts.Logger),
		gin.Recovery(),
		middleware.Prometheus(r.opts.Registry),
	)
	router.Use(cors.New(r.corsConfig()))

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.opts.Registry, promhttp.HandlerOpts{})))
	router.GET("/healthz", r.healthHandler.HealthzHandler)

	api := router.Group("/api")
	{
		api.GET("/likes", r.likesHandler.GetLikesHandler)
		api.POST("/likes", r.likesHandler.LikeHandler)
	}

	if r.opts.StaticDir != "" {
		router.NoRoute(r.staticFiles())
	}
}

// staticFiles serves StaticDir for GET and HEAD only. Directories without an
// index.html are not listed.
func (r *Router) staticFiles() gin.HandlerFunc {
	files := http.FileServer(gin.Dir(r.opts.StaticDir, false))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			ErrorHandler(c, http.StatusNotFound, "not found")
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}

func (r *Router) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range r.opts.AllowedOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = r.opts.AllowedOrigins
	return cfg
}
