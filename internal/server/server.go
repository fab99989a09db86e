package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"spacexdash/internal/api"
	"spacexdash/internal/config"
	"spacexdash/internal/logging"
	"spacexdash/internal/session"
	"spacexdash/internal/store"
)

//go:embed web/index.html
var indexHTML string

//go:embed all:web/static
var staticFiles embed.FS

// ShutdownTimeout 优雅退出等待时长
const ShutdownTimeout = 5 * time.Second

// Server HTTP 服务器
type Server struct {
	cfg    *config.AppConfig
	router *gin.Engine
	store  *store.Store
	api    *api.Handler
	logger *slog.Logger
}

// NewServer 创建服务器；数据集已在启动时加载完成
func NewServer(cfg *config.AppConfig, s *store.Store) (*Server, error) {
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &Server{
		cfg:    cfg,
		router: gin.New(),
		store:  s,
		api:    api.NewHandler(s, cfg.Dashboard, session.NewRegistry(cfg.Session.TTL.Duration)),
		logger: logging.New("server"),
	}
	if err := srv.setupRoutes(); err != nil {
		return nil, err
	}
	return srv, nil
}

// Handler 返回 http.Handler（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() error {
	s.router.Use(gin.Recovery(), s.requestLogger())

	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "records": s.store.Count()})
	})

	// 静态资源
	sub, err := fs.Sub(staticFiles, "web/static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	s.router.StaticFS("/static", http.FS(sub))

	// 首页
	tmpl, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return fmt.Errorf("parse index template: %w", err)
	}
	s.router.SetHTMLTemplate(tmpl)
	s.router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index", s.api.Layout())
	})

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelDebug
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		s.logger.Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Run 启动服务器，ctx 取消后优雅退出
func (s *Server) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", httpSrv.Addr, "records", s.store.Count(), "source", s.store.Source())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", httpSrv.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
