package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"spacexdash/internal/calculator"
	"spacexdash/internal/callback"
	"spacexdash/internal/config"
	"spacexdash/internal/exporter"
	"spacexdash/internal/logging"
	"spacexdash/internal/session"
	"spacexdash/internal/store"
)

// Handler 仪表盘 API 处理器
type Handler struct {
	store      *store.Store
	calc       *calculator.Calculator
	dispatcher *callback.Dispatcher
	sessions   *session.Registry
	exporter   *exporter.Exporter
	layout     Layout
	logger     *slog.Logger
}

// NewHandler 创建处理器；数据集在进程生命周期内只读
func NewHandler(s *store.Store, dash config.DashboardConfig, sessions *session.Registry) *Handler {
	calc := calculator.NewCalculator(s)
	h := &Handler{
		store:      s,
		calc:       calc,
		dispatcher: callback.NewDashboard(calc),
		sessions:   sessions,
		exporter:   exporter.NewExporter(calc),
		logger:     logging.New("api"),
	}
	h.layout = h.buildLayout(dash)
	return h
}

// Layout 页面控件定义
func (h *Handler) Layout() Layout {
	return h.layout
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 控件定义
	router.GET("/layout", h.GetLayout)

	// 控件回调
	router.POST("/callback", h.Callback)
	router.POST("/callback/initial", h.InitialCallback)

	// 无状态图表查询
	router.GET("/charts/pie", h.GetPieFigure)
	router.GET("/charts/scatter", h.GetScatterFigure)
	router.GET("/charts/pie.svg", h.GetPieSVG)
	router.GET("/charts/scatter.svg", h.GetScatterSVG)

	// 数据导出
	router.GET("/export", h.Export)
}
