package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/gasdepot/internal/auth"
	authdomain "github.com/smallbiznis/gasdepot/internal/auth/domain"
	"github.com/smallbiznis/gasdepot/internal/config"
	"github.com/smallbiznis/gasdepot/internal/customer"
	customerdomain "github.com/smallbiznis/gasdepot/internal/customer/domain"
	"github.com/smallbiznis/gasdepot/internal/cylinder"
	cylinderdomain "github.com/smallbiznis/gasdepot/internal/cylinder/domain"
	"github.com/smallbiznis/gasdepot/internal/history"
	"github.com/smallbiznis/gasdepot/internal/observability"
	obsmiddleware "github.com/smallbiznis/gasdepot/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/gasdepot/internal/observability/metrics"
	"github.com/smallbiznis/gasdepot/internal/reporting"
	reportingdomain "github.com/smallbiznis/gasdepot/internal/reporting/domain"
	"github.com/smallbiznis/gasdepot/internal/sales"
	salesdomain "github.com/smallbiznis/gasdepot/internal/sales/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	auth.Module,
	customer.Module,
	cylinder.Module,
	history.Module,
	sales.Module,
	reporting.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterAPIRoutes() }),
	fx.Invoke(RunHTTP),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	authSvc      authdomain.Service
	customerSvc  customerdomain.Service
	cylinderSvc  cylinderdomain.Service
	salesSvc     salesdomain.Service
	reportingSvc reportingdomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB
	AuthSvc      authdomain.Service
	CustomerSvc  customerdomain.Service
	CylinderSvc  cylinderdomain.Service
	SalesSvc     salesdomain.Service
	ReportingSvc reportingdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		authSvc:      p.AuthSvc,
		customerSvc:  p.CustomerSvc,
		cylinderSvc:  p.CylinderSvc,
		salesSvc:     p.SalesSvc,
		reportingSvc: p.ReportingSvc,
	}
}

// RegisterAPIRoutes wires the counter API consumed by the frontend.
func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")
	api.POST("/login", s.Login)
	api.GET("/types", s.ListTypes)
	api.GET("/cylinders", s.ListCylinders)
	api.POST("/sell", s.Sell)
	api.POST("/return", s.Return)
	api.GET("/counts", s.Counts)
	api.GET("/active-customers", s.ActiveCustomers)
	api.GET("/history", s.History)
	api.GET("/search", s.Search)
	api.GET("/customers/:id", s.GetCustomerDetail)
}

func RunHTTP(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
