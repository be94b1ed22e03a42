// Package httpimpl provides the HTTP REST API for decoding raw chain data:
// transactions, blocks, output scripts and addresses.
package httpimpl

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ordishs/gocore"

	"github.com/josephnicholas/VerusCoin/settings"
	"github.com/josephnicholas/VerusCoin/ulogger"
)

var ExplorerStat = gocore.NewStat("Explorer")

// HTTP handles the decode API endpoints using the Echo framework.
type HTTP struct {
	logger    ulogger.Logger
	settings  *settings.Settings
	e         *echo.Echo
	startTime time.Time
}

// New creates and configures a new HTTP server instance with all routes and middleware.
//
// API Endpoints:
//
//	Health and Status:
//	- GET /alive: Service liveness check
//
//	Decode:
//	- POST /api/v1/tx/decode: Decode a raw transaction (hex body)
//	- POST /api/v1/block/decode: Decode a raw block (hex body)
//	- POST /api/v1/script/decode: Decode an output script (hex body)
//	- GET /api/v1/address/:address: Decode an address into its typed form
func New(logger ulogger.Logger, tSettings *settings.Settings) (*HTTP, error) {
	initPrometheusMetrics()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return true, nil
		},
		AllowMethods:     []string{echo.GET, echo.HEAD, echo.POST, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders:    []string{echo.HeaderContentLength, echo.HeaderContentType},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	e.Use(middleware.Gzip())

	h := &HTTP{
		logger:    logger,
		settings:  tSettings,
		e:         e,
		startTime: time.Now(),
	}

	e.GET("/alive", func(c echo.Context) error {
		return c.String(http.StatusOK, fmt.Sprintf("Explorer service is alive. Uptime: %s\n", time.Since(h.startTime)))
	})

	apiGroup := e.Group(tSettings.Explorer.APIPrefix)

	apiGroup.POST("/tx/decode", h.DecodeTx())
	apiGroup.POST("/block/decode", h.DecodeBlock())
	apiGroup.POST("/script/decode", h.DecodeScript())
	apiGroup.GET("/address/:address", h.DecodeAddress())

	if h.settings.StatsPrefix != "" {
		e.GET("/"+h.settings.StatsPrefix+"/stats", AdaptStdHandler(gocore.HandleStats))
		e.GET("/"+h.settings.StatsPrefix+"/reset", AdaptStdHandler(gocore.ResetStats))
	}

	return h, nil
}

func AdaptStdHandler(handler func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return func(c echo.Context) error {
		handler(c.Response().Writer, c.Request())
		return nil
	}
}

func (h *HTTP) Init(_ context.Context) error {
	return nil
}

func (h *HTTP) Start(ctx context.Context, addr string) error {
	go func() {
		<-ctx.Done()

		h.logger.Infof("[Explorer] HTTP service shutting down")

		if err := h.e.Shutdown(context.Background()); err != nil {
			h.logger.Errorf("[Explorer] HTTP service shutdown error: %s", err)
		}
	}()

	h.logger.Infof("[Explorer] HTTP listening on %s", addr)

	if err := h.e.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (h *HTTP) Stop(ctx context.Context) error {
	return h.e.Shutdown(ctx)
}
