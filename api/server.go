package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/moyoez/katana/api/controllers"
	"github.com/moyoez/katana/api/middlewares"
	"github.com/moyoez/katana/api/models"
	"github.com/moyoez/katana/api/notifyhub"
	"github.com/moyoez/katana/tool"
)

// Server is the localhost control API.
type Server struct {
	port   int
	engine *gin.Engine
	server *http.Server
	mu     sync.RWMutex
}

// NewServer binds to 127.0.0.1 on port, or DefaultApiPort when port is not positive.
func NewServer(port int) *Server {
	if port <= 0 {
		port = tool.DefaultApiPort
	}
	return &Server{port: port}
}

func setupRoutes() *gin.Engine {
	if tool.DefaultLogger.GetLevel() == log.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())

	self := engine.Group("/api/self/v1",
		middlewares.OnlyAllowLocal,
		middlewares.OnlyAllowLocalOrigin,
		middlewares.RateLimit(middlewares.DefaultRateLimit, middlewares.DefaultRateBurst),
	)
	{
		self.POST("/drop", middlewares.RequireJSON, controllers.HandleDrop)
		self.POST("/capture", controllers.HandleCapture)
		self.GET("/info", controllers.HandleInfo)
		self.GET("/recent", controllers.HandleRecent)
		self.GET("/config", controllers.UserConfigGet)
		self.PATCH("/config", middlewares.RequireJSON, controllers.UserConfigPatch)
		self.GET("/create-qr-code", controllers.GenerateQRCode) // QR code PNG (same params as api.qrserver.com)
		if hub := models.GetNotifyHub(); hub != nil {
			self.GET("/notify-ws", notifyhub.HandleNotifyWS(hub))
		}
	}
	return engine
}

// Start serves on 127.0.0.1 until Shutdown; it returns nil after a clean shutdown.
func (s *Server) Start() error {
	engine := setupRoutes()

	s.mu.Lock()
	s.engine = engine
	s.server = &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", s.port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	srv := s.server
	s.mu.Unlock()

	tool.DefaultLogger.Infof("[Server] starting local API on http://%s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops a started server. It is a no-op before Start.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	srv := s.server
	s.mu.RUnlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
