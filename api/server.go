package api

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"path"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api")

const (
	indexTemplateName = "index.html"
	formFieldTestURL  = "test_url"

	stateNone    = ""
	stateSuccess = "success"
	stateFailure = "failure"
)

type server struct {
	router     *gin.Engine
	httpServer *http.Server
	engine     Engine
	metrics    StatusMetricsHandler
	listenAddr string
	wg         sync.WaitGroup
}

// ArgsWebServer defines the web server arguments
type ArgsWebServer struct {
	ListenAddress string
	TemplatesPath string
	Engine        Engine
	Metrics       StatusMetricsHandler
}

// NewServer initializes the Gin engine, loads the HTML templates and mounts all routes
func NewServer(args ArgsWebServer) (*server, error) {
	if check.IfNil(args.Engine) {
		return nil, errors.New("nil audit engine")
	}
	if check.IfNil(args.Metrics) {
		return nil, errors.New("nil status metrics")
	}

	templates, err := template.ParseGlob(path.Join(args.TemplatesPath, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to load templates from '%s': %w", args.TemplatesPath, err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.SetHTMLTemplate(templates)

	s := &server{
		router:     router,
		engine:     args.Engine,
		metrics:    args.Metrics,
		listenAddr: args.ListenAddress,
	}

	s.setupRoutes()
	return s, nil
}

func (s *server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/submit", s.handleSubmit)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}

// Start listens and serves connections
func (s *server) Start() {
	s.httpServer = &http.Server{
		Addr:    s.listenAddr,
		Handler: s.router,
	}

	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		log.Error("failed to listen", "error", err)
		return
	}
	s.listenAddr = ln.Addr().String()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log.Info("starting HTTP server", "address", s.listenAddr)

		err := s.httpServer.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
		}
	}()
}

// Address returns the actual listen address
func (s *server) Address() string {
	return s.listenAddr
}

// Close gracefully stops the server
func (s *server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.wg.Wait()

	return nil
}

// --- Handlers ---

func (s *server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplateName, gin.H{"state": stateNone})
}

func (s *server) handleSubmit(c *gin.Context) {
	testURL := c.PostForm(formFieldTestURL)
	if testURL == "" {
		log.Warn("submit request without a test URL", "sender", c.Request.RemoteAddr)
		c.HTML(http.StatusBadRequest, indexTemplateName, gin.H{"state": stateFailure})
		return
	}

	err := s.engine.RunAudit(c.Request.Context(), testURL)
	if err != nil {
		log.Error("audit pipeline failed", "url", testURL, "error", err)
		c.HTML(http.StatusOK, indexTemplateName, gin.H{"state": stateFailure})
		return
	}

	c.HTML(http.StatusOK, indexTemplateName, gin.H{"state": stateSuccess})
}

func (s *server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
