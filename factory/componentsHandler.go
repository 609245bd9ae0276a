package factory

import (
	"context"

	"google.golang.org/api/option"

	"github.com/mpetrache/psi-collector/api"
	"github.com/mpetrache/psi-collector/config"
	"github.com/mpetrache/psi-collector/engine"
	"github.com/mpetrache/psi-collector/extractor"
	"github.com/mpetrache/psi-collector/monitoring"
	"github.com/mpetrache/psi-collector/requester"
	"github.com/mpetrache/psi-collector/storage"
)

type componentsHandler struct {
	store  Store
	server Server
}

// NewComponentsHandler creates all service components and wires them together
func NewComponentsHandler(
	ctx context.Context,
	cfg config.Config,
	envCfg config.EnvConfig,
	warehouseOpts ...option.ClientOption,
) (*componentsHandler, error) {
	metrics := monitoring.NewStatusMetrics()
	psiRequester := requester.NewPSIRequester(cfg.PageSpeed, envCfg.APIKey)
	metricsExtractor := extractor.NewMetricsExtractor()

	store, err := storage.NewBigQueryInserter(ctx, envCfg.ProjectID, envCfg.Table, warehouseOpts...)
	if err != nil {
		return nil, err
	}

	auditEngine, err := engine.NewAuditEngine(cfg, psiRequester, metricsExtractor, store, metrics)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	serverArgs := api.ArgsWebServer{
		ListenAddress: cfg.ListenAddress,
		TemplatesPath: cfg.TemplatesPath,
		Engine:        auditEngine,
		Metrics:       metrics,
	}

	server, err := api.NewServer(serverArgs)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &componentsHandler{
		store:  store,
		server: server,
	}, nil
}

// GetStore returns the storage component
func (ch *componentsHandler) GetStore() Store {
	return ch.store
}

// GetServer returns the server component
func (ch *componentsHandler) GetServer() Server {
	return ch.server
}

// Start starts the inner components
func (ch *componentsHandler) Start() {
	ch.server.Start()
}

// Close closes the inner components
func (ch *componentsHandler) Close() {
	_ = ch.server.Close()
	_ = ch.store.Close()
}
