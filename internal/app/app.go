package app

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/jhruska/callsight/internal/extraction"
	"github.com/jhruska/callsight/internal/httpapi"
)

type App struct {
	cfg        Config
	logger     *log.Logger
	extractor  *extraction.Client
	httpClient *http.Client // Shared HTTP client with connection pooling for completion calls
}

func New(cfg Config, logger *log.Logger) *App {
	// Shared HTTP client with connection pooling.
	// Completion calls hit a single provider host repeatedly, so keep
	// connections alive between requests.
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	extractor := extraction.NewClient(extraction.Config{
		Endpoint:          cfg.OpenAIEndpoint,
		APIKey:            cfg.OpenAIAPIKey,
		Deployment:        cfg.OpenAIDeployment,
		ValidateResponses: cfg.ValidateResponses,
		HTTPClient:        httpClient,
	})

	// Missing provider configuration is not fatal: the scenario catalog and
	// schema endpoints still work, and /api/analyze fails fast with a
	// configuration error.
	if !extractor.Ready() {
		logger.Printf("warning: Azure OpenAI not configured, /api/analyze will fail until AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_API_KEY and AZURE_OPENAI_DEPLOYMENT are set")
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		extractor:  extractor,
		httpClient: httpClient,
	}
}

func (a *App) Router() http.Handler {
	return httpapi.NewRouter(httpapi.RouterConfig{
		Deployment: a.cfg.OpenAIDeployment,
	}, a.logger, a.extractor)
}
