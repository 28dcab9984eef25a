package config

import (
	"fmt"
	"time"
)

// ClientApp holds the origin identity and token settings of a client.
type ClientApp struct {
	Origin        string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	LogLevel      string
	LogFile       string
	Version       string
	Headless      bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the sync server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage selects the origin-local Resource Store.
type ClientStorage struct {
	Driver string
	Path   string
}

// ClientSync holds engine tunables.
type ClientSync struct {
	Protocol            string
	ReconnectDelay      time.Duration
	PushDelay           time.Duration
	ProbeTimeout        time.Duration
	PreserveAdminFields bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

// ClientView maps the fields relevant to the client runtime.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Origin:        cfg.App.Origin,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			LogLevel:      cfg.App.LogLevel,
			LogFile:       cfg.App.LogFile,
			Version:       cfg.App.Version,
			Headless:      cfg.App.Headless,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Driver: cfg.Storage.Local.Driver,
			Path:   cfg.Storage.Local.Path,
		},
		Sync: ClientSync{
			Protocol:            cfg.Sync.Protocol,
			ReconnectDelay:      cfg.Sync.ReconnectDelay,
			PushDelay:           cfg.Sync.PushDelay,
			ProbeTimeout:        cfg.Sync.ProbeTimeout,
			PreserveAdminFields: cfg.Sync.PreserveAdminFields,
		},
	}
}
