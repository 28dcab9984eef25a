package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are written as strings such as "5s".
type StructuredJSONConfig struct {
	App struct {
		Version       string   `json:"version"`
		Origin        string   `json:"origin"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		LogLevel      string   `json:"log_level"`
		LogFile       string   `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DB     struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Redis struct {
			URL string `json:"url"`
		} `json:"redis,omitempty"`
		Local struct {
			Driver string `json:"driver"`
			Path   string `json:"path"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Sync struct {
		Protocol            string   `json:"protocol"`
		ReconnectDelay      Duration `json:"reconnect_delay"`
		PushDelay           Duration `json:"push_delay"`
		ProbeTimeout        Duration `json:"probe_timeout"`
		PreserveAdminFields bool     `json:"preserve_admin_fields"`
	} `json:"sync,omitempty"`

	Workers struct {
		PurgeInterval Duration `json:"purge_interval"`
		TombstoneTTL  Duration `json:"tombstone_ttl"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:       j.App.Version,
			Origin:        j.App.Origin,
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			LogLevel:      j.App.LogLevel,
			LogFile:       j.App.LogFile,
		},
		Storage: Storage{
			Driver: j.Storage.Driver,
			DB:     DB{DSN: j.Storage.DB.DSN},
			Redis:  Redis{URL: j.Storage.Redis.URL},
			Local:  Local{Driver: j.Storage.Local.Driver, Path: j.Storage.Local.Path},
		},
		Server: Server{
			HTTPAddress:     j.Server.HTTPAddress,
			GRPCAddress:     j.Server.GRPCAddress,
			RequestTimeout:  time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(j.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Sync: Sync{
			Protocol:            j.Sync.Protocol,
			ReconnectDelay:      time.Duration(j.Sync.ReconnectDelay),
			PushDelay:           time.Duration(j.Sync.PushDelay),
			ProbeTimeout:        time.Duration(j.Sync.ProbeTimeout),
			PreserveAdminFields: j.Sync.PreserveAdminFields,
		},
		Workers: Workers{
			PurgeInterval: time.Duration(j.Workers.PurgeInterval),
			TombstoneTTL:  time.Duration(j.Workers.TombstoneTTL),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
