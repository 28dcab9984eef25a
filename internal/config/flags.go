package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-storage-driver server storage driver (memory, postgres, redis)
//	-d database DSN
//	-redis-url redis URL
//	-local-driver origin store driver (sqlite, bolt, memory)
//	-local-path origin store file
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-s sync server base URL used by clients
//	-origin origin name of this client
//	-protocol sync protocol (replace, record)
//	-reconnect-delay delay of the reconnect timer
//	-push-delay delay between a local write and its push
//	-log-level zerolog level
//	-headless run one refresh and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var storageDriver, databaseDSN, redisURL string
	var localDriver, localPath string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var syncServer, origin, protocol string
	var reconnectDelay, pushDelay time.Duration
	var logLevel string
	var headless bool

	fs := flag.NewFlagSet("dcms-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&storageDriver, "storage-driver", "", "Server storage driver")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL")
	fs.StringVar(&localDriver, "local-driver", "", "Origin store driver")
	fs.StringVar(&localPath, "local-path", "", "Origin store path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&syncServer, "s", "", "Sync server base URL")
	fs.StringVar(&origin, "origin", "", "Origin name")
	fs.StringVar(&protocol, "protocol", "", "Sync protocol")
	fs.DurationVar(&reconnectDelay, "reconnect-delay", 0, "Reconnect delay")
	fs.DurationVar(&pushDelay, "push-delay", 0, "Push delay")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&headless, "headless", false, "Run one refresh and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Origin:        origin,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
			Headless:      headless,
		},
		Storage: Storage{
			Driver: storageDriver,
			DB:     DB{DSN: databaseDSN},
			Redis:  Redis{URL: redisURL},
			Local:  Local{Driver: localDriver, Path: localPath},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{HTTPAddress: syncServer},
		Sync: Sync{
			Protocol:       protocol,
			ReconnectDelay: reconnectDelay,
			PushDelay:      pushDelay,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(strings.Trim(host, "[]")) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
