package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

const flagSetName = "go-blog-server"

var (
	errAddressFormat = errors.New("address must be in the form host:port")
	errPortRange     = errors.New("port must be between 1 and 65535")
	errHostInvalid   = errors.New("host must be localhost or an IP address")
)

// NetAddress is a host:port pair accepted by the -a flag.
type NetAddress struct {
	Host string
	Port int
}

// String renders the address back to host:port. An unset address renders
// as the empty string so that it does not override other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces), "localhost"
// or a literal IPv4/IPv6 address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errHostInvalid
	}

	a.Host = host
	a.Port = port
	return nil
}

// parseFlags reads the command line into a partial config. Only flags that
// were given produce non-zero fields.
//
//	-a                     listen address host:port
//	-d                     database DSN
//	-c, -config            JSON config file
//	-token-sign-key        session signing secret
//	-token-issuer          session "iss" claim
//	-token-duration        session lifetime (168h)
//	-reset-token-duration  reset token lifetime (15m)
//	-password-hash-cost    bcrypt cost
//	-request-timeout       per-request deadline (30s)
//	-env                   development | production
//	-log-level             debug | info | warn | error
//	-tokens-backend        db | redis
//	-redis-address         redis host:port
//	-image-host            cloudinary | s3
func parseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	var (
		cfg           StructuredConfig
		serverAddress NetAddress
	)

	fs := flag.NewFlagSet(flagSetName, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	fs.Var(&serverAddress, "a", "listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")

	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "session signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "session token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "session lifetime, e.g. 168h")
	fs.DurationVar(&cfg.App.ResetTokenDuration, "reset-token-duration", 0, "reset token lifetime, e.g. 15m")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "bcrypt cost for new passwords")
	fs.StringVar(&cfg.App.Environment, "env", "", "development or production")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "debug, info, warn or error")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request deadline, e.g. 30s")

	fs.StringVar(&cfg.Storage.TokensBackend, "tokens-backend", "", "reset token store: db or redis")
	fs.StringVar(&cfg.Storage.Redis.Address, "redis-address", "", "redis address host:port")

	fs.StringVar(&cfg.ImageHost.Provider, "image-host", "", "avatar image host: cloudinary or s3")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Server.HTTPAddress = serverAddress.String()

	return &cfg, nil
}
