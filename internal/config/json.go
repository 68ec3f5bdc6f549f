package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

var errUnsupportedDuration = errors.New("duration must be a string like \"15m\" or a number of nanoseconds")

// fileConfig is the layout of the JSON config file. Durations are written
// as Go duration strings.
type fileConfig struct {
	App       fileApp       `json:"app"`
	Storage   fileStorage   `json:"storage"`
	Server    fileServer    `json:"server"`
	ImageHost fileImageHost `json:"image_host"`
}

type fileApp struct {
	TokenSignKey       string   `json:"token_sign_key"`
	TokenIssuer        string   `json:"token_issuer"`
	TokenDuration      Duration `json:"token_duration"`
	ResetTokenDuration Duration `json:"reset_token_duration"`
	PasswordHashCost   int      `json:"password_hash_cost"`
	Environment        string   `json:"environment"`
	Version            string   `json:"version"`
	LogLevel           string   `json:"log_level"`
}

type fileStorage struct {
	DB struct {
		DSN string `json:"dsn"`
	} `json:"db"`
	TokensBackend string    `json:"tokens_backend"`
	Redis         fileRedis `json:"redis"`
}

type fileRedis struct {
	Address   string   `json:"address"`
	Password  string   `json:"password"`
	DB        int      `json:"db"`
	Retention Duration `json:"retention"`
}

type fileServer struct {
	HTTPAddress    string   `json:"http_address"`
	RequestTimeout Duration `json:"request_timeout"`
}

type fileImageHost struct {
	Provider   string     `json:"provider"`
	Timeout    Duration   `json:"timeout"`
	Cloudinary Cloudinary `json:"cloudinary"`
	S3         S3         `json:"s3"`
}

func (f fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:       f.App.TokenSignKey,
			TokenIssuer:        f.App.TokenIssuer,
			TokenDuration:      time.Duration(f.App.TokenDuration),
			ResetTokenDuration: time.Duration(f.App.ResetTokenDuration),
			PasswordHashCost:   f.App.PasswordHashCost,
			Environment:        f.App.Environment,
			Version:            f.App.Version,
			LogLevel:           f.App.LogLevel,
		},
		Storage: Storage{
			DB:            DB{DSN: f.Storage.DB.DSN},
			TokensBackend: f.Storage.TokensBackend,
			Redis: Redis{
				Address:   f.Storage.Redis.Address,
				Password:  f.Storage.Redis.Password,
				DB:        f.Storage.Redis.DB,
				Retention: time.Duration(f.Storage.Redis.Retention),
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
		},
		ImageHost: ImageHost{
			Provider:   f.ImageHost.Provider,
			Timeout:    time.Duration(f.ImageHost.Timeout),
			Cloudinary: f.ImageHost.Cloudinary,
			S3:         f.ImageHost.S3,
		},
	}
}

// parseJSON reads the config file at path. Unknown keys are rejected so
// that a misspelled setting fails startup instead of being ignored.
// The file cannot point to another file: JSONFilePath is always empty.
func parseJSON(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()

	var fc fileConfig
	if err := decoder.Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs from %s: %w", path, err)
	}

	return fc.toStructured(), nil
}

// Duration is a time.Duration read from JSON either as a duration string
// ("1h", "30s") or as an integer number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(v)
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	default:
		return errUnsupportedDuration
	}

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
