package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig with JSON tags and the
// string-friendly Duration wrapper, so operators can keep a single
// config file alongside env/flag overrides.
type StructuredJSONConfig struct {
	Auth struct {
		ProviderURL    string `json:"provider_url"`
		ProviderAPIKey string `json:"provider_api_key"`
		JWTSecret      string `json:"jwt_secret"`
		JWTIssuer      string `json:"jwt_issuer"`
	} `json:"auth,omitempty"`

	AI struct {
		GeminiAPIKey string `json:"gemini_api_key"`
		Model        string `json:"model"`
	} `json:"ai,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			ProviderURL:    jsonCfg.Auth.ProviderURL,
			ProviderAPIKey: jsonCfg.Auth.ProviderAPIKey,
			JWTSecret:      jsonCfg.Auth.JWTSecret,
			JWTIssuer:      jsonCfg.Auth.JWTIssuer,
		},
		AI: AI{
			GeminiAPIKey: jsonCfg.AI.GeminiAPIKey,
			Model:        jsonCfg.AI.Model,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
