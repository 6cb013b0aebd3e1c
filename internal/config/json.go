package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	Source struct {
		SpaceID       string `json:"space_id"`
		Environment   string `json:"environment"`
		DeliveryToken string `json:"delivery_token"`
		Host          string `json:"host"`
	} `json:"source,omitempty"`

	Destination struct {
		SpaceID         string `json:"space_id"`
		Environment     string `json:"environment"`
		ManagementToken string `json:"management_token"`
		Host            string `json:"host"`
	} `json:"destination,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     int      `json:"retry_count"`
		ProxyURL       string   `json:"proxy"`
		PageSize       int      `json:"page_size"`
	} `json:"adapter,omitempty"`

	Sync struct {
		TokenFile    string   `json:"token_file"`
		ErrorLogFile string   `json:"error_log_file"`
		InitialToken string   `json:"token"`
		Concurrency  int      `json:"concurrency"`
		Interval     Duration `json:"interval"`
	} `json:"sync,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
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
		Source: Source{
			SpaceID:       jsonCfg.Source.SpaceID,
			Environment:   jsonCfg.Source.Environment,
			DeliveryToken: jsonCfg.Source.DeliveryToken,
			Host:          jsonCfg.Source.Host,
		},
		Destination: Destination{
			SpaceID:         jsonCfg.Destination.SpaceID,
			Environment:     jsonCfg.Destination.Environment,
			ManagementToken: jsonCfg.Destination.ManagementToken,
			Host:            jsonCfg.Destination.Host,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:     jsonCfg.Adapter.RetryCount,
			ProxyURL:       jsonCfg.Adapter.ProxyURL,
			PageSize:       jsonCfg.Adapter.PageSize,
		},
		Sync: Sync{
			TokenFile:    jsonCfg.Sync.TokenFile,
			ErrorLogFile: jsonCfg.Sync.ErrorLogFile,
			InitialToken: jsonCfg.Sync.InitialToken,
			Concurrency:  jsonCfg.Sync.Concurrency,
			Interval:     time.Duration(jsonCfg.Sync.Interval),
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
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
