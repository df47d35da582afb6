// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		DataPath string `json:"data_path"`
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver       string `json:"driver"`
		RegistryPath string `json:"registry_path"`
		DB           struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
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
		App: App{
			DataPath: jsonCfg.App.DataPath,
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Storage: Storage{
			Driver:       jsonCfg.Storage.Driver,
			RegistryPath: jsonCfg.Storage.RegistryPath,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
