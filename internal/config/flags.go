// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags keeps the values bound to a flag set until the command line has been
// parsed.
type Flags struct {
	cfg           StructuredConfig
	serverAddress NetAddress
}

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-a/--address        status API address in format [host]:[port]
//	-b/--bridge         media-server bridge base URL
//	--request-timeout   bridge request timeout (e.g. "30s")
//	-d/--dsn            database DSN for the sqlite/postgres drivers
//	--driver            storage driver: file, sqlite, postgres
//	--registry          registry document path (file driver)
//	--data-path         mirror documents root directory
//	--sync-interval     daemon sync interval (e.g. "5m")
//	--log-level         log level
//	--log-file          log file for CLI commands
//	-c/--config         json file path with configs
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.serverAddress, "address", "a", "Status API net address host:port")
	fs.StringVarP(&f.cfg.Adapter.HTTPAddress, "bridge", "b", "", "Media-server bridge base URL")
	fs.DurationVar(&f.cfg.Adapter.RequestTimeout, "request-timeout", 0, "Bridge request timeout (e.g. 30s)")
	fs.StringVarP(&f.cfg.Storage.DB.DSN, "dsn", "d", "", "Database DSN")
	fs.StringVar(&f.cfg.Storage.Driver, "driver", "", "Storage driver: file, sqlite or postgres")
	fs.StringVar(&f.cfg.Storage.RegistryPath, "registry", "", "Registry file path")
	fs.StringVar(&f.cfg.App.DataPath, "data-path", "", "Mirror data directory")
	fs.DurationVar(&f.cfg.Workers.SyncInterval, "sync-interval", 0, "Daemon sync interval (e.g. 5m)")
	fs.StringVar(&f.cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&f.cfg.App.LogFile, "log-file", "", "Log file path")
	fs.StringVarP(&f.cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return f
}

// Config returns the values collected from the parsed command line.
func (f *Flags) Config() *StructuredConfig {
	cfg := f.cfg
	cfg.Server.HTTPAddress = f.serverAddress.String()
	return &cfg
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when it is unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
