// Copyright 2026 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds winwifi's settings. Values come from, in order of
// precedence, command-line flags, WINWIFI_* environment variables, an
// optional config file, and the defaults below.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/u-root/winwifi/pkg/wlan"
)

// Keys.
const (
	KeyAPIVersion    = "api.version"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	KeyOutputFormat  = "output.format"
	KeyInterfaceGUID = "interface"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// New returns a Viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAPIVersion, int(wlan.DefaultVersion))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyOutputFormat, FormatText)
	v.SetDefault(KeyInterfaceGUID, "")

	v.SetEnvPrefix("winwifi")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges the config file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// APIVersion returns the configured WLAN client version.
func APIVersion(v *viper.Viper) (wlan.Version, error) {
	ver := wlan.Version(v.GetUint32(KeyAPIVersion))
	if !ver.Valid() {
		return 0, fmt.Errorf("invalid %s %q: must be 1 or 2", KeyAPIVersion, v.GetString(KeyAPIVersion))
	}
	return ver, nil
}

// OutputFormat returns the configured output format.
func OutputFormat(v *viper.Viper) (string, error) {
	switch f := strings.ToLower(v.GetString(KeyOutputFormat)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid %s %q: must be text, json or yaml", KeyOutputFormat, f)
	}
}

// Interface returns the configured interface GUID, if any.
func Interface(v *viper.Viper) (wlan.GUID, bool, error) {
	s := v.GetString(KeyInterfaceGUID)
	if s == "" {
		return wlan.GUID{}, false, nil
	}
	g, err := wlan.ParseGUID(s)
	if err != nil {
		return wlan.GUID{}, false, err
	}
	return g, true, nil
}
