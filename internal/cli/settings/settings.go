// Copyright © 2021 - 2023 SUSE LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//     http://www.apache.org/licenses/LICENSE-2.0
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package settings reads the optional settings file holding defaults for the
// server address and the credentials. The file is never written.
package settings

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/xcalibyte/get-token/helpers/mask"
	"github.com/xcalibyte/get-token/helpers/tracelog"
)

var (
	defaultSettingsFilePath = "xcal/get-token.yaml"
)

// Settings represents the get-token settings
type Settings struct {
	API      string `mapstructure:"api"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Certs    string `mapstructure:"certs"` // PEM encoded CA certificates to trust
	Colors   bool   `mapstructure:"colors"`

	Location string // Origin of data, file which was loaded
}

// DefaultLocation returns the standard location for the settings file. The directory
// is not created, the file is only ever read.
func DefaultLocation() string {
	return filepath.Join(xdg.ConfigHome, defaultSettingsFilePath)
}

// Load loads the settings from the location given by the config-file flag
func Load() (*Settings, error) {
	return LoadFrom(location())
}

// LoadFrom loads the settings from a specific file. A missing file yields the defaults.
func LoadFrom(file string) (*Settings, error) {
	cfg := new(Settings)

	log := tracelog.NewLogger().WithName(fmt.Sprintf("Settings-%p", cfg)).V(3)
	log.Info("Loading", "from", file)

	v := viper.New()

	v.SetConfigType("yaml")
	v.SetConfigFile(file)

	v.SetDefault("api", "")
	v.SetDefault("user", "")
	v.SetDefault("password", "")
	v.SetDefault("certs", "")
	v.SetDefault("colors", true)

	settingsExists, err := fileExists(file)
	if err != nil {
		return nil, errors.Wrapf(err, "filesystem error")
	}

	if settingsExists {
		cfg.Location = file
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read settings file '%s'", file)
		}
	}

	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal settings file")
	}

	log.Info("Loaded", "value", cfg.String())
	return cfg, nil
}

// String generates a string representation of the settings (for debugging). The
// password is masked.
func (c *Settings) String() string {
	return fmt.Sprintf(
		"api=(%s), user=(%s), pass=(%s), certs=(%d bytes), color=(%v), @(%s)",
		c.API, c.User, mask.MaskValue(c.Password), len(c.Certs), c.Colors, c.Location)
}

// Apply sets up the colors from the settings and the no-colors flag
func (c *Settings) Apply() {
	if !c.Colors || viper.GetBool("no-colors") {
		color.NoColor = true
	}
}

// HTTPClient returns a client with its own transport, trusting the certs of the
// settings in addition to the system pool. Certificate verification is disabled by the
// skip-ssl-verification flag. The default transport is left untouched.
func (c *Settings) HTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	tlsConfig := &tls.Config{}
	if c.Certs != "" {
		tlsConfig.RootCAs = localTrust(c.Certs)
	}
	if viper.GetBool("skip-ssl-verification") {
		tlsConfig.InsecureSkipVerify = true // nolint:gosec // Controlled by user option
	}
	transport.TLSClientConfig = tlsConfig

	return &http.Client{Transport: transport}
}

func localTrust(certs string) *x509.CertPool {
	// Get the SystemCertPool, continue with an empty pool on error
	rootCAs, _ := x509.SystemCertPool()
	if rootCAs == nil {
		rootCAs = x509.NewCertPool()
	}

	rootCAs.AppendCertsFromPEM([]byte(certs))
	return rootCAs
}

func location() string {
	return viper.GetString("config-file")
}

func fileExists(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
