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

// Package cli contains the user-visible command of get-token. It provides the
// viper/cobra setup.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xcalibyte/get-token/helpers"
	"github.com/xcalibyte/get-token/helpers/tracelog"
	"github.com/xcalibyte/get-token/internal/cli/cmd"
	"github.com/xcalibyte/get-token/internal/cli/config"
	"github.com/xcalibyte/get-token/internal/cli/settings"
	"github.com/xcalibyte/get-token/internal/cli/usercmd"
	"github.com/xcalibyte/get-token/internal/version"
)

// NewRootCmd returns the `get-token` command, with its persistent flags bound to viper
// and the environment.
func NewRootCmd() *cobra.Command {
	rootCmd := cmd.NewTokenCmd(usercmd.New())
	rootCmd.Version = version.Version
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return helpers.InitLogger(viper.GetString("log-level"))
	}

	pf := rootCmd.PersistentFlags()
	argToEnv := map[string]string{
		"api":               "GET_TOKEN_API",
		"user":              "GET_TOKEN_USER",
		"password":          "GET_TOKEN_PASSWORD",
		"fail-on-exhausted": "GET_TOKEN_FAIL_ON_EXHAUSTED",
	}

	pf.StringP("config-file", "", settings.DefaultLocation(), "set path of the settings file")
	viper.BindPFlag("config-file", pf.Lookup("config-file"))
	argToEnv["config-file"] = "GET_TOKEN_CONFIG"

	tracelog.LoggerFlags(pf, argToEnv)
	helpers.LogLevelFlags(pf, argToEnv)

	pf.IntP("verbosity", "", 0, "Only print progress messages at or above this level (0 or 1, default 0)")
	viper.BindPFlag("verbosity", pf.Lookup("verbosity"))
	argToEnv["verbosity"] = "VERBOSITY"

	pf.BoolP("skip-ssl-verification", "", false, "Skip the verification of TLS certificates")
	viper.BindPFlag("skip-ssl-verification", pf.Lookup("skip-ssl-verification"))
	argToEnv["skip-ssl-verification"] = "SKIP_SSL_VERIFICATION"

	pf.BoolP("no-colors", "", false, "Suppress colorized output")
	viper.BindPFlag("no-colors", pf.Lookup("no-colors"))
	argToEnv["no-colors"] = "GET_TOKEN_NO_COLORS"

	config.AddEnvToUsage(rootCmd, argToEnv)

	return rootCmd
}

// Execute executes the root command.
// This is called by main.main(). Diagnostics of a failed login are printed by the
// command itself, only the exit status is left to do here.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		var exitErr *usercmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		fmt.Println(err)
		os.Exit(1)
	}
}
