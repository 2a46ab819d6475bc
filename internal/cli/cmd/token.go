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

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xcalibyte/get-token/internal/token"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -header ../../../LICENSE_HEADER . TokenService
type TokenService interface {
	PrintToken(ctx context.Context, creds token.Credentials, failOnExhausted, prompt bool) error
}

// NewTokenCmd returns the 'get-token' command. The credential flags are bound in viper,
// so their environment variables apply when a flag is not given.
func NewTokenCmd(client TokenService) *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "get-token",
		Short: "Login to the API server and print an access token",
		Long: `get-token logs into the auth service of the API server with the given user and
prints the access token it returns. Server errors are retried, client errors and
unreachable servers end the command with exit status 1.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			creds := token.Credentials{
				BaseURL:  viper.GetString("api"),
				Username: viper.GetString("user"),
				Password: viper.GetString("password"),
			}

			failOnExhausted := viper.GetBool("fail-on-exhausted")

			noPrompt, err := cmd.Flags().GetBool("no-prompt")
			if err != nil {
				return err
			}

			return client.PrintToken(cmd.Context(), creds, failOnExhausted, !noPrompt)
		},
	}

	flags := tokenCmd.Flags()

	flags.StringP("api", "i", "", "api server url, like http://127.0.0.1:80")
	bindFlag(tokenCmd, "api")

	flags.StringP("user", "u", "", "server username")
	bindFlag(tokenCmd, "user")

	flags.StringP("password", "p", "", "server password")
	bindFlag(tokenCmd, "password")

	flags.Bool("fail-on-exhausted", false, "exit with status 1 instead of printing an empty token when the server keeps failing")
	bindFlag(tokenCmd, "fail-on-exhausted")

	flags.Bool("no-prompt", false, "never ask for a missing username or password")

	return tokenCmd
}
