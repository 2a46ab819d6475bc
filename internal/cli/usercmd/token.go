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

package usercmd

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"github.com/xcalibyte/get-token/helpers"
	"github.com/xcalibyte/get-token/internal/duration"
	"github.com/xcalibyte/get-token/internal/token"
	"github.com/xcalibyte/get-token/pkg/api/auth/v2/client"
)

const (
	msgUnreachable     = "server cannot be reached, please check whether xcal-server is available or network is reachable"
	msgErrorBody       = "login failed, error message: %s"
	msgClientError     = "login failed, please check whether xcal-server is available or your username password is correct"
	msgServerError     = "login failed, please check whether xcal-server is available"
	msgInvalidResponse = "login failed, cannot decode the server response: %s"
	msgExhausted       = "login failed, xcal-server kept failing after %d attempts"
	msgLoggingIn       = "logging into %s as %s"
)

// PrintToken logs into the server and prints the access token as the last line of the
// output. Empty credentials are completed from the settings file, then from a prompt
// when allowed and standard input is a terminal. When the server keeps failing an
// empty token is printed, unless failOnExhausted is set.
func (c *TokenClient) PrintToken(ctx context.Context, creds token.Credentials, failOnExhausted, prompt bool) error {
	log := c.Log.WithName("PrintToken")
	log.Info("start")
	defer log.Info("return")

	cfg, err := c.settings()
	if err != nil {
		return errors.Wrap(err, "error loading settings")
	}
	cfg.Apply()

	if creds.BaseURL == "" {
		creds.BaseURL = cfg.API
	}
	if creds.Username == "" {
		creds.Username = cfg.User
	}
	if creds.Password == "" {
		creds.Password = cfg.Password
	}

	if prompt && c.interactive {
		if creds.Username == "" {
			creds.Username, err = c.askUsername()
			if err != nil {
				return errors.Wrap(err, "error while asking for username")
			}
		}
		if creds.Password == "" {
			creds.Password, err = c.askPassword()
			if err != nil {
				return errors.Wrap(err, "error while asking for password")
			}
		}
	}

	log.Info("credentials", "api", creds.BaseURL, "user", creds.Username)
	c.promptUI.Note().Compact().V(1).Msgf(msgLoggingIn, creds.BaseURL, creds.Username)

	api := client.New(ctx, creds.BaseURL)
	api.HttpClient = cfg.HTTPClient()

	opts := []token.Option{token.WithRetryNotify(c.reportServerError)}
	if helpers.Logger.Desugar().Core().Enabled(zapcore.InfoLevel) {
		opts = append(opts, token.WithLogger(helpers.LoggerToLogr().WithName("TokenFetcher")))
	}
	opts = append(opts, c.FetchOptions...)
	fetcher := token.New(api, opts...)

	result, err := fetcher.Fetch(ctx, creds)
	if err != nil {
		return c.reportFailure(err, failOnExhausted)
	}

	log.Info("token received", "attempts", result.Attempts)
	c.ui.Raw(result.Token + "\n")
	return nil
}

func (c *TokenClient) reportServerError(_ uint, err *token.Error) {
	c.ui.Normal().Compact().Plain().Msgf(msgErrorBody, string(err.Body))
	c.ui.Exclamation().Compact().Msg(msgServerError)
}

func (c *TokenClient) reportFailure(err error, failOnExhausted bool) error {
	var fetchErr *token.Error
	if !errors.As(err, &fetchErr) {
		return err
	}

	switch fetchErr.Kind {
	case token.Unreachable:
		c.ui.Problem().Compact().Msg(msgUnreachable)
	case token.ClientError:
		c.ui.Normal().Compact().Plain().Msgf(msgErrorBody, string(fetchErr.Body))
		c.ui.Problem().Compact().Msg(msgClientError)
	case token.InvalidResponse:
		c.ui.Problem().Compact().Plain().Msgf(msgInvalidResponse, fetchErr.Err.Error())
	case token.RetriesExhausted:
		if !failOnExhausted {
			// the server errors were reported as they happened
			c.ui.Raw("\n")
			return nil
		}
		c.ui.Problem().Compact().Msgf(msgExhausted, duration.RetryMax)
	}

	return &ExitError{Code: 1, Err: err}
}
