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

package token

import (
	"context"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/xcalibyte/get-token/helpers"
	"github.com/xcalibyte/get-token/helpers/tracelog"
	"github.com/xcalibyte/get-token/internal/duration"
	"github.com/xcalibyte/get-token/pkg/api/auth/v2/client"
	"github.com/xcalibyte/get-token/pkg/api/auth/v2/models"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -header ../../LICENSE_HEADER . LoginAPI
type LoginAPI interface {
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)
}

// RetryNotifyFunc is called for every attempt ending with a server error, before
// waiting for the next one
type RetryNotifyFunc func(attempt uint, err *Error)

// Fetcher logs into the API server and returns the access token
type Fetcher struct {
	api      LoginAPI
	log      logr.Logger
	attempts uint
	delay    time.Duration
	notify   RetryNotifyFunc
}

type Option func(*Fetcher)

// WithAttempts sets the maximum number of login attempts. Values below 1 mean 1.
func WithAttempts(attempts uint) Option {
	return func(f *Fetcher) {
		if attempts < 1 {
			attempts = 1
		}
		f.attempts = attempts
	}
}

// WithDelay sets the fixed wait between two attempts
func WithDelay(delay time.Duration) Option {
	return func(f *Fetcher) {
		f.delay = delay
	}
}

func WithLogger(log logr.Logger) Option {
	return func(f *Fetcher) {
		f.log = log
	}
}

func WithRetryNotify(notify RetryNotifyFunc) Option {
	return func(f *Fetcher) {
		f.notify = notify
	}
}

// New returns a fetcher using api for the login calls
func New(api LoginAPI, opts ...Option) *Fetcher {
	f := &Fetcher{
		api:      api,
		log:      tracelog.NewLogger().WithName("TokenFetcher").V(3),
		attempts: duration.RetryMax,
		delay:    duration.RetryDelay(),
		notify:   func(uint, *Error) {},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewForURL returns a fetcher talking to the auth service of the server at baseURL
func NewForURL(ctx context.Context, baseURL string, opts ...Option) *Fetcher {
	return New(client.New(ctx, baseURL), opts...)
}

// Fetch logs in with the credentials and returns the access token. The login request
// is sent again for every attempt. Only server errors are retried. When all attempts
// end with server errors the returned error has kind RetriesExhausted.
func (f *Fetcher) Fetch(ctx context.Context, creds Credentials) (Result, error) {
	log := f.log.WithName("Fetch")
	log.Info("start", "user", creds.Username, "attempts", f.attempts, "delay", f.delay)
	defer log.Info("return")

	request := models.LoginRequest{
		Username: creds.Username,
		Password: creds.Password,
	}

	result := Result{}

	retryErr := retry.Do(
		func() error {
			result.Attempts++

			response, err := f.api.Login(ctx, request)
			if err != nil {
				fetchErr := classify(err, result.Attempts)
				if fetchErr.Kind == ServerError {
					f.notify(uint(result.Attempts), fetchErr)
				}
				return fetchErr
			}

			result.Token = response.AccessToken
			return nil
		},
		retry.Attempts(f.attempts),
		retry.Delay(f.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			return ctx.Err() == nil && kindOf(err) == ServerError
		}),
		retry.OnRetry(func(n uint, err error) {
			helpers.Logger.Warnw("login attempt ended with a server error", "attempt", n+1, "error", err)
			log.V(1).Info("retrying", "attempt", n+1)
		}),
	)

	if ctx.Err() != nil {
		return result, errors.Wrap(ctx.Err(), "login aborted")
	}

	if retryErr == nil {
		log.V(1).Info("token received", "attempts", result.Attempts, "empty", result.Token == "")
		return result, nil
	}

	var fetchErr *Error
	if !errors.As(retryErr, &fetchErr) {
		return result, errors.Wrap(retryErr, "login failed")
	}

	if fetchErr.Kind == ServerError {
		fetchErr.Kind = RetriesExhausted
	}

	log.V(1).Info("login failed", "kind", fetchErr.Kind.String(), "attempts", result.Attempts)
	return result, fetchErr
}

// classify turns an error of the login client into a fetch error
func classify(err error, attempt int) *Error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		kind := ClientError
		if apiErr.ServerError() {
			kind = ServerError
		}
		return &Error{
			Kind:       kind,
			StatusCode: apiErr.StatusCode,
			Body:       apiErr.Body,
			Attempts:   attempt,
			Err:        err,
		}
	}

	var connErr *client.ConnectionError
	if errors.As(err, &connErr) {
		return &Error{Kind: Unreachable, Attempts: attempt, Err: err}
	}

	return &Error{Kind: InvalidResponse, Attempts: attempt, Err: err}
}

func kindOf(err error) Kind {
	var fetchErr *Error
	if errors.As(err, &fetchErr) {
		return fetchErr.Kind
	}
	return 0
}
