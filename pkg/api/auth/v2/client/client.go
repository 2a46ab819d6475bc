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

// Package client connects to the login endpoint of the API server's auth service
package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-logr/logr"

	"github.com/xcalibyte/get-token/helpers/tracelog"
)

// Root is the path of the auth service API, relative to the server's base URL
const Root = "/api/auth_service/v2"

// Client provides functionality for talking to the auth service of an API
// server
type Client struct {
	log        logr.Logger
	URL        string
	HttpClient *http.Client
}

// New returns a new auth service client for the server at baseURL
func New(ctx context.Context, baseURL string) *Client {
	log := tracelog.NewLogger().WithName("AuthServiceClient").V(3)
	log.Info("new client", "url", baseURL)

	return &Client{
		log:        log,
		URL:        strings.TrimSuffix(baseURL, "/"),
		HttpClient: http.DefaultClient,
	}
}
