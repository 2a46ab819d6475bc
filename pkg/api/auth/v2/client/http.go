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

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// APIError is returned when the server answered with a status in [400,600)
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server responded with status %d: %s", e.StatusCode, string(e.Body))
}

// ClientError is true for statuses in [400,500)
func (e *APIError) ClientError() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

// ServerError is true for statuses in [500,600)
func (e *APIError) ServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError && e.StatusCode < 600
}

// ConnectionError is returned when no response could be obtained from the server
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot reach '%s': %s", e.URL, e.Err.Error())
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func Post[T any](ctx context.Context, c *Client, endpoint string, request any, response T) (T, error) {
	return Do(ctx, c, endpoint, http.MethodPost, request, response)
}

// Do sends a JSON request to the endpoint, relative to the auth service root, and decodes
// the JSON response into response. Request bodies are not logged, they carry credentials.
func Do[T any](ctx context.Context, c *Client, endpoint string, method string, requestBody any, response T) (T, error) {
	url := fmt.Sprintf("%s%s/%s", c.URL, Root, endpoint)

	c.log.V(1).Info("sending "+method+" request", "endpoint", endpoint, "url", url)

	var bodyBytes []byte
	if requestBody != nil {
		b, err := json.Marshal(requestBody)
		if err != nil {
			return response, errors.Wrap(err, "encoding JSON requestBody")
		}
		bodyBytes = b
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return response, &ConnectionError{URL: url, Err: errors.Wrap(err, "building request")}
	}

	request.Header.Set("Content-Type", "application/json")

	reqLog := requestLogger(c.log, request)

	httpResponse, err := c.HttpClient.Do(request)
	if err != nil {
		return response, &ConnectionError{URL: url, Err: errors.Wrap(err, "making the request")}
	}
	reqLog.V(1).Info("request finished")

	// the server returned an error
	if httpResponse.StatusCode >= http.StatusBadRequest && httpResponse.StatusCode < 600 {
		return response, handleError(c.log, httpResponse)
	}

	// anything else is decoded as a login response
	return handleJSONResponse(c.log, httpResponse, response)
}

func handleError(logger logr.Logger, response *http.Response) error {
	defer response.Body.Close()

	bodyBytes, err := io.ReadAll(response.Body)

	if logger.V(5).Enabled() {
		logger = logger.WithValues("body", string(bodyBytes))
	}

	if err != nil {
		logger.Error(err, "failed to read response body")
		return errors.Wrap(err, "reading response body")
	}

	apiError := &APIError{
		StatusCode: response.StatusCode,
		Body:       bodyBytes,
	}

	logger.V(1).Info("response is an error", "status", response.StatusCode)

	return apiError
}

func handleJSONResponse[T any](logger logr.Logger, httpResponse *http.Response, response T) (T, error) {
	defer httpResponse.Body.Close()

	bodyBytes, err := io.ReadAll(httpResponse.Body)
	respLog := responseLogger(logger, httpResponse, string(bodyBytes))
	if err != nil {
		respLog.V(1).Error(err, "failed to read response body")
		return response, errors.Wrap(err, "reading response body")
	}

	respLog.V(1).Info("response received", "status", httpResponse.StatusCode)

	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		return response, errors.Wrap(err, "decoding JSON response")
	}

	logger.V(1).Info("response decoded")

	return response, nil
}

func requestLogger(log logr.Logger, request *http.Request) logr.Logger {
	if log.V(5).Enabled() {
		log = log.WithValues(
			"method", request.Method,
			"uri", request.URL.String(),
			"header", request.Header,
		)
	}
	return log
}

func responseLogger(log logr.Logger, response *http.Response, body string) logr.Logger {
	log = log.WithValues("status", response.StatusCode)

	if log.V(5).Enabled() {
		log = log.WithValues(
			"body", body,
			"header", response.Header,
		)
		if response.TLS != nil {
			log = log.WithValues("TLSServerName", response.TLS.ServerName)
		}
	}

	return log
}
