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

// Package token obtains an access token from the login endpoint of an API server.
// Server errors are retried with a fixed delay, every other failure ends the fetch
// at once. The outcome is returned to the caller, nothing is printed here.
package token

import (
	"fmt"
)

// Credentials identify the user and the server to log into
type Credentials struct {
	BaseURL  string
	Username string
	Password string
}

// Result of a successful fetch. The token is empty when the server did not send one.
type Result struct {
	Token    string
	Attempts int
}

// Kind classifies the ways a fetch fails
type Kind int

const (
	// Unreachable means no response was obtained from the server
	Unreachable Kind = iota + 1
	// ClientError means the server answered with a status in [400,500)
	ClientError
	// ServerError means the server answered with a status in [500,600). It is only
	// seen by retry notifications, a fetch ending this way reports RetriesExhausted.
	ServerError
	// RetriesExhausted means every attempt ended with a server error
	RetriesExhausted
	// InvalidResponse means the success body could not be decoded
	InvalidResponse
)

func (k Kind) String() string {
	switch k {
	case Unreachable:
		return "unreachable"
	case ClientError:
		return "client error"
	case ServerError:
		return "server error"
	case RetriesExhausted:
		return "retries exhausted"
	case InvalidResponse:
		return "invalid response"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is returned by Fetch for every failure other than a cancelled context
type Error struct {
	Kind       Kind
	StatusCode int
	Body       []byte
	Attempts   int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ClientError, ServerError:
		return fmt.Sprintf("login failed (%s) with status %d", e.Kind, e.StatusCode)
	case RetriesExhausted:
		return fmt.Sprintf("login failed, %d attempts ended with server errors, last status %d", e.Attempts, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("login failed (%s): %s", e.Kind, e.Err.Error())
	}
	return fmt.Sprintf("login failed (%s)", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}
