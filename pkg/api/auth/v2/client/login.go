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
	"context"

	"github.com/xcalibyte/get-token/pkg/api/auth/v2/models"
)

// Login sends the credentials to the login endpoint and returns the decoded response.
// No authorization header is sent.
func (c *Client) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	log := c.log.WithName("Login")
	log.Info("start", "request", request.String())
	defer log.Info("return")

	return Post(ctx, c, "login", request, models.LoginResponse{})
}
