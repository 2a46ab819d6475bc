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
	"strings"
)

func (c *TokenClient) askUsername() (string, error) {
	var username string
	var err error

	for username == "" {
		c.promptUI.Normal().Compact().KeepLine().Msg("Username: ")
		username, err = c.readUserInput()
		if err != nil {
			return "", err
		}
	}

	return username, nil
}

func (c *TokenClient) askPassword() (string, error) {
	var password string

	for password == "" {
		c.promptUI.Normal().Compact().KeepLine().Msg("Password: ")

		bytesPassword, err := c.readPassword()
		if err != nil {
			return "", err
		}
		c.promptUI.Raw("\n")

		password = strings.TrimSpace(string(bytesPassword))
	}

	return password, nil
}

func (c *TokenClient) readUserInput() (string, error) {
	s, err := c.input.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}
