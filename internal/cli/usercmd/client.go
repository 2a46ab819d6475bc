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

// Package usercmd provides the behaviour behind the get-token command
package usercmd

import (
	"bufio"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/xcalibyte/get-token/helpers/tracelog"
	"github.com/xcalibyte/get-token/internal/cli/settings"
	"github.com/xcalibyte/get-token/internal/cli/termui"
	"github.com/xcalibyte/get-token/internal/token"
)

// PasswordReader reads a password from the terminal without echoing it
type PasswordReader func() ([]byte, error)

// TokenClient fetches a token for the user and reports the outcome on the terminal
type TokenClient struct {
	// Settings holds the defaults from the settings file. Loaded on first use when nil.
	Settings *settings.Settings
	Log      logr.Logger

	// FetchOptions are applied after the defaults of the token fetcher
	FetchOptions []token.Option

	ui           *termui.UI
	promptUI     *termui.UI
	interactive  bool
	input        *bufio.Reader
	readPassword PasswordReader
}

// New returns a client printing to standard output. Prompts go to standard error, and
// are only shown when standard input is a terminal.
func New() *TokenClient {
	promptUI := termui.NewUI()
	promptUI.SetOutput(os.Stderr)

	return &TokenClient{
		Log:         tracelog.NewLogger().WithName("TokenClient").V(3),
		ui:          termui.NewUI(),
		promptUI:    promptUI,
		interactive: isTerminal(os.Stdin),
		input:       bufio.NewReader(os.Stdin),
		readPassword: func() ([]byte, error) {
			return term.ReadPassword(int(os.Stdin.Fd()))
		},
	}
}

// UI returns the UI used for the diagnostics and the token
func (c *TokenClient) UI() *termui.UI {
	return c.ui
}

// PromptUI returns the UI used for the prompts and the progress notes
func (c *TokenClient) PromptUI() *termui.UI {
	return c.promptUI
}

// SetInteractive overrides the terminal detection done by New
func (c *TokenClient) SetInteractive(interactive bool) {
	c.interactive = interactive
}

// SetPromptInput replaces standard input as the source of the prompted username and
// password
func (c *TokenClient) SetPromptInput(input io.Reader, readPassword PasswordReader) {
	c.input = bufio.NewReader(input)
	c.readPassword = readPassword
}

func (c *TokenClient) settings() (*settings.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	cfg, err := settings.Load()
	if err != nil {
		return nil, err
	}
	c.Settings = cfg
	return cfg, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
