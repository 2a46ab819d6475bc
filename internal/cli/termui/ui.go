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

// Package termui prints the messages of the command for the user
package termui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/kyokomi/emoji"
	"github.com/spf13/viper"
)

type msgType int

const (
	normal msgType = iota
	exclamation
	problem
	note
)

// UI contains functionality for dealing with the user
// on the CLI
type UI struct {
	output    io.Writer
	verbosity int // Verbosity level for user messages.
}

// Message represents a piece of information we want displayed to the user
type Message struct {
	ui       *UI // For access to requested verbosity.
	level    int
	msgType  msgType
	compact  bool
	keepline bool
	plain    bool
}

// NewUI creates a new UI writing to standard output
func NewUI() *UI {
	return &UI{
		output:    color.Output,
		verbosity: verbosity(),
	}
}

// Raw writes the message as is, without decoration or verbosity check
func (u *UI) Raw(message string) {
	fmt.Fprintf(u.output, "%s", message)
}

func (u *UI) SetOutput(output io.Writer) {
	if output == nil {
		output = color.Output
	}
	u.output = output
}

// Normal returns a UIMessage that prints a normal message
func (u *UI) Normal() *Message {
	return &Message{ui: u, msgType: normal}
}

// Exclamation returns a UIMessage that prints an exclamation message
func (u *UI) Exclamation() *Message {
	return &Message{ui: u, msgType: exclamation}
}

// Note returns a UIMessage that prints a note message
func (u *UI) Note() *Message {
	return &Message{ui: u, msgType: note}
}

// Problem returns a Message that prints a message that describes a problem
func (u *UI) Problem() *Message {
	return &Message{ui: u, msgType: problem}
}

// Msgf prints a formatted message on the CLI
func (u *Message) Msgf(message string, a ...interface{}) {
	u.Msg(fmt.Sprintf(message, a...))
}

// Msg prints a message on the CLI, resolving emoji as it goes
func (u *Message) Msg(message string) {
	// Ignore messages higher than the requested verbosity.
	if u.level > u.ui.verbosity {
		return
	}

	if !u.plain {
		message = emoji.Sprint(message)
	}

	// Print a newline before starting output, if not compact.
	if message != "" && !u.compact {
		fmt.Fprintln(u.ui.output)
	}

	if !u.keepline {
		message += "\n"
	}

	if !u.plain {
		switch u.msgType {
		case normal:
		case exclamation:
			message = emoji.Sprintf(":warning: %s", message)
			message = color.YellowString(message)
		case note:
			message = emoji.Sprintf(":ship: %s", message)
			message = color.BlueString(message)
		case problem:
			message = emoji.Sprintf(":cross_mark: %s", message)
			message = color.RedString(message)
		}
	}

	fmt.Fprintf(u.ui.output, "%s", message)
}

// V incrementally modifies the message level.
func (u *Message) V(delta int) *Message {
	u.level += delta
	return u
}

// KeepLine disables the printing of a newline after a message output
func (u *Message) KeepLine() *Message {
	u.keepline = true
	return u
}

// Compact disables the printing of a newline before starting output
func (u *Message) Compact() *Message {
	u.compact = true
	return u
}

// Plain disables emoji resolution and decoration. Used for text coming from the
// server, which is printed as received.
func (u *Message) Plain() *Message {
	u.plain = true
	return u
}

// verbosity returns the verbosity argument
func verbosity() int {
	return viper.GetInt("verbosity")
}
