//go:build tools

package main

// Pins the fake generator used by the go:generate directives.
import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
