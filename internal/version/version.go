// Package version contains the variable holding the command's version number.
package version

// Version contains the command's version number. The string found in the code is a
// placeholder, the release build sets it with
// -ldflags "-X github.com/xcalibyte/get-token/internal/version.Version=<tag>".
var Version = "v0.0.0-dev"
