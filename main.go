package main

import (
	"github.com/xcalibyte/get-token/internal/cli"
)

func main() {
	cli.Execute()
}
