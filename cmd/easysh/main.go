package main

import (
	"github.com/easysh/easysh/pkg/cli"
)

func main() {
	cli.Execute()
}
