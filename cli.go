//go:build cli
// +build cli

package main

import (
	_ "github.com/aguilerap-jc/thecatmanor/custom"

	"github.com/aguilerap-jc/thecatmanor/cmd"
	"github.com/aguilerap-jc/thecatmanor/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
