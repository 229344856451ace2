package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/aguilerap-jc/thecatmanor/config"
)

var rootCmd = &cobra.Command{
	Use:   "thecatmanor",
	Short: "The Cat Manor storefront CLI",
	PersistentPreRun: func(c *cobra.Command, args []string) {
		config.LoadAppConfig()
	},
}

// Execute runs the CLI: banner, registered commands, then cobra dispatch.
func Execute() {
	figure.NewFigure("Cat Manor", "", true).Print()
	fmt.Println()

	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
