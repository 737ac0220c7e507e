// Package cmd implements the htmlattrs command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/heathj/htmlattrs/config"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "htmlattrs",
		Short:         "Apply HTML content attributes through element hook chains",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (toml, yaml or json)")

	loadConfig := func() (config.Config, error) {
		c, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, err
		}
		return c, c.ApplyLogging()
	}

	root.AddCommand(newLoadCommand(loadConfig))
	root.AddCommand(newDatasetCommand())
	return root
}
