// Package main is the entry point for the docmd CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/docmd/docmd/config"
	"github.com/docmd/docmd/pkg/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgPath string
	cfg     *config.Config
	log     logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "docmd",
	Short: "Convert PDF and DOCX documents to cleaned Markdown",
	Long: `docmd converts binary document formats (PDF, DOCX) into cleaned Markdown.
Parsing is delegated to external engines; docmd dispatches on file extension,
strips inline base64 image payloads, and normalizes the resulting text.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Log.Level = lvl
		}
		log, err = logger.NewLogger(
			logger.WithLevel(cfg.Log.Level),
			logger.WithEncoding(cfg.Log.Encoding),
			logger.WithOutputPaths(cfg.Log.OutputPaths),
		)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().String("log-level", "", "override log level (debug, info, warn, error)")
}

func main() {
	err := rootCmd.Execute()
	if log != nil {
		_ = log.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}
