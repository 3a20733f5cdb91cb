package main

import (
	"log"

	"github.com/spf13/cobra"

	lib "github.com/formbridge/json-to-xml"
	"github.com/formbridge/json-to-xml/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the XML and DOCX conversion services",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		log.Printf("no config.yml loaded, using defaults: %v", err)
		config.ApplyDefaults(&config.Config)
	}
	lib.StartServers()
	lib.HandleGracefulShutdown()
	return nil
}
