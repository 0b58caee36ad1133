package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/rewind/config"
	"github.com/dhamidi/rewind/ui"
)

func newUICmd() *cobra.Command {
	var addr string
	var maxDepth int
	var configPath string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the web playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Addr
			}
			if !cmd.Flags().Changed("max-depth") {
				maxDepth = cfg.MaxDepth
			}

			server, err := ui.NewServer(maxDepth)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Printf("Starting playground at http://%s\n", displayAddr)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", config.Default().Addr, "address to listen on")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "recursion budget per request (0 means use the configured value)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFile+")")

	return cmd
}
