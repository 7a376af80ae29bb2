// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/base-converter/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web converter page",
	Long: `Serve hosts the single-page converter. Each browser tab keeps a websocket
session whose state is updated on every keystroke. The page also exposes
/api/convert and /api/bases for scripts, plus robots.txt and sitemap.xml.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	srv, err := server.New(cfg.Serve)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Serve.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		}
	}()

	fmt.Fprintf(os.Stderr, "baseconv %s serving %s (canonical %s)\n", version, cfg.Serve.Addr, cfg.Serve.SiteURL)
	return srv.Start()
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("site-url", "", "canonical public URL for SEO metadata")
	serveCmd.Flags().Bool("allow-all-origins", false, "accept cross-origin API and websocket requests (dev mode)")

	viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("serve.site_url", serveCmd.Flags().Lookup("site-url"))
	viper.BindPFlag("serve.allow_all_origins", serveCmd.Flags().Lookup("allow-all-origins"))

	rootCmd.AddCommand(serveCmd)
}
