package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/marcus/codenest/internal/config"
	"github.com/marcus/codenest/internal/content"
	"github.com/marcus/codenest/internal/output"
	"github.com/marcus/codenest/internal/serve"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page over HTTP",
	Long: `Serve the Code Nest landing page at / over HTTP.

Each request renders a fresh page. Add ?path=<title> to open a learning
path overlay, for example /?path=Trees.

Address and port come from .codenest/config.json, then CODENEST_ADDR and
CODENEST_PORT (also read from .env), then the flags below.

If the port is 0 (the default), a random available port is assigned.
The actual port is written to .codenest/serve-port for discovery.`,
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE:    runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	addServeFlags(serveCmd.Flags())
}

func addServeFlags(fs *pflag.FlagSet) {
	fs.IntP("port", "p", 0, "Port to listen on (0 = auto-assign)")
	fs.StringP("addr", "a", config.DefaultAddr, "Address to bind to")
}

// serveConfig merges the config file, environment and flags.
func serveConfig(fs *pflag.FlagSet, dir string) (serve.ServeConfig, error) {
	cfg, err := config.LoadWithEnv(dir)
	if err != nil {
		return serve.ServeConfig{}, fmt.Errorf("load config: %w", err)
	}
	sc := serve.ServeConfig{Addr: cfg.Serve.Addr, Port: cfg.Serve.Port}
	if fs.Changed("addr") {
		sc.Addr, _ = fs.GetString("addr")
	}
	if fs.Changed("port") {
		sc.Port, _ = fs.GetInt("port")
	}
	return sc, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	dir := getBaseDir()

	sc, err := serveConfig(cmd.Flags(), dir)
	if err != nil {
		return err
	}
	catalog, err := content.Default()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := serve.NewServer(catalog, sc)

	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	// Get actual port (may differ from requested if port was 0)
	actualPort := ln.Addr().(*net.TCPAddr).Port

	instanceID, err := serve.GenerateInstanceID()
	if err != nil {
		ln.Close()
		return err
	}

	portInfo := &serve.PortInfo{
		Addr:       sc.Addr,
		Port:       actualPort,
		PID:        os.Getpid(),
		StartedAt:  time.Now(),
		InstanceID: instanceID,
	}
	if err := serve.WritePortFile(dir, portInfo); err != nil {
		ln.Close()
		return fmt.Errorf("write port file: %w", err)
	}
	defer func() { _ = serve.DeletePortFile(dir) }()

	output.Success(os.Stderr, "codenest serve listening on %s", portInfo.URL())
	fmt.Fprintf(os.Stderr, "  base dir:   %s\n", dir)
	fmt.Fprintf(os.Stderr, "  instance:   %s\n", instanceID)
	fmt.Fprintf(os.Stderr, "  port file:  %s\n", filepath.Join(dir, ".codenest", "serve-port"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gctx, ln)
	})
	g.Go(func() error {
		waitHealthy(gctx, portInfo)
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	fmt.Fprintf(os.Stderr, "codenest serve stopped\n")
	return nil
}

// waitHealthy logs once the page answers, or gives up after a few tries.
func waitHealthy(ctx context.Context, info *serve.PortInfo) {
	for attempt := range 10 {
		if serve.IsServerHealthy(info) {
			slog.Info("page ready", "url", info.URL(), "attempts", attempt+1)
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(100 * time.Millisecond):
		}
	}
	slog.Warn("page did not answer health probe", "url", info.URL())
}
