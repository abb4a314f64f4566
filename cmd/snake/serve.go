package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game sized to the client's terminal.
Scores are stored per-server (all users share the same high score).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().DurationVar(&flagTick, "tick", 0, "Time between moves (overrides config, e.g. 75ms)")
}

func runServe(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("snake-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	p := openPersistence(gameCfg.Storage, logger)
	defer p.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game: tui.Options{
			Config:   gameCfg,
			Store:    p.HighScore,
			Recorder: p.Recorder,
			Runs:     p.Runs,
		},
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting snake SSH server on %s\n", server.Addr())
	if _, port, splitErr := net.SplitHostPort(server.Addr()); splitErr == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
