package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/qnkhuat/tetristerm/pkg/logging"
	"github.com/qnkhuat/tetristerm/pkg/server"
)

var done = make(chan bool)

func main() {
	listen := flag.String("listen", server.DefaultAddress, "host SSH server on network address")
	client := flag.String("client", "", "path to tetristerm client")
	scoresDir := flag.String("scores-dir", "scores", "directory holding one high score file per player")
	hostKey := flag.String("host-key", filepath.Join(".ssh", "tetristerm_ed25519"), "path to host key, generated when missing")
	idle := flag.Duration("idle", server.ServerIdleTimeout, "disconnect sessions idle for this long")
	logPath := flag.String("log", "", "path to log file, stderr when empty")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	if *client == "" {
		log.Fatal("path to the client is required (--client)")
	}

	logger := log.Default()
	if *logPath != "" {
		var err error
		logger, err = logging.InitLog(*logPath, "SERVER", *logLevel)
		if err != nil {
			log.Fatal(err)
		}
	} else if lvl, err := log.ParseLevel(*logLevel); err == nil {
		logger = logging.New(os.Stderr, "SERVER", lvl)
	} else {
		log.Fatal("invalid log level", "level", *logLevel)
	}

	s := &server.Server{
		ListenAddress: *listen,
		ClientBinary:  *client,
		ScoresDir:     *scoresDir,
		HostKeyPath:   *hostKey,
		IdleTimeout:   *idle,
		Logger:        logger,
	}

	color.New(color.FgGreen, color.Bold).Printf("tetristerm server ")
	color.New(color.FgWhite).Printf("listening on %s, connect with: ssh -p %s <nick>@localhost\n", *listen, port(*listen))

	go func() {
		if err := s.ListenAndServe(); err != nil {
			logger.Fatal("server failed", "err", err)
		}
		done <- true
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)

	select {
	case <-sigc:
	case <-done:
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down", "err", err)
	}
}

func port(addr string) string {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return p
}
