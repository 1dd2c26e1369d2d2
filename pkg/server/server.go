package server

import (
	"context"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gliderlabs/ssh"

	"github.com/qnkhuat/tetristerm/pkg/game"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	DefaultAddress    = ":2222"
)

// Server hosts one local game per SSH session. Every session runs the client
// binary in its own pseudo-terminal, so sessions never share state.
type Server struct {
	ListenAddress string
	ClientBinary  string
	ScoresDir     string
	HostKeyPath   string
	IdleTimeout   time.Duration

	Logger *log.Logger

	server   *ssh.Server
	sessions int64
}

// ScoresPath is where a player's high score lives.
func (s *Server) ScoresPath(nick string) string {
	return filepath.Join(s.ScoresDir, nick+".txt")
}

// clientArgs are the arguments the client binary is started with.
func (s *Server) clientArgs(user string) []string {
	nick := game.Nickname(user)
	return []string{"--nick", nick, "--scores", s.ScoresPath(nick)}
}

// clientEnv is the server's environment with TERM set to the session's
// terminal.
func clientEnv(environ []string, term string) []string {
	env := make([]string, 0, len(environ)+1)
	for _, kv := range environ {
		if !strings.HasPrefix(kv, "TERM=") {
			env = append(env, kv)
		}
	}

	return append(env, "TERM="+term)
}

func (s *Server) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// Sessions is the number of sessions being served.
func (s *Server) Sessions() int64 {
	return atomic.LoadInt64(&s.sessions)
}

// Shutdown stops accepting sessions and waits for open ones until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	s.logger().Info("shutting down", "sessions", s.Sessions())
	return s.server.Shutdown(ctx)
}
