//go:build !windows

package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync/atomic"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

// ListenAndServe blocks until the server is shut down.
func (s *Server) ListenAndServe() error {
	if s.ListenAddress == "" {
		s.ListenAddress = DefaultAddress
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = ServerIdleTimeout
	}

	s.server = &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: s.IdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, p ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if s.HostKeyPath != "" {
		created, err := EnsureHostKey(s.HostKeyPath)
		if err != nil {
			return err
		}
		if created {
			s.logger().Info("generated host key", "path", s.HostKeyPath)
		}

		if err := s.server.SetOption(ssh.HostKeyFile(s.HostKeyPath)); err != nil {
			return fmt.Errorf("failed to load host key: %w", err)
		}
	}

	s.logger().Info("listening", "addr", s.ListenAddress, "client", s.ClientBinary)

	err := s.server.ListenAndServe()
	if err == ssh.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "failed to start tetris: non-interactive terminals are not supported\n")

		sess.Exit(1)
		return
	}

	active := atomic.AddInt64(&s.sessions, 1)
	defer atomic.AddInt64(&s.sessions, -1)

	args := s.clientArgs(sess.User())
	logger := s.logger().With("user", sess.User(), "nick", args[1], "remote", sess.RemoteAddr())
	logger.Info("session started", "sessions", active)

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.ClientBinary, args...)
	cmd.Env = clientEnv(os.Environ(), ptyReq.Term)

	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(ptyReq.Window.Height),
		Cols: uint16(ptyReq.Window.Width),
	})
	if err != nil {
		logger.Error("failed to start client", "err", err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))

		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			err := pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
			if err != nil {
				logger.Warn("failed to resize pseudo-terminal", "err", err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	if err := cmd.Wait(); err != nil {
		logger.Debug("client exited", "err", err)
	}

	logger.Info("session ended")
}
