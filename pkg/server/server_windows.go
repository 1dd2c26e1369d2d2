//go:build windows

package server

import "errors"

// SSH server is unsupported on Windows

var ErrUnsupported = errors.New("ssh server is not supported on windows")

func (s *Server) ListenAndServe() error {
	return ErrUnsupported
}
