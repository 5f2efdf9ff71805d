package lsp

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// traceHandler logs entry and exit of a handler.
func (s *Server) traceHandler(name string) func() {
	start := time.Now()
	s.logger.Debug("handler start", zap.String("handler", name))

	return func() {
		s.logger.Debug("handler end", zap.String("handler", name), zap.Duration("elapsed", time.Since(start)))
	}
}

// recoverHandler converts a panicking handler into a request error so a
// single bad request cannot take the whole server down.
func (s *Server) recoverHandler(name string, err *error) {
	if r := recover(); r != nil {
		s.logger.Error("handler panic",
			zap.String("handler", name), zap.Any("panic", r), zap.Stack("stack"))
		*err = fmt.Errorf("%s: internal error: %v", name, r)
	}
}
