package compose

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Service drives the Docker Compose CLI. Compose has no supported Go API, so
// every operation is a synchronous subprocess run in the project directory.
type Service struct {
	config Config
	logger *zap.Logger
}

// NewService creates a new compose service.
func NewService(config Config, logger *zap.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// Up brings the project in dir up in detached mode.
func (s *Service) Up(ctx context.Context, dir string) error {
	_, err := s.run(ctx, dir, "compose", "up", "--detach")
	return err
}

// Down brings the project in dir down.
func (s *Service) Down(ctx context.Context, dir string) error {
	_, err := s.run(ctx, dir, "compose", "down")
	return err
}

func (s *Service) run(ctx context.Context, dir string, args ...string) (string, error) {
	s.logger.Debug("running compose command",
		zap.String("binary", s.config.Binary),
		zap.Strings("args", args),
		zap.String("dir", dir))

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, s.config.Binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			s.logger.Error("compose command failed",
				zap.Strings("args", args),
				zap.Int("code", exitErr.ExitCode()),
				zap.String("stderr", stderr.String()))
			return "", fmt.Errorf("%w: exit status %d: %s",
				ErrCommandFailed, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}

		s.logger.Error("failed to spawn compose command", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return stdout.String(), nil
}
