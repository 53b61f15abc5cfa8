package git

import (
	"context"
	"fmt"
	"os"

	"github.com/go-git/go-git/v6"
	"go.uber.org/zap"
)

type Service struct {
	config Config
	logger *zap.Logger
}

// NewService creates a new git service.
func NewService(config Config, logger *zap.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// Clone clones a repository to the specified directory.
func (s *Service) Clone(ctx context.Context, req CloneRequest) (*Repository, error) {
	s.logger.Info("cloning repository",
		zap.String("url", req.URL),
		zap.String("directory", req.Directory))

	if _, statErr := os.Stat(req.Directory); statErr == nil {
		return nil, fmt.Errorf("%w: directory %s already exists", ErrRepositoryAlreadyExists, req.Directory)
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	cloneOptions := &git.CloneOptions{
		URL: req.URL,
	}

	_, err := git.PlainCloneContext(ctx, req.Directory, cloneOptions)
	if err != nil {
		s.logger.Error("failed to clone repository", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}

	s.logger.Info("repository cloned successfully",
		zap.String("url", req.URL),
		zap.String("directory", req.Directory))

	return &Repository{
		Path: req.Directory,
		URL:  req.URL,
	}, nil
}
