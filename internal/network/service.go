package network

import (
	"context"
	"fmt"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/client"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// composeProjectLabel is set by Docker Compose on every container it manages.
const composeProjectLabel = "com.docker.compose.project"

// Service wraps the Docker Engine operations around the shared bridge network.
type Service struct {
	client *client.Client
	config Config
	logger *zap.Logger
}

// NewService creates a new network service.
func NewService(client *client.Client, config Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		config: config,
		logger: logger,
	}
}

// Name returns the bridge network name.
func (s *Service) Name() string {
	return s.config.Name
}

// Ensure makes sure the bridge network exists, creating it when the inspect
// fails. Returns true when the network was created by this call.
func (s *Service) Ensure(ctx context.Context) (bool, error) {
	s.logger.Debug("inspecting network", zap.String("name", s.config.Name))

	if _, err := s.client.NetworkInspect(ctx, s.config.Name, client.NetworkInspectOptions{}); err == nil {
		return false, nil
	}

	s.logger.Info("creating network", zap.String("name", s.config.Name))

	if _, err := s.client.NetworkCreate(ctx, s.config.Name, client.NetworkCreateOptions{
		Driver: "bridge",
	}); err != nil {
		s.logger.Error("failed to create network", zap.Error(err))
		return false, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	return true, nil
}

// Connect attaches a container to the bridge network.
func (s *Service) Connect(ctx context.Context, containerID string) error {
	s.logger.Debug("connecting container to network",
		zap.String("name", s.config.Name),
		zap.String("container", containerID))

	if _, err := s.client.NetworkConnect(ctx, s.config.Name, client.NetworkConnectOptions{
		Container: containerID,
	}); err != nil {
		s.logger.Error("failed to connect container",
			zap.String("container", containerID), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}

	return nil
}

// Containers returns the IDs of running containers belonging to the given
// compose project.
func (s *Service) Containers(ctx context.Context, project string) ([]string, error) {
	s.logger.Debug("listing project containers", zap.String("project", project))

	result, err := s.client.ContainerList(ctx, client.ContainerListOptions{
		Filters: make(client.Filters).Add("label", composeProjectLabel+"="+project),
	})
	if err != nil {
		s.logger.Error("failed to list containers", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
	}

	return lo.Map(result.Items, func(c container.Summary, _ int) string {
		return c.ID
	}), nil
}
