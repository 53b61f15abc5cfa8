package configurations

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/comphost/comphost/internal/history"
	"go.uber.org/zap"
)

// Service implements the subcommand semantics. Every operation loads the
// store once, mutates it in memory, and writes it back before returning,
// whichever subcommand ran.
type Service struct {
	store *Repository

	cloner       Cloner
	orchestrator Orchestrator
	network      NetworkManager
	recorder     Recorder

	logger *zap.Logger
}

func NewService(
	store *Repository,
	cloner Cloner,
	orchestrator Orchestrator,
	network NetworkManager,
	recorder Recorder,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:        store,
		cloner:       cloner,
		orchestrator: orchestrator,
		network:      network,
		recorder:     recorder,
		logger:       logger,
	}
}

// Add inserts or overwrites one configuration per request, active and not yet
// cloned.
func (s *Service) Add(ctx context.Context, reqs []AddRequest) (err error) {
	store, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	defer s.saveStore(ctx, store, &err)

	for _, req := range reqs {
		store[req.Name] = Configuration{
			Active: true,
			URL:    req.URL,
		}
		s.logger.Info("configuration added",
			zap.String("name", req.Name),
			zap.String("url", req.URL))
	}

	return nil
}

// SetActive flips the activation flag for each named configuration. Unknown
// names are reported in the results and do not stop the rest.
func (s *Service) SetActive(ctx context.Context, names []string, active bool) (results []ToggleResult, err error) {
	store, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	defer s.saveStore(ctx, store, &err)

	for _, name := range names {
		cfg, ok := store[name]
		if !ok {
			s.logger.Warn("configuration not found", zap.String("name", name))
			results = append(results, ToggleResult{Name: name})
			continue
		}

		cfg.Active = active
		store[name] = cfg
		results = append(results, ToggleResult{Name: name, Found: true})
	}

	return results, nil
}

// Names returns every configuration name, sorted.
func (s *Service) Names(ctx context.Context) (names []string, err error) {
	store, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	defer s.saveStore(ctx, store, &err)

	return store.Names(), nil
}

// Clone materializes every active configuration under dest. A directory that
// already exists at dest/name is recorded as the clone without verifying it
// is actually a checkout of the configured URL.
func (s *Service) Clone(ctx context.Context, dest string) (results []CloneResult, err error) {
	store, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	defer s.saveStore(ctx, store, &err)

	for _, name := range store.ActiveNames() {
		cfg := store[name]
		path := filepath.Join(dest, name)

		result := s.cloneOne(ctx, name, cfg.URL, path)
		if result.Status != CloneStatusFailed {
			cfg.ClonePath = path
			store[name] = cfg
		}

		results = append(results, result)
	}

	return results, nil
}

func (s *Service) cloneOne(ctx context.Context, name, url, path string) CloneResult {
	result := CloneResult{Name: name, URL: url, Path: path}
	info, statErr := os.Stat(path)

	switch {
	case statErr == nil && info.IsDir():
		s.logger.Info("clone target already exists",
			zap.String("name", name),
			zap.String("path", path))
		s.record(ctx, "clone", name, history.OutcomeSkipped, path)
		result.Status = CloneStatusSkipped
		return result

	case statErr == nil:
		result.Err = fmt.Errorf("%w: %s", ErrNotADirectory, path)

	case !errors.Is(statErr, fs.ErrNotExist):
		result.Err = statErr

	default:
		result.Err = s.cloner.Clone(ctx, url, path)
	}

	if result.Err != nil {
		s.logger.Error("clone failed",
			zap.String("name", name),
			zap.Error(result.Err))
		s.record(ctx, "clone", name, history.OutcomeFailure, result.Err.Error())
		result.Status = CloneStatusFailed
		return result
	}

	s.record(ctx, "clone", name, history.OutcomeSuccess, path)
	result.Status = CloneStatusCloned

	return result
}

// Start ensures the bridge network exists, then brings every active, cloned
// configuration up and attaches its containers to the network. A network
// ensure failure aborts the operation; everything past that point is
// reported per configuration.
func (s *Service) Start(ctx context.Context) (report StartReport, err error) {
	store, err := s.store.Load(ctx)
	if err != nil {
		return StartReport{}, err
	}
	defer s.saveStore(ctx, store, &err)

	created, ensureErr := s.network.Ensure(ctx)
	if ensureErr != nil {
		return StartReport{}, ensureErr
	}
	report.NetworkCreated = created

	for _, name := range store.ActiveNames() {
		cfg := store[name]
		if !cfg.Cloned() {
			continue
		}

		report.Results = append(report.Results, s.startOne(ctx, name, cfg.ClonePath))
	}

	return report, nil
}

func (s *Service) startOne(ctx context.Context, name, dir string) StartResult {
	if upErr := s.orchestrator.Up(ctx, dir); upErr != nil {
		s.logger.Error("start failed",
			zap.String("name", name),
			zap.Error(upErr))
		s.record(ctx, "start", name, history.OutcomeFailure, upErr.Error())
		return StartResult{Name: name, Err: upErr}
	}

	s.record(ctx, "start", name, history.OutcomeSuccess, dir)
	result := StartResult{Name: name, Started: true}

	containers, listErr := s.network.Containers(ctx, projectName(dir))
	if listErr != nil {
		result.Err = listErr
		return result
	}

	for _, id := range containers {
		result.Attachments = append(result.Attachments, AttachResult{
			ContainerID: id,
			Err:         s.network.Connect(ctx, id),
		})
	}

	return result
}

// Stop brings every active, cloned configuration down. Failures are reported
// per configuration.
func (s *Service) Stop(ctx context.Context) (results []StopResult, err error) {
	store, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	defer s.saveStore(ctx, store, &err)

	for _, name := range store.ActiveNames() {
		cfg := store[name]
		if !cfg.Cloned() {
			continue
		}

		downErr := s.orchestrator.Down(ctx, cfg.ClonePath)
		if downErr != nil {
			s.logger.Error("stop failed",
				zap.String("name", name),
				zap.Error(downErr))
			s.record(ctx, "stop", name, history.OutcomeFailure, downErr.Error())
		} else {
			s.record(ctx, "stop", name, history.OutcomeSuccess, cfg.ClonePath)
		}

		results = append(results, StopResult{Name: name, Err: downErr})
	}

	return results, nil
}

// NetworkName returns the bridge network name for user-facing messages.
func (s *Service) NetworkName() string {
	return s.network.Name()
}

// saveStore writes the store back and surfaces the save error unless the
// operation already failed.
func (s *Service) saveStore(ctx context.Context, store Store, err *error) {
	if saveErr := s.store.Save(ctx, store); saveErr != nil && *err == nil {
		*err = saveErr
	}
}

func (s *Service) record(ctx context.Context, command, name string, outcome history.Outcome, detail string) {
	s.recorder.Record(ctx, history.EntryDraft{
		Command: command,
		Name:    name,
		Outcome: outcome,
		Detail:  detail,
	})
}

// projectName derives the compose project name the same way compose does
// from the project directory basename: lowercased, everything outside
// [a-z0-9_-] removed, leading dashes and underscores trimmed.
func projectName(dir string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, filepath.Base(dir))

	return strings.TrimLeft(name, "-_")
}
