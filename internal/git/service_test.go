package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
	"go.uber.org/zap/zaptest"
)

// initTestRepo creates a git repository with a single commit and returns its path.
func initTestRepo(t *testing.T) string {
	t.Helper()

	repoPath := filepath.Join(t.TempDir(), "origin")
	if err := os.MkdirAll(repoPath, 0o755); err != nil {
		t.Fatal(err)
	}

	repo, err := git.PlainInit(repoPath, false)
	if err != nil {
		t.Fatal(err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}

	testFile := filepath.Join(repoPath, "test.txt")
	if err := os.WriteFile(testFile, []byte("test content"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := worktree.Add("test.txt"); err != nil {
		t.Fatal(err)
	}

	_, err = worktree.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	return repoPath
}

func TestService_Clone(t *testing.T) {
	origin := initTestRepo(t)
	target := filepath.Join(t.TempDir(), "clone")

	service := NewService(Config{}, zaptest.NewLogger(t))

	repo, err := service.Clone(context.Background(), CloneRequest{
		URL:       origin,
		Directory: target,
	})
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}

	if repo.Path != target {
		t.Errorf("Expected path %q, got %q", target, repo.Path)
	}
	if repo.URL != origin {
		t.Errorf("Expected URL %q, got %q", origin, repo.URL)
	}

	if _, err := os.Stat(filepath.Join(target, "test.txt")); err != nil {
		t.Errorf("Expected cloned file to exist: %v", err)
	}
}

func TestService_CloneExistingDirectory(t *testing.T) {
	origin := initTestRepo(t)
	target := t.TempDir()

	service := NewService(Config{}, zaptest.NewLogger(t))

	_, err := service.Clone(context.Background(), CloneRequest{
		URL:       origin,
		Directory: target,
	})
	if !errors.Is(err, ErrRepositoryAlreadyExists) {
		t.Fatalf("Expected ErrRepositoryAlreadyExists, got %v", err)
	}
}

func TestService_CloneBadURL(t *testing.T) {
	target := filepath.Join(t.TempDir(), "clone")

	service := NewService(Config{}, zaptest.NewLogger(t))

	_, err := service.Clone(context.Background(), CloneRequest{
		URL:       filepath.Join(t.TempDir(), "does-not-exist"),
		Directory: target,
	})
	if !errors.Is(err, ErrCloneFailed) {
		t.Fatalf("Expected ErrCloneFailed, got %v", err)
	}
}
