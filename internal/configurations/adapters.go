package configurations

import (
	"context"

	"github.com/comphost/comphost/internal/git"
)

// gitCloner adapts the git service to the Cloner interface.
type gitCloner struct {
	git *git.Service
}

func newGitCloner(service *git.Service) Cloner {
	return gitCloner{git: service}
}

func (c gitCloner) Clone(ctx context.Context, url, directory string) error {
	_, err := c.git.Clone(ctx, git.CloneRequest{
		URL:       url,
		Directory: directory,
	})

	return err
}
