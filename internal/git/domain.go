package git

// CloneRequest represents the request to clone a repository.
type CloneRequest struct {
	URL       string // Repository URL, anything go-git accepts
	Directory string // Directory to clone into, must not exist yet
}
