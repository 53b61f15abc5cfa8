package network

import "errors"

var (
	ErrCreateFailed  = errors.New("failed to create network")
	ErrConnectFailed = errors.New("failed to connect container to network")
	ErrListFailed    = errors.New("failed to list containers")
)
