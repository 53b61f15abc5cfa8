package dockerfx

import "errors"

var ErrInvalidTLSConfig = errors.New("invalid TLS configuration")
