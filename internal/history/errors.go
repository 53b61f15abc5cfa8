package history

import "errors"

var ErrRecordFailed = errors.New("failed to record history entry")
