package parallel

import "errors"

// ErrNoWorkers indicates Run was asked to use fewer than one worker.
var ErrNoWorkers = errors.New("parallel: workers must be >= 1")
