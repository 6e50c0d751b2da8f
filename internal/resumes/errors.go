package resumes

import "errors"

var ErrNotFound = errors.New("resume not found")
