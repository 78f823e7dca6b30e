package agent

import "errors"

var errMissingDependency = errors.New("agent dependency is not provided")
