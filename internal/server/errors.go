// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandlerIsCreated = errors.New("no http handler is created")
	errNoAddress          = errors.New("http address is not specified")
)
