// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generate

import "errors"

// Sentinel errors for the generation pipeline. Handlers translate these
// into HTTP statuses; everything else surfaces as an internal error.
var (
	// ErrLimitExceeded means the workspace hit its daily generation quota.
	// It is raised before any network call is made.
	ErrLimitExceeded = errors.New("daily usage limit reached")

	// ErrInvalidInput covers bad request fields: unknown formats or
	// modes, empty prompts, undecodable logo data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedResponse means the model's output was not valid JSON.
	ErrMalformedResponse = errors.New("model response is not valid JSON")

	// ErrIncompleteResponse means the JSON parsed but a required
	// top-level field is absent.
	ErrIncompleteResponse = errors.New("model response is missing required fields")

	// ErrTransport wraps network failures and non-2xx model API replies.
	ErrTransport = errors.New("model call failed")
)
