// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks blog API payloads before they reach storage:
// registration and login forms, post and profile edits, uploaded files.
//
// Failures are reported as *[ValidationError], which the HTTP layer turns
// into 422 Unprocessable Entity with the offending field in the message.
package validators

import "context"

// Validator checks obj. When fields is non-empty only those fields are
// checked; otherwise the model's default field list applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
