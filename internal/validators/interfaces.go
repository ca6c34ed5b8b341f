// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pdfplace Authors

// Package validators provides input validation for the catalog's entry
// points: uploaded documents and submitted feedback.
//
// Validators are injected into services so business rules stay decoupled
// from the presentation layer and remain independently testable.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator validates an arbitrary input value. Implementations perform
// structural and semantic checks for the concrete types they support and
// return ErrUnsupportedType for anything else.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
