// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"

	apperrors "github.com/easysh/easysh/pkg/errors"
)

// ValidationError reports a configuration field that failed validation.
// Field is a dotted path such as "backend.dbPort" or
// "frontend.moduleSystem.modules[0].id"; it is empty for document-level
// problems.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Structured converts the error for transport adapters.
func (e *ValidationError) Structured() *apperrors.StructuredError {
	return apperrors.NewWithContext(apperrors.ErrCodeValidation, e.Error(), map[string]any{
		"field":  e.Field,
		"reason": e.Reason,
	})
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
