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

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeTimeout indicates an operation exceeded its time limit.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeRateLimitExceeded indicates the client exceeded an enforced request limit.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeMethodNotAllowed indicates the HTTP method is not allowed for the resource.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeUnavailable indicates a service or resource is temporarily unavailable.
	ErrCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeCanceled indicates the caller abandoned the operation.
	ErrCodeCanceled ErrorCode = "CANCELED"

	// ErrCodeValidation indicates the scaffold configuration failed validation.
	ErrCodeValidation ErrorCode = "VALIDATION_FAILED"
	// ErrCodeNoPartsSelected indicates no project part was marked for inclusion.
	ErrCodeNoPartsSelected ErrorCode = "NO_PARTS_SELECTED"
	// ErrCodeTemplateRenderFailed indicates a single template failed to render
	// and the whole archive was discarded.
	ErrCodeTemplateRenderFailed ErrorCode = "TEMPLATE_RENDER_FAILED"
	// ErrCodeCatalogUnavailable indicates the template catalog could not be built.
	ErrCodeCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	// ErrCodeDuplicateArchivePath indicates two templates mapped to the same
	// archive path. This is a catalog authoring defect.
	ErrCodeDuplicateArchivePath ErrorCode = "DUPLICATE_ARCHIVE_PATH"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// Structurer is implemented by domain errors that know how to present
// themselves as a StructuredError (validation and generation failures).
type Structurer interface {
	Structured() *StructuredError
}

// AsStructured finds the first StructuredError or Structurer in err's chain.
// Returns nil when err carries neither.
func AsStructured(err error) *StructuredError {
	if err == nil {
		return nil
	}
	var s Structurer
	if stderrors.As(err, &s) {
		return s.Structured()
	}
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se
	}
	return nil
}

// CodeOf returns the error code carried by err, or ErrCodeInternal when err
// is not structured.
func CodeOf(err error) ErrorCode {
	if se := AsStructured(err); se != nil {
		return se.Code
	}
	return ErrCodeInternal
}
