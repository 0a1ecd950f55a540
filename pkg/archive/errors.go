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

package archive

import (
	stderrors "errors"
	"fmt"

	apperrors "github.com/easysh/easysh/pkg/errors"
)

// Kind classifies a generation failure.
type Kind string

const (
	// KindNoPartsSelected means no part had include set.
	KindNoPartsSelected Kind = "NoPartsSelected"
	// KindTemplateRenderFailed means one template failed and the build was abandoned.
	KindTemplateRenderFailed Kind = "TemplateRenderFailed"
	// KindDuplicateArchivePath means two entries mapped to the same archive path.
	KindDuplicateArchivePath Kind = "DuplicateArchivePath"
)

// Code returns the error code used to report k.
func (k Kind) Code() apperrors.ErrorCode {
	switch k {
	case KindNoPartsSelected:
		return apperrors.ErrCodeNoPartsSelected
	case KindTemplateRenderFailed:
		return apperrors.ErrCodeTemplateRenderFailed
	case KindDuplicateArchivePath:
		return apperrors.ErrCodeDuplicateArchivePath
	default:
		return apperrors.ErrCodeInternal
	}
}

// GenerationError reports why an archive could not be built.
type GenerationError struct {
	Kind    Kind
	Message string
	// LogicalPath names the template involved, when there is one.
	LogicalPath string
	Cause       error
}

func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.LogicalPath != "" {
		msg += fmt.Sprintf(" (template %s)", e.LogicalPath)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Structured converts the error for transport adapters.
func (e *GenerationError) Structured() *apperrors.StructuredError {
	ctx := map[string]any{"kind": string(e.Kind)}
	if e.LogicalPath != "" {
		ctx["logicalPath"] = e.LogicalPath
	}
	if e.Cause != nil {
		ctx["cause"] = e.Cause.Error()
	}
	return apperrors.WrapWithContext(e.Kind.Code(), e.Message, e.Cause, ctx)
}

func asGenerationError(err error) *GenerationError {
	var ge *GenerationError
	if stderrors.As(err, &ge) {
		return ge
	}
	return nil
}
