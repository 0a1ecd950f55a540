// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Generation failures carry one of the scaffold codes (ErrCodeNoPartsSelected,
// ErrCodeTemplateRenderFailed, ErrCodeDuplicateArchivePath, ...) so transport
// adapters can map them to responses without string matching.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTemplateRenderFailed,
//	    "template failed to render",
//	    cause,
//	    map[string]interface{}{
//	        "logicalPath": "backend/docker-compose.yml.jinja2",
//	    },
//	)
package errors
