// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTransportFailure,
//	    "failed to fetch version listing",
//	    cause,
//	    map[string]interface{}{
//	        "url":    url,
//	        "status": statusCode,
//	    },
//	)
package errors
