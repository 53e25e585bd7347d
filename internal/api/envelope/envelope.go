// Package envelope defines the three response bodies every endpoint returns.
// All of them carry a "status" discriminator: success, error or fail.
package envelope

import "github.com/storefront/ecommerce-api/internal/api/validation"

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFail    = "fail"
)

// Envelope is implemented only by SuccessBody, ErrorBody and FailBody.
type Envelope interface {
	envelope()
}

type SuccessBody struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

type ErrorBody struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// FailBody reports rejected input. Message is either a list of field errors
// or a single string.
type FailBody struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
}

func (SuccessBody) envelope() {}
func (ErrorBody) envelope()   {}
func (FailBody) envelope()    {}

func Success(message string, data any, statusCode int) SuccessBody {
	return SuccessBody{Status: StatusSuccess, StatusCode: statusCode, Message: message, Data: data}
}

func Error(message string, statusCode int) ErrorBody {
	return ErrorBody{Status: StatusError, StatusCode: statusCode, Message: message}
}

// Validation wraps field-level violations. A nil set is rendered as an empty list.
func Validation(errs validation.Errors) FailBody {
	if errs == nil {
		errs = validation.Errors{}
	}
	return FailBody{Status: StatusFail, Message: errs}
}

// ValidationMessage wraps a single, non field-specific rejection.
func ValidationMessage(message string) FailBody {
	return FailBody{Status: StatusFail, Message: message}
}
