// error.go
//
// Jobby, a job-board service where admins post jobs and users apply
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jobby.
// jobby is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jobby is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jobby.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package types

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure kinds shared by the guard, the services and the HTTP boundary.
// Services wrap these with fmt.Errorf("%w: ...") and the boundary maps them
// to a status with StatusOf.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation error")
	ErrInternal           = errors.New("internal error")
)

// CustomError carries an HTTP-shaped failure to the error handler.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Err     error  `json:"-"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// StatusOf maps an error to the HTTP status of its failure kind.
// Unknown errors are internal.
func StatusOf(err error) int {
	var custom *CustomError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &custom):
		return custom.Code
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrInvalidCredentials):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// KindOf names the failure kind of an error, used as the envelope "type".
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrValidation):
		return "validation"
	default:
		return "internal"
	}
}

// Fail builds a CustomError of the given kind with a client-facing message.
// The kind and the optional cause stay reachable through errors.Is.
func Fail(kind error, message string, cause error) *CustomError {
	err := kind
	if cause != nil {
		err = errors.Join(kind, cause)
	}
	return &CustomError{
		Code:    StatusOf(kind),
		Message: message,
		Type:    KindOf(kind),
		Err:     err,
	}
}

// Cause returns the underlying error joined by Fail, if any.
func (e *CustomError) Cause() error {
	if joined, ok := e.Err.(interface{ Unwrap() []error }); ok {
		if errs := joined.Unwrap(); len(errs) > 1 {
			return errs[len(errs)-1]
		}
	}
	return nil
}
