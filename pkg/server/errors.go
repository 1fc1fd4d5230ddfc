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

package server

import (
	stderrors "errors"
	"net/http"
	"time"

	cberrors "github.com/NVIDIA/cookbook/pkg/errors"
	"github.com/NVIDIA/cookbook/pkg/serializer"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code      cberrors.ErrorCode `json:"code"`
	Message   string             `json:"message"`
	Details   map[string]any     `json:"details,omitempty"`
	RequestID string             `json:"requestId"`
	Timestamp time.Time          `json:"timestamp"`
	Retryable bool               `json:"retryable"`
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cberrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr translates err into an ErrorResponse. StructuredErrors
// keep their code, message and context; anything else becomes INTERNAL with
// fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var se *cberrors.StructuredError
	if !stderrors.As(err, &se) {
		details := mergeDetails(nil, extraDetails)
		if err != nil {
			if details == nil {
				details = map[string]any{}
			}
			details["error"] = err.Error()
		}
		WriteError(w, r, http.StatusInternalServerError, cberrors.ErrCodeInternal,
			fallbackMessage, true, details)
		return
	}

	details := mergeDetails(se.Context, extraDetails)
	if se.Cause != nil {
		if details == nil {
			details = map[string]any{}
		}
		details["error"] = se.Cause.Error()
	}

	message := se.Message
	if message == "" {
		message = fallbackMessage
	}

	WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, message,
		retryableFromCode(se.Code), details)
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code cberrors.ErrorCode) int {
	switch code {
	case cberrors.ErrCodeInvalidRequest,
		cberrors.ErrCodeInvalidKind,
		cberrors.ErrCodeInvalidName,
		cberrors.ErrCodeInvalidCookTime,
		cberrors.ErrCodeDuplicateRequiredItem,
		cberrors.ErrCodeNotARecipe:
		return http.StatusBadRequest
	case cberrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case cberrors.ErrCodeNotFound, cberrors.ErrCodeUnknownEntry:
		return http.StatusNotFound
	case cberrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cberrors.ErrCodeDuplicateName:
		return http.StatusConflict
	case cberrors.ErrCodeCyclicReference:
		return http.StatusUnprocessableEntity
	case cberrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cberrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cberrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case cberrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cberrors.ErrorCode) bool {
	switch code {
	case cberrors.ErrCodeTimeout,
		cberrors.ErrCodeUnavailable,
		cberrors.ErrCodeRateLimitExceeded,
		cberrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map holding base overlaid with extra, or nil
// when both are empty.
func mergeDetails(base, extra map[string]any) map[string]any {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
