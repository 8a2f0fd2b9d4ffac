// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package schemas

type ErrorMsg = string

const (
	/* Standard error messages */

	// ErrUnknown is a generic error message used when the error type is not known.
	ErrUnknown ErrorMsg = "unknown error"
	// ErrInvalidPayload is returned when the payload is invalid and cannot be parsed.
	ErrInvalidPayload   ErrorMsg = "invalid payload, unable to parse"
	ErrInvalidParameter ErrorMsg = "invalid parameter, unable to parse"
	ErrResourceNotFound ErrorMsg = "resource not found"

	/* Selection errors */

	// ErrUnknownColumn is returned when a selection references a column
	// that does not exist in the loaded dataset.
	ErrUnknownColumn ErrorMsg = "selected column does not exist"
	// ErrSelectionNotPlottable is returned when a selection is well formed
	// but a channel cannot be honored (e.g. a non-numeric size column).
	ErrSelectionNotPlottable ErrorMsg = "selection cannot be fully plotted"
)

type APIResponse[T any] struct {
	Success  bool     `json:"success"            yaml:"success"`
	Error    ErrorMsg `json:"error,omitempty"    yaml:"error,omitempty"`
	Response T        `json:"response,omitempty" yaml:"response,omitempty"`
}

type APIVersionResponse struct {
	Version   string `json:"version"             yaml:"version"`
	BuildTime string `json:"buildTime,omitempty" yaml:"buildTime,omitempty"`
	Commit    string `json:"commit,omitempty"    yaml:"commit,omitempty"`
}
