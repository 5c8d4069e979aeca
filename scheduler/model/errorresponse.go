// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"
	"strings"
)

// ErrorResponse is a standard invoke error response,
// providing information about the error.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}

// NewErrorResponse describes an error returned by the handler, naming it
// after the concrete error type the way the Lambda runtime does.
func NewErrorResponse(err error) *ErrorResponse {
	return &ErrorResponse{
		ErrorMessage: err.Error(),
		ErrorType:    errorTypeName(err),
	}
}

func errorTypeName(err error) string {
	name := fmt.Sprintf("%T", err)
	name = strings.TrimPrefix(name, "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
