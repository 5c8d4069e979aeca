// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/soodrajesh/ec2-scheduler/scheduler/model"

	"github.com/go-chi/render"
)

// FunctionErrorHeader marks an invoke response whose payload is a function error.
const FunctionErrorHeader = "X-Amz-Function-Error"

type ErrorType int

const (
	ClientInvalidRequest ErrorType = iota
)

func (t ErrorType) String() string {
	switch t {
	case ClientInvalidRequest:
		return "Client.InvalidRequest"
	}
	return fmt.Sprintf("Cannot stringify standalone.ErrorType.%d", int(t))
}

// readEvent decodes the invoke payload. An empty payload is an empty event.
func readEvent(r *http.Request) (model.Event, *ErrorReply) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, newErrorReply(ClientInvalidRequest, fmt.Sprintf("Failed to read full body: %s", err))
	}

	event := model.Event{}
	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return event, nil
	}

	if err = json.Unmarshal(bodyBytes, &event); err != nil {
		return nil, newErrorReply(ClientInvalidRequest, fmt.Sprintf("Invalid json %s: %s", string(bodyBytes), err))
	}

	return event, nil
}

type ErrorReply struct {
	model.ErrorResponse
}

func newErrorReply(errType ErrorType, errMsg string) *ErrorReply {
	return &ErrorReply{ErrorResponse: model.ErrorResponse{ErrorType: errType.String(), ErrorMessage: errMsg}}
}

func (e *ErrorReply) Send(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, e.ErrorResponse)
}

// FunctionErrorReply carries an error returned by the function. Like the
// Lambda Invoke API, the status is 200 and the error is flagged by header.
type FunctionErrorReply struct {
	*model.ErrorResponse
}

func (e *FunctionErrorReply) Send(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(FunctionErrorHeader, "Unhandled")
	render.Status(r, http.StatusOK)
	render.JSON(w, r, e.ErrorResponse)
}

type SuccessReply struct {
	Response model.Response
}

func (s *SuccessReply) Send(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.Response)
}

type Reply interface {
	Send(http.ResponseWriter, *http.Request)
}
