// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Response is the fixed-shape invocation result.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// ExecutedMessage is the human readable summary carried in the response body.
func ExecutedMessage(action Action, instanceID string) string {
	return fmt.Sprintf("Action %s executed for instance %s", action, instanceID)
}

// NewExecutedResponse builds the response returned for every handled
// invocation. The status is 200 whether or not the action was valid; the body
// is the JSON encoding of the summary message.
func NewExecutedResponse(action Action, instanceID string) Response {
	body, err := json.Marshal(ExecutedMessage(action, instanceID))
	if err != nil {
		log.Panicf("Failed to marshal response body: %s", err)
	}

	return Response{
		StatusCode: http.StatusOK,
		Body:       string(body),
	}
}
