// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
	"github.com/soodrajesh/ec2-scheduler/scheduler/env"
	"github.com/soodrajesh/ec2-scheduler/scheduler/logging"
	"github.com/soodrajesh/ec2-scheduler/scheduler/model"
	"github.com/soodrajesh/ec2-scheduler/scheduler/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testInstanceID = "i-0123456789abcdef0"

func newTestHandler(controller InstanceController, instanceID string) *Handler {
	return NewHandler(controller, env.FromMap(map[string]string{env.InstanceIDKey: instanceID}))
}

func captureLogs(t *testing.T) *bytes.Buffer {
	orig := logrus.StandardLogger().Out
	buf := new(bytes.Buffer)
	logging.SetOutput(buf)
	require.NoError(t, logging.SetLogLevel("info"))
	t.Cleanup(func() { logging.SetOutput(orig) })
	return buf
}

func TestHandleStart(t *testing.T) {
	logs := captureLogs(t)
	controller := &testdata.MockInstanceController{}
	controller.On("Start", mock.Anything, testInstanceID).Return(testdata.Started(testInstanceID), nil).Once()

	resp, err := newTestHandler(controller, testInstanceID).Handle(context.Background(), model.Event{"action": "start"})
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Body, "Action start executed for instance")
	assert.Equal(t, `"Action start executed for instance i-0123456789abcdef0"`, resp.Body)
	assert.Contains(t, logs.String(), "Starting instance: "+testInstanceID)
	controller.AssertNotCalled(t, "Stop", mock.Anything, mock.Anything)
	controller.AssertExpectations(t)
}

func TestHandleStop(t *testing.T) {
	logs := captureLogs(t)
	controller := &testdata.MockInstanceController{}
	controller.On("Stop", mock.Anything, testInstanceID).Return(testdata.Stopped(testInstanceID), nil).Once()

	resp, err := newTestHandler(controller, testInstanceID).Handle(context.Background(), model.Event{"action": "stop"})
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Body, "Action stop executed for instance")
	assert.Contains(t, logs.String(), "Stopping instance: "+testInstanceID)
	controller.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
	controller.AssertExpectations(t)
}

func TestHandleInvalidAction(t *testing.T) {
	type test struct {
		name         string
		event        model.Event
		expectedBody string
	}

	var tests = []test{
		{"unknown action", model.Event{"action": "reboot"}, `"Action reboot executed for instance i-0123456789abcdef0"`},
		{"absent action", model.Event{}, `"Action  executed for instance i-0123456789abcdef0"`},
		{"nil event", nil, `"Action  executed for instance i-0123456789abcdef0"`},
		{"non-string action", model.Event{"action": 1.0}, `"Action 1 executed for instance i-0123456789abcdef0"`},
		{"wrong case", model.Event{"action": "Stop"}, `"Action Stop executed for instance i-0123456789abcdef0"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			controller := &testdata.MockInstanceController{}

			resp, err := newTestHandler(controller, testInstanceID).Handle(context.Background(), tt.event)
			require.NoError(t, err)

			assert.Equal(t, 200, resp.StatusCode)
			assert.Equal(t, tt.expectedBody, resp.Body)
			assert.Contains(t, logs.String(), "Invalid action. Must be 'start' or 'stop'.")
			controller.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
			controller.AssertNotCalled(t, "Stop", mock.Anything, mock.Anything)
		})
	}
}

func TestHandleRepeatedActionIsNotDeduplicated(t *testing.T) {
	captureLogs(t)
	controller := &testdata.MockInstanceController{}
	controller.On("Stop", mock.Anything, testInstanceID).Return(testdata.Stopped(testInstanceID), nil).Twice()

	h := newTestHandler(controller, testInstanceID)
	for i := 0; i < 2; i++ {
		_, err := h.Handle(context.Background(), model.Event{"action": "stop"})
		require.NoError(t, err)
	}

	controller.AssertNumberOfCalls(t, "Stop", 2)
	controller.AssertExpectations(t)
}

func TestHandleMissingInstanceID(t *testing.T) {
	captureLogs(t)
	providerErr := errors.New("InvalidInstanceID.Malformed: Invalid id: \"\"")
	controller := &testdata.MockInstanceController{}
	controller.On("Start", mock.Anything, "").Return(nil, providerErr).Once()

	h := NewHandler(controller, env.FromMap(map[string]string{}))
	_, err := h.Handle(context.Background(), model.Event{"action": "start"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, providerErr))
	controller.AssertExpectations(t)
}

func TestHandleProviderErrorPropagates(t *testing.T) {
	logs := captureLogs(t)
	providerErr := errors.New("IncorrectInstanceState")
	controller := &testdata.MockInstanceController{}
	controller.On("Stop", mock.Anything, testInstanceID).Return(nil, providerErr).Once()

	resp, err := newTestHandler(controller, testInstanceID).Handle(context.Background(), model.Event{"action": "stop"})

	assert.Equal(t, providerErr, err)
	assert.Equal(t, model.Response{}, resp)
	assert.NotContains(t, logs.String(), "Stopping instance")
}

func TestHandleReadsInstanceIDPerInvocation(t *testing.T) {
	captureLogs(t)
	controller := &testdata.MockInstanceController{}
	controller.On("Start", mock.Anything, "i-first").Return(testdata.Started("i-first"), nil).Once()
	controller.On("Start", mock.Anything, "i-second").Return(testdata.Started("i-second"), nil).Once()

	t.Setenv(env.InstanceIDKey, "i-first")
	h := NewHandler(controller, nil)

	resp, err := h.Handle(context.Background(), model.Event{"action": "start"})
	require.NoError(t, err)
	assert.Contains(t, resp.Body, "i-first")

	t.Setenv(env.InstanceIDKey, "i-second")
	resp, err = h.Handle(context.Background(), model.Event{"action": "start"})
	require.NoError(t, err)
	assert.Contains(t, resp.Body, "i-second")

	controller.AssertExpectations(t)
}

func TestHandleLogsRequestID(t *testing.T) {
	logs := captureLogs(t)
	controller := &testdata.MockInstanceController{}

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-42"})
	_, err := newTestHandler(controller, testInstanceID).Handle(ctx, model.Event{"action": "hibernate"})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "requestId=req-42")
}

func TestHandleEventFromJSON(t *testing.T) {
	captureLogs(t)
	controller := &testdata.MockInstanceController{}
	controller.On("Start", mock.Anything, testInstanceID).Return(testdata.Started(testInstanceID), nil).Once()

	var event model.Event
	require.NoError(t, json.Unmarshal([]byte(`{"action":"start","time":"2024-01-01T08:00:00Z"}`), &event))

	resp, err := newTestHandler(controller, testInstanceID).Handle(context.Background(), event)
	require.NoError(t, err)

	respJSON, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"statusCode":200,"body":"\"Action start executed for instance i-0123456789abcdef0\""}`, string(respJSON))
	controller.AssertExpectations(t)
}
