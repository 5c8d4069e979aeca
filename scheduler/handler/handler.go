// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/soodrajesh/ec2-scheduler/scheduler/env"
	"github.com/soodrajesh/ec2-scheduler/scheduler/instance"
	"github.com/soodrajesh/ec2-scheduler/scheduler/model"

	log "github.com/sirupsen/logrus"
)

// InstanceController changes the power state of a single instance.
// *instance.Controller implements it.
type InstanceController interface {
	Start(ctx context.Context, instanceID string) ([]instance.StateChange, error)
	Stop(ctx context.Context, instanceID string) ([]instance.StateChange, error)
}

// Handler dispatches start/stop events to the configured instance.
type Handler struct {
	controller InstanceController
	lookup     env.Lookup
}

// NewHandler returns a Handler. A nil lookup reads the process environment.
func NewHandler(controller InstanceController, lookup env.Lookup) *Handler {
	return &Handler{
		controller: controller,
		lookup:     lookup,
	}
}

// Handle starts or stops the instance named by INSTANCE_ID, depending on the
// event's action. Unknown or missing actions are logged and skipped. The
// response always carries status 200; a failed EC2 call is returned as the
// error so the invocation is reported as failed.
func (h *Handler) Handle(ctx context.Context, event model.Event) (model.Response, error) {
	instanceID := h.lookup.InstanceID()
	action, valid := event.Action()
	logger := requestLogger(ctx)

	if !valid {
		logger.Info("Invalid action. Must be 'start' or 'stop'.")
		return model.NewExecutedResponse(action, instanceID), nil
	}

	switch action {
	case model.ActionStart:
		if _, err := h.controller.Start(ctx, instanceID); err != nil {
			return model.Response{}, err
		}
		logger.Infof("Starting instance: %s", instanceID)
	case model.ActionStop:
		if _, err := h.controller.Stop(ctx, instanceID); err != nil {
			return model.Response{}, err
		}
		logger.Infof("Stopping instance: %s", instanceID)
	}

	return model.NewExecutedResponse(action, instanceID), nil
}

func requestLogger(ctx context.Context) *log.Entry {
	entry := log.NewEntry(log.StandardLogger())
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		entry = entry.WithField("requestId", lc.AwsRequestID)
	}
	return entry
}
