// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package testdata

import (
	"context"

	"github.com/soodrajesh/ec2-scheduler/scheduler/instance"
	"github.com/stretchr/testify/mock"
)

// MockInstanceController records Start and Stop calls.
type MockInstanceController struct {
	mock.Mock
}

func (m *MockInstanceController) Start(ctx context.Context, instanceID string) ([]instance.StateChange, error) {
	args := m.Called(ctx, instanceID)
	changes, _ := args.Get(0).([]instance.StateChange)
	return changes, args.Error(1)
}

func (m *MockInstanceController) Stop(ctx context.Context, instanceID string) ([]instance.StateChange, error) {
	args := m.Called(ctx, instanceID)
	changes, _ := args.Get(0).([]instance.StateChange)
	return changes, args.Error(1)
}

// Started is a successful Start result for instanceID.
func Started(instanceID string) []instance.StateChange {
	return []instance.StateChange{{InstanceID: instanceID, PreviousState: "stopped", CurrentState: "pending"}}
}

// Stopped is a successful Stop result for instanceID.
func Stopped(instanceID string) []instance.StateChange {
	return []instance.StateChange{{InstanceID: instanceID, PreviousState: "running", CurrentState: "stopping"}}
}
