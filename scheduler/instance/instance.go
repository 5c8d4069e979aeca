// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package instance

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	log "github.com/sirupsen/logrus"
)

// InstanceAPI is the part of the EC2 client used to change instance power
// state. *ec2.Client satisfies it.
type InstanceAPI interface {
	StartInstances(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
}

// StateChange is one instance's transition as reported by EC2.
type StateChange struct {
	InstanceID    string
	PreviousState string
	CurrentState  string
}

// Controller starts and stops instances by id.
type Controller struct {
	api InstanceAPI
}

// NewController returns a Controller issuing calls through api.
func NewController(api InstanceAPI) *Controller {
	return &Controller{api: api}
}

// Start requests that the instance be started. The id is sent as the only
// member of the instance list and is not validated here.
func (c *Controller) Start(ctx context.Context, instanceID string) ([]StateChange, error) {
	out, err := c.api.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, fmt.Errorf("starting instance %s: %w", instanceID, err)
	}

	changes := stateChanges(out.StartingInstances)
	logStateChanges(changes)
	return changes, nil
}

// Stop requests that the instance be stopped.
func (c *Controller) Stop(ctx context.Context, instanceID string) ([]StateChange, error) {
	out, err := c.api.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, fmt.Errorf("stopping instance %s: %w", instanceID, err)
	}

	changes := stateChanges(out.StoppingInstances)
	logStateChanges(changes)
	return changes, nil
}

func stateChanges(in []types.InstanceStateChange) []StateChange {
	changes := make([]StateChange, 0, len(in))
	for _, c := range in {
		changes = append(changes, StateChange{
			InstanceID:    aws.ToString(c.InstanceId),
			PreviousState: stateName(c.PreviousState),
			CurrentState:  stateName(c.CurrentState),
		})
	}
	return changes
}

func stateName(s *types.InstanceState) string {
	if s == nil {
		return ""
	}
	return string(s.Name)
}

func logStateChanges(changes []StateChange) {
	for _, c := range changes {
		log.WithFields(log.Fields{
			"instanceId": c.InstanceID,
			"previous":   c.PreviousState,
			"current":    c.CurrentState,
		}).Debug("Instance state change")
	}
}
