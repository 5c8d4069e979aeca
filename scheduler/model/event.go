// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

import "fmt"

// Action is the requested power operation on the instance.
type Action string

const (
	ActionStart Action = "start"
	ActionStop  Action = "stop"
)

// ActionKey is the event key holding the requested action.
const ActionKey = "action"

// Event is the invocation payload. Only the "action" key is recognized;
// everything else is carried along untouched.
type Event map[string]interface{}

// Action returns the requested action as it should appear in the response
// message, and whether it is one of the supported actions.
// An absent key renders as the empty string.
func (e Event) Action() (Action, bool) {
	raw, ok := e[ActionKey]
	if !ok || raw == nil {
		return "", false
	}

	s, ok := raw.(string)
	if !ok {
		return Action(fmt.Sprintf("%v", raw)), false
	}

	a := Action(s)
	return a, a.Valid()
}

// Valid reports whether the action is start or stop.
func (a Action) Valid() bool {
	return a == ActionStart || a == ActionStop
}
