// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package env

const (
	// InstanceIDKey holds the id of the instance the function starts and stops.
	InstanceIDKey = "INSTANCE_ID"

	FunctionNameKey    = "AWS_LAMBDA_FUNCTION_NAME"
	FunctionVersionKey = "AWS_LAMBDA_FUNCTION_VERSION"
	FunctionMemoryKey  = "AWS_LAMBDA_FUNCTION_MEMORY_SIZE"
	RegionKey          = "AWS_REGION"

	DefaultFunctionName    = "ec2-scheduler"
	DefaultFunctionVersion = "$LATEST"
	DefaultFunctionMemory  = "128"
)
