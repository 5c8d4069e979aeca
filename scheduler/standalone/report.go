// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/soodrajesh/ec2-scheduler/scheduler/env"
)

// FunctionInfo describes the emulated function in invoke reports and ARNs.
type FunctionInfo struct {
	Name       string
	Version    string
	MemorySize string
	Region     string
}

// FunctionInfoFromEnv fills FunctionInfo from the Lambda environment
// variables, falling back to emulator defaults.
func FunctionInfoFromEnv() FunctionInfo {
	return FunctionInfo{
		Name:       env.GetenvWithDefault(env.FunctionNameKey, env.DefaultFunctionName),
		Version:    env.GetenvWithDefault(env.FunctionVersionKey, env.DefaultFunctionVersion),
		MemorySize: env.GetenvWithDefault(env.FunctionMemoryKey, env.DefaultFunctionMemory),
		Region:     env.GetenvWithDefault(env.RegionKey, "us-east-1"),
	}
}

// ARN is the function ARN passed to the handler context.
func (f FunctionInfo) ARN() string {
	return fmt.Sprintf("arn:aws:lambda:%s:012345678912:function:%s", f.Region, f.Name)
}

func printStartReport(w io.Writer, invokeID string, fnInfo FunctionInfo) {
	fmt.Fprintf(w, "START RequestId: %s Version: %s\n", invokeID, fnInfo.Version)
}

func printEndReports(w io.Writer, invokeID string, fnInfo FunctionInfo, invokeStart time.Time) {
	invokeDuration := float64(time.Since(invokeStart).Nanoseconds()) / float64(time.Millisecond)

	fmt.Fprintf(w, "END RequestId: %s\n", invokeID)
	// Max Memory Used is reported as the configured size; the emulator
	// does not measure it.
	fmt.Fprintf(w,
		"REPORT RequestId: %s\t"+
			"Duration: %.2f ms\t"+
			"Billed Duration: %.f ms\t"+
			"Memory Size: %s MB\t"+
			"Max Memory Used: %s MB\t\n",
		invokeID, invokeDuration, math.Ceil(invokeDuration), fnInfo.MemorySize, fnInfo.MemorySize)
}
