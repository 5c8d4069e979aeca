// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/jessevdk/go-flags"
)

// Options configures the function process. The target instance is not part
// of it: INSTANCE_ID is looked up on every invocation.
type Options struct {
	LogLevel    string `long:"log-level" env:"LOG_LEVEL" default:"info" description:"log level"`
	Region      string `long:"region" env:"AWS_REGION" description:"AWS region of the instance, defaults to the SDK credential chain"`
	EC2Endpoint string `long:"ec2-endpoint" env:"EC2_ENDPOINT_URL" description:"override the EC2 API endpoint"`
	Address     string `long:"address" env:"RIE_ADDRESS" default:"0.0.0.0:8080" description:"address the local invoke emulator listens on"`
}

// ParseCLIArgs parses args (including the program name) into Options.
// Unknown flags are left in the returned arguments.
func ParseCLIArgs(args []string) (Options, []string, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	rest, err := parser.ParseArgs(args)
	return opts, rest, err
}
