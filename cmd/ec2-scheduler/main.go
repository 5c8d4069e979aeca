// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/soodrajesh/ec2-scheduler/scheduler/config"
	"github.com/soodrajesh/ec2-scheduler/scheduler/handler"
	"github.com/soodrajesh/ec2-scheduler/scheduler/instance"
	"github.com/soodrajesh/ec2-scheduler/scheduler/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	opts, _, err := config.ParseCLIArgs(os.Args)
	if err != nil {
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}

	logging.SetOutput(os.Stdout)
	if err := logging.SetLogLevel(opts.LogLevel); err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}

	// The client is built once per execution environment and reused across
	// invocations.
	client, err := instance.NewEC2Client(context.Background(), instance.ClientOptions{
		Region:   opts.Region,
		Endpoint: opts.EC2Endpoint,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create EC2 client")
	}

	h := handler.NewHandler(instance.NewController(client), os.Getenv)
	lambda.Start(h.Handle)
}
