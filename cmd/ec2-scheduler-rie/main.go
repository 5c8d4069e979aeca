// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Command ec2-scheduler-rie serves the scheduler function over the Lambda
// Invoke API on a local address, so it can be exercised with curl:
//
//	curl -XPOST "http://localhost:8080/2015-03-31/functions/function/invocations" -d '{"action":"start"}'
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/soodrajesh/ec2-scheduler/scheduler/config"
	"github.com/soodrajesh/ec2-scheduler/scheduler/env"
	"github.com/soodrajesh/ec2-scheduler/scheduler/handler"
	"github.com/soodrajesh/ec2-scheduler/scheduler/instance"
	"github.com/soodrajesh/ec2-scheduler/scheduler/logging"
	"github.com/soodrajesh/ec2-scheduler/scheduler/standalone"

	log "github.com/sirupsen/logrus"
)

func main() {
	opts, _, err := config.ParseCLIArgs(os.Args)
	if err != nil {
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}

	logging.SetOutput(os.Stderr)
	if err := logging.SetLogLevel(opts.LogLevel); err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := instance.NewEC2Client(ctx, instance.ClientOptions{
		Region:   opts.Region,
		Endpoint: opts.EC2Endpoint,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to create EC2 client")
	}

	if os.Getenv(env.InstanceIDKey) == "" {
		log.Warnf("%s is not set; start and stop calls will be rejected by EC2", env.InstanceIDKey)
	}

	h := handler.NewHandler(instance.NewController(client), os.Getenv)
	router := standalone.NewHTTPRouter(h, standalone.FunctionInfoFromEnv(), os.Stdout)

	if err := standalone.Serve(ctx, opts.Address, router); err != nil {
		log.WithError(err).Fatal("Emulator server stopped")
	}
}
