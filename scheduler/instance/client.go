// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package instance

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	log "github.com/sirupsen/logrus"
)

// ClientOptions selects where EC2 calls go. Empty fields fall back to the
// SDK's default resolution (AWS_REGION, shared config, regional endpoint).
type ClientOptions struct {
	Region   string
	Endpoint string
}

// NewEC2Client creates an EC2 client from the default credential chain,
// which on Lambda is the function's execution role.
func NewEC2Client(ctx context.Context, opts ClientOptions) (*ec2.Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := ec2.NewFromConfig(cfg, func(o *ec2.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	log.WithFields(log.Fields{
		"region":   cfg.Region,
		"endpoint": opts.Endpoint,
	}).Debug("Initialized EC2 client")

	return client, nil
}
