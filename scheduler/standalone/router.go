// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"context"
	"io"
	"net/http"

	"github.com/soodrajesh/ec2-scheduler/scheduler/model"

	"github.com/go-chi/chi"
)

// InvokePath is the Lambda Invoke API route served by the emulator.
const InvokePath = "/2015-03-31/functions/{function}/invocations"

// Function is the handler the emulator invokes.
type Function interface {
	Handle(ctx context.Context, event model.Event) (model.Response, error)
}

// NewHTTPRouter serves fn behind the Lambda Invoke API path. Invoke reports
// are written to reports.
func NewHTTPRouter(fn Function, fnInfo FunctionInfo, reports io.Writer) *chi.Mux {
	r := chi.NewRouter()
	r.Use(standaloneAccessLogDecorator)

	r.Post(InvokePath, func(w http.ResponseWriter, r *http.Request) { InvokeHandler(w, r, fn, fnInfo, reports) })
	r.Get("/test/ping", func(w http.ResponseWriter, r *http.Request) { PingHandler(w, r) })
	return r
}
