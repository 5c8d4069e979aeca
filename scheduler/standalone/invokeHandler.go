// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/soodrajesh/ec2-scheduler/scheduler/model"

	"github.com/google/uuid"

	log "github.com/sirupsen/logrus"
)

// InvokeHandler runs fn once for the request payload and writes its result
// the way the Lambda Invoke API does.
func InvokeHandler(w http.ResponseWriter, r *http.Request, fn Function, fnInfo FunctionInfo, reports io.Writer) {
	event, errReply := readEvent(r)
	if errReply != nil {
		errReply.Send(w, r)
		return
	}

	invokeID := uuid.New().String()
	ctx := lambdacontext.NewContext(r.Context(), &lambdacontext.LambdaContext{
		AwsRequestID:       invokeID,
		InvokedFunctionArn: fnInfo.ARN(),
	})

	printStartReport(reports, invokeID, fnInfo)
	invokeStart := time.Now()
	resp, err := fn.Handle(ctx, event)
	printEndReports(reports, invokeID, fnInfo, invokeStart)

	var reply Reply = &SuccessReply{Response: resp}
	if err != nil {
		log.WithError(err).WithField("requestId", invokeID).Error("Function returned an error")
		reply = &FunctionErrorReply{ErrorResponse: model.NewErrorResponse(err)}
	}
	reply.Send(w, r)
}
