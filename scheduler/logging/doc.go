// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*

The function writes plain text lines to a single sink (stdout on Lambda, where
the platform forwards them to CloudWatch Logs). Both the standard library
logger and logrus are pointed at that sink.

Lines have the form

	INFO Starting instance: i-0123456789abcdef0 requestId=5f1c...

The level comes first, then the message, then any fields sorted by key.
No timestamp is written; the log sink records one.

*/
package logging
