// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

// Helpbot-check validates a helpbot deployment without starting the
// bot. It loads and resolves the configuration document, prints the
// outcome of every feature resolution rule, and inspects the state
// records in the data directory.
//
// State records that do not exist yet are reported as a first run, not
// an error; records that exist but do not decode fail the check.
// Inspection never creates or modifies a record, so the command is safe
// to run against a live deployment's data directory.
//
// Exit codes:
//
//	0  configuration and state are valid
//	1  configuration invalid or a state record is corrupt
//	2  bad arguments or environment
package main
