// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads and validates helpbot's configuration document.
//
// The document is a human-edited YAML file with many optional sections.
// Loading happens in two stages: parsing enforces only document-level
// required fields, then one resolution rule per feature area
// cross-validates its sections and produces an explicit
// enabled/disabled outcome. The result is an immutable Config: it is
// either fully valid or the load fails, and no partial configuration
// ever escapes.
//
// Each optional feature area resolves to a Feature value, so a
// deliberately disabled feature is structurally distinct from one that
// is enabled with an empty payload.
package config
