// Copyright 2026 The Helpbot Authors
// SPDX-License-Identifier: Apache-2.0

package config

import "fmt"

// SyntaxError reports that the configuration document is not
// syntactically valid YAML. Callers can use errors.As to distinguish it
// from validation failures:
//
//	var syntaxErr *SyntaxError
//	if errors.As(err, &syntaxErr) { ... }
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("config: invalid document syntax: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// MissingFieldError reports a field the document must always carry but
// does not.
type MissingFieldError struct {
	// Section is the document section, e.g. "general".
	Section string
	// Field is the missing field within the section.
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("config: required field %s.%s is missing", e.Section, e.Field)
}

// InconsistentError reports optional sections that contradict each
// other: one section's presence makes another required, or a section is
// present but unusable.
type InconsistentError struct {
	// Feature names the feature area, e.g. "github search".
	Feature string
	// Detail describes the contradiction.
	Detail string
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("config: inconsistent %s configuration: %s", e.Feature, e.Detail)
}

// InvalidURLError reports a linkable URL value that does not parse as
// an absolute URL. This is a validation failure of the document, not a
// program fault: it aborts the load like any other validation error
// but never panics.
type InvalidURLError struct {
	// Keyword is the link map key the value belongs to.
	Keyword string
	// Value is the offending URL string.
	Value string
	Err   error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("config: link %q has invalid URL %q: %v", e.Keyword, e.Value, e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

// ReservedNameError reports a group-ping member token using the
// reserved "all" name.
type ReservedNameError struct {
	// Group is the group whose member list used the reserved token.
	Group string
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("config: group ping %q uses the reserved member token %q", e.Group, "all")
}

// UnresolvedAliasError reports a group-ping alias token referencing a
// group that does not exist in the document.
type UnresolvedAliasError struct {
	// Group is the group whose member list contains the alias.
	Group string
	// Alias is the referenced group name (without the '%' sentinel).
	Alias string
}

func (e *UnresolvedAliasError) Error() string {
	return fmt.Sprintf("config: group ping %q references unknown group %q", e.Group, e.Alias)
}
