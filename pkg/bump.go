package cargov

import (
	"strings"
)

// BumpTypeExplicit is the Result.BumpType of a caller-supplied version.
const BumpTypeExplicit = "explicit"

// Result is the outcome of one pipeline run over a manifest document.
type Result struct {
	Document   string // The rewritten manifest text.
	OldVersion string // The version text found in the manifest.
	NewVersion string // The applied version, without a "v" prefix.
	BumpType   string // "patch", "minor", "major" or "explicit".
}

type options struct {
	scope RewriteScope
}

// Option configures BumpByLabel, BumpTo and Bump.
type Option func(*options)

// WithRewriteScope selects the rewriter. The default is ScopeDocument.
func WithRewriteScope(scope RewriteScope) Option {
	return func(o *options) {
		o.scope = scope
	}
}

func newOptions(opts []Option) options {
	o := options{scope: ScopeDocument}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// currentVersion extracts and parses the version recorded in doc.
func currentVersion(doc string) (string, Version, error) {
	text, err := ExtractVersion(doc)
	if err != nil {
		return "", Version{}, err
	}
	v, err := ParseVersion(text)
	if err != nil {
		return "", Version{}, err
	}
	return text, v, nil
}

// BumpByLabel advances the manifest version along the axis named by label
// and returns the rewritten document.
func BumpByLabel(doc string, label BumpLabel, opts ...Option) (Result, error) {
	o := newOptions(opts)

	oldText, old, err := currentVersion(doc)
	if err != nil {
		return Result{}, err
	}
	next, err := old.Bump(label)
	if err != nil {
		return Result{}, err
	}
	if err := ValidateIncrease(old, next); err != nil {
		return Result{}, err
	}

	newText := next.String()
	return Result{
		Document:   o.scope.rewrite(doc, oldText, newText),
		OldVersion: oldText,
		NewVersion: newText,
		BumpType:   string(label),
	}, nil
}

// BumpTo sets the manifest version to requested, which may carry a leading
// "v". The requested version must be a canonical step above the current one.
func BumpTo(doc, requested string, opts ...Option) (Result, error) {
	o := newOptions(opts)

	oldText, old, err := currentVersion(doc)
	if err != nil {
		return Result{}, err
	}
	next, err := ParseVersion(strings.TrimPrefix(strings.TrimSpace(requested), "v"))
	if err != nil {
		return Result{}, err
	}
	if err := ValidateIncrease(old, next); err != nil {
		return Result{}, err
	}

	// Written in canonical form: extra segments and leading zeros are dropped.
	newText := next.String()
	return Result{
		Document:   o.scope.rewrite(doc, oldText, newText),
		OldVersion: oldText,
		NewVersion: newText,
		BumpType:   BumpTypeExplicit,
	}, nil
}

// Bump interprets arg the way the command line does: "patch", "minor" and
// "major" are labels, anything else is an explicit version.
func Bump(doc, arg string, opts ...Option) (Result, error) {
	arg = strings.TrimSpace(arg)
	if label, err := ParseBumpLabel(arg); err == nil {
		return BumpByLabel(doc, label, opts...)
	}
	return BumpTo(doc, arg, opts...)
}
