// Package config resolves command-line input for mvngraph into a validated,
// immutable configuration.
//
// Resolution is a pure function over the argument list: the same arguments
// always produce the same Configuration or the same typed error, and nothing
// is written anywhere in the process. Printing the result is the caller's
// job. Later stages (repository access, graph traversal, rendering) consume
// the Configuration as-is with no further checks.
package config

import (
	"strconv"
	"strings"

	"github.com/mvngraph/mvngraph/pkg/errors"
)

// Coordinate identifies a Maven package as a groupId/artifactId pair.
type Coordinate struct {
	Group    string
	Artifact string
}

// ParseCoordinate splits a "groupId:artifactId" string into a Coordinate.
// The raw value must contain exactly one colon with non-empty parts on both
// sides; anything else is rejected.
func ParseCoordinate(raw string) (Coordinate, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Coordinate{}, errors.New(errors.ErrCodeInvalidPackage,
			"invalid package %q: expected groupId:artifactId", raw)
	}
	return Coordinate{Group: parts[0], Artifact: parts[1]}, nil
}

// String returns the canonical groupId:artifactId form.
func (c Coordinate) String() string { return c.Group + ":" + c.Artifact }

// SourceKind selects where dependency data will come from.
type SourceKind string

const (
	// SourceRemote reads from a remote Maven repository URL.
	SourceRemote SourceKind = "url"

	// SourceLocal reads from a local test-repository path.
	SourceLocal SourceKind = "test-repo"
)

// Source is the origin of dependency data: a remote repository URL or a
// local test-repository path. Exactly one kind is ever set.
type Source struct {
	Kind  SourceKind
	Value string
}

// String returns the source as "<kind> <value>".
func (s Source) String() string { return string(s.Kind) + " " + s.Value }

// Config is the validated result of resolving command-line input for one
// invocation. It is constructed once by Resolve and read-only afterwards.
//
// MaxDepth, Tree and Filter are validated and recorded here but their
// traversal semantics are reserved for later stages.
type Config struct {
	Package  Coordinate
	Source   Source
	MaxDepth int    // 0 means unset
	Tree     bool
	Filter   string // empty means unset
}

// Unset is the sentinel displayed for optional fields that were not supplied.
const Unset = "(unset)"

// Field is one printable configuration entry.
type Field struct {
	Key   string
	Value string
	Set   bool
}

// Fields returns the configuration in its fixed display order: package,
// source, max-depth, tree, filter. Unset optionals are flagged so callers
// can render a sentinel.
func (c *Config) Fields() []Field {
	fields := []Field{
		{Key: "package", Value: c.Package.String(), Set: true},
		{Key: "source", Value: c.Source.String(), Set: true},
	}
	if c.MaxDepth > 0 {
		fields = append(fields, Field{Key: "max-depth", Value: strconv.Itoa(c.MaxDepth), Set: true})
	} else {
		fields = append(fields, Field{Key: "max-depth"})
	}
	fields = append(fields, Field{Key: "tree", Value: strconv.FormatBool(c.Tree), Set: true})
	if c.Filter != "" {
		fields = append(fields, Field{Key: "filter", Value: c.Filter, Set: true})
	} else {
		fields = append(fields, Field{Key: "filter"})
	}
	return fields
}
