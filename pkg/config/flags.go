package config

import (
	"io"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/mvngraph/mvngraph/pkg/errors"
)

// Flag names recognized by the resolver.
const (
	FlagPackage  = "package"
	FlagURL      = "url"
	FlagTestRepo = "test-repo"
	FlagMaxDepth = "max-depth"
	FlagTree     = "tree"
	FlagFilter   = "filter"
)

// Flags owns the resolver's option definitions. The underlying pflag set can
// be parsed directly (see Resolve) or merged into a cobra command's flag set
// with AddTo; the flag objects are shared, so values parsed either way land
// here.
type Flags struct {
	fs *pflag.FlagSet

	pkg      string
	url      string
	testRepo string
	maxDepth string // kept raw so depth validation owns the error
	tree     bool
	filter   string
}

// NewFlags defines the full option set on a fresh flag set.
func NewFlags() *Flags {
	f := &Flags{fs: pflag.NewFlagSet("mvngraph", pflag.ContinueOnError)}
	// Resolve must stay silent; callers present errors.
	f.fs.SetOutput(io.Discard)
	f.fs.StringVar(&f.pkg, FlagPackage, "", "package to analyze (groupId:artifactId)")
	f.fs.StringVar(&f.url, FlagURL, "", "remote Maven repository URL")
	f.fs.StringVar(&f.testRepo, FlagTestRepo, "", "local test-repository path")
	f.fs.StringVar(&f.maxDepth, FlagMaxDepth, "", "maximum dependency depth (positive integer)")
	f.fs.BoolVar(&f.tree, FlagTree, false, "print dependencies as an ASCII tree")
	f.fs.StringVar(&f.filter, FlagFilter, "", "substring used to restrict output")
	return f
}

// AddTo merges the option definitions into another flag set, typically a
// cobra command's.
func (f *Flags) AddTo(fs *pflag.FlagSet) { fs.AddFlagSet(f.fs) }

// Changed reports whether the named option was supplied on the command line.
func (f *Flags) Changed(name string) bool { return f.fs.Changed(name) }

// ApplyDefaults fills options the command line left unset from a defaults
// file. The package option is never filled: the identity of the query must
// come from the caller. Source defaults are skipped entirely when either
// source option was supplied, so a defaults file cannot manufacture a
// conflict between --url and --test-repo.
func (f *Flags) ApplyDefaults(d *Defaults) {
	if d == nil {
		return
	}
	if !f.fs.Changed(FlagURL) && !f.fs.Changed(FlagTestRepo) {
		f.url = d.URL
		f.testRepo = d.TestRepo
	}
	if !f.fs.Changed(FlagMaxDepth) && d.MaxDepth != 0 {
		f.maxDepth = strconv.Itoa(d.MaxDepth)
	}
	if !f.fs.Changed(FlagTree) && d.Tree {
		f.tree = true
	}
	if !f.fs.Changed(FlagFilter) && d.Filter != "" {
		f.filter = d.Filter
	}
}

// Resolve validates the collected option values and produces the immutable
// Configuration. Validation order: required options, mutual exclusion,
// package shape, source value, depth. An option with an empty value counts
// as absent.
func (f *Flags) Resolve() (*Config, error) {
	if f.pkg == "" {
		return nil, errors.New(errors.ErrCodeMissingOption,
			"missing required option --%s", FlagPackage)
	}

	hasURL := f.url != ""
	hasRepo := f.testRepo != ""
	switch {
	case hasURL && hasRepo:
		return nil, errors.New(errors.ErrCodeConflictingOptions,
			"--%s and --%s are mutually exclusive", FlagURL, FlagTestRepo)
	case !hasURL && !hasRepo:
		return nil, errors.New(errors.ErrCodeMissingOption,
			"missing required option: one of --%s or --%s", FlagURL, FlagTestRepo)
	}

	coord, err := ParseCoordinate(f.pkg)
	if err != nil {
		return nil, err
	}

	cfg := &Config{Package: coord, Tree: f.tree, Filter: f.filter}
	if hasURL {
		if err := errors.ValidateURL(f.url); err != nil {
			return nil, err
		}
		cfg.Source = Source{Kind: SourceRemote, Value: f.url}
	} else {
		if err := errors.ValidateRepoPath(f.testRepo); err != nil {
			return nil, err
		}
		cfg.Source = Source{Kind: SourceLocal, Value: f.testRepo}
	}

	if f.maxDepth != "" {
		depth, err := strconv.Atoi(f.maxDepth)
		if err != nil || depth <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidDepth,
				"invalid --%s %q: expected a positive integer", FlagMaxDepth, f.maxDepth)
		}
		cfg.MaxDepth = depth
	}

	return cfg, nil
}

// Resolve parses raw command-line tokens and validates them into a
// Configuration. It is a pure function of its input: no I/O, no shared
// state, and the same argument list always yields the same result.
func Resolve(args []string) (*Config, error) {
	f := NewFlags()
	if err := f.fs.Parse(args); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse arguments")
	}
	return f.Resolve()
}
