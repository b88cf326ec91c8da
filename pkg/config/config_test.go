package config

import (
	"testing"

	"github.com/mvngraph/mvngraph/pkg/errors"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Coordinate
		wantErr bool
	}{
		{"simple", "junit:junit", Coordinate{"junit", "junit"}, false},
		{"dotted group", "org.apache.commons:commons-lang3", Coordinate{"org.apache.commons", "commons-lang3"}, false},

		{"no delimiter", "abc", Coordinate{}, true},
		{"two delimiters", "a:b:c", Coordinate{}, true},
		{"empty group", ":artifact", Coordinate{}, true},
		{"empty artifact", "group:", Coordinate{}, true},
		{"only delimiter", ":", Coordinate{}, true},
		{"empty", "", Coordinate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinate(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCoordinate(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidPackage) {
					t.Errorf("ParseCoordinate(%q) code = %v, want %v", tt.raw, errors.GetCode(err), errors.ErrCodeInvalidPackage)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseCoordinate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCoordinateString(t *testing.T) {
	c := Coordinate{Group: "org.springframework", Artifact: "spring-core"}
	if got := c.String(); got != "org.springframework:spring-core" {
		t.Errorf("String() = %q, want %q", got, "org.springframework:spring-core")
	}
}

func TestFieldsOrder(t *testing.T) {
	cfg := &Config{
		Package:  Coordinate{"a", "b"},
		Source:   Source{Kind: SourceRemote, Value: "http://x"},
		MaxDepth: 5,
		Tree:     true,
		Filter:   "spring",
	}

	want := []Field{
		{Key: "package", Value: "a:b", Set: true},
		{Key: "source", Value: "url http://x", Set: true},
		{Key: "max-depth", Value: "5", Set: true},
		{Key: "tree", Value: "true", Set: true},
		{Key: "filter", Value: "spring", Set: true},
	}

	got := cfg.Fields()
	if len(got) != len(want) {
		t.Fatalf("Fields() returned %d fields, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fields()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFieldsUnsetOptionals(t *testing.T) {
	cfg := &Config{
		Package: Coordinate{"junit", "junit"},
		Source:  Source{Kind: SourceLocal, Value: "./repo"},
	}

	fields := cfg.Fields()

	byKey := make(map[string]Field)
	for _, f := range fields {
		byKey[f.Key] = f
	}

	if byKey["max-depth"].Set {
		t.Error("max-depth should be unset")
	}
	if byKey["filter"].Set {
		t.Error("filter should be unset")
	}
	if !byKey["tree"].Set || byKey["tree"].Value != "false" {
		t.Errorf("tree = %+v, want set with value false", byKey["tree"])
	}
	if byKey["source"].Value != "test-repo ./repo" {
		t.Errorf("source = %q, want %q", byKey["source"].Value, "test-repo ./repo")
	}
}
