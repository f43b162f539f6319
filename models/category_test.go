package models

import (
	"encoding/json"
	"testing"
)

func TestParentRefUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  ParentRef
		err   bool
	}{
		{"none token", `"none"`, ParentRef{None: true}, false},
		{"number", `7`, ParentRef{ID: 7}, false},
		{"numeric string", `"7"`, ParentRef{ID: 7}, false},
		{"word", `"piercings"`, ParentRef{}, true},
		{"negative", `-1`, ParentRef{}, true},
		{"object", `{}`, ParentRef{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p ParentRef
			err := json.Unmarshal([]byte(tc.input), &p)
			if tc.err {
				if err == nil {
					t.Fatalf("expected error for %s", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, p)
			}
		})
	}
}

func TestParentRefMarshal(t *testing.T) {
	out, err := json.Marshal(NoParent())
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"none"` {
		t.Errorf(`expected "none", got %s`, out)
	}

	out, err = json.Marshal(ParentOf(3))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "3" {
		t.Errorf("expected 3, got %s", out)
	}
}

func TestCategoryIsRoot(t *testing.T) {
	root := Category{ID: 1, ParentID: 1}
	if !root.IsRoot() {
		t.Error("self-referencing category should be a root")
	}

	child := Category{ID: 2, ParentID: 1}
	if child.IsRoot() {
		t.Error("child category should not be a root")
	}
}
