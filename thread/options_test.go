// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package thread_test

import (
	"strings"
	"testing"

	"github.com/robbiesri/rsbl/thread"
)

func TestParseOptions(t *testing.T) {
	res := thread.ParseOptions([]byte("name: render-io\ncpu: 2\nfailure_text_limit: 128\n"))
	if res.IsFailure() {
		t.Fatalf("ParseOptions: %s", res.FailureText())
	}
	opts := res.Value()
	if opts.Name != "render-io" {
		t.Fatalf("got name %q", opts.Name)
	}
	if opts.CPU == nil || *opts.CPU != 2 {
		t.Fatalf("got cpu %v", opts.CPU)
	}
	if opts.FailureTextLimit != 128 {
		t.Fatalf("got limit %d", opts.FailureTextLimit)
	}
}

func TestParseOptionsEmpty(t *testing.T) {
	for _, doc := range []string{"", "\n"} {
		res := thread.ParseOptions([]byte(doc))
		if res.IsFailure() {
			t.Fatalf("ParseOptions(%q): %s", doc, res.FailureText())
		}
		opts := res.Value()
		if opts.Name != "" || opts.CPU != nil || opts.FailureTextLimit != 0 {
			t.Fatalf("ParseOptions(%q) = %+v, want defaults", doc, opts)
		}
	}
}

func TestParseOptionsRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown key", "name: x\npriority: high\n", "priority"},
		{"wrong type", "cpu: first\n", "cannot unmarshal"},
		{"negative cpu", "cpu: -3\n", "Invalid thread affinity: cpu -3"},
		{"limit too large", "failure_text_limit: 1000\n", "Invalid failure text limit: 1000"},
		{"negative limit", "failure_text_limit: -1\n", "Invalid failure text limit: -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := thread.ParseOptions([]byte(tt.doc))
			if res.IsOk() {
				t.Fatalf("ParseOptions(%q) must fail", tt.doc)
			}
			if !strings.Contains(res.FailureText(), tt.want) {
				t.Fatalf("got %q, want it to mention %q", res.FailureText(), tt.want)
			}
		})
	}
}

func TestLoadOptions(t *testing.T) {
	res := thread.LoadOptions(strings.NewReader("name: loader\n"))
	if res.IsFailure() {
		t.Fatalf("LoadOptions: %s", res.FailureText())
	}
	if res.Value().Name != "loader" {
		t.Fatalf("got %q", res.Value().Name)
	}
}

func TestOptionsBuilders(t *testing.T) {
	base := thread.DefaultOptions()
	named := base.WithName("io")
	pinned := named.WithCPU(0)

	if base.Name != "" || base.CPU != nil {
		t.Fatal("builders must not modify the receiver")
	}
	if named.CPU != nil {
		t.Fatal("WithName must not set a CPU")
	}
	if pinned.Name != "io" || pinned.CPU == nil || *pinned.CPU != 0 {
		t.Fatalf("got %+v", pinned)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts thread.Options
		ok   bool
	}{
		{"defaults", thread.DefaultOptions(), true},
		{"cpu zero", thread.DefaultOptions().WithCPU(0), true},
		{"negative cpu", thread.DefaultOptions().WithCPU(-1), false},
		{"limit max", thread.Options{FailureTextLimit: thread.MaxFailureTextLength}, true},
		{"limit over", thread.Options{FailureTextLimit: thread.MaxFailureTextLength + 1}, false},
	}
	for _, tt := range tests {
		if got := tt.opts.Validate().IsOk(); got != tt.ok {
			t.Errorf("%s: Validate ok = %v, want %v", tt.name, got, tt.ok)
		}
	}
}
