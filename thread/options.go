// ©Robert Srinivasiah 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package thread

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/robbiesri/rsbl"
)

// Options configure the OS thread behind a Thread.
//
// Options can be written in YAML:
//
//	name: render-io
//	cpu: 2
//	failure_text_limit: 128
type Options struct {
	// Name labels the OS thread for debuggers. Empty means a name derived
	// from the thread's ID.
	Name string `yaml:"name,omitempty"`

	// CPU pins the thread to one logical CPU. Nil leaves affinity alone.
	CPU *int `yaml:"cpu,omitempty"`

	// FailureTextLimit bounds the captured failure text, terminator
	// included. Zero means MaxFailureTextLength.
	FailureTextLimit int `yaml:"failure_text_limit,omitempty"`
}

// DefaultOptions returns options that only name the thread.
func DefaultOptions() Options {
	return Options{}
}

// WithName returns a copy of o using name.
func (o Options) WithName(name string) Options {
	o.Name = name
	return o
}

// WithCPU returns a copy of o pinned to cpu.
func (o Options) WithCPU(cpu int) Options {
	o.CPU = &cpu
	return o
}

// textLimit returns the effective failure text capacity.
func (o Options) textLimit() int {
	if o.FailureTextLimit == 0 {
		return MaxFailureTextLength
	}
	return o.FailureTextLimit
}

// Validate checks o without touching the platform.
func (o Options) Validate() rsbl.Status {
	if o.CPU != nil && *o.CPU < 0 {
		return rsbl.Failf[rsbl.Unit]("Invalid thread affinity: cpu %d", *o.CPU)
	}
	if o.FailureTextLimit < 0 || o.FailureTextLimit > MaxFailureTextLength {
		return rsbl.Failf[rsbl.Unit]("Invalid failure text limit: %d (max %d)", o.FailureTextLimit, MaxFailureTextLength)
	}
	return rsbl.Done()
}

// ParseOptions decodes YAML into Options. Unknown keys are rejected.
func ParseOptions(data []byte) rsbl.Result[Options] {
	return LoadOptions(bytes.NewReader(data))
}

// LoadOptions decodes YAML from r into Options and validates them.
// An empty document yields DefaultOptions.
func LoadOptions(r io.Reader) rsbl.Result[Options] {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return rsbl.FromError[Options](err)
	}
	if st := opts.Validate(); st.IsFailure() {
		return rsbl.Propagate[Options](st)
	}
	return rsbl.Ok(opts)
}
