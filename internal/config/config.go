// Package config holds the functional options used to configure an
// emulator instance at construction time, and the error type returned by
// every stage of loading one.
package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Options collects everything a component needs to know at construction
// time that isn't part of the machine's architectural state.
type Options struct {
	Logger   logrus.FieldLogger
	SkipBoot bool
	SaveDir  string
}

// Default returns an Options with the process-wide standard logrus
// logger, boot ROM execution enabled, and no save directory configured.
func Default() Options {
	return Options{
		Logger: logrus.StandardLogger(),
	}
}

// Opt modifies an Options in place.
type Opt func(*Options)

// WithLogger injects the logger components use for load-time cartridge
// messages and for warnings about illegal opcodes.
func WithLogger(l logrus.FieldLogger) Opt {
	return func(o *Options) { o.Logger = l }
}

// SkipBootROM starts the CPU directly at the cartridge entry point
// (0x0100) with post-boot register and I/O values, instead of executing
// a supplied boot ROM image from 0x0000.
func SkipBootROM() Opt {
	return func(o *Options) { o.SkipBoot = true }
}

// WithSaveDir sets the directory battery RAM is persisted to. RTC state
// is not persisted.
func WithSaveDir(dir string) Opt {
	return func(o *Options) { o.SaveDir = dir }
}

// Apply runs every opt against a fresh Default Options and returns it.
func Apply(opts ...Opt) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LoadError is returned when a ROM or boot ROM image cannot be turned
// into a running emulator. Code mirrors the process exit codes the CLI
// maps onto it: 2 for an I/O failure, 3 for an unsupported cartridge
// type.
type LoadError struct {
	Code int
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("rgb: %s", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewIOError wraps err as a load-time I/O failure (exit code 2).
func NewIOError(err error) *LoadError {
	return &LoadError{Code: 2, Err: err}
}

// NewUnsupportedCartridgeError reports a cartridge type byte this
// implementation does not know how to bank-switch (exit code 3).
func NewUnsupportedCartridgeError(cartridgeType uint8) *LoadError {
	return &LoadError{Code: 3, Err: fmt.Errorf("unsupported cartridge type 0x%02X", cartridgeType)}
}
