package cli

import "github.com/pkg/errors"

// wrap annotates err with the failing CLI step.
func wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// wrapf is wrap with formatting.
func wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}
