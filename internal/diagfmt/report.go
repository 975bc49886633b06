package diagfmt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"cedar/internal/diag"
	"cedar/internal/source"
)

// Report is the compact binary form of a diagnostics run, suitable for
// caching between invocations or feeding to external tooling. It reuses
// the JSON shapes so both encodings stay in lockstep.
type Report struct {
	Tool        string           `msgpack:"tool"`
	Version     string           `msgpack:"version"`
	Diagnostics []DiagnosticJSON `msgpack:"diagnostics"`
	Errors      int              `msgpack:"errors"`
	Warnings    int              `msgpack:"warnings"`
}

// BuildReport captures the bag into a Report with full positions.
func BuildReport(tool, version string, bag *diag.Bag, fs *source.FileSet) Report {
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{
		IncludePositions: true,
		IncludeNotes:     true,
	})
	return Report{
		Tool:        tool,
		Version:     version,
		Diagnostics: out.Diagnostics,
		Errors:      out.Errors,
		Warnings:    out.Warnings,
	}
}

// WriteReport serializes the report to path atomically: encode to a temp
// file in the same directory, then rename over the target.
func WriteReport(path string, report *Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(report); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encode report: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// ReadReport loads a report written by WriteReport. A missing file is
// reported as (false, nil).
func ReadReport(path string, out *Report) (bool, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, fmt.Errorf("decode report: %w", err)
	}
	return true, nil
}
