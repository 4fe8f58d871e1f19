// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package inifile reads and writes INI documents as whole files.
//
// Load and Save operate on entire file contents: there is no streaming or
// in-place editing. Save replaces the destination atomically, so a failed
// write never truncates previously saved content.
package inifile

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/yourbase/iniconf/ini"
	"zombiezen.com/go/log"
)

// Load reads the file at path in its entirety and parses it as an INI
// document. A missing file is an error; use os.ErrNotExist to detect it.
func Load(path string) (*ini.Document, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load ini file %s: %w", path, err)
	}
	doc := new(ini.Document)
	if err := doc.UnmarshalText(data); err != nil {
		return nil, fmt.Errorf("load ini file %s: %w", path, err)
	}
	return doc, nil
}

// Save serializes doc and replaces the file at path with the result. The
// text is written to a temporary file in the destination's directory and
// renamed into place, so if Save returns an error, any previous content at
// path is intact. The context is used for logging only.
func Save(ctx context.Context, path string, doc *ini.Document) error {
	data, err := doc.MarshalText()
	if err != nil {
		return fmt.Errorf("save ini file %s: %w", path, err)
	}
	tmp, err := ioutil.TempFile(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("save ini file %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		if rerr := os.Remove(tmpPath); rerr != nil {
			log.Warnf(ctx, "Leaving temporary file behind after failed save of %s: %v", path, rerr)
		}
		return fmt.Errorf("save ini file %s: %w", path, err)
	}
	return nil
}
