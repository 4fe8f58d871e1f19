// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"os"
)

// FileSet is a list of documents to obtain configuration from in descending
// order of precedence.
type FileSet []*Document

// ParseFiles parses the files at the given paths as INI and returns a
// FileSet. If the returned error is nil, the returned set's length will be
// the same as the number of arguments. ParseFiles will stop on the first
// error, but ignores missing file errors, instead filling the corresponding
// element of the set with a nil *Document.
func ParseFiles(paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if os.IsNotExist(err) {
			fset = append(fset, nil)
			continue
		}
		if err != nil {
			return fset, fmt.Errorf("parse ini files: %w", err)
		}
		parsed, err := Parse(f)
		f.Close() // Close errors irrelevant.
		if err != nil {
			return fset, fmt.Errorf("parse ini files: %s: %w", p, err)
		}
		fset = append(fset, parsed)
	}
	return fset, nil
}

// Get returns the value associated with the given key in the given section
// from the first document in the set that contains the key. Passing an
// empty section name searches the global section.
func (fset FileSet) Get(section, key string) (string, bool) {
	for _, d := range fset {
		if v, ok := d.Get(section, key); ok {
			return v, true
		}
	}
	return "", false
}

// Section returns the merged properties of the named section across the
// set, with documents earlier in the set overriding later ones. The result
// is never nil and shares no storage with the set's documents.
func (fset FileSet) Section(name string) map[string]string {
	merged := make(map[string]string)
	for i := len(fset) - 1; i >= 0; i-- {
		for k, v := range fset[i].Section(name) {
			merged[k] = v
		}
	}
	return merged
}

// Sections returns the names of sections present in any document of the
// set.
func (fset FileSet) Sections() map[string]struct{} {
	merged := make(map[string]struct{})
	for _, d := range fset {
		for name := range d.Sections() {
			merged[name] = struct{}{}
		}
	}
	return merged
}

// Set sets the property on the first document of the set. Set will panic if
// len(fset) == 0. If fset[0] == nil, Set allocates a new Document. Lookups
// consult documents in order, so the write shadows any value for the same
// section and key later in the set.
func (fset FileSet) Set(section, key, value string) {
	if fset[0] == nil {
		fset[0] = new(Document)
	}
	fset[0].Set(section, key, value)
}
