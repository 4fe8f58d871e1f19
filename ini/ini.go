// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"
)

// A Document is an unordered collection of sections, each holding unique
// key-value properties. The zero value is an empty document.
//
// A Document is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
type Document struct {
	sections map[string]map[string]string
}

// Parse reads r to completion and parses it as an INI document. Parse
// returns an error only if reading r fails; no input text is rejected, and
// lines that are neither section headers nor properties are skipped.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader) (*Document, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse ini: %w", err)
	}
	d := new(Document)
	d.parse(string(data))
	return d, nil
}

// UnmarshalText parses the INI data, replacing any sections in d.
func (d *Document) UnmarshalText(data []byte) error {
	parsed := new(Document)
	parsed.parse(string(data))
	*d = *parsed
	return nil
}

func (d *Document) parse(text string) {
	text = strings.ReplaceAll(text, "\r", "")
	currSection := ""
	for _, line := range strings.Split(text, "\n") {
		if name, ok := sectionHeader(line); ok {
			currSection = name
			// Materialize the section so that it survives serialization
			// even if no properties follow. Re-entering a section keeps
			// its existing properties.
			d.section(currSection)
			continue
		}
		if key, value, ok := splitProperty(line); ok {
			d.Set(currSection, key, value)
		}
	}
}

// sectionHeader reports whether line contains a bracketed span with a
// non-empty name and returns the text between the first '[' and the first
// ']' after it. Text outside the brackets is ignored.
func sectionHeader(line string) (name string, ok bool) {
	i := strings.IndexByte(line, '[')
	if i == -1 {
		return "", false
	}
	j := strings.IndexByte(line[i+1:], ']')
	if j <= 0 {
		return "", false
	}
	return line[i+1 : i+1+j], true
}

// splitProperty splits line at its first '='. A line qualifies only if
// there is at least one character on each side of the '='.
func splitProperty(line string) (key, value string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i < 1 || i == len(line)-1 {
		return "", "", false
	}
	return line[:i], line[i+1:], true
}

// MarshalText serializes the document in INI format with CRLF line
// terminators. Sections and properties are emitted in unspecified order;
// sections without properties emit only their header line. The returned
// error is always nil.
func (d *Document) MarshalText() ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	var buf []byte
	for name, props := range d.sections {
		buf = append(buf, '[')
		buf = append(buf, name...)
		buf = append(buf, "]\r\n"...)
		for k, v := range props {
			buf = append(buf, k...)
			buf = append(buf, '=')
			buf = append(buf, v...)
			buf = append(buf, "\r\n"...)
		}
	}
	return buf, nil
}

// Get returns the value associated with the given key in the given section.
// Passing an empty section name looks in the global section. The second
// result reports whether the key was present, distinguishing a missing key
// from one set to the empty string.
func (d *Document) Get(section, key string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.sections[section][key]
	return v, ok
}

// Set associates value with key in the named section, creating the section
// if necessary. Any strings are accepted, including empty ones; there is no
// validation and no escaping, so a value containing a newline or a key
// containing '=' will not survive a serialize/parse round trip.
func (d *Document) Set(section, key, value string) {
	d.section(section)[key] = value
}

// Section returns a copy of the properties in the named section.
// Section("") returns the global section: the properties set outside any
// section. The result is never nil and shares no storage with the document;
// sections that do not exist yield an empty map.
func (d *Document) Section(name string) map[string]string {
	result := make(map[string]string)
	if d == nil {
		return result
	}
	for k, v := range d.sections[name] {
		result[k] = v
	}
	return result
}

// SetSection replaces the named section's properties with a copy of values,
// discarding any keys previously present and creating the section if
// necessary. A nil map leaves the document unchanged.
func (d *Document) SetSection(name string, values map[string]string) {
	if values == nil {
		return
	}
	props := make(map[string]string, len(values))
	for k, v := range values {
		props[k] = v
	}
	if d.sections == nil {
		d.sections = make(map[string]map[string]string)
	}
	d.sections[name] = props
}

// Sections returns the names of the sections present in the document,
// including sections without properties. This will include the empty string
// if there are properties set outside a section.
func (d *Document) Sections() map[string]struct{} {
	if d == nil {
		return nil
	}
	names := make(map[string]struct{}, len(d.sections))
	for name := range d.sections {
		names[name] = struct{}{}
	}
	return names
}

// section returns the named section's properties, creating them if needed.
func (d *Document) section(name string) map[string]string {
	if d.sections == nil {
		d.sections = make(map[string]map[string]string)
	}
	props := d.sections[name]
	if props == nil {
		props = make(map[string]string)
		d.sections[name] = props
	}
	return props
}
