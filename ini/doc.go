// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a parser and serializer for a minimal dialect of the
INI file format. See https://en.wikipedia.org/wiki/INI_file.

This package is specifically designed for round-tripping machine-written
configuration: what you set is exactly what is written, byte for byte. There
is no comment syntax, no quoting, no escaping, and no whitespace trimming.

Syntax

A document is line-oriented text. Carriage returns are stripped before the
text is split into lines, so LF and CRLF input parse identically.

A line containing a bracketed span starts a section: the text between the
first '[' and the first ']' after it becomes the current section name, and
any text outside the brackets is ignored. The name must be non-empty; a bare
"[]" has no effect. Properties encountered before any section header belong
to the global section, identified by the empty string ("").

Any other line is a property if it contains an equals sign ('=') with at
least one character on each side. The key is everything before the first '='
and the value is everything after it, so values may themselves contain '='
characters. Nothing is trimmed: whitespace around '=' or inside brackets is
part of the key, value, or section name. A ';' or '#' is an ordinary
character, so trailing comment text on a property line becomes part of the
value.

Lines matching neither form are skipped silently.

Within a section, keys are unique and the last write wins. The order of
sections and of keys within a section is not preserved.

Output

Serialized output uses CRLF line terminators and emits every section as a
bracketed header followed by its properties. The global section is emitted
with an empty header ("[]"), which the parser skips on input, so global
properties do not survive a serialize/parse round trip; properties in named
sections do.
*/
package ini
