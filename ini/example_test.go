// Copyright 2021 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini_test

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yourbase/iniconf/ini"
)

func ExampleParse() {
	const config = "global=xyzzy\n" +
		"[server]\n" +
		"host=example.com\n" +
		"[client]\n" +
		"timeout=30s\n"
	doc, err := ini.Parse(strings.NewReader(config))
	if err != nil {
		// handle error
	}

	// Print out sorted section names.
	var sections []string
	for name := range doc.Sections() {
		sections = append(sections, name)
	}
	sort.Strings(sections)
	fmt.Printf("Sections: %q\n", sections)

	// Get specific values.
	host, _ := doc.Get("server", "host")
	fmt.Println("Host:", host)
	global, _ := doc.Get("", "global")
	fmt.Println("Global property:", global)

	// A missing key is reported as absent, not as an empty string.
	_, ok := doc.Get("server", "missing")
	fmt.Println("Missing key present:", ok)

	// Output:
	// Sections: ["" "client" "server"]
	// Host: example.com
	// Global property: xyzzy
	// Missing key present: false
}

func ExampleDocument_MarshalText() {
	doc := new(ini.Document)
	doc.Set("server", "host", "example.com")
	out, err := doc.MarshalText()
	if err != nil {
		// handle error
	}
	fmt.Printf("%q\n", out)
	// Output:
	// "[server]\r\nhost=example.com\r\n"
}

func ExampleDocument_SetSection() {
	doc := new(ini.Document)
	doc.Set("server", "host", "old.example.com")
	doc.Set("server", "port", "8080")

	// SetSection replaces the section wholesale.
	doc.SetSection("server", map[string]string{
		"host": "new.example.com",
	})

	host, _ := doc.Get("server", "host")
	fmt.Println("Host:", host)
	_, ok := doc.Get("server", "port")
	fmt.Println("Port present:", ok)
	// Output:
	// Host: new.example.com
	// Port present: false
}
