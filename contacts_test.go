// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strings"
	"testing"
)

func sampleDirectory() *ContactDirectory {
	d := NewContactDirectory(defaultConfig.Contacts)
	for _, c := range sampleContacts {
		d.Add(c)
	}
	return d
}

func TestContactDirectorySearch(t *testing.T) {
	d := sampleDirectory()

	tests := []struct {
		name     string
		expected bool
	}{
		{"Gavi", true},
		{"Alonzo", true},
		{"Lumiere", true},
		{"gavi", false},
		{"Zed", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := d.Search(tc.name); got != tc.expected {
			t.Errorf("Search(%q) = %t; want %t", tc.name, got, tc.expected)
		}
	}
}

func TestContactDirectoryFirstEntryWins(t *testing.T) {
	d := sampleDirectory()

	if d.Add(Contact{Name: "Chen", Phone: "000"}) {
		t.Error("Add accepted a second contact named Chen")
	}
	if d.Len() != len(sampleContacts) {
		t.Errorf("Len() = %d; want %d", d.Len(), len(sampleContacts))
	}

	var sb strings.Builder
	d.Render(&sb)
	if !strings.Contains(sb.String(), "+16-0308-2336") {
		t.Error("original phone number for Chen was overwritten")
	}
}

func TestContactDirectoryRenderAlphabetical(t *testing.T) {
	d := sampleDirectory()

	var sb strings.Builder
	d.Render(&sb)
	out := sb.String()

	expected := []string{"Alonzo", "Chen", "Diana", "Gavi", "Lumiere"}
	last := -1
	for _, name := range expected {
		idx := strings.Index(out, name+" ")
		if idx < 0 {
			t.Fatalf("render output missing %q:\n%s", name, out)
		}
		if idx < last {
			t.Errorf("%q rendered out of order", name)
		}
		last = idx
	}
}

func TestContactDirectoryTinyFilter(t *testing.T) {
	// a saturated filter only costs tree lookups, answers stay exact
	d := NewContactDirectory(ContactsConfig{BloomBits: 1, BloomHashes: 1})
	for _, c := range sampleContacts {
		d.Add(c)
	}

	if !d.Search("Diana") {
		t.Error("Search(Diana) = false")
	}
	if d.Search("Nobody") {
		t.Error("Search(Nobody) = true")
	}
}
