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
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlindex/avl"
	"github.com/willf/bloom"
)

type Contact struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// contacts are ordered (and deduplicated) by name only
func compareContacts(a, b Contact) int {
	return strings.Compare(a.Name, b.Name)
}

// ContactDirectory is an alphabetical contact list. A bloom filter over
// the names answers most misses without walking the tree.
type ContactDirectory struct {
	contacts *avl.BalancedTree[Contact]
	names    *bloom.BloomFilter
}

func NewContactDirectory(config ContactsConfig) *ContactDirectory {
	return &ContactDirectory{
		contacts: avl.NewBalancedFunc(compareContacts),
		names:    bloom.New(config.BloomBits, config.BloomHashes),
	}
}

// Add stores c unless a contact with the same name exists; the first
// entry for a name wins.
func (d *ContactDirectory) Add(c Contact) bool {
	if d.Search(c.Name) {
		return false
	}
	d.contacts.Insert(c)
	d.names.AddString(c.Name)
	return true
}

// Search reports whether a contact with the given name exists.
func (d *ContactDirectory) Search(name string) bool {
	if !d.names.TestString(name) {
		return false
	}
	return d.contacts.Contains(Contact{Name: name})
}

func (d *ContactDirectory) Len() int {
	return d.contacts.Len()
}

// Render writes the contacts as a table sorted by name.
func (d *ContactDirectory) Render(w io.Writer) {
	title := lipgloss.NewStyle().Bold(true).Foreground(GetColorScheme().Primary)

	fmt.Fprintf(w, "\n%s\n", title.Render("Contact List (Alphabetically):"))
	fmt.Fprintln(w, "-----------------------------")
	fmt.Fprintf(w, "%-20s%-15s%-25s%s\n", "Name", "Phone", "Email", "Address")
	fmt.Fprintln(w, strings.Repeat("-", 75))

	for c := range d.contacts.All() {
		fmt.Fprintf(w, "%-20s%-15s%-25s%s\n", c.Name, c.Phone, c.Email, c.Address)
	}
}

var sampleContacts = []Contact{
	{"Diana", "176-820-2123", "Diana@email.com", "5 St Geogre"},
	{"Lumiere", "2689-4359", "Lumii@email.com", "2 Wonderful Street"},
	{"Alonzo", "60-125-30125", "Al0nZ0@email.com", "19B Inner Cast"},
	{"Chen", "+16-0308-2336", "Chen@email.com", "66 Santa Monica"},
	{"Gavi", "+5-369-0127", "Vivi@email.com", "03 Riad"},
}
