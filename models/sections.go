// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// Sections is a sectioned key-value document: section name → option → value.
// It is the unit persisted by the document stores.
type Sections map[string]map[string]string

// NewSections returns an empty document.
func NewSections() Sections {
	return make(Sections)
}

// Has reports whether section exists.
func (s Sections) Has(section string) bool {
	_, ok := s[section]
	return ok
}

// Add creates an empty section unless it already exists.
func (s Sections) Add(section string) {
	if _, ok := s[section]; !ok {
		s[section] = make(map[string]string)
	}
}

// Remove deletes a section with all of its options.
func (s Sections) Remove(section string) bool {
	if _, ok := s[section]; !ok {
		return false
	}
	delete(s, section)
	return true
}

// Set stores an option, creating the section when needed.
func (s Sections) Set(section, option, value string) {
	s.Add(section)
	s[section][option] = value
}

// Get returns the option value and whether it was present.
func (s Sections) Get(section, option string) (string, bool) {
	opts, ok := s[section]
	if !ok {
		return "", false
	}
	v, ok := opts[option]
	return v, ok
}

// HasOption reports whether option exists in section.
func (s Sections) HasOption(section, option string) bool {
	_, ok := s.Get(section, option)
	return ok
}

// RemoveOption deletes a single option.
func (s Sections) RemoveOption(section, option string) bool {
	opts, ok := s[section]
	if !ok {
		return false
	}
	if _, ok = opts[option]; !ok {
		return false
	}
	delete(opts, option)
	return true
}

// Names returns section names in lexical order.
func (s Sections) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options returns the option names of section in lexical order.
func (s Sections) Options(section string) []string {
	opts := s[section]
	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy.
func (s Sections) Clone() Sections {
	out := make(Sections, len(s))
	for name, opts := range s {
		cp := make(map[string]string, len(opts))
		for k, v := range opts {
			cp[k] = v
		}
		out[name] = cp
	}
	return out
}
