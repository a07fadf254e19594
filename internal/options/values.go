// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package options

// Values maps option names to the value last produced for them.
// Entries are overwritten, never removed.
type Values map[string]string

// Get returns the value for name and whether one has been recorded.
func (v Values) Get(name string) (string, bool) {
	val, ok := v[name]
	return val, ok
}

// Set records value for name, replacing any earlier value.
func (v Values) Set(name, value string) {
	v[name] = value
}
