// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config store data.
// Notes: Values decoded from JSON are float64; values set from Go code may
// be int or float32. Getters accept all of these plus numeric strings.

package config

import (
	"encoding/json"
	"strconv"
	"time"
)

// Section returns the named section or nil if missing. The empty name is
// the top level.
func (c Config) Section(name string) Section {
	if c == nil {
		return nil
	}
	if name == "" {
		return Section(c)
	}
	switch v := c[name].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults adds the keys of defaults missing from the section,
// creating the section when needed. Existing values win.
func (c Config) RegisterDefaults(name string, defaults Section) {
	if c == nil || defaults == nil {
		return
	}
	section := c.Section(name)
	if section == nil {
		if name == "" {
			section = Section(c)
		} else {
			section = make(Section, len(defaults))
			c[name] = section
		}
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

func (c Config) value(section, key string) (interface{}, bool) {
	s := c.Section(section)
	if s == nil {
		return nil, false
	}
	v, ok := s[key]
	return v, ok
}

// asFloat converts any numeric representation to float64.
func asFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

// GetString retrieves a string value. Non-string values use defaultValue.
func (c Config) GetString(section, key, defaultValue string) string {
	if v, ok := c.value(section, key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultValue
}

// GetFloat retrieves a number.
func (c Config) GetFloat(section, key string, defaultValue float64) float64 {
	if v, ok := c.value(section, key); ok {
		if f, ok := asFloat(v); ok {
			return f
		}
	}
	return defaultValue
}

// GetInt retrieves an integer. Fractions are truncated; strings must be
// plain integers.
func (c Config) GetInt(section, key string, defaultValue int) int {
	v, ok := c.value(section, key)
	if !ok {
		return defaultValue
	}
	switch v := v.(type) {
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		return defaultValue
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		return defaultValue
	}
	if f, ok := asFloat(v); ok {
		return int(f)
	}
	return defaultValue
}

// GetBool retrieves a boolean. Numbers are true when non-zero.
func (c Config) GetBool(section, key string, defaultValue bool) bool {
	v, ok := c.value(section, key)
	if !ok {
		return defaultValue
	}
	switch v := v.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		return defaultValue
	}
	if f, ok := asFloat(v); ok {
		return f != 0
	}
	return defaultValue
}

// GetMillis retrieves a millisecond count as a duration. Non-positive values
// fall back to defaultValue.
func (c Config) GetMillis(section, key string, defaultValue time.Duration) time.Duration {
	ms := c.GetInt(section, key, -1)
	if ms <= 0 {
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}
