// Copyright 2020-2021 Dolthub, Inc.
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

package sql

import (
	"io/ioutil"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

// BigQueryEnabledKey is the session/config-bag key the MarkDistinct rule
// consults (spec §4.3) to decide whether a non-distributed child still gets
// re-hashed for a "big query".
const BigQueryEnabledKey = "big_query_enabled"

// Session is the key-value feature-flag source of spec §6: "the session /
// configuration bag (read as a key-value feature flag source)". It is
// intentionally the smallest possible contract; the fragmenter never writes
// to it.
type Session interface {
	// GetSessionVariable returns the raw value for key, or ok=false if unset.
	GetSessionVariable(key string) (value interface{}, ok bool)
}

// GetBool reads key from sess and coerces it to a bool via cast, the same
// tolerant coercion the rest of the stack uses for config values. A missing
// key returns def unchanged.
func GetBool(sess Session, key string, def bool) bool {
	if sess == nil {
		return def
	}
	raw, ok := sess.GetSessionVariable(key)
	if !ok {
		return def
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		return def
	}
	return b
}

// MapSession is the simplest Session implementation: an in-memory map,
// handed out by callers who already have their planner options as Go
// values.
type MapSession struct {
	vars map[string]interface{}
}

// NewMapSession wraps vars as a Session. A nil map is treated as empty.
func NewMapSession(vars map[string]interface{}) *MapSession {
	if vars == nil {
		vars = map[string]interface{}{}
	}
	return &MapSession{vars: vars}
}

func (m *MapSession) GetSessionVariable(key string) (interface{}, bool) {
	v, ok := m.vars[key]
	return v, ok
}

// YAMLSession loads its variable bag from a YAML document, so fixture files
// can declare `big_query_enabled: true` alongside the plan they exercise
// instead of constructing a map in Go.
type YAMLSession struct {
	vars map[string]interface{}
}

// NewYAMLSession parses doc (a YAML mapping of variable name to value) into
// a Session.
func NewYAMLSession(doc []byte) (*YAMLSession, error) {
	vars := map[string]interface{}{}
	if err := yaml.Unmarshal(doc, &vars); err != nil {
		return nil, err
	}
	return &YAMLSession{vars: vars}, nil
}

// LoadYAMLSessionFile reads path and parses it as a YAML variable bag.
func LoadYAMLSessionFile(path string) (*YAMLSession, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewYAMLSession(data)
}

func (y *YAMLSession) GetSessionVariable(key string) (interface{}, bool) {
	v, ok := y.vars[key]
	return v, ok
}
