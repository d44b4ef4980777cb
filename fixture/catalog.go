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

package fixture

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

// FunctionInfo is a fixed, test-only sql.FunctionInfo.
type FunctionInfo struct {
	FuncName       string
	Decomposable   bool
	Intermediate   sql.Type
}

func (f FunctionInfo) Name() string            { return f.FuncName }
func (f FunctionInfo) IsDecomposable() bool     { return f.Decomposable }
func (f FunctionInfo) IntermediateType() sql.Type { return f.Intermediate }

// Catalog is an in-memory sql.Catalog over a fixed function table.
type Catalog struct {
	functions map[string]sql.FunctionInfo
}

func NewCatalog(fns ...FunctionInfo) *Catalog {
	c := &Catalog{functions: make(map[string]sql.FunctionInfo, len(fns))}
	for _, f := range fns {
		c.functions[f.FuncName] = f
	}
	return c
}

func (c *Catalog) ResolveFunction(signature string) (sql.FunctionInfo, error) {
	fi, ok := c.functions[signature]
	if !ok {
		return nil, sql.ErrUnknownFunction.New(signature)
	}
	return fi, nil
}

// yamlFunction is the on-disk shape of one catalog entry.
type yamlFunction struct {
	Name         string `yaml:"name"`
	Decomposable bool   `yaml:"decomposable"`
	Intermediate string `yaml:"intermediate_type"`
}

type yamlCatalog struct {
	Functions []yamlFunction `yaml:"functions"`
}

// NewCatalogFromYAML parses a catalog fixture document of the form:
//
//	functions:
//	  - name: sum
//	    decomposable: true
//	    intermediate_type: double
//	  - name: approx_percentile
//	    decomposable: false
func NewCatalogFromYAML(doc []byte) (*Catalog, error) {
	var parsed yamlCatalog
	if err := yaml.Unmarshal(doc, &parsed); err != nil {
		return nil, err
	}
	fns := make([]FunctionInfo, len(parsed.Functions))
	for i, f := range parsed.Functions {
		fns[i] = FunctionInfo{
			FuncName:     f.Name,
			Decomposable: f.Decomposable,
			Intermediate: sql.BasicType(f.Intermediate),
		}
	}
	return NewCatalog(fns...), nil
}

// LoadCatalogFile reads and parses a catalog fixture file from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	doc, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewCatalogFromYAML(doc)
}
