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

package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-mysql-server-fragmenter/fixture"
)

func TestLoadCatalogFileParsesDecomposability(t *testing.T) {
	require := require.New(t)

	cat, err := fixture.LoadCatalogFile("testdata/catalog.yaml")
	require.NoError(err)

	sum, err := cat.ResolveFunction("sum")
	require.NoError(err)
	require.True(sum.IsDecomposable())
	require.Equal("double", sum.IntermediateType().TypeName())

	percentile, err := cat.ResolveFunction("approx_percentile")
	require.NoError(err)
	require.False(percentile.IsDecomposable())
}

func TestResolveFunctionUnknownSignature(t *testing.T) {
	require := require.New(t)

	cat := fixture.NewCatalog(fixture.FunctionInfo{FuncName: "sum", Decomposable: true})
	_, err := cat.ResolveFunction("avg")
	require.Error(err)
}
