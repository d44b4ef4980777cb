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

package sql_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-mysql-server-fragmenter/sql"
)

func TestGetBoolCoercesAndDefaults(t *testing.T) {
	require := require.New(t)

	sess := sql.NewMapSession(map[string]interface{}{
		"big_query_enabled": "true",
		"not_a_bool":        "banana",
	})

	require.True(sql.GetBool(sess, sql.BigQueryEnabledKey, false))
	require.False(sql.GetBool(sess, "unset_key", false))
	require.True(sql.GetBool(sess, "unset_key", true), "a missing key returns the caller's default unchanged")
	require.False(sql.GetBool(sess, "not_a_bool", false), "an uncoercible value falls back to the default")
}

func TestGetBoolNilSessionReturnsDefault(t *testing.T) {
	require.New(t).True(sql.GetBool(nil, sql.BigQueryEnabledKey, true))
}

func TestYAMLSessionParsesVariableBag(t *testing.T) {
	require := require.New(t)

	sess, err := sql.NewYAMLSession([]byte("big_query_enabled: true\nmax_fragments: 10\n"))
	require.NoError(err)

	require.True(sql.GetBool(sess, sql.BigQueryEnabledKey, false))

	v, ok := sess.GetSessionVariable("max_fragments")
	require.True(ok)
	require.Equal(10, v)

	_, ok = sess.GetSessionVariable("missing")
	require.False(ok)
}
