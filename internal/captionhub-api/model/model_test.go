package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhereBuildEquality(t *testing.T) {
	where, vals, err := WhereBuild(map[string]interface{}{"is_public": true})
	require.NoError(t, err)
	require.Equal(t, "is_public=?", where)
	require.Equal(t, []interface{}{true}, vals)
}

func TestWhereBuildOperators(t *testing.T) {
	where, vals, err := WhereBuild(map[string]interface{}{"width >": 100})
	require.NoError(t, err)
	require.Equal(t, "width>?", where)
	require.Equal(t, []interface{}{100}, vals)
}

func TestWhereBuildNull(t *testing.T) {
	where, vals, err := WhereBuild(map[string]interface{}{"deleted_at": IsNull})
	require.NoError(t, err)
	require.Equal(t, "deleted_at IS NULL", where)
	require.Empty(t, vals)

	where, _, err = WhereBuild(map[string]interface{}{"user_id": IsNotNull})
	require.NoError(t, err)
	require.Equal(t, "user_id IS NOT NULL", where)
}

func TestWhereBuildRejectsMalformedKey(t *testing.T) {
	_, _, err := WhereBuild(map[string]interface{}{"a b c": 1})
	require.Error(t, err)
}
