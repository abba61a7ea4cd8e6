package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapCountsAndKeepsKeyOrder(t *testing.T) {
	type row struct {
		Name  string `json:"name"`
		Total int    `json:"total"`
	}
	env := Wrap([]string{"name", "total"}, []row{{"a", 1}, {"b", 2}})
	assert.Equal(t, 2, env.Count)
	assert.Equal(t, []string{"name", "total"}, env.Key)
	assert.Len(t, env.Data, 2)
}

func TestWrapNilDataRendersEmptyArray(t *testing.T) {
	env := Wrap[string]([]string{"name"}, nil)
	assert.Equal(t, 0, env.Count)

	b, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0,"key":["name"],"data":[]}`, string(b))
}
