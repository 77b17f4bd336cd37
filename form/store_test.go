package form

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/rangefield/common"
	"github.com/uyouii/rangefield/model"
	"github.com/uyouii/rangefield/utils"
)

func TestStoreValues(t *testing.T) {
	s := NewStore(map[string]float64{"physical_info.self.height_cm": 180})

	v := s.Value("physical_info.self.height_cm")
	require.NotNil(t, v)
	assert.Equal(t, 180.0, *v)
	assert.Nil(t, s.Value("partner_preferences.height_range_cm.min"))

	// returned pointers are copies
	*v = 1
	assert.Equal(t, 180.0, *s.Value("physical_info.self.height_cm"))

	s.SetValue("partner_preferences.height_range_cm.min", utils.Float(160), model.SetOptions{ShouldDirty: true, ShouldValidate: true})
	s.SetValue("partner_preferences.height_range_cm.max", utils.Float(190), model.SetOptions{})
	assert.True(t, s.IsDirty("partner_preferences.height_range_cm.min"))
	assert.False(t, s.IsDirty("partner_preferences.height_range_cm.max"))
	assert.Equal(t, []string{"partner_preferences.height_range_cm.min"}, s.DirtyPaths())

	assert.Equal(t, []string{"partner_preferences.height_range_cm.min"}, s.TakeValidation())
	assert.Empty(t, s.TakeValidation())

	s.SetValue("partner_preferences.height_range_cm.min", nil, model.SetOptions{ShouldDirty: true})
	assert.Nil(t, s.Value("partner_preferences.height_range_cm.min"))

	s.Reset()
	assert.Empty(t, s.Snapshot())
	assert.Empty(t, s.DirtyPaths())
}

func TestStoreMarshalJSON(t *testing.T) {
	s := NewStore(map[string]float64{
		"physical_info.self.height_cm":    180,
		"demographics.income_bracket.min": 27_000,
		"demographics.income_bracket.max": 180_000,
		"partner_preferences.importance":  3,
	})
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	physical := got["physical_info"].(map[string]any)
	assert.Equal(t, map[string]any{"height_cm": 180.0}, physical["self"])

	demographics := got["demographics"].(map[string]any)
	assert.Equal(t, map[string]any{"min": 27_000.0, "max": 180_000.0}, demographics["income_bracket"])

	partner := got["partner_preferences"].(map[string]any)
	assert.Equal(t, 3.0, partner["importance"])
}

func TestStoreMarshalJSONPathCollision(t *testing.T) {
	s := NewStore(map[string]float64{
		"demographics.income_bracket":     70_000,
		"demographics.income_bracket.min": 27_000,
	})
	_, err := json.Marshal(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	s = NewStore(map[string]float64{"a": 1, "a.b": 2})
	_, err = s.MarshalJSON()
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	s = NewStore(map[string]float64{"a.b": 1, "a.c": 2})
	data, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":{"b":1,"c":2}}`, string(data))
}
