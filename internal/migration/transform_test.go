package migration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dashport/dashport/internal/models"
)

func dashboardDoc(t *testing.T, raw string) models.Document {
	t.Helper()
	var d models.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	return d
}

func TestTransform_StripsIdentityFields(t *testing.T) {
	doc := dashboardDoc(t, `{"id":"X","dashboardMetadata":{"name":"A","owner":"bob"}}`)

	out := Transform(doc, "")

	_, hasID := out["id"]
	assert.False(t, hasID)
	assert.Equal(t, "", out.StringAt("dashboardMetadata", "owner"))
	assert.Equal(t, "A", out.StringAt("dashboardMetadata", "name"))
}

func TestTransform_Rename(t *testing.T) {
	doc := dashboardDoc(t, `{"id":"X","dashboardMetadata":{"name":"A","owner":"bob"}}`)

	out := Transform(doc, "B")

	assert.Equal(t, "B", out.StringAt("dashboardMetadata", "name"))
}

func TestTransform_PreservesOtherFields(t *testing.T) {
	doc := dashboardDoc(t, `{"id":"X","tiles":[{"name":"t1"}],"dashboardMetadata":{"name":"A","owner":"bob","shared":true}}`)

	out := Transform(doc, "")

	assert.NotNil(t, out["tiles"])
	meta := out["dashboardMetadata"].(map[string]interface{})
	assert.Equal(t, true, meta["shared"])
}

func TestTransform_Serialization(t *testing.T) {
	doc := dashboardDoc(t, `{"id":"1","dashboardMetadata":{"name":"Orig","owner":"o"}}`)

	out := Transform(doc, "")

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dashboardMetadata":{"name":"Orig"}}`, string(data))
}
