package agents

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringsFromInputs(t *testing.T) {
	t.Run("native string slice", func(t *testing.T) {
		inputs := map[string]interface{}{"channels": []string{"@a", "@b"}}
		assert.Equal(t, []string{"@a", "@b"}, stringsFromInputs(inputs, "channels"))
	})

	t.Run("json round-tripped slice", func(t *testing.T) {
		inputs := map[string]interface{}{"channels": []interface{}{"@a", "@b"}}
		assert.Equal(t, []string{"@a", "@b"}, stringsFromInputs(inputs, "channels"))
	})

	t.Run("mixed types keeps strings only", func(t *testing.T) {
		inputs := map[string]interface{}{"channels": []interface{}{"@a", 42}}
		assert.Equal(t, []string{"@a"}, stringsFromInputs(inputs, "channels"))
	})

	t.Run("missing key", func(t *testing.T) {
		assert.Nil(t, stringsFromInputs(map[string]interface{}{}, "channels"))
	})
}

func TestStringFromInputs(t *testing.T) {
	inputs := map[string]interface{}{"video_id": "dQw4w9WgXcQ", "limit": 3}
	assert.Equal(t, "dQw4w9WgXcQ", stringFromInputs(inputs, "video_id"))
	assert.Empty(t, stringFromInputs(inputs, "limit"), "non-string values read as empty")
	assert.Empty(t, stringFromInputs(inputs, "missing"))
}

func TestFakeChannelSourceWindowing(t *testing.T) {
	base := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	src := &FakeChannelSource{
		Channels: map[string]string{"@creator": "UC123"},
		Uploads: map[string][]UploadItem{
			"UC123": {
				{VideoID: "aaaaaaaaaaa", PublishedAt: base},
				{VideoID: "bbbbbbbbbbb", PublishedAt: base.Add(24 * time.Hour)},
				{VideoID: "ccccccccccc", PublishedAt: base.Add(48 * time.Hour)},
			},
		},
	}

	id, err := src.ResolveHandle(context.Background(), "@creator")
	require.NoError(t, err)
	assert.Equal(t, "UC123", id)

	items, err := src.ListUploads(context.Background(), "UC123", base.Add(12*time.Hour), base.Add(72*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "bbbbbbbbbbb", items[0].VideoID)

	limited, err := src.ListUploads(context.Background(), "UC123", time.Time{}, base.Add(72*time.Hour), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
