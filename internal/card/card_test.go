package card

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		typ  string
		want Category
	}{
		{"Effect Monster", CategoryMonster},
		{"XYZ Monster", CategoryMonster},
		{"spell card", CategorySpell},
		{"Trap Card", CategoryTrap},
		{"TRAP CARD", CategoryTrap},
		{"Skill Card", CategoryOther},
		{"", CategoryOther},
		// monster is checked before trap
		{"Trap Monster", CategoryMonster},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.typ))
		})
	}
}

func TestCardDecode(t *testing.T) {
	payload := `{
		"id": 46986414,
		"name": "Dark Magician",
		"type": "Normal Monster",
		"frameType": "normal",
		"desc": "The ultimate wizard in terms of attack and defense.",
		"atk": 2500,
		"def": 2100,
		"level": 7,
		"race": "Spellcaster",
		"attribute": "DARK",
		"card_images": [
			{"id": 46986414, "image_url": "https://images.ygoprodeck.com/images/cards/46986414.jpg",
			 "image_url_small": "https://images.ygoprodeck.com/images/cards_small/46986414.jpg"},
			{"id": 36996508, "image_url": "https://images.ygoprodeck.com/images/cards/36996508.jpg"}
		]
	}`

	var c Card
	require.NoError(t, json.Unmarshal([]byte(payload), &c))

	assert.Equal(t, 46986414, c.ID)
	assert.Equal(t, "https://images.ygoprodeck.com/images/cards/46986414.jpg", c.ImageURL())
	assert.Equal(t, "https://images.ygoprodeck.com/images/cards_small/46986414.jpg", c.ThumbnailURL())
	assert.Equal(t, 7, c.LevelOrRank())
	require.NotNil(t, c.ATK)
	assert.Equal(t, 2500, *c.ATK)
	assert.Len(t, c.Images, 2)
	assert.Equal(t, "Normal Monster — Spellcaster", c.Subtitle())
}

func TestImageFallbacks(t *testing.T) {
	t.Run("no images", func(t *testing.T) {
		c := Card{Name: "Blank"}
		assert.Empty(t, c.ImageURL())
		assert.Empty(t, c.ThumbnailURL())
	})

	t.Run("thumbnail falls back to full image", func(t *testing.T) {
		c := Card{Images: []Image{{URL: "https://example.com/a.jpg"}}}
		assert.Equal(t, "https://example.com/a.jpg", c.ThumbnailURL())
	})

	t.Run("rank used when level is absent", func(t *testing.T) {
		c := Card{Rank: 4}
		assert.Equal(t, 4, c.LevelOrRank())
	})
}
