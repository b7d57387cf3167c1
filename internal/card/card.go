package card

import "strings"

// Image is one artwork variant of a card as returned by the catalog
type Image struct {
	ID       int    `json:"id"`
	URL      string `json:"image_url"`
	SmallURL string `json:"image_url_small,omitempty"`
	CropURL  string `json:"image_url_cropped,omitempty"`
}

// Card represents a card record returned by the YGOPRODeck catalog.
// Only ID, Name, Type, Race and Images are used by the deck builder; the
// remaining fields feed the details view.
type Card struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	FrameType string  `json:"frameType,omitempty"`
	Desc      string  `json:"desc,omitempty"`
	Race      string  `json:"race"`
	Archetype string  `json:"archetype,omitempty"`
	Attribute string  `json:"attribute,omitempty"`
	Level     int     `json:"level,omitempty"`
	Rank      int     `json:"rank,omitempty"`
	ATK       *int    `json:"atk,omitempty"`
	DEF       *int    `json:"def,omitempty"`
	Images    []Image `json:"card_images"`
}

// ImageURL returns the full-resolution URL of the first artwork variant
func (c *Card) ImageURL() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[0].URL
}

// ThumbnailURL prefers the small variant, falling back to the full image
func (c *Card) ThumbnailURL() string {
	if len(c.Images) == 0 {
		return ""
	}
	if c.Images[0].SmallURL != "" {
		return c.Images[0].SmallURL
	}
	return c.Images[0].URL
}

// LevelOrRank returns the level, or the rank for cards that have one
func (c *Card) LevelOrRank() int {
	if c.Level != 0 {
		return c.Level
	}
	return c.Rank
}

// Subtitle joins type and race for the line shown under a card name
func (c *Card) Subtitle() string {
	if c.Race == "" {
		return c.Type
	}
	return strings.TrimSpace(c.Type + " — " + c.Race)
}
