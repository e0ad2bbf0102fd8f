package models

import (
	"bytes"
	"encoding/json"
)

// Item is one catalogued object from the site's data module. Only Name feeds
// the sitemap; the remaining fields are decoded so the API can echo them.
type Item struct {
	ID       ItemID   `json:"id,omitempty"`
	Name     string   `json:"name"`
	CarryOn  string   `json:"carryOn,omitempty"`
	Checked  string   `json:"checked,omitempty"`
	Note     string   `json:"note,omitempty"`
	Category []string `json:"category,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// ItemID holds an item id as text. The data mixes numeric ids (670) with
// string ids ('yogurt_fix').
type ItemID string

func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}
	*id = ItemID(data)
	return nil
}

// ItemPage pairs an item with the slug used in its page URL.
type ItemPage struct {
	Item
	Slug string `json:"slug"`
	URL  string `json:"url"`
}
