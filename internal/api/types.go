// File path: internal/api/types.go
package api

import "github.com/penguinworks/tftcoach/internal/meta"

type chatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Prompt    string `json:"prompt"`
	Mode      string `json:"mode,omitempty"`
	SubMode   string `json:"sub_mode,omitempty"`
}

type chatResponse struct {
	Answer   string          `json:"answer"`
	Context  []meta.Document `json:"context,omitempty"`
	Provider string          `json:"provider"`
}

type searchResponse struct {
	Results []meta.Document `json:"results"`
	Query   string          `json:"query"`
}

type rebuildResponse struct {
	Documents int `json:"documents"`
	Decks     int `json:"decks"`
	Items     int `json:"items"`
	Champions int `json:"champions"`
}
