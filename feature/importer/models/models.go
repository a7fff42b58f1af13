package models

import (
	"encoding/json"
	"strings"
)

// Block types recognized by the renderer. The crawler emits exactly these;
// anything else is skipped.
const (
	BlockHeading   = "heading"
	BlockParagraph = "paragraph"
	BlockImage     = "image"
	BlockList      = "list"
	BlockQuote     = "quote"
	BlockCode      = "code"
)

// Record is one raw unit of the crawler export before normalization.
// Unknown fields are ignored; everything here is optional and untrusted.
type Record struct {
	SourceURL string `json:"source_url"`
	FinalURL  string `json:"final_url"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	// PublishedDate is what the crawler actually writes; Date takes
	// precedence when both are present.
	PublishedDate string     `json:"published_date"`
	Language      string     `json:"language"`
	Text          string     `json:"text"`
	HTML          string     `json:"html"`
	Blocks        []Block    `json:"blocks"`
	Images        []ImageRef `json:"images"`
	Image         string     `json:"image"`
	Cover         string     `json:"cover"`
	Thumbnail     string     `json:"thumbnail"`
	Category      string     `json:"category"`
}

// ExplicitDate returns the record's own date field, trimmed, preferring
// `date` over the crawler's `published_date`.
func (r *Record) ExplicitDate() string {
	if d := strings.TrimSpace(r.Date); d != "" {
		return d
	}
	return strings.TrimSpace(r.PublishedDate)
}

// Block is a typed unit of structured content, composed in order to form an
// article body.
type Block struct {
	Type  string   `json:"type"`
	Text  string   `json:"text"`
	Level int      `json:"level"`
	Items []string `json:"items"`
	Src   string   `json:"src"`
	Alt   string   `json:"alt"`
}

// ImageRef is one entry of the export's images array. The crawler has
// written it both as a plain string and as an object with "src" (or, in the
// oldest exports, "url"), so unmarshalling accepts all three shapes.
type ImageRef struct {
	Src string
	Alt string
}

func (i *ImageRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		i.Src = s
		return nil
	}

	var obj struct {
		Src string `json:"src"`
		URL string `json:"url"`
		Alt string `json:"alt"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	i.Src = obj.Src
	if i.Src == "" {
		i.Src = obj.URL
	}
	i.Alt = obj.Alt
	return nil
}
