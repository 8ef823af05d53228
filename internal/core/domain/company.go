package domain

import (
	"encoding/json"
	"time"
)

// CompanyProfile is the singleton company record used to ground generation.
// No individual field is required, but an upload must carry at least one of
// Description, Goals, or Industry. Updates replace the profile wholesale.
type CompanyProfile struct {
	// ID identifies this revision of the profile.
	ID string `json:"id,omitempty"`

	// Description is a free-form company description.
	Description string `json:"description,omitempty"`

	// Industry is the industry the company operates in.
	Industry string `json:"industry,omitempty"`

	// Goals are the company's stated goals.
	Goals []string `json:"goals,omitempty"`

	// Targets are target audiences or markets.
	Targets []string `json:"targets,omitempty"`

	// Products are product names or structured product records.
	// Structured entries are JSON-encoded when flattened for embedding.
	Products []any `json:"products,omitempty"`

	// Values are the company's stated values.
	Values []string `json:"values,omitempty"`

	// UploadedAt is when the profile was first uploaded.
	UploadedAt time.Time `json:"uploadedAt,omitempty"`

	// UpdatedAt is when the profile was last replaced.
	UpdatedAt time.Time `json:"updatedAt,omitempty"`

	// VectorCount is how many vectors the last ingestion wrote.
	// Zero when ingestion degraded to text-only storage.
	VectorCount int `json:"vectorCount"`
}

// Validate checks that the profile carries enough data to accept.
func (p *CompanyProfile) Validate() error {
	if p == nil {
		return ErrInvalidInput
	}
	if p.Description == "" && len(p.Goals) == 0 && p.Industry == "" {
		return ErrInvalidInput
	}
	return nil
}

// ProfileField pairs a flattened profile text with its field provenance.
type ProfileField struct {
	// Text is the embeddable text of the field or array element.
	Text string

	// Type is the payload type recorded with the vector
	// (description, goal, target, product, industry, value).
	Type string
}

// Flatten expands the profile into one entry per scalar field and one per
// array element, in a fixed order. Structured product entries are
// JSON-encoded. Empty fields are skipped.
func (p *CompanyProfile) Flatten() []ProfileField {
	var fields []ProfileField

	if p.Description != "" {
		fields = append(fields, ProfileField{Text: p.Description, Type: "description"})
	}
	for _, goal := range p.Goals {
		fields = append(fields, ProfileField{Text: goal, Type: "goal"})
	}
	for _, target := range p.Targets {
		fields = append(fields, ProfileField{Text: target, Type: "target"})
	}
	for _, product := range p.Products {
		text, ok := product.(string)
		if !ok {
			encoded, err := json.Marshal(product)
			if err != nil {
				continue
			}
			text = string(encoded)
		}
		fields = append(fields, ProfileField{Text: text, Type: "product"})
	}
	if p.Industry != "" {
		fields = append(fields, ProfileField{Text: p.Industry, Type: "industry"})
	}
	for _, value := range p.Values {
		fields = append(fields, ProfileField{Text: value, Type: "value"})
	}

	return fields
}
