package entities

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SymptomKind distinguishes persisted catalog symptoms from request-scoped ones
type SymptomKind string

const (
	SymptomKindCatalog SymptomKind = "catalog"
	SymptomKindCustom  SymptomKind = "custom"
)

// Symptom is a persisted, pre-seeded catalog symptom
type Symptom struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	IconName    string    `json:"iconName,omitempty" db:"icon_name"`
	IsCommon    bool      `json:"isCommon" db:"is_common"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CustomSymptom is synthesized from free text that matched no catalog symptom.
// It only gives the ranker textual context and is never persisted.
type CustomSymptom struct {
	ID          string
	Name        string
	Description string
}

// ResolvedSymptom is either a *Symptom or a *CustomSymptom.
type ResolvedSymptom interface {
	SymptomID() string
	SymptomName() string
	SymptomDescription() string
	Kind() SymptomKind
	resolvedSymptom()
}

func (s *Symptom) SymptomID() string          { return s.ID }
func (s *Symptom) SymptomName() string        { return s.Name }
func (s *Symptom) SymptomDescription() string { return s.Description }
func (s *Symptom) Kind() SymptomKind          { return SymptomKindCatalog }
func (s *Symptom) resolvedSymptom()           {}

func (c *CustomSymptom) SymptomID() string          { return c.ID }
func (c *CustomSymptom) SymptomName() string        { return c.Name }
func (c *CustomSymptom) SymptomDescription() string { return c.Description }
func (c *CustomSymptom) Kind() SymptomKind          { return SymptomKindCustom }
func (c *CustomSymptom) resolvedSymptom()           {}

// MarshalJSON renders a custom symptom in the catalog shape, flagged as custom
func (c *CustomSymptom) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		IsCommon    bool   `json:"isCommon"`
		IsCustom    bool   `json:"isCustom"`
	}{c.ID, c.Name, c.Description, false, true})
}

// NewCustomSymptom builds a custom symptom for the given free text. The id
// embeds the creation time in milliseconds and a random suffix.
func NewCustomSymptom(text string, now time.Time) *CustomSymptom {
	name := strings.TrimSpace(text)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return &CustomSymptom{
		ID:          fmt.Sprintf("custom-%d-%s", now.UnixMilli(), suffix),
		Name:        name,
		Description: fmt.Sprintf("User-reported symptom: %s", name),
	}
}
