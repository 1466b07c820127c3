package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
)

const notSpecified = "Not specified"

const rankingGuidelines = `You are a medical AI assistant that helps recommend over-the-counter medications based on symptoms.

Guidelines:
- Only recommend medications from the provided list, referencing them by id
- Prioritize safety and conservative recommendations
- Always include appropriate warnings
- Rate effectiveness on a scale of 1-5
- Rate priority on a scale of 1-10 (higher = more recommended)
- Consider drug interactions and contraindications
- Recommend seeing a healthcare provider for serious symptoms`

const rankingFormat = `Respond with JSON in this exact format:
{
  "symptomAnalysis": "Brief analysis of the symptoms",
  "recommendedMedications": [
    {
      "medicationId": "medication_id_from_list",
      "reasoning": "Why this medication is recommended",
      "effectiveness": 1-5,
      "priority": 1-10
    }
  ],
  "warnings": ["Important warnings or precautions"],
  "additionalAdvice": "General advice and when to see a doctor"
}`

const comparisonSystemPrompt = `You are a medical AI assistant that helps compare medications.

Compare the two medications across these categories:
- Ingredients/Active compounds
- Effectiveness for similar conditions
- Side Effects
- Usage (frequency, method)
- Price (relative comparison)
- Availability (prescription vs OTC)

Respond with JSON in this exact format:
{
  "comparison": [
    {
      "category": "Category name",
      "medication1Value": "Value or description for first medication",
      "medication2Value": "Value or description for second medication"
    }
  ],
  "summary": "Brief summary of which medication might be better for different situations"
}`

func rankingSystemPrompt(symptoms []entities.ResolvedSymptom, medications []*entities.MedicationWithLinks) string {
	var sb strings.Builder
	sb.WriteString(rankingGuidelines)

	sb.WriteString("\n\nAvailable symptoms: ")
	for i, s := range symptoms {
		if i > 0 {
			sb.WriteString(", ")
		}
		desc := s.SymptomDescription()
		if desc == "" {
			desc = "No description"
		}
		fmt.Fprintf(&sb, "%s: %s", s.SymptomName(), desc)
	}

	sb.WriteString("\n\nAvailable medications:\n")
	for _, m := range medications {
		fmt.Fprintf(&sb, "- id=%s %s (%s): %s - Uses: %s - Category: %s\n",
			m.ID, m.BrandName, orPlaceholder(m.GenericName), m.Description, m.Uses, m.Category)
	}

	sb.WriteString("\n")
	sb.WriteString(rankingFormat)
	return sb.String()
}

func rankingUserPrompt(inputs []string) string {
	return "Analyze these symptoms and recommend appropriate medications: " + strings.Join(inputs, ", ")
}

func comparisonUserPrompt(m1, m2 *entities.Medication) string {
	var sb strings.Builder
	sb.WriteString("Compare these medications:\n")
	for i, m := range []*entities.Medication{m1, m2} {
		fmt.Fprintf(&sb, "\nMedication %d: %s (%s)\n", i+1, m.BrandName, orPlaceholder(m.GenericName))
		fmt.Fprintf(&sb, "Description: %s\n", orPlaceholder(m.Description))
		fmt.Fprintf(&sb, "Uses: %s\n", orPlaceholder(m.Uses))
		fmt.Fprintf(&sb, "Category: %s\n", m.Category)
		fmt.Fprintf(&sb, "Dosage: %s\n", orPlaceholder(m.Dosage))
		fmt.Fprintf(&sb, "Side Effects: %s\n", orPlaceholder(m.SideEffects))
		fmt.Fprintf(&sb, "Price: %s\n", formatPrice(m.Price))
	}
	return sb.String()
}

func rankingSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"symptomAnalysis": map[string]any{"type": "string"},
			"recommendedMedications": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"medicationId":  map[string]any{"type": "string"},
						"reasoning":     map[string]any{"type": "string"},
						"effectiveness": map[string]any{"type": "number"},
						"priority":      map[string]any{"type": "number"},
					},
					"required":             []string{"medicationId", "reasoning", "effectiveness", "priority"},
					"additionalProperties": false,
				},
			},
			"warnings": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"additionalAdvice": map[string]any{"type": "string"},
		},
		"required":             []string{"symptomAnalysis", "recommendedMedications", "warnings", "additionalAdvice"},
		"additionalProperties": false,
	}
}

func comparisonSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"comparison": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"category":         map[string]any{"type": "string"},
						"medication1Value": map[string]any{"type": "string"},
						"medication2Value": map[string]any{"type": "string"},
					},
					"required":             []string{"category", "medication1Value", "medication2Value"},
					"additionalProperties": false,
				},
			},
			"summary": map[string]any{"type": "string"},
		},
		"required":             []string{"comparison", "summary"},
		"additionalProperties": false,
	}
}

func orPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return notSpecified
	}
	return v
}

func formatPrice(p *float64) string {
	if p == nil {
		return notSpecified
	}
	return "$" + strconv.FormatFloat(*p, 'f', 2, 64)
}
