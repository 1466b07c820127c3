package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

var defaultSynonyms = map[string][]string{
	"headache":            {"head pain", "migraine", "head ache"},
	"stomach ache":        {"belly pain", "abdominal pain", "tummy ache"},
	"fever":               {"high temperature", "temperature", "hot"},
	"cough":               {"coughing", "dry cough", "wet cough"},
	"runny nose":          {"nasal congestion", "stuffy nose", "blocked nose"},
	"sore throat":         {"throat pain", "painful throat"},
	"nausea":              {"feeling sick", "queasy", "sick feeling"},
	"diarrhea":            {"loose stools", "stomach upset", "runny stomach"},
	"constipation":        {"can't poop", "blocked", "hard stools"},
	"fatigue":             {"tired", "exhausted", "tiredness", "weakness"},
	"dizziness":           {"dizzy", "lightheaded", "vertigo"},
	"muscle pain":         {"muscle ache", "body pain", "muscle soreness"},
	"joint pain":          {"arthritis", "joint ache", "stiff joints"},
	"chest pain":          {"heart pain", "chest tightness"},
	"shortness of breath": {"breathing problems", "can't breathe", "breathless"},
	"insomnia":            {"can't sleep", "sleeplessness", "sleep problems"},
	"anxiety":             {"worried", "nervous", "stress", "panic"},
	"depression":          {"sad", "down", "low mood"},
	"rash":                {"skin rash", "itchy skin", "skin irritation"},
	"bloating":            {"swollen stomach", "gas", "stomach swelling"},
	"heartburn":           {"acid reflux", "indigestion", "burning stomach"},
}

// SynonymTable maps lowercased canonical symptom names to lay synonyms.
// It is built once and never mutated afterwards.
type SynonymTable struct {
	terms map[string][]string
}

// DefaultSynonymTable returns the built-in synonym table
func DefaultSynonymTable() *SynonymTable {
	return newSynonymTable(defaultSynonyms, nil)
}

// LoadSynonymTable returns the built-in table overlaid with the JSON object
// at path. An empty path yields the built-in table.
func LoadSynonymTable(path string) (*SynonymTable, error) {
	if path == "" {
		return DefaultSynonymTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonyms file: %w", err)
	}

	var overrides map[string][]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse synonyms file: %w", err)
	}
	return newSynonymTable(defaultSynonyms, overrides), nil
}

func newSynonymTable(base, overrides map[string][]string) *SynonymTable {
	terms := make(map[string][]string, len(base)+len(overrides))
	for k, v := range base {
		terms[strings.ToLower(k)] = append([]string(nil), v...)
	}
	for k, v := range overrides {
		terms[strings.ToLower(strings.TrimSpace(k))] = append([]string(nil), v...)
	}
	return &SynonymTable{terms: terms}
}

// Lookup returns the synonyms for a symptom name, or nil when it has none
func (t *SynonymTable) Lookup(name string) []string {
	if t == nil {
		return nil
	}
	return t.terms[strings.ToLower(name)]
}

// Len returns the number of canonical entries
func (t *SynonymTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.terms)
}
