package model

// Archetype is one of nine fixed psychological-style buckets
type Archetype string

const (
	ArchetypeAnalytical    Archetype = "analytical"
	ArchetypeCreative      Archetype = "creative"
	ArchetypeSocial        Archetype = "social"
	ArchetypePractical     Archetype = "practical"
	ArchetypeInvestigative Archetype = "investigative"
	ArchetypeEnterprising  Archetype = "enterprising"
	ArchetypeIntuitive     Archetype = "intuitive"
	ArchetypeIdealistic    Archetype = "idealistic"
	ArchetypeConventional  Archetype = "conventional"
)

// Archetypes lists every bucket in a fixed order. Consumers index results
// by key, so every bucket is always present even at zero.
var Archetypes = []Archetype{
	ArchetypeAnalytical,
	ArchetypeCreative,
	ArchetypeSocial,
	ArchetypePractical,
	ArchetypeInvestigative,
	ArchetypeEnterprising,
	ArchetypeIntuitive,
	ArchetypeIdealistic,
	ArchetypeConventional,
}

// PsychologicalProfile is derived from archetype-mapped answers
type PsychologicalProfile struct {
	Buckets   map[Archetype]float64 `json:"buckets" bson:"buckets"`
	Primary   Archetype             `json:"primary" bson:"primary"`
	Secondary Archetype             `json:"secondary,omitempty" bson:"secondary,omitempty"` // empty when none qualifies
	Summary   LocalizedText         `json:"summary" bson:"summary"`
}
