package models

// ============================================================================
// FILTER SELECTOR CONSTANTS
// ============================================================================

// SelectorAll is the categorical selector value meaning "no constraint"
const SelectorAll = "all"

// Partner selector values for the three-way university partner filter
const (
	PartnerOnly    = "partner"
	NonPartnerOnly = "non-partner"
)

// ============================================================================
// LANGUAGE CONSTANTS
// ============================================================================

// Supported display languages. Only navigation labels are translated.
const (
	LanguageEnglish = "en"
	LanguageBangla  = "bn"
)
