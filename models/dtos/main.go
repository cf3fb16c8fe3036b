package dtos

import "time"

// ---- Scheme rendering

type SchemeCellDTO struct {
	TruthState string   `json:"truthState"`
	CallState  string   `json:"callState"`
	Outcomes   []string `json:"outcomes"`
	Rendered   string   `json:"rendered"`
}

type SchemeRowDTO struct {
	CallState string   `json:"callState"`
	Cells     []string `json:"cells"` // rendered per truth column, canonical order
}

type SchemeOverviewDTO struct {
	Policy      string         `json:"policy"`
	Validated   bool           `json:"validated"`
	TruthStates []string       `json:"truthStates"`
	Rows        []SchemeRowDTO `json:"rows"`
}

// ---- Concordance summaries

type ConcordanceCounts struct {
	TruePositives  int `json:"truePositives"`
	FalsePositives int `json:"falsePositives"`
	TrueNegatives  int `json:"trueNegatives"`
	FalseNegatives int `json:"falseNegatives"`
}

type ConcordanceSummaryDTO struct {
	RunId       string            `json:"runId"`
	Counts      ConcordanceCounts `json:"counts"`
	Sensitivity float64           `json:"sensitivity"`
	Precision   float64           `json:"precision"`
	Specificity float64           `json:"specificity"`
	FMeasure    float64           `json:"fMeasure"`
}

// ---- General errors

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}
