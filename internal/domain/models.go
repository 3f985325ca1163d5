package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account that owns uploaded transcripts.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// FileMeta stores an uploaded transcript together with its extracted text.
// SourceURL is only set when the best-effort archive upload to object
// storage succeeded; recommendation only ever reads ExtractedText.
type FileMeta struct {
	ID            uuid.UUID `db:"id" json:"id"`
	OwnerID       uuid.UUID `db:"owner_id" json:"owner_id"`
	FileName      string    `db:"file_name" json:"file_name"`
	ContentType   string    `db:"content_type" json:"content_type"`
	FileSize      int64     `db:"file_size" json:"file_size"`
	ExtractedText string    `db:"extracted_text" json:"extracted_text"`
	SourceURL     *string   `db:"source_url" json:"source_url"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// ExtractionResult is the outcome of turning raw file bytes into text.
// Text is always populated, possibly with a diagnostic placeholder;
// SourceURL is nil unless the secondary archive upload succeeded.
type ExtractionResult struct {
	Text      string  `json:"text"`
	SourceURL *string `json:"source_url"`
}

// Metadata holds facts derived from the transcript, not user free text.
type Metadata struct {
	Location   string `json:"location"`
	GroupLabel string `json:"group_name"`
	Date       string `json:"date"`
}

// Persona describes one identified participant, in discovery order.
type Persona struct {
	Name     string   `json:"name"`
	Likes    []string `json:"likes"`
	Dislikes []string `json:"dislikes"`
}

// CourseStep is one ordered stage of the outing with a ready-to-search
// query string (4 words or fewer).
type CourseStep struct {
	Step       int    `json:"step"`
	Category   string `json:"category"`
	FinalQuery string `json:"final_query"`
}

// AnalysisResult is the structured analysis of a transcript. Everything
// downstream depends only on this value, never on how it was produced
// (fresh inference, cache hit, or a client-edited course list).
type AnalysisResult struct {
	Metadata Metadata     `json:"metadata"`
	Personas []Persona    `json:"personas"`
	Courses  []CourseStep `json:"courses"`
}

// Place is one candidate venue returned by place search. SearchKeyword
// records which query produced it, which is what lets the synthesizer
// group candidates back into course steps.
type Place struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Address       string  `json:"address"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Link          string  `json:"link"`
	SearchKeyword string  `json:"search_keyword"`
}

// Itinerary is one complete assignment of a place to every course step
// that had candidates. Built per request, never persisted.
type Itinerary struct {
	ID     int     `json:"id"`
	Label  string  `json:"label"`
	Places []Place `json:"places"`
}
