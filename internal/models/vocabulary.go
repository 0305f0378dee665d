package models

import "time"

// VocabularyItem is immutable content created by authors or the seed
// process. The engine never mutates it.
type VocabularyItem struct {
	ID              int64     `json:"id"`
	Word            string    `json:"word"`
	Phonetic        string    `json:"phonetic"`
	Translation     string    `json:"translation"`
	ExampleFarsi    string    `json:"example_farsi"`
	ExamplePhonetic string    `json:"example_phonetic"`
	ExampleEnglish  string    `json:"example_english"`
	Category        string    `json:"category"`
	Level           int       `json:"level"`
	CreatedAt       time.Time `json:"created_at"`
}

// VocabularyFilter narrows vocabulary listings.
type VocabularyFilter struct {
	Category string
	Level    int
	MaxLevel int
}

// CategorySummary is one row of the lessons index.
type CategorySummary struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	MinLevel int    `json:"min_level"`
	MaxLevel int    `json:"max_level"`
}
