package learning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nima/farsiflash/internal/learning"
)

func TestValidateAnswer_ExactMatch(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		correct string
	}{
		{"identical", "hello", "hello"},
		{"case insensitive", "Hello", "hello"},
		{"surrounding whitespace", "  water  ", "water"},
		{"terminal punctuation", "how are you?", "how are you"},
		{"persian punctuation", "how are you؟", "how are you"},
		{"annotation stripped from expected", "to eat", "to eat (formal)"},
		{"phrase", "thank you very much", "thank you very much"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := learning.ValidateAnswer(tt.user, tt.correct)
			assert.True(t, result.IsCorrect)
			assert.Equal(t, 1.0, result.Similarity)
		})
	}
}

func TestValidateAnswer_EmptyAnswer(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		result := learning.ValidateAnswer(input, "hello")
		assert.False(t, result.IsCorrect)
		assert.Equal(t, 0.0, result.Similarity)
		assert.NotEmpty(t, result.Feedback)
	}
}

func TestValidateAnswer_TypoTolerance(t *testing.T) {
	// One substitution in a seven-letter word scores 6/7 and passes.
	result := learning.ValidateAnswer("morming", "morning")
	assert.True(t, result.IsCorrect)
	assert.GreaterOrEqual(t, result.Similarity, 0.85)

	// The same substitution in a three-letter word scores 2/3 and fails.
	result = learning.ValidateAnswer("cot", "cat")
	assert.False(t, result.IsCorrect)
	assert.Less(t, result.Similarity, 0.85)
}

func TestValidateAnswer_MultiAnswer(t *testing.T) {
	result := learning.ValidateAnswer("home", "house / home")
	assert.True(t, result.IsCorrect)
	assert.Equal(t, 1.0, result.Similarity)

	result = learning.ValidateAnswer("house", "house / home")
	assert.True(t, result.IsCorrect)

	result = learning.ValidateAnswer("apartment", "house / home")
	assert.False(t, result.IsCorrect)
}

func TestValidateAnswer_Contractions(t *testing.T) {
	tests := []struct {
		user    string
		correct string
	}{
		{"I am", "I'm"},
		{"im", "I'm"},
		{"I'm", "I am"},
		{"do not", "don't"},
		{"dont", "do not"},
	}

	for _, tt := range tests {
		t.Run(tt.user+"/"+tt.correct, func(t *testing.T) {
			result := learning.ValidateAnswer(tt.user, tt.correct)
			assert.True(t, result.IsCorrect)
		})
	}
}

func TestValidateAnswer_Incorrect(t *testing.T) {
	result := learning.ValidateAnswer("goodbye", "hello")
	assert.False(t, result.IsCorrect)
	assert.Less(t, result.Similarity, 0.85)
	assert.NotEmpty(t, result.Feedback)
}

func TestValidateAnswer_EmptyExpectedDoesNotPanic(t *testing.T) {
	// Content should never ship an annotation-only answer, but the
	// validator has to survive one.
	result := learning.ValidateAnswer("anything", "(formal)")
	assert.False(t, result.IsCorrect)
	assert.Equal(t, 0.0, result.Similarity)
}

func TestValidateAnswer_FuzzyAgainstAlternatives(t *testing.T) {
	// A near miss against the second alternative still counts.
	result := learning.ValidateAnswer("apartmant", "apartment / flat")
	assert.True(t, result.IsCorrect)
	assert.GreaterOrEqual(t, result.Similarity, 0.85)
}
