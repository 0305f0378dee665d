package learning

import (
	"regexp"
	"strings"
)

// ValidationResult reports how a submitted answer compared against the
// expected translation.
type ValidationResult struct {
	IsCorrect  bool    `json:"is_correct"`
	Similarity float64 `json:"similarity"`
	Feedback   string  `json:"feedback"`
}

// similarityThreshold is the normalized edit-distance similarity above
// which an answer counts as a small typo rather than a wrong answer.
const similarityThreshold = 0.85

const (
	feedbackEmpty     = "Type an answer first."
	feedbackExact     = "Correct!"
	feedbackTypo      = "Correct, just a small typo."
	feedbackIncorrect = "Not quite. Try again."
)

var parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)`)

// contractions maps English contractions (and their common
// apostrophe-less spellings) to expanded forms. Both the learner's
// answer and the expected one are compared in contracted and expanded
// shape so "I'm" / "im" / "i am" all match each other.
var contractions = map[string]string{
	"i'm": "i am", "im": "i am",
	"i'll": "i will", "ill": "i will",
	"i've": "i have", "ive": "i have",
	"i'd": "i would",
	"don't": "do not", "dont": "do not",
	"doesn't": "does not", "doesnt": "does not",
	"didn't": "did not", "didnt": "did not",
	"can't": "can not", "cant": "can not",
	"won't": "will not", "wont": "will not",
	"isn't": "is not", "isnt": "is not",
	"aren't": "are not", "arent": "are not",
	"wasn't": "was not", "wasnt": "was not",
	"weren't": "were not", "werent": "were not",
	"haven't": "have not", "havent": "have not",
	"hasn't": "has not", "hasnt": "has not",
	"wouldn't": "would not", "wouldnt": "would not",
	"couldn't": "could not", "couldnt": "could not",
	"shouldn't": "should not", "shouldnt": "should not",
	"it's": "it is",
	"that's": "that is", "thats": "that is",
	"what's": "what is", "whats": "what is",
	"there's": "there is", "theres": "there is",
	"he's": "he is", "she's": "she is",
	"you're": "you are", "youre": "you are",
	"we're": "we are",
	"they're": "they are", "theyre": "they are",
	"you've": "you have", "youve": "you have",
	"we've": "we have", "weve": "we have",
	"they've": "they have", "theyve": "they have",
	"let's": "let us", "lets": "let us",
}

// ValidateAnswer decides whether a free-text answer matches the expected
// translation, tolerating typos, contractions, and "/"-separated
// alternative answers. Only Latin-script (translated or transliterated)
// answers are handled; Persian-script input is not matched here.
func ValidateAnswer(userAnswer, correctAnswer string) ValidationResult {
	user := normalize(userAnswer)
	if user == "" {
		return ValidationResult{IsCorrect: false, Similarity: 0, Feedback: feedbackEmpty}
	}

	// Parenthetical annotations like "to eat (formal)" are author notes,
	// never required in the answer.
	correct := normalize(parentheticalRe.ReplaceAllString(correctAnswer, ""))

	userForms := contractionForms(user)

	best := 0.0
	for _, alt := range alternatives(correct) {
		for _, cf := range contractionForms(alt) {
			for _, uf := range userForms {
				if uf == cf {
					return ValidationResult{IsCorrect: true, Similarity: 1.0, Feedback: feedbackExact}
				}
				if sim := similarity(uf, cf); sim > best {
					best = sim
				}
			}
		}
	}

	if best >= similarityThreshold {
		return ValidationResult{IsCorrect: true, Similarity: best, Feedback: feedbackTypo}
	}
	return ValidationResult{IsCorrect: false, Similarity: best, Feedback: feedbackIncorrect}
}

// normalize lowercases, trims, and strips terminal punctuation in both
// Latin and Persian forms.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for {
		trimmed := strings.TrimRight(s, ".,!?;:،؟؛")
		if trimmed == s {
			break
		}
		s = strings.TrimSpace(trimmed)
	}
	return s
}

// alternatives splits a "/"-separated multi-answer list ("house / home").
func alternatives(correct string) []string {
	if !strings.Contains(correct, "/") {
		return []string{correct}
	}
	parts := strings.Split(correct, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = append(out, correct)
	}
	return out
}

// contractionForms returns the string as given plus its
// contraction-expanded form when they differ.
func contractionForms(s string) []string {
	expanded := expandContractions(s)
	if expanded == s {
		return []string{s}
	}
	return []string{s, expanded}
}

func expandContractions(s string) string {
	words := strings.Fields(s)
	changed := false
	for i, w := range words {
		if exp, ok := contractions[w]; ok {
			words[i] = exp
			changed = true
		}
	}
	if !changed {
		return s
	}
	return strings.Join(words, " ")
}

// similarity is 1 − (Levenshtein distance / max length), computed over
// runes. Two empty strings are identical by convention.
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(ra, rb))/float64(maxLen)
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(minInt(curr[j-1]+1, prev[j]+1), prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
