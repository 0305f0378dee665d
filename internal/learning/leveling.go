package learning

// Level is one tier of the experience ladder shown on the progress page.
type Level struct {
	Level         int    `json:"level"`
	Title         string `json:"title"`
	TitlePersian  string `json:"title_persian"`
	TitlePhonetic string `json:"title_phonetic"`
	MinXP         int    `json:"min_xp"`
}

// levels is the static ladder, ascending by MinXP.
var levels = []Level{
	{1, "Beginner", "مبتدی", "mobtadi", 0},
	{2, "Newcomer", "تازه‌کار", "tāze-kār", 100},
	{3, "Student", "دانش‌آموز", "dānesh-āmuz", 250},
	{4, "Learner", "یادگیرنده", "yādgirande", 500},
	{5, "Explorer", "کاوشگر", "kāvoshgar", 1000},
	{6, "Speaker", "سخنور", "sokhanvar", 2000},
	{7, "Scholar", "دانشجو", "dāneshju", 3500},
	{8, "Expert", "کارشناس", "kārshenās", 5500},
	{9, "Master", "استاد", "ostād", 8000},
	{10, "Sage", "حکیم", "hakim", 12000},
}

// LevelFor returns the highest tier whose threshold the XP total has
// reached. Negative XP clamps to the first tier.
func LevelFor(totalXP int) Level {
	if totalXP < 0 {
		totalXP = 0
	}
	current := levels[0]
	for _, l := range levels {
		if totalXP >= l.MinXP {
			current = l
		}
	}
	return current
}

// ProgressToNext reports how far along the learner is between the
// current tier's threshold and the next one, as a percentage. At the top
// tier it is always 100.
func ProgressToNext(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	current := LevelFor(totalXP)
	if current.Level == levels[len(levels)-1].Level {
		return 100
	}
	next := levels[current.Level] // tiers are 1-based, slice is 0-based
	span := next.MinXP - current.MinXP
	pct := 100 * (totalXP - current.MinXP) / span
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Levels returns the full ladder for display.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}
