package services

import (
	"time"

	"github.com/nima/farsiflash/internal/models"
)

// seedVocabulary is the built-in starter set. Content imports can
// overwrite any of it; the (word, translation) pair is the identity.
var seedVocabulary = []models.VocabularyItem{
	{Word: "سلام", Phonetic: "salām", Translation: "hello", ExampleFarsi: "سلام، حال شما چطور است؟", ExamplePhonetic: "salām, hāl-e shomā chetor ast?", ExampleEnglish: "Hello, how are you?", Category: "greetings", Level: 1},
	{Word: "خداحافظ", Phonetic: "khodāhāfez", Translation: "goodbye", ExampleFarsi: "خداحافظ، به امید دیدار", ExamplePhonetic: "khodāhāfez, be omid-e didār", ExampleEnglish: "Goodbye, hope to see you again.", Category: "greetings", Level: 1},
	{Word: "ممنون", Phonetic: "mamnun", Translation: "thank you / thanks", ExampleFarsi: "ممنون از کمک شما", ExamplePhonetic: "mamnun az komak-e shomā", ExampleEnglish: "Thank you for your help.", Category: "greetings", Level: 1},
	{Word: "بله", Phonetic: "bale", Translation: "yes", Category: "basics", Level: 1},
	{Word: "نه", Phonetic: "na", Translation: "no", Category: "basics", Level: 1},
	{Word: "آب", Phonetic: "āb", Translation: "water", ExampleFarsi: "یک لیوان آب، لطفاً", ExamplePhonetic: "yek livān āb, lotfan", ExampleEnglish: "A glass of water, please.", Category: "food", Level: 1},
	{Word: "نان", Phonetic: "nān", Translation: "bread", ExampleFarsi: "نان تازه خیلی خوشمزه است", ExamplePhonetic: "nān-e tāze kheyli khoshmaze ast", ExampleEnglish: "Fresh bread is very tasty.", Category: "food", Level: 1},
	{Word: "چای", Phonetic: "chāy", Translation: "tea", ExampleFarsi: "چای می‌خوری؟", ExamplePhonetic: "chāy mikhori?", ExampleEnglish: "Do you drink tea?", Category: "food", Level: 1},
	{Word: "خانه", Phonetic: "khāne", Translation: "house / home", ExampleFarsi: "خانه ما بزرگ است", ExamplePhonetic: "khāne-ye mā bozorg ast", ExampleEnglish: "Our house is big.", Category: "places", Level: 1},
	{Word: "کتاب", Phonetic: "ketāb", Translation: "book", ExampleFarsi: "این کتاب خیلی جالب است", ExamplePhonetic: "in ketāb kheyli jāleb ast", ExampleEnglish: "This book is very interesting.", Category: "objects", Level: 1},
	{Word: "دوست", Phonetic: "dust", Translation: "friend", ExampleFarsi: "او دوست من است", ExamplePhonetic: "u dust-e man ast", ExampleEnglish: "He/she is my friend.", Category: "people", Level: 2},
	{Word: "خانواده", Phonetic: "khānevāde", Translation: "family", Category: "people", Level: 2},
	{Word: "خوردن", Phonetic: "khordan", Translation: "to eat (also to drink)", ExampleFarsi: "دوست دارم کباب بخورم", ExamplePhonetic: "dust dāram kabāb bokhoram", ExampleEnglish: "I like to eat kebab.", Category: "verbs", Level: 2},
	{Word: "رفتن", Phonetic: "raftan", Translation: "to go", ExampleFarsi: "من به بازار می‌روم", ExamplePhonetic: "man be bāzār miravam", ExampleEnglish: "I am going to the bazaar.", Category: "verbs", Level: 2},
	{Word: "دیدن", Phonetic: "didan", Translation: "to see", Category: "verbs", Level: 2},
	{Word: "زیبا", Phonetic: "zibā", Translation: "beautiful", ExampleFarsi: "اصفهان شهر زیبایی است", ExamplePhonetic: "esfahān shahr-e zibāyi ast", ExampleEnglish: "Isfahan is a beautiful city.", Category: "adjectives", Level: 2},
	{Word: "بزرگ", Phonetic: "bozorg", Translation: "big / large", Category: "adjectives", Level: 2},
	{Word: "دریا", Phonetic: "daryā", Translation: "sea", Category: "nature", Level: 3},
	{Word: "کوه", Phonetic: "kuh", Translation: "mountain", ExampleFarsi: "دماوند بلندترین کوه ایران است", ExamplePhonetic: "damāvand bolandtarin kuh-e irān ast", ExampleEnglish: "Damavand is the highest mountain in Iran.", Category: "nature", Level: 3},
	{Word: "آسمان", Phonetic: "āsemān", Translation: "sky", Category: "nature", Level: 3},
	{Word: "دلتنگی", Phonetic: "deltangi", Translation: "longing / homesickness", Category: "feelings", Level: 4},
	{Word: "سرنوشت", Phonetic: "sarnevesht", Translation: "destiny / fate", Category: "abstract", Level: 4},
	{Word: "تعارف", Phonetic: "ta'ārof", Translation: "ritual politeness (untranslatable)", ExampleFarsi: "تعارف نکن، راحت باش", ExamplePhonetic: "ta'ārof nakon, rāhat bāsh", ExampleEnglish: "Don't stand on ceremony, make yourself at home.", Category: "culture", Level: 5},
}

var seedPosts = []models.BlogPost{
	{
		Slug:    "why-farsi",
		Title:   "Why learn Farsi?",
		Summary: "A short case for picking up the language of Hafez and Rumi.",
		BodyMarkdown: `Farsi (Persian) is spoken by over 100 million people across Iran,
Afghanistan, and Tajikistan, and it carries one of the world's great
literary traditions.

## The good news

- **No grammatical gender.** Unlike French or German, nouns are just nouns.
- **No noun cases.** Word order and the little particle *rā* do the work.
- **Regular verbs.** Once you know the present and past stems, conjugation
  is almost mechanical.

## The honest news

The script takes a couple of weeks of practice, and short vowels are not
written. That is exactly why every word here comes with a phonetic
transliteration: you can start speaking before you can read.

Start with the [alphabet reference](/alphabet), then try a
[practice session](/practice).`,
		PublishedAt: time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC),
	},
	{
		Slug:    "spaced-repetition-explained",
		Title:   "How the review schedule works",
		Summary: "What the app is doing when it decides which words you see.",
		BodyMarkdown: `Every word you practice carries a tiny schedule: when you should see it
next, and an *ease factor* that says how quickly the gaps between reviews
can grow.

Answer correctly and rate the word **easy**, and the gap grows faster.
Rate it **hard** and the gap stays short. Miss the word entirely and it
comes back tomorrow, with a slightly lower ease factor.

A session always starts with the words you are most overdue on, then
introduces new words at your level, so twenty minutes a day keeps the
whole deck moving.`,
		PublishedAt: time.Date(2025, 11, 17, 9, 0, 0, 0, time.UTC),
	},
}
