// Package content holds static reference material served as-is: the
// Persian alphabet table.
package content

// Letter is one entry of the Persian alphabet reference.
type Letter struct {
	Isolated string `json:"isolated"`
	Name     string `json:"name"`
	Phonetic string `json:"phonetic"`
	Sound    string `json:"sound"`
}

// Alphabet is the 32-letter Persian alphabet in order.
var Alphabet = []Letter{
	{"ا", "الف", "alef", "ā / a"},
	{"ب", "به", "be", "b"},
	{"پ", "په", "pe", "p"},
	{"ت", "ته", "te", "t"},
	{"ث", "ثه", "se", "s"},
	{"ج", "جیم", "jim", "j"},
	{"چ", "چه", "che", "ch"},
	{"ح", "حه", "he", "h"},
	{"خ", "خه", "khe", "kh"},
	{"د", "دال", "dāl", "d"},
	{"ذ", "ذال", "zāl", "z"},
	{"ر", "ره", "re", "r"},
	{"ز", "زه", "ze", "z"},
	{"ژ", "ژه", "zhe", "zh"},
	{"س", "سین", "sin", "s"},
	{"ش", "شین", "shin", "sh"},
	{"ص", "صاد", "sād", "s"},
	{"ض", "ضاد", "zād", "z"},
	{"ط", "طا", "tā", "t"},
	{"ظ", "ظا", "zā", "z"},
	{"ع", "عین", "eyn", "' (glottal)"},
	{"غ", "غین", "gheyn", "gh"},
	{"ف", "فه", "fe", "f"},
	{"ق", "قاف", "ghāf", "gh"},
	{"ک", "کاف", "kāf", "k"},
	{"گ", "گاف", "gāf", "g"},
	{"ل", "لام", "lām", "l"},
	{"م", "میم", "mim", "m"},
	{"ن", "نون", "nun", "n"},
	{"و", "واو", "vāv", "v / u / o"},
	{"ه", "هه", "he", "h"},
	{"ی", "یه", "ye", "y / i"},
}
