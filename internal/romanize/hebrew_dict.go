package romanize

// Curated romanizations for the highest-frequency Hebrew vocabulary. Hebrew is
// normally written without vowels, so the character heuristic below is least
// reliable exactly where these words sit; the dictionary wins whenever it has
// an entry.
var hebrewDict = map[string]string{
	"שלום": "shalom", "אני": "ani", "אתה": "ata", "את": "at",
	"הוא": "hu", "היא": "hi", "אנחנו": "anachnu", "הם": "hem",
	"הן": "hen", "כן": "ken", "לא": "lo", "מה": "ma", "מי": "mi",
	"איפה": "eifo", "למה": "lama", "איך": "eikh", "מתי": "matai",
	"תודה": "toda", "בבקשה": "bevakasha", "סליחה": "slikha",
	"בוקר": "boker", "ערב": "erev", "לילה": "laila", "יום": "yom",
	"טוב": "tov", "טובה": "tova", "רע": "ra", "גדול": "gadol",
	"קטן": "katan", "יפה": "yafe", "חדש": "chadash", "ישן": "yashan",
	"אוכל": "okhel", "מים": "mayim", "לחם": "lekhem", "בית": "bayit",
	"ספר": "sefer", "ילד": "yeled", "ילדה": "yalda", "איש": "ish",
	"אישה": "isha", "אבא": "aba", "אמא": "ima", "חבר": "khaver",
	"ברוך": "barukh", "הבא": "haba", "שם": "sham", "פה": "po",
	"עכשיו": "akhshav", "היום": "hayom", "מחר": "makhar", "אתמול": "etmol",
	"שנה": "shana", "חודש": "khodesh", "שבוע": "shavua",
	"אחד": "ekhad", "שניים": "shnayim", "שלוש": "shalosh",
	"ארבע": "arba", "חמש": "khamesh", "שש": "shesh", "שבע": "sheva",
	"שמונה": "shmone", "תשע": "tesha", "עשר": "eser",
	"אהבה": "ahava", "חיים": "khayim", "עולם": "olam",
	"ישראל": "yisrael", "ירושלים": "yerushalayim",
	"שמח": "same'akh", "רוצה": "rotse", "יודע": "yode'a",
	"הולך": "holekh", "בא": "ba", "רואה": "ro'e", "שומע": "shome'a",
	"אוהב": "ohev", "אוהבת": "ohevet", "לומד": "lomed",
	"עובד": "oved", "גר": "gar", "נסיעה": "nesi'a", "טיול": "tiyul",
	"כסף": "kesef", "זמן": "zman", "מקום": "makom", "דרך": "derekh",
	"שלומך": "shlomkha", "אותך": "otkha", "אותי": "oti", "אותו": "oto",
	"שלי": "sheli", "שלך": "shelkha", "של": "shel",
	"זה": "ze", "זאת": "zot", "אלה": "ele", "הזה": "haze",
	"עם": "im", "על": "al", "אל": "el", "מן": "min", "בין": "bein",
	"גם": "gam", "רק": "rak", "עוד": "od", "כבר": "kvar", "אז": "az",
	"יש": "yesh", "אין": "ein", "צריך": "tsarikh", "יכול": "yakhol",
	"לעשות": "la'asot", "ללכת": "lalekhet", "לאכול": "le'ekhol",
	"לדבר": "ledaber", "לראות": "lir'ot", "לשמוע": "lishmoa",
	"אחת": "akhat", "שתיים": "shtayim", "מאה": "me'a", "אלף": "elef",
	"חם": "kham", "קר": "kar", "מהר": "maher", "לאט": "le'at",
	"כל": "kol", "הרבה": "harbe", "מעט": "me'at", "קצת": "ktsat",
	"אחרי": "akharei", "לפני": "lifnei", "ליד": "leyad",
	"למעלה": "lemala", "למטה": "lemata",
}

// HebrewDictLookup returns the curated romanization for a word after trimming
// surrounding punctuation, or "" when the word is not in the dictionary.
func HebrewDictLookup(word string) string {
	return hebrewDict[trimHebrewPunct(word)]
}
