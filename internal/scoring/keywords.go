package scoring

// Static multilingual vocabulary tables, shared read-only by every
// scoring call. Matching is lowercase substring unless noted.

// technicalKeywords earn the keyword-density bonus (EN/RU/UZ).
var technicalKeywords = []string{
	// EN
	"implementation", "performance", "complexity", "architecture", "pattern", "logic", "database",
	"api", "interface", "class", "object", "function", "method", "async", "sync", "thread",
	"deploy", "ci/cd", "testing", "unit", "integration", "rest", "graphql", "sql", "nosql",
	// RU
	"реализация", "производительность", "сложность", "архитектура", "паттерн", "логика", "база",
	"интерфейс", "класс", "объект", "функция", "метод", "асинхрон", "поток", "деплой",
	"тестирование", "юнит", "интеграция", "рест", "данные", "сервер", "клиент",
	"оптимизация", "кэширование", "безопасность", "авторизация", "аутентификация",
	"пайтон", "питон", "программирование", "разработка", "код", "структура", "алгоритм",
	// UZ
	"amalga oshirish", "unumdorlik", "murakkablik", "arxitektura", "andoza", "mantiq", "ma'lumotlar",
	"interfeys", "sinf", "obyekt", "funktsiya", "usul", "asinxron", "oqim", "joylashtirish",
	"sinash", "birlik", "integratsiya", "server", "mijoz",
	"optimallashtirish", "keshlash", "xavfsizlik", "tizim", "dastur", "algoritm", "kod",
}

// problemSolvingMarkers indicate trade-off reasoning in case answers.
var problemSolvingMarkers = []string{
	"trade-off", "alternative", "depends", "strategy", "handling", "solution", "scale",
	"компромисс", "альтернатива", "зависит", "стратегия", "обработка", "решение", "масштабирование",
	"kelishuv", "muqobil", "bog'liq", "strategiya", "ishlov", "yechim", "miqyoslash",
	"плюсы", "минусы", "вариант", "лучше", "хуже", "afzallik", "kamchilik",
}

// dontKnowPhrases are explicit "I don't know"-equivalents (EN/RU/UZ).
var dontKnowPhrases = []string{
	// EN
	"don't know", "dont know", "i do not know", "no idea", "not sure", "forgot", "can't remember",
	"random", "idk", "nothing", "none",
	// RU
	"не знаю", "не припомню", "не помню", "без понятия", "забыл", "ничего", "пусто",
	"рандом", "флоп", "аа", "ээ", "хмм", "не могу сказать", "не уверен", "сложно сказать",
	"тд", "т.д.", "и т.д.", "итп", "и т.п.", "хз", "чо", "че", "хх", "йй", "фыва",
	// UZ
	"bilmayman", "eslolmayman", "yodimda yo'q", "tushunmadim", "bilmadim", "unutdim", "t.h", "va h.k", "yo'q",
}

// strongDontKnow are single phrases that zero an answer regardless of the
// surrounding text length.
var strongDontKnow = map[string]struct{}{
	"рандом":     {},
	"не знаю":    {},
	"не помню":   {},
	"don't know": {},
	"bilmayman":  {},
}

// allVowels spans EN (y included for mash detection), RU and UZ alphabets.
const allVowels = "aeiouyаеёиоуыэюя'"

// keyboardRows catch mash answers like "asdfgh" or "йцукен".
var keyboardRows = []string{
	"qwertyuiop", "asdfghjkl", "zxcvbnm",
	"йцукенгшщз", "фывапролдж", "ячсмитьбю",
}

// commonShortWords are legitimate 1-2 letter words that must not count
// toward the junk-word penalty.
var commonShortWords = map[string]struct{}{
	"я": {}, "и": {}, "в": {}, "на": {}, "с": {}, "а": {}, "но": {}, "у": {}, "к": {}, "за": {},
	"от": {}, "до": {}, "по": {}, "об": {},
	"va": {}, "bu": {}, "u": {}, "da": {}, "ni": {}, "ga": {},
	"of": {}, "in": {}, "to": {}, "is": {}, "a": {}, "an": {}, "the": {}, "it": {}, "on": {},
}
