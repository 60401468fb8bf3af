package analysis

// Static lookup tables shared read-only by every analyzer invocation.
// Matching is lowercase substring, so entries are stored lowercased.

// aiMarkers are cliché phrases characteristic of generated text (EN/RU/UZ).
var aiMarkers = []string{
	// EN
	"it's important to note", "in terms of", "from a technical perspective", "to summarize",
	"furthermore", "moreover", "additionally", "typically", "in many cases",
	"key features include", "one should consider", "it is worth mentioning", "best practices suggest",
	"as an ai language model", "i cannot provide", "delves into", "comprehensive overview",
	"complex landscape", "tapestry of", "rich history", "not only ... but also",

	// RU
	"важно отметить", "с технической точки зрения", "подводя итог", "кроме того",
	"более того", "дополнительно", "как правило", "в большинстве случаев",
	"стоит упомянуть", "лучшие практики", "как языковая модель", "не могу предоставить",
	"в заключение", "следует учитывать", "является важным аспектом", "играет ключевую роль",
	"не только ..., но и", "рассмотрим подробнее", "резюмируя вышесказанное",

	// UZ
	"shuni ta'kidlash kerakki", "texnik nuqtai nazardan", "xulosa qilib aytganda",
	"bundan tashqari", "qo'shimcha ravishda", "odatda", "ko'p hollarda",
	"sun'iy intellekt sifatida", "tavsiya etiladi", "eng yaxshi amaliyotlar",
	"e'tiborga loyiq", "hisobga olish kerak", "muhim ahamiyatga ega", "asosiy omillardan biri",
	"quyidagilarni o'z ichiga oladi", "tahlil qilish kerak", "misol sifatida",
	"umumlashtirganda", "ahamiyatli jihati shundaki",
}

// transitionWords flag unnaturally dense connective tissue in short text.
var transitionWords = []string{
	"however", "therefore", "thus", "consequently", "moreover", "lekin", "shuning uchun",
}

// logicMarkers indicate step-by-step reasoning in an answer.
var logicMarkers = []string{
	"first", "then", "second", "finally", "because", "therefore", "reason",
}

// knownTemplates are templated phrases commonly pasted into dev interviews.
var knownTemplates = []string{
	"In this example, we use a dictionary to keep track of elements.",
	"As per my knowledge, this is the most efficient way to handle this.",
	"The first thing to consider is the time complexity of the operation.",
	"Typically, we would use a library like Redux for state management.",
	"Let's break down the problem into smaller components.",
}
