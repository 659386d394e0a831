package models

// CuratedSentence is a quiz/practice sentence with provenance.
type CuratedSentence struct {
	Sentence   string `json:"sentence"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
	Source     string `json:"source"`
}

// CuratedSentences holds per-language quiz pools drawn from well-known media,
// literature, and proverbs.
var CuratedSentences = map[LanguageCode][]CuratedSentence{
	LangJapanese: {
		{Sentence: "ここで働かせてください。", Difficulty: DifficultyEasy, Category: "anime", Source: "Spirited Away"},
		{Sentence: "君の名は。", Difficulty: DifficultyEasy, Category: "anime", Source: "Your Name"},
		{Sentence: "諦めたらそこで試合終了ですよ。", Difficulty: DifficultyMedium, Category: "anime", Source: "Slam Dunk"},
		{Sentence: "お前はもう死んでいる。", Difficulty: DifficultyEasy, Category: "anime", Source: "Fist of the North Star"},
		{Sentence: "海賊王におれはなる！", Difficulty: DifficultyEasy, Category: "anime", Source: "One Piece"},
		{Sentence: "生きろ。そなたは美しい。", Difficulty: DifficultyMedium, Category: "movie", Source: "Princess Mononoke"},
		{Sentence: "まだ会ったことのない君を、探している。", Difficulty: DifficultyMedium, Category: "anime", Source: "Your Name"},
		{Sentence: "行け。振り向くんじゃない。", Difficulty: DifficultyEasy, Category: "anime", Source: "Spirited Away"},
		{Sentence: "生きるべきか死ぬべきか、それが問題だ。", Difficulty: DifficultyHard, Category: "literature", Source: "Hamlet (Japanese translation)"},
	},
	LangKorean: {
		{Sentence: "아들아, 너는 계획이 다 있구나.", Difficulty: DifficultyEasy, Category: "movie", Source: "Parasite"},
		{Sentence: "가장 완벽한 계획이 뭔지 알아? 무계획이야.", Difficulty: DifficultyMedium, Category: "movie", Source: "Parasite"},
		{Sentence: "무궁화 꽃이 피었습니다.", Difficulty: DifficultyEasy, Category: "drama", Source: "Squid Game"},
		{Sentence: "우리는 깐부잖아.", Difficulty: DifficultyEasy, Category: "drama", Source: "Squid Game"},
		{Sentence: "날이 좋아서, 날이 좋지 않아서, 날이 적당해서 모든 날이 좋았다.", Difficulty: DifficultyHard, Category: "drama", Source: "Goblin"},
		{Sentence: "시작이 반이다.", Difficulty: DifficultyEasy, Category: "proverb", Source: "Korean proverb"},
		{Sentence: "고생 끝에 낙이 온다.", Difficulty: DifficultyMedium, Category: "proverb", Source: "Korean proverb"},
		{Sentence: "티끌 모아 태산.", Difficulty: DifficultyEasy, Category: "proverb", Source: "Korean proverb"},
		{Sentence: "묻고 더블로 가!", Difficulty: DifficultyMedium, Category: "movie", Source: "Tazza: The High Rollers"},
	},
	LangChinese: {
		{Sentence: "學而時習之，不亦說乎？", Difficulty: DifficultyMedium, Category: "literature", Source: "《論語》"},
		{Sentence: "千里之行，始於足下。", Difficulty: DifficultyEasy, Category: "literature", Source: "《道德經》"},
		{Sentence: "三人行，必有我師焉。", Difficulty: DifficultyEasy, Category: "literature", Source: "《論語》"},
		{Sentence: "知之為知之，不知為不知，是知也。", Difficulty: DifficultyMedium, Category: "literature", Source: "《論語》"},
		{Sentence: "天行健，君子以自強不息。", Difficulty: DifficultyHard, Category: "literature", Source: "《周易》"},
		{Sentence: "路漫漫其修遠兮，吾將上下而求索。", Difficulty: DifficultyHard, Category: "literature", Source: "《離騷》"},
		{Sentence: "海內存知己，天涯若比鄰。", Difficulty: DifficultyMedium, Category: "literature", Source: "王勃"},
		{Sentence: "失敗為成功之母。", Difficulty: DifficultyEasy, Category: "proverb", Source: "Chinese saying"},
		{Sentence: "水滴石穿。", Difficulty: DifficultyEasy, Category: "proverb", Source: "Chinese saying"},
	},
	LangHebrew: {
		{Sentence: "אם אין אני לי, מי לי?", Difficulty: DifficultyMedium, Category: "literature", Source: "Pirkei Avot"},
		{Sentence: "גם זה יעבור.", Difficulty: DifficultyEasy, Category: "proverb", Source: "Hebrew saying"},
		{Sentence: "עוד לא אבדה תקוותנו.", Difficulty: DifficultyMedium, Category: "song", Source: "Hatikvah"},
		{Sentence: "להיות עם חופשי בארצנו.", Difficulty: DifficultyEasy, Category: "song", Source: "Hatikvah"},
		{Sentence: "ואהבת לרעך כמוך.", Difficulty: DifficultyMedium, Category: "literature", Source: "Leviticus 19:18"},
		{Sentence: "החיים והמוות ביד הלשון.", Difficulty: DifficultyHard, Category: "literature", Source: "Proverbs 18:21"},
		{Sentence: "כל העולם כולו גשר צר מאוד.", Difficulty: DifficultyHard, Category: "literature", Source: "Rabbi Nachman"},
		{Sentence: "אין דבר העומד בפני הרצון.", Difficulty: DifficultyMedium, Category: "proverb", Source: "Hebrew saying"},
		{Sentence: "סוף מעשה במחשבה תחילה.", Difficulty: DifficultyMedium, Category: "literature", Source: "Lekha Dodi"},
	},
	LangEnglish: {
		{Sentence: "May the Force be with you.", Difficulty: DifficultyEasy, Category: "movie", Source: "Star Wars"},
		{Sentence: "I'll be back.", Difficulty: DifficultyEasy, Category: "movie", Source: "The Terminator"},
		{Sentence: "To be, or not to be, that is the question.", Difficulty: DifficultyHard, Category: "literature", Source: "Hamlet"},
		{Sentence: "All the world's a stage.", Difficulty: DifficultyMedium, Category: "literature", Source: "As You Like It"},
		{Sentence: "Here's looking at you, kid.", Difficulty: DifficultyEasy, Category: "movie", Source: "Casablanca"},
		{Sentence: "Keep your friends close, but your enemies closer.", Difficulty: DifficultyMedium, Category: "movie", Source: "The Godfather Part II"},
		{Sentence: "Frankly, my dear, I don't give a damn.", Difficulty: DifficultyMedium, Category: "movie", Source: "Gone with the Wind"},
		{Sentence: "It was the best of times, it was the worst of times.", Difficulty: DifficultyHard, Category: "literature", Source: "A Tale of Two Cities"},
		{Sentence: "Not all those who wander are lost.", Difficulty: DifficultyMedium, Category: "literature", Source: "J.R.R. Tolkien"},
	},
	LangGreek: {
		{Sentence: "Γνῶθι σεαυτόν.", Difficulty: DifficultyEasy, Category: "literature", Source: "Delphic maxim"},
		{Sentence: "Ἓν οἶδα ὅτι οὐδὲν οἶδα.", Difficulty: DifficultyHard, Category: "literature", Source: "Socrates"},
		{Sentence: "Πάντα ῥεῖ.", Difficulty: DifficultyEasy, Category: "literature", Source: "Heraclitus"},
		{Sentence: "Μολὼν λαβέ.", Difficulty: DifficultyEasy, Category: "history", Source: "Leonidas"},
		{Sentence: "Ελευθερία ή θάνατος.", Difficulty: DifficultyEasy, Category: "history", Source: "Greek motto"},
		{Sentence: "Οὐκ ἐν τῷ πολλῷ τὸ εὖ.", Difficulty: DifficultyHard, Category: "proverb", Source: "Ancient Greek saying"},
		{Sentence: "Δεν ελπίζω τίποτα. Δεν φοβάμαι τίποτα. Είμαι λεύτερος.", Difficulty: DifficultyHard, Category: "literature", Source: "Nikos Kazantzakis"},
		{Sentence: "Καλύτερα αργά παρά ποτέ.", Difficulty: DifficultyEasy, Category: "proverb", Source: "Greek proverb"},
		{Sentence: "Η αρχή είναι το ήμισυ του παντός.", Difficulty: DifficultyMedium, Category: "literature", Source: "Aristotle"},
	},
	LangItalian: {
		{Sentence: "Nel mezzo del cammin di nostra vita.", Difficulty: DifficultyHard, Category: "literature", Source: "Dante, Inferno"},
		{Sentence: "Lasciate ogni speranza, voi ch'entrate.", Difficulty: DifficultyHard, Category: "literature", Source: "Dante, Inferno"},
		{Sentence: "Fatti non foste a viver come bruti.", Difficulty: DifficultyHard, Category: "literature", Source: "Dante, Inferno"},
		{Sentence: "Amor, ch'a nullo amato amar perdona.", Difficulty: DifficultyHard, Category: "literature", Source: "Dante, Inferno"},
		{Sentence: "Buongiorno, principessa!", Difficulty: DifficultyEasy, Category: "movie", Source: "La vita è bella"},
		{Sentence: "Chi va piano va sano e va lontano.", Difficulty: DifficultyEasy, Category: "proverb", Source: "Italian proverb"},
		{Sentence: "Finché c'è vita c'è speranza.", Difficulty: DifficultyMedium, Category: "proverb", Source: "Italian proverb"},
		{Sentence: "La vita è bella.", Difficulty: DifficultyEasy, Category: "movie", Source: "La vita è bella"},
		{Sentence: "Il fine giustifica i mezzi.", Difficulty: DifficultyMedium, Category: "literature", Source: "Attributed to Machiavelli"},
	},
	LangSpanish: {
		{Sentence: "En un lugar de La Mancha, de cuyo nombre no quiero acordarme.", Difficulty: DifficultyHard, Category: "literature", Source: "Don Quijote"},
		{Sentence: "Caminante, no hay camino, se hace camino al andar.", Difficulty: DifficultyMedium, Category: "literature", Source: "Antonio Machado"},
		{Sentence: "Más vale tarde que nunca.", Difficulty: DifficultyEasy, Category: "proverb", Source: "Spanish proverb"},
		{Sentence: "No hay mal que por bien no venga.", Difficulty: DifficultyMedium, Category: "proverb", Source: "Spanish proverb"},
		{Sentence: "El que madruga, Dios le ayuda.", Difficulty: DifficultyEasy, Category: "proverb", Source: "Spanish proverb"},
		{Sentence: "Poderoso caballero es don Dinero.", Difficulty: DifficultyHard, Category: "literature", Source: "Francisco de Quevedo"},
		{Sentence: "Volverán las oscuras golondrinas.", Difficulty: DifficultyMedium, Category: "literature", Source: "Gustavo Adolfo Bécquer"},
		{Sentence: "¡Hasta la vista, baby!", Difficulty: DifficultyEasy, Category: "movie", Source: "Terminator 2"},
		{Sentence: "Quien tiene un amigo, tiene un tesoro.", Difficulty: DifficultyEasy, Category: "proverb", Source: "Spanish saying"},
	},
}

// SurpriseSentence is a practice prompt the surprise endpoint hands out.
type SurpriseSentence struct {
	Sentence   string `json:"sentence"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

// SurpriseSentencesEN is the pool for English-source users.
var SurpriseSentencesEN = []SurpriseSentence{
	{Sentence: "I want to eat ramen for dinner tonight", Difficulty: DifficultyEasy, Category: "daily life"},
	{Sentence: "Where is the nearest train station?", Difficulty: DifficultyEasy, Category: "travel"},
	{Sentence: "This coffee tastes absolutely amazing", Difficulty: DifficultyEasy, Category: "food"},
	{Sentence: "Could you please speak a little slower?", Difficulty: DifficultyEasy, Category: "travel"},
	{Sentence: "I've been studying this language for three months", Difficulty: DifficultyMedium, Category: "learning"},
	{Sentence: "The sunset over the ocean was breathtaking", Difficulty: DifficultyMedium, Category: "nature"},
	{Sentence: "I'm sorry, I don't understand what you're saying", Difficulty: DifficultyEasy, Category: "travel"},
	{Sentence: "Let's grab a beer after work", Difficulty: DifficultyEasy, Category: "social"},
	{Sentence: "I need to wake up early tomorrow morning", Difficulty: DifficultyEasy, Category: "daily life"},
	{Sentence: "What do you recommend from the menu?", Difficulty: DifficultyEasy, Category: "food"},
	{Sentence: "I've been meaning to tell you something important", Difficulty: DifficultyMedium, Category: "social"},
	{Sentence: "The more I practice, the more confident I feel", Difficulty: DifficultyMedium, Category: "learning"},
	{Sentence: "Can I get the bill please?", Difficulty: DifficultyEasy, Category: "travel"},
	{Sentence: "I think we're lost, let me check the map", Difficulty: DifficultyMedium, Category: "travel"},
	{Sentence: "If I had known earlier, I would have come sooner", Difficulty: DifficultyHard, Category: "grammar"},
}

// SurpriseSentencesZH is the pool for Chinese-source users.
var SurpriseSentencesZH = []SurpriseSentence{
	{Sentence: "今天晚上我想吃拉麵", Difficulty: DifficultyEasy, Category: "日常生活"},
	{Sentence: "請問最近的捷運站在哪裡？", Difficulty: DifficultyEasy, Category: "旅遊"},
	{Sentence: "這杯咖啡真的超好喝", Difficulty: DifficultyEasy, Category: "美食"},
	{Sentence: "你可以講慢一點嗎？", Difficulty: DifficultyEasy, Category: "旅遊"},
	{Sentence: "我學這個語言已經三個月了", Difficulty: DifficultyMedium, Category: "學習"},
	{Sentence: "海邊的夕陽真的美到不行", Difficulty: DifficultyMedium, Category: "自然"},
	{Sentence: "不好意思，我聽不懂你在說什麼", Difficulty: DifficultyEasy, Category: "旅遊"},
	{Sentence: "下班之後一起去喝一杯吧", Difficulty: DifficultyEasy, Category: "社交"},
	{Sentence: "我明天早上要早起", Difficulty: DifficultyEasy, Category: "日常生活"},
	{Sentence: "你們推薦菜單上的什麼？", Difficulty: DifficultyEasy, Category: "美食"},
	{Sentence: "我一直想跟你說一件很重要的事", Difficulty: DifficultyMedium, Category: "社交"},
	{Sentence: "越練習就越有自信", Difficulty: DifficultyMedium, Category: "學習"},
	{Sentence: "可以幫我結帳嗎？", Difficulty: DifficultyEasy, Category: "旅遊"},
	{Sentence: "我覺得我們迷路了，讓我看一下地圖", Difficulty: DifficultyMedium, Category: "旅遊"},
	{Sentence: "如果我早點知道的話，我就會早點來", Difficulty: DifficultyHard, Category: "文法"},
}
