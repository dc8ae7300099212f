package styling

// keywordGroup 一个标签及其触发关键字，表序即并列时的优先序
type keywordGroup struct {
	Tag      string
	Keywords []string
}

var themeKeywords = []keywordGroup{
	{"Travel", []string{"travel", "trip", "adventure", "explore", "wanderlust", "vacation", "journey", "destination"}},
	{"Fashion", []string{"fashion", "style", "outfit", "ootd", "wardrobe", "dress", "streetwear"}},
	{"Food", []string{"food", "recipe", "delicious", "yummy", "restaurant", "cooking", "foodie", "brunch"}},
	{"Fitness", []string{"fitness", "workout", "gym", "training", "health", "exercise", "cardio"}},
	{"Business", []string{"business", "entrepreneur", "startup", "marketing", "brand", "hustle"}},
	{"Art", []string{"art", "artist", "creative", "design", "painting", "drawing", "illustration"}},
	{"Tech", []string{"tech", "technology", "coding", "software", "gadget", "innovation"}},
	{"Nature", []string{"nature", "sunset", "beach", "mountain", "outdoors", "ocean", "forest", "hiking"}},
	{"Lifestyle", []string{"life", "lifestyle", "daily", "moments", "vibes", "weekend"}},
	{"Beauty", []string{"beauty", "makeup", "skincare", "glow", "haircare", "cosmetics"}},
}

var toneKeywords = []keywordGroup{
	{"Professional", []string{"strategy", "industry", "professional", "results", "growth", "insights"}},
	{"Formal", []string{"announce", "pleased", "regarding", "furthermore", "sincerely"}},
	{"Casual", []string{"gonna", "wanna", "chill", "stuff", "kinda", "hangout"}},
	{"Humorous", []string{"haha", "funny", "joke", "hilarious", "lmao", "silly"}},
	{"Inspirational", []string{"dream", "believe", "inspire", "motivation", "grateful", "blessed"}},
	{"Educational", []string{"learn", "tip", "how to", "guide", "did you know", "tutorial"}},
	{"Friendly", []string{"friends", "love", "thank you", "happy", "together", "family"}},
	{"Promotional", []string{"sale", "discount", "link in bio", "shop", "offer", "giveaway"}},
}

// 语料非空但关键字零命中时的兜底标签
var (
	fallbackThemes = []string{"Photography", "Daily Life", "Lifestyle"}
	fallbackTones  = []string{"Friendly", "Casual", "Conversational"}
	fallbackStyles = []string{"Conversational", "Personal"}
)
