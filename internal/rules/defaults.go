package rules

// Default returns the built-in rule tables.
func Default() *Rules {
	return &Rules{
		Extraction: ExtractionRules{
			NameStopWords: []string{
				"interested", "looking", "here", "good", "fine", "okay",
			},
			BareNameStopWords: []string{
				"hi", "hello", "hey", "yes", "no", "buy", "sell", "house",
				"home", "thanks", "thank you", "ok", "okay", "sure",
			},
			SellingKeywords: []string{"sell", "selling", "list my", "put on market"},
			BuyingKeywords:  []string{"buy", "buying", "purchase", "looking for", "house hunt"},
			TimelineBuckets: []KeywordBucket{
				{Label: "ASAP", Keywords: []string{"asap", "immediately", "urgent", "right away", "soon"}},
				{Label: "1-2 months", Keywords: []string{"this month", "next month", "few weeks"}},
				{Label: "6-12 months", Keywords: []string{"this year", "next year", "6 months"}},
				{Label: "Just exploring", Keywords: []string{"exploring", "just looking", "no rush"}},
			},
			PropertyTypes: []KeywordBucket{
				{Label: "Single Family Home", Keywords: []string{"house", "single family", "home"}},
				{Label: "Condominium", Keywords: []string{"condo", "condominium"}},
				{Label: "Townhouse", Keywords: []string{"townhouse", "townhome"}},
				{Label: "Multi-Family", Keywords: []string{"apartment", "multi-family", "duplex"}},
			},
			ConditionBuckets: []KeywordBucket{
				{Label: "Excellent", Keywords: []string{"excellent condition", "like new", "immaculate"}},
				{Label: "Good", Keywords: []string{"good condition", "well maintained", "move-in ready"}},
				{Label: "Needs Work", Keywords: []string{"needs work", "fixer", "needs repairs", "as-is"}},
			},
			PreferenceWords: []string{
				"garage", "pool", "yard", "basement", "open floor plan",
				"garden", "balcony", "fireplace",
			},
			UrgencyKeywords: []string{"asap", "urgent", "immediately", "right away"},
		},
		Validation: ValidationRules{
			FakeNames:        []string{"test", "fake", "john doe", "asdf"},
			FakeEmailMarkers: []string{"test@", "example@"},
		},
		Spam: SpamRules{
			NameKeywords: []string{
				"test", "fake", "spam", "bot", "admin", "null",
				"undefined", "asdf", "qwerty",
			},
			DisposableDomains: []string{
				"mailinator.com", "guerrillamail.com", "10minutemail.com",
				"tempmail.com", "temp-mail.org", "throwaway.email",
				"yopmail.com", "trashmail.com", "fakeinbox.com",
				"sharklasers.com", "getnada.com",
			},
			FakePhonePatterns: []string{"1234567890", "0000000000"},
			Threshold:         50,
		},
		Duplicate: DuplicateRules{
			MatchThreshold: 60,
			MaxMatches:     3,
		},
		Scoring: ScoringRules{
			// Ordered most to least urgent; the first keyword found in
			// either timeline or urgency decides the points.
			TimelinePoints: []KeywordPoints{
				{Keyword: "asap", Points: 25},
				{Keyword: "urgent", Points: 25},
				{Keyword: "immediately", Points: 25},
				{Keyword: "this week", Points: 25},
				{Keyword: "this month", Points: 20},
				{Keyword: "next month", Points: 18},
				{Keyword: "within 30 days", Points: 18},
				{Keyword: "this year", Points: 15},
				{Keyword: "6 months", Points: 12},
				{Keyword: "next year", Points: 8},
				{Keyword: "just exploring", Points: 3},
				{Keyword: "no rush", Points: 2},
				{Keyword: "someday", Points: 1},
			},
			HotThreshold:       80,
			WarmThreshold:      60,
			QualifiedThreshold: 40,
			ColdThreshold:      20,
		},
		Intelligence: IntelligenceRules{
			PositiveWords: []string{
				"great", "thanks", "thank you", "perfect", "excellent",
				"love", "good", "awesome", "appreciate", "wonderful",
				"happy", "excited",
			},
			NegativeWords: []string{
				"bad", "terrible", "frustrated", "angry", "hate", "awful",
				"disappointed", "worried", "problem", "annoying", "upset",
			},
			UrgencyKeywords: []string{"asap", "urgent", "immediately", "right away", "as soon as possible"},
			Intents: []IntentCategory{
				{Name: "sell_property", Phrases: []string{
					"sell my", "selling my", "list my", "put my house on the market",
					"want to sell", "thinking of selling",
				}},
				{Name: "buy_property", Phrases: []string{
					"buy a", "buying a", "purchase a", "looking for a home",
					"house hunting", "want to buy", "find a house",
				}},
				{Name: "get_valuation", Phrases: []string{
					"what is my home worth", "worth", "value of my", "valuation",
					"appraisal", "how much is my",
				}},
				{Name: "market_research", Phrases: []string{
					"market trends", "market conditions", "prices in",
					"median price", "how is the market",
				}},
				{Name: "investment", Phrases: []string{
					"investment property", "rental property", "roi",
					"cash flow", "flip", "investment",
				}},
				{Name: "refinance", Phrases: []string{
					"refinance", "refi", "lower my rate", "mortgage rate",
				}},
			},
			Topics: []TopicCategory{
				{Name: "pricing", Keywords: []string{"price", "cost", "worth", "value", "afford", "expensive"}},
				{Name: "location", Keywords: []string{"area", "neighborhood", "location", "school district", "commute", "downtown"}},
				{Name: "property_condition", Keywords: []string{"condition", "renovated", "repairs", "roof", "hvac", "inspection"}},
				{Name: "financing", Keywords: []string{"mortgage", "loan", "financing", "pre-approved", "down payment", "lender"}},
				{Name: "timing", Keywords: []string{"timeline", "when", "soon", "asap", "month", "year"}},
				{Name: "schools", Keywords: []string{"school", "schools", "district", "kids", "children"}},
				{Name: "investment_potential", Keywords: []string{"investment", "rental", "appreciation", "roi", "equity"}},
				{Name: "process", Keywords: []string{"process", "steps", "paperwork", "closing", "offer", "agent"}},
			},
		},
	}
}
