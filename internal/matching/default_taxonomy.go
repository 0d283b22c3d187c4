package matching

// DefaultEntries is the built-in interest catalog. Keywords are written in any
// case and with "&"; they are normalized when the taxonomy is built.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Label: "Career & Professional Development",
			Keywords: []string{
				"career", "careers", "resume", "resumes", "cv", "cover letter", "interview",
				"interviews", "internship", "internships", "job", "jobs", "job fair", "career fair",
				"recruiting", "recruiter", "recruitment", "hiring", "employer", "employers",
				"linkedin", "networking", "professional", "professional development",
				"co op", "coop", "headshot", "headshots", "alumni panel", "industry night",
				"info session", "information session", "salary", "negotiation", "portfolio review",
				"mock interview", "elevator pitch", "workplace", "mentorship", "mentor",
			},
		},
		{
			Label: "Wellness & Mental Health",
			Keywords: []string{
				"wellness", "wellbeing", "well being", "mental health", "mindfulness", "meditation",
				"yoga", "pilates", "stress", "stress relief", "anxiety", "self care", "counselling",
				"counseling", "therapy", "therapist", "burnout", "sleep", "nutrition", "healthy",
				"health", "breathing", "breathwork", "relaxation", "therapy dogs", "puppy",
				"support group", "peer support", "resilience", "mental", "calm", "journaling",
			},
		},
		{
			Label: "Academic Support & Research",
			Keywords: []string{
				"academic", "academics", "research", "researcher", "tutoring", "tutor", "study",
				"studying", "study group", "study session", "exam", "exams", "midterm", "midterms",
				"finals", "thesis", "dissertation", "lecture", "seminar", "symposium", "colloquium",
				"library", "lab", "laboratory", "writing centre", "writing center", "citation",
				"journal", "publication", "undergraduate research", "graduate school", "grad school",
				"phd", "masters", "scholarship", "scholarships", "fellowship", "grant", "conference",
				"poster session", "office hours", "course", "homework", "math", "science",
			},
		},
		{
			Label: "Arts & Creative",
			Keywords: []string{
				"art", "arts", "artist", "artists", "creative", "creativity", "painting", "paint",
				"drawing", "sketch", "sketching", "craft", "crafts", "crafting", "pottery",
				"ceramics", "sculpture", "photography", "photo walk", "film", "filmmaking",
				"cinema", "design", "graphic design", "illustration", "gallery", "exhibition",
				"exhibit", "museum", "poetry", "creative writing", "writing workshop", "zine",
				"theatre", "theater", "improv", "knitting", "calligraphy", "mural",
			},
		},
		{
			Label: "Social & Networking",
			Keywords: []string{
				"social", "mixer", "meetup", "meet up", "networking", "hangout", "hang out",
				"party", "games night", "game night", "trivia", "karaoke", "bbq", "barbecue",
				"picnic", "potluck", "mingle", "icebreaker", "welcome week", "orientation",
				"frosh", "club fair", "clubs fair", "new friends", "make friends", "social night",
				"pub night", "movie night", "formal", "gala",
			},
		},
		{
			Label: "Sports & Fitness",
			Keywords: []string{
				"sport", "sports", "fitness", "gym", "workout", "training", "run", "running",
				"run club", "marathon", "5k", "10k", "basketball", "soccer", "football",
				"volleyball", "hockey", "tennis", "badminton", "swimming", "swim", "cycling",
				"climbing", "bouldering", "hiking", "hike", "intramural", "intramurals",
				"varsity", "tournament", "athletics", "crossfit", "zumba", "dance fitness",
				"martial arts", "boxing", "ultimate frisbee", "rowing", "ski", "skiing",
			},
		},
		{
			Label: "Technology & Innovation",
			Keywords: []string{
				"technology", "tech", "innovation", "coding", "code", "programming", "developer",
				"software", "hardware", "engineering", "ai", "artificial intelligence",
				"machine learning", "data science", "data", "analytics", "cybersecurity",
				"security", "cloud", "robotics", "robot", "web development", "app development",
				"blockchain", "crypto", "python", "javascript", "github", "open source", "vr",
				"ar", "virtual reality", "3d printing", "maker", "makerspace", "iot", "startup tech",
			},
		},
		{
			Label: "Volunteering & Community Service",
			Keywords: []string{
				"volunteer", "volunteers", "volunteering", "community service", "service",
				"charity", "fundraiser", "fundraising", "donation", "donate", "food drive",
				"food bank", "clothing drive", "blood drive", "outreach", "nonprofit",
				"non profit", "give back", "giving back", "community", "shelter", "mentoring",
				"habitat", "cleanup", "clean up", "tutoring kids", "service learning",
			},
		},
		{
			Label: "Entrepreneurship & Startups",
			Keywords: []string{
				"entrepreneur", "entrepreneurs", "entrepreneurship", "startup", "startups",
				"start up", "founder", "founders", "venture", "venture capital", "vc", "pitch",
				"pitch competition", "pitch night", "incubator", "accelerator", "business plan",
				"business", "small business", "investor", "investors", "angel", "funding",
				"side hustle", "product", "launch", "innovation challenge", "case competition",
			},
		},
		{
			Label: "Cultural & Diversity",
			Keywords: []string{
				"culture", "cultural", "diversity", "inclusion", "equity", "dei",
				"multicultural", "international", "international students", "heritage",
				"heritage month", "black history", "pride", "lgbtq", "lgbtq+", "queer",
				"indigenous", "first nations", "lunar new year", "diwali", "eid", "ramadan",
				"hanukkah", "festival", "language exchange", "global", "identity", "allyship",
				"anti racism", "womens", "women in", "caribbean", "african", "asian", "latin",
				"latinx", "hispanic", "south asian",
			},
		},
		{
			Label: "Leadership & Personal Growth",
			Keywords: []string{
				"leadership", "leader", "leaders", "personal growth", "personal development",
				"self improvement", "growth", "public speaking", "toastmasters", "confidence",
				"goal setting", "time management", "productivity", "student government",
				"student council", "executive", "team building", "communication skills",
				"emotional intelligence", "coaching", "life skills", "financial literacy",
				"budgeting", "habits",
			},
		},
		{
			Label: "Environmental & Sustainability",
			Keywords: []string{
				"environment", "environmental", "sustainability", "sustainable", "climate",
				"climate change", "green", "eco", "recycling", "recycle", "zero waste",
				"compost", "composting", "garden", "gardening", "community garden", "nature",
				"conservation", "earth day", "clean energy", "renewable", "solar", "tree planting",
				"plastic free", "thrift", "thrifting", "bike", "biodiversity", "wildlife",
			},
		},
		{
			Label: "Food & Dining",
			Keywords: []string{
				"food", "foodie", "dining", "dinner", "lunch", "breakfast", "brunch", "snacks",
				"free food", "pizza", "cooking", "cooking class", "baking", "bake sale", "chef",
				"recipe", "tasting", "food truck", "coffee", "tea", "cafe", "restaurant", "potluck",
				"food festival", "dessert", "vegan", "vegetarian",
			},
		},
		{
			Label: "Music & Performance",
			Keywords: []string{
				"music", "musical", "musician", "concert", "concerts", "live music", "band",
				"choir", "orchestra", "jazz", "open mic", "dj", "singing", "sing", "acapella",
				"a cappella", "recital", "performance", "perform", "dance", "dancing", "showcase",
				"talent show", "comedy", "stand up", "theatre", "theater", "drama", "play",
				"musical theatre", "hip hop", "rap", "battle of the bands",
			},
		},
		{
			Label: "Gaming & Esports",
			Keywords: []string{
				"gaming", "gamer", "gamers", "game", "games", "video game", "video games",
				"esports", "e sports", "lan", "lan party", "console", "nintendo", "playstation",
				"xbox", "league of legends", "valorant", "fortnite", "minecraft", "smash",
				"board games", "board game", "tabletop", "dnd", "dungeons and dragons",
				"game jam", "twitch", "speedrun",
			},
		},
		{
			Label: "Faith & Spirituality",
			Keywords: []string{
				"faith", "spiritual", "spirituality", "prayer", "pray", "worship", "church",
				"mosque", "temple", "synagogue", "chapel", "bible", "bible study", "quran",
				"torah", "meditation circle", "interfaith", "ministry", "fellowship night",
				"christian", "muslim", "jewish", "hindu", "sikh", "buddhist", "religion",
				"religious", "chaplain",
			},
		},
		{
			Label: "Competitions & Hackathons",
			Keywords: []string{
				"competition", "competitions", "compete", "contest", "challenge", "hackathon",
				"hackathons", "hack", "hack night", "case competition", "pitch competition",
				"prize", "prizes", "award", "awards", "cash prize", "trophy", "olympiad",
				"ctf", "capture the flag", "coding challenge", "datathon", "ideathon",
				"design challenge", "debate", "debate tournament", "quiz", "finals round",
			},
		},
	}
}

// DefaultTaxonomy returns the compiled built-in taxonomy
func DefaultTaxonomy() *Taxonomy {
	return NewTaxonomy(DefaultEntries())
}
