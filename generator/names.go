package generator

// Categories assigned to synthetic brands.
var Categories = []string{
	"fashion", "sportswear", "beauty", "food", "tech", "home",
	"accessories", "jewelry", "wellness", "pets", "footwear",
}

// SeedBrand is a real brand that is always present in a generated dataset
type SeedBrand struct {
	Name     string
	Category string
}

// SeedBrands are added before any synthetic names so common searches resolve.
var SeedBrands = []SeedBrand{
	{"Zara", "fashion"}, {"H&M", "fashion"}, {"Calvin Klein", "fashion"},
	{"Uniqlo", "fashion"}, {"Shein", "fashion"}, {"Everlane", "fashion"},
	{"Warby Parker", "fashion"}, {"Allbirds", "fashion"}, {"Patagonia", "fashion"},
	{"Nike", "sportswear"}, {"Adidas", "sportswear"}, {"Puma", "sportswear"},
	{"Under Armour", "sportswear"}, {"Lululemon", "sportswear"}, {"Gymshark", "sportswear"},
	{"Glossier", "beauty"}, {"Fenty Beauty", "beauty"}, {"Drunk Elephant", "beauty"},
	{"The Ordinary", "beauty"}, {"Mamaearth", "beauty"}, {"Nykaa", "beauty"},
	{"Sugar Cosmetics", "beauty"}, {"Apple", "tech"}, {"Samsung", "tech"},
	{"OnePlus", "tech"}, {"Nothing", "tech"}, {"Boat", "tech"},
	{"Noise", "tech"}, {"Licious", "food"}, {"Country Delight", "food"},
	{"Blue Tokai", "food"}, {"Sleepy Owl", "food"}, {"Wakefit", "home"},
	{"Sleepyhead", "home"}, {"Lenskart", "eyewear"}, {"Titan Eye+", "eyewear"},
	{"FirstCry", "kids"}, {"Bewakoof", "fashion"}, {"The Souled Store", "fashion"},
	{"Snitch", "fashion"}, {"Rare Rabbit", "fashion"},
}

// competitorPools lists well-known competitors per category. Categories
// without a pool get generic competitor names.
var competitorPools = map[string][]string{
	"fashion":     {"Zara", "H&M", "Uniqlo", "Gap", "Forever 21", "Urban Outfitters"},
	"sportswear":  {"Nike", "Adidas", "Puma", "Under Armour", "Reebok", "New Balance"},
	"beauty":      {"Glossier", "Fenty Beauty", "Sephora Collection", "MAC", "NARS"},
	"food":        {"HelloFresh", "Blue Apron", "Factor", "Green Chef"},
	"tech":        {"Apple", "Samsung", "Google", "Microsoft", "Sony"},
	"home":        {"Casper", "Purple", "Sleep Number", "Tempur-Pedic"},
	"accessories": {"Away", "Samsonite", "Travelpro", "Rimowa"},
	"jewelry":     {"Mejuri", "Catbird", "Tiffany & Co", "Pandora"},
	"wellness":    {"Peloton", "NordicTrack", "Bowflex", "Echelon"},
	"pets":        {"Chewy", "BarkBox", "Petco", "PetSmart"},
}

var genericCompetitors = []string{"Competitor A", "Competitor B", "Competitor C"}

var prefixes = []string{
	"Urban", "Mystic", "Royal", "Blue", "Red", "Green", "Golden", "Silver", "Iron", "Velvet",
	"Silk", "Cotton", "Pure", "Eco", "Terra", "Luna", "Solar", "Stellar", "Nova", "Rapid",
	"Swift", "Bold", "Wild", "Free", "Happy", "Joy", "Zen", "Vita", "Bio", "Organic",
	"Future", "Modern", "Classic", "Vintage", "Retro", "Neon", "Cyber", "Tech", "Smart", "Pro",
	"Max", "Ultra", "Prime", "Elite", "Grand", "Noble", "King", "Queen", "Star", "Moon",
	"Sun", "Sky", "Ocean", "River", "Mountain", "Forest", "Bloom", "Leaf", "Root", "Seed",
	"Fresh", "Clean", "Bright", "Dark", "Night", "Day", "Light", "Shadow", "Spark", "Glow",
	"Flow", "Wave", "Vibe", "Soul", "Spirit", "Mind", "Body", "Heart", "Life", "Love",
	"Dream", "Wish", "Hope", "Faith", "Trust", "Truth", "Wise", "Cool", "Hot", "Warm",
	"Soft", "Hard", "Smooth", "Rough", "Sharp", "Sweet", "Sour", "Spicy", "Bitter", "Salty",
}

var suffixes = []string{
	"ify", "ly", "hub", "lab", "co", "inc", "works", "box", "kart", "mart",
	"store", "shop", "zone", "space", "place", "world", "land", "planet", "verse", "sphere",
	"tech", "sys", "net", "web", "app", "soft", "ware", "bot", "ai", "gen",
	"flow", "wave", "sync", "link", "connect", "bridge", "gate", "way", "path", "road",
	"street", "ave", "lane", "drive", "ride", "run", "walk", "step", "jump", "fly",
	"wear", "gear", "fit", "style", "look", "mode", "trend", "chic", "vogue", "glam",
	"beauty", "skin", "care", "health", "well", "good", "fine", "best", "top", "peak",
	"craft", "art", "design", "studio", "maker", "smith", "forge", "build", "create", "make",
	"chef", "cook", "food", "eat", "drink", "sip", "bite", "taste", "flavor", "spice",
	"home", "house", "room", "living", "decor", "furnish", "bed", "bath", "kitchen", "garden",
}

var separators = []string{"", " ", "-", " & "}
