package populate

// Curated value pools for fixture synthesis. Combinations are randomized
// at generation time; uniqueness of names and ISBNs is enforced separately.

var firstNames = []string{
	"Evelyn", "Marcus", "Clara", "Julian", "Beatrice", "Theodore",
	"Margaret", "Vincent", "Eleanor", "Walter", "Iris", "Nathaniel",
	"Dorothy", "Sebastian", "Lillian", "Frederick", "Josephine", "Arthur",
	"Cecilia", "Edmund",
}

var lastNames = []string{
	"Marsh", "Whitfield", "Osborne", "Hale", "Carrington", "Bellamy",
	"Thorne", "Winslow", "Ashford", "Pemberton", "Graves", "Sinclair",
	"Hawthorne", "Merrick", "Lockwood", "Fairbanks", "Quill", "Radcliffe",
	"Stanton", "Vale",
}

var publisherNames = []string{
	"Harborlight Press", "Meridian House", "Copperfield Books",
	"Lantern & Quill", "Northgate Publishing", "Silverbirch Editions",
	"Foxglove Press", "Atlas Row Books", "Candlewick House",
	"Ironbridge Publishing", "Willow Lane Press", "Bluestone Books",
	"Greyhound Editions", "Paper Kite Press", "Longford House",
	"Summit & Vale", "Clearwater Press", "Oakhurst Publishing",
	"Driftwood Books", "Amberline Press",
}

var titleAdjectives = []string{
	"Silent", "Forgotten", "Crimson", "Distant", "Hollow", "Gilded",
	"Restless", "Hidden", "Burning", "Quiet", "Broken", "Endless",
	"Winter", "Paper", "Iron", "Midnight",
}

var titleNouns = []string{
	"River", "Garden", "Letters", "Harvest", "Voyage", "Orchard",
	"Lighthouse", "Cartographer", "Archive", "Meridian", "Season",
	"Inheritance", "Horizon", "Labyrinth", "Constellation", "Tide",
}

var genres = []string{
	"Fiction", "Mystery", "Science Fiction", "Biography", "History",
	"Poetry", "Travel", "Essays",
}

var languages = []string{
	"English", "English", "English", "French", "German", "Spanish",
}

var cities = []string{
	"London", "Boston", "Edinburgh", "Toronto", "Dublin", "Melbourne",
	"Portland", "Amsterdam",
}

var bioTemplates = []string{
	"Novelist and essayist known for quiet, closely observed prose.",
	"Former journalist turned full-time author.",
	"Writes at the intersection of memory and landscape.",
	"Award-winning author of short fiction and two novels.",
	"Spent a decade at sea before turning to writing.",
}

var descriptionTemplates = []string{
	"A sweeping story of family, loss, and unlikely reinvention.",
	"An intimate portrait of a town on the edge of change.",
	"A meditation on distance, belonging, and what gets left behind.",
	"A slow-burning mystery set over a single restless summer.",
	"A journey across borders, languages, and three generations.",
}
