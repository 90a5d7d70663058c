package receipt

// defaultKnownMerchants lists major retail, restaurant, and gas-station
// brands as they tend to appear on receipt headers, lowercased. A line
// containing any of these is resolved to the brand name rather than
// taken verbatim, which survives the address/phone noise OCR mixes into
// header lines. Parsers copy this on construction; tests substitute
// their own list via WithKnownMerchants.
var defaultKnownMerchants = []string{
	// Retail
	"walmart",
	"target",
	"costco",
	"sams club",
	"kroger",
	"safeway",
	"albertsons",
	"publix",
	"aldi",
	"whole foods",
	"trader joe",
	"walgreens",
	"cvs",
	"rite aid",
	"home depot",
	"lowes",
	"best buy",
	"ikea",
	"dollar tree",
	"dollar general",
	"staples",
	"office depot",
	"petco",
	"petsmart",
	"amazon",

	// Restaurants
	"mcdonald",
	"burger king",
	"wendy",
	"taco bell",
	"chipotle",
	"subway",
	"starbucks",
	"dunkin",
	"pizza hut",
	"dominos",
	"papa john",
	"kfc",
	"chick-fil-a",
	"panera",
	"olive garden",
	"applebee",
	"chili's",
	"ihop",
	"denny",

	// Gas stations
	"shell",
	"chevron",
	"exxon",
	"mobil",
	"texaco",
	"sunoco",
	"marathon",
	"speedway",
	"circle k",
	"7-eleven",
	"wawa",
	"quiktrip",
}

// DefaultKnownMerchants returns a copy of the built-in brand list.
func DefaultKnownMerchants() []string {
	out := make([]string, len(defaultKnownMerchants))
	copy(out, defaultKnownMerchants)
	return out
}
