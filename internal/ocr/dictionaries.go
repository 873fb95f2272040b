package ocr

// BrandEntry lists the keyword indicators for one brand. Declaration order
// matters: when two brands score identically, the first-declared wins.
type BrandEntry struct {
	Name       string
	Indicators []string
}

// KeywordEntry binds a set of keywords to a taxonomy identifier.
type KeywordEntry struct {
	ID       string
	Name     string
	Keywords []string
}

// Dictionaries holds the static keyword tables the extractor scans.
// Injected through the constructor so tests can use small fixtures.
type Dictionaries struct {
	Models     map[string][]string
	Brands     []BrandEntry
	Series     []KeywordEntry
	Categories []KeywordEntry
	Colors     []string
}

// DefaultDictionaries returns the production keyword tables.
func DefaultDictionaries() Dictionaries {
	return Dictionaries{
		Brands: []BrandEntry{
			// Supercars
			{Name: "FERRARI", Indicators: []string{"ferrari", "f40", "f50", "488", "portofino", "laferrari", "enzo"}},
			{Name: "LAMBORGHINI", Indicators: []string{"lamborghini", "lambo", "huracan", "aventador", "gallardo", "murcielago"}},
			{Name: "PORSCHE", Indicators: []string{"porsche", "911", "carrera", "turbo", "gt3", "cayman", "boxster"}},
			{Name: "MCLAREN", Indicators: []string{"mclaren", "720s", "650s", "p1", "570s"}},
			{Name: "BUGATTI", Indicators: []string{"bugatti", "veyron", "chiron"}},
			{Name: "PAGANI", Indicators: []string{"pagani", "zonda", "huayra"}},
			{Name: "KOENIGSEGG", Indicators: []string{"koenigsegg", "regera", "agera", "ccx"}},
			{Name: "ASTON MARTIN", Indicators: []string{"aston martin", "db11", "vantage", "dbs"}},
			// Rally
			{Name: "SUBARU", Indicators: []string{"subaru", "wrx", "sti", "impreza", "outback", "legacy"}},
			{Name: "MITSUBISHI", Indicators: []string{"mitsubishi", "evo", "evolution", "lancer", "eclipse"}},
			{Name: "TOYOTA", Indicators: []string{"toyota", "supra", "celica", "corolla", "yaris", "prius", "camry"}},
			{Name: "FORD", Indicators: []string{"ford", "focus", "fiesta", "mustang", "raptor", "f-150"}},
			{Name: "AUDI", Indicators: []string{"audi", "quattro", "rs4", "rs6", "tt", "a3", "a4", "r8"}},
			{Name: "BMW", Indicators: []string{"bmw", "m3", "m5", "x5", "i8", "z4"}},
			{Name: "VOLKSWAGEN", Indicators: []string{"volkswagen", "vw", "golf", "beetle", "jetta"}},
			// American muscle
			{Name: "CHEVROLET", Indicators: []string{"chevrolet", "chevy", "corvette", "camaro", "chevelle", "nova", "impala"}},
			{Name: "DODGE", Indicators: []string{"dodge", "challenger", "charger", "viper", "demon", "hellcat"}},
			{Name: "CHRYSLER", Indicators: []string{"chrysler", "pacifica"}},
			{Name: "PONTIAC", Indicators: []string{"pontiac", "firebird", "gto", "trans am"}},
			{Name: "BUICK", Indicators: []string{"buick", "grand national", "regal", "skylark"}},
			{Name: "CADILLAC", Indicators: []string{"cadillac", "escalade", "cts", "ats"}},
			// SUVs and trucks
			{Name: "JEEP", Indicators: []string{"jeep", "wrangler", "cherokee", "grand cherokee", "compass"}},
			{Name: "HUMMER", Indicators: []string{"hummer", "h1", "h2", "h3"}},
			{Name: "RAM", Indicators: []string{"ram", "1500", "2500", "3500", "rebel"}},
			{Name: "GMC", Indicators: []string{"gmc", "sierra", "yukon", "terrain"}},
			{Name: "LAND ROVER", Indicators: []string{"land rover", "defender", "discovery", "range rover"}},
			// Luxury
			{Name: "MERCEDES", Indicators: []string{"mercedes", "benz", "amg", "c-class", "e-class", "s-class"}},
			{Name: "LEXUS", Indicators: []string{"lexus", "lfa", "ls", "rx", "nx"}},
			{Name: "INFINITI", Indicators: []string{"infiniti", "g35", "g37", "q50", "q60"}},
			{Name: "ACURA", Indicators: []string{"acura", "nsx", "tsx", "tlx"}},
			// Motorcycles
			{Name: "HONDA", Indicators: []string{"honda", "cbr", "goldwing", "shadow"}},
			{Name: "YAMAHA", Indicators: []string{"yamaha", "r1", "r6", "mt", "fz"}},
			{Name: "KAWASAKI", Indicators: []string{"kawasaki", "ninja", "zx", "z1000"}},
			{Name: "SUZUKI", Indicators: []string{"suzuki", "gsxr", "hayabusa", "katana"}},
			{Name: "DUCATI", Indicators: []string{"ducati", "panigale", "monster", "diavel"}},
			{Name: "HARLEY DAVIDSON", Indicators: []string{"harley", "davidson", "sportster", "dyna", "touring"}},
		},
		Models: map[string][]string{
			"FERRARI":     {"F40", "F50", "488", "PORTOFINO", "LAFERRARI", "ENZO", "TESTAROSSA"},
			"LAMBORGHINI": {"HURACAN", "AVENTADOR", "GALLARDO", "MURCIELAGO", "DIABLO"},
			"FORD":        {"MUSTANG", "GT", "F-150", "RAPTOR", "FOCUS", "FIESTA", "BRONCO"},
			"CHEVROLET":   {"CORVETTE", "CAMARO", "CHEVELLE", "NOVA", "IMPALA", "SILVERADO"},
			"DODGE":       {"CHALLENGER", "CHARGER", "VIPER", "DEMON", "HELLCAT", "RAM"},
			"TOYOTA":      {"SUPRA", "CELICA", "COROLLA", "CAMRY", "PRIUS", "HILUX"},
			"BMW":         {"M3", "M5", "X5", "I8", "Z4", "3 SERIES", "5 SERIES"},
			"SUBARU":      {"WRX", "STI", "IMPREZA", "OUTBACK", "FORESTER", "LEGACY"},
		},
		Series: []KeywordEntry{
			{ID: "hw_exotics", Name: "HW EXOTICS", Keywords: []string{"hw exotics", "exotics"}},
			{ID: "team_transport", Name: "TEAM TRANSPORT", Keywords: []string{"team transport", "transport"}},
			{ID: "car_culture", Name: "CAR CULTURE", Keywords: []string{"car culture", "culture"}},
			{ID: "fast_furious", Name: "FAST & FURIOUS", Keywords: []string{"fast & furious", "fast and furious", "f&f"}},
			{ID: "boulevard", Name: "BOULEVARD", Keywords: []string{"boulevard"}},
			{ID: "art_cars", Name: "ART CARS", Keywords: []string{"art cars"}},
			{ID: "mainline", Name: "MAINLINE", Keywords: []string{"mainline", "basic", "regular"}},
			{ID: "premium", Name: "PREMIUM", Keywords: []string{"premium", "collector edition"}},
		},
		Categories: []KeywordEntry{
			{ID: "supercars", Name: "SUPERCARS", Keywords: []string{"supercar", "exotic", "sports car", "racing"}},
			{ID: "rally", Name: "RALLY", Keywords: []string{"rally", "wrc", "off-road", "dirt"}},
			{ID: "american_muscle", Name: "AMERICAN MUSCLE", Keywords: []string{"muscle", "american", "classic", "vintage"}},
			{ID: "suv_trucks", Name: "SUV TRUCKS", Keywords: []string{"suv", "truck", "pickup", "4x4", "off road"}},
			{ID: "motorcycle", Name: "MOTORCYCLE", Keywords: []string{"motorcycle", "bike", "motorbike", "chopper"}},
			{ID: "vans", Name: "VANS", Keywords: []string{"van", "minivan", "delivery"}},
			{ID: "convertibles", Name: "CONVERTIBLE", Keywords: []string{"convertible", "roadster", "cabriolet", "spyder"}},
		},
		Colors: []string{
			"RED", "BLUE", "GREEN", "YELLOW", "BLACK", "WHITE", "SILVER", "GOLD",
			"ORANGE", "PURPLE", "PINK", "BROWN", "GRAY", "GREY", "CHROME", "METALLIC",
			"MATTE", "PEARL", "COPPER", "BRONZE", "LIME", "MAGENTA", "CYAN",
		},
	}
}
