package taxonomy

import "diecast/internal/model"

// Default returns the production taxonomy.
func Default() *Taxonomy {
	return MustNew(DefaultConfig())
}

// DefaultConfig returns the static series and brand tables.
//
// Several brands legitimately appear in more than one series (Ford is both
// a rally and an american_muscle marque); SeriesPriority makes the
// resolution order explicit instead of depending on map iteration.
func DefaultConfig() Config {
	return Config{
		SeriesPriority: []string{
			"supercars",
			"rally",
			"american_muscle",
			"suv_trucks",
			"motorcycle",
			"vans",
			"convertibles",
			"hot_roads",
		},
		CategorySeries: map[model.Category][]string{
			model.CategoryMainline: {
				"rally",
				"supercars",
				"american_muscle",
				"suv_trucks",
				"vans",
				"motorcycle",
				"convertibles",
				"hot_roads",
			},
			model.CategoryPremium: {
				"hw_exotics",
				"team_transport",
				"car_culture",
				"fast_furious",
				"boulevard",
				"art_cars",
			},
		},
		SeriesBrands: map[string][]Brand{
			"rally": {
				{ID: "audi", DisplayName: "Audi"},
				{ID: "bmw", DisplayName: "BMW"},
				{ID: "citroen", DisplayName: "Citroen"},
				{ID: "datsun", DisplayName: "Datsun"},
				{ID: "ford", DisplayName: "Ford"},
				{ID: "lancia", DisplayName: "Lancia"},
				{ID: "mazda", DisplayName: "Mazda"},
				{ID: "mitsubishi", DisplayName: "Mitsubishi"},
				{ID: "nissan", DisplayName: "Nissan"},
				{ID: "opel", DisplayName: "Opel"},
				{ID: "peugeot", DisplayName: "Peugeot"},
				{ID: "subaru", DisplayName: "Subaru"},
				{ID: "toyota", DisplayName: "Toyota"},
				{ID: "volkswagen", DisplayName: "Volkswagen"},
				{ID: "volvo", DisplayName: "Volvo"},
			},
			"supercars": {
				{ID: "aston_martin", DisplayName: "Aston Martin"},
				{ID: "automobili_pininfarina", DisplayName: "Automobili Pininfarina"},
				{ID: "bentley", DisplayName: "Bentley"},
				{ID: "bugatti", DisplayName: "Bugatti"},
				{ID: "corvette", DisplayName: "Corvette"},
				{ID: "ferrari", DisplayName: "Ferrari"},
				{ID: "ford_gt", DisplayName: "Ford GT"},
				{ID: "koenigsegg", DisplayName: "Koenigsegg"},
				{ID: "lamborghini", DisplayName: "Lamborghini"},
				{ID: "lucid_air", DisplayName: "Lucid Air"},
				{ID: "maserati", DisplayName: "Maserati"},
				{ID: "mazda_787b", DisplayName: "Mazda 787B"},
				{ID: "mclaren", DisplayName: "McLaren"},
				{ID: "pagani", DisplayName: "Pagani"},
				{ID: "porsche", DisplayName: "Porsche"},
				{ID: "rimac", DisplayName: "Rimac"},
			},
			"american_muscle": {
				{ID: "barracuda", DisplayName: "Barracuda"},
				{ID: "buick", DisplayName: "Buick"},
				{ID: "cadillac", DisplayName: "Cadillac"},
				{ID: "camaro", DisplayName: "Camaro"},
				{ID: "challenger", DisplayName: "Challenger"},
				{ID: "charger", DisplayName: "Charger"},
				{ID: "chevelle", DisplayName: "Chevelle"},
				{ID: "chevy", DisplayName: "Chevy"},
				{ID: "chevrolet", DisplayName: "Chevrolet"},
				{ID: "chrysler", DisplayName: "Chrysler"},
				{ID: "cougar", DisplayName: "Cougar"},
				{ID: "dodge", DisplayName: "Dodge"},
				{ID: "el_camino", DisplayName: "El Camino"},
				{ID: "firebird", DisplayName: "Firebird"},
				{ID: "ford", DisplayName: "Ford"},
				{ID: "gto", DisplayName: "GTO"},
				{ID: "impala", DisplayName: "Impala"},
				{ID: "lincoln", DisplayName: "Lincoln"},
				{ID: "mercury", DisplayName: "Mercury"},
				{ID: "mustang", DisplayName: "Mustang"},
				{ID: "nova", DisplayName: "Nova"},
				{ID: "oldsmobile", DisplayName: "Oldsmobile"},
				{ID: "plymouth", DisplayName: "Plymouth"},
				{ID: "pontiac", DisplayName: "Pontiac"},
				{ID: "super_bee", DisplayName: "Super Bee"},
				{ID: "thunderbird", DisplayName: "Thunderbird"},
			},
			"suv_trucks": {
				{ID: "audi", DisplayName: "Audi"},
				{ID: "bmw", DisplayName: "BMW"},
				{ID: "chevrolet", DisplayName: "Chevrolet"},
				{ID: "dodge", DisplayName: "Dodge"},
				{ID: "ford", DisplayName: "Ford"},
				{ID: "gmc", DisplayName: "GMC"},
				{ID: "honda", DisplayName: "Honda"},
				{ID: "hummer", DisplayName: "Hummer"},
				{ID: "jeep", DisplayName: "Jeep"},
				{ID: "land_rover", DisplayName: "Land Rover"},
				{ID: "mercedes", DisplayName: "Mercedes"},
				{ID: "nissan", DisplayName: "Nissan"},
				{ID: "porsche", DisplayName: "Porsche"},
				{ID: "ram", DisplayName: "Ram"},
				{ID: "toyota", DisplayName: "Toyota"},
				{ID: "volkswagen", DisplayName: "Volkswagen"},
			},
			"vans": {
				{ID: "chevrolet", DisplayName: "Chevrolet"},
				{ID: "chrysler", DisplayName: "Chrysler"},
				{ID: "dodge", DisplayName: "Dodge"},
				{ID: "ford", DisplayName: "Ford"},
				{ID: "honda", DisplayName: "Honda"},
				{ID: "mercedes", DisplayName: "Mercedes"},
				{ID: "nissan", DisplayName: "Nissan"},
				{ID: "toyota", DisplayName: "Toyota"},
				{ID: "volkswagen", DisplayName: "Volkswagen"},
			},
			"motorcycle": {
				{ID: "bmw", DisplayName: "BMW"},
				{ID: "ducati", DisplayName: "Ducati"},
				{ID: "harley_davidson", DisplayName: "Harley Davidson"},
				{ID: "honda", DisplayName: "Honda"},
				{ID: "indian", DisplayName: "Indian"},
				{ID: "kawasaki", DisplayName: "Kawasaki"},
				{ID: "suzuki", DisplayName: "Suzuki"},
				{ID: "triumph", DisplayName: "Triumph"},
				{ID: "yamaha", DisplayName: "Yamaha"},
			},
			"convertibles": {
				{ID: "abarth", DisplayName: "Abarth"},
				{ID: "acura", DisplayName: "Acura"},
				{ID: "alfa_romeo", DisplayName: "Alfa Romeo"},
				{ID: "daihatsu", DisplayName: "Daihatsu"},
				{ID: "fiat", DisplayName: "Fiat"},
				{ID: "infiniti", DisplayName: "Infiniti"},
				{ID: "jaguar", DisplayName: "Jaguar"},
				{ID: "lexus", DisplayName: "Lexus"},
				{ID: "lotus", DisplayName: "Lotus"},
				{ID: "mini", DisplayName: "Mini"},
				{ID: "renault", DisplayName: "Renault"},
			},
			"hot_roads": {},
		},
	}
}
