package catalog

import "retrokick/internal/domain/entity"

var clubSizes = []string{"XS", "S", "M", "L", "XL"}
var retroSizes = []string{"S", "M", "L", "XL"}

// seedProducts is the shipped jersey catalog.
var seedProducts = []entity.Product{
	{
		ID:          "1",
		Name:        "Barcelona Home 2025-26",
		Price:       6999,
		Category:    entity.CategoryClub,
		Team:        "Barcelona",
		Year:        "2025",
		Image:       "/jerseys/barca_front.png",
		BackImage:   "/jerseys/barca_back.png",
		Description: "New season Blaugrana home jersey featuring the iconic stripes with modern performance fabric.",
		Sizes:       clubSizes,
		Stock:       40,
	},
	{
		ID:          "2",
		Name:        "Real Madrid Home 2025-26",
		Price:       7499,
		Category:    entity.CategoryClub,
		Team:        "Real Madrid",
		Year:        "2025",
		Image:       "/jerseys/madrid_front.png",
		Description: "Pure white excellence for the new season. Champions League glory awaits.",
		Sizes:       clubSizes,
		Stock:       35,
	},
	{
		ID:          "3",
		Name:        "Manchester United 2025-26",
		Price:       6999,
		Category:    entity.CategoryClub,
		Team:        "Manchester United",
		Year:        "2025",
		Image:       "/jerseys/united_front.png",
		Description: "Iconic red devil jersey for the new era at Old Trafford.",
		Sizes:       clubSizes,
		Stock:       50,
	},
	{
		ID:          "4",
		Name:        "Arsenal Third Kit 2025-26",
		Price:       6499,
		Category:    entity.CategoryClub,
		Team:        "Arsenal",
		Year:        "2025",
		Image:       "/jerseys/arsenal_front.png",
		Description: "Bold new third kit featuring premium tech fleece for ultimate comfort.",
		Sizes:       clubSizes,
		Stock:       25,
	},
	{
		ID:          "5",
		Name:        "AC Milan 2006-07 Retro",
		Price:       8999,
		Category:    entity.CategoryRetro,
		Team:        "AC Milan",
		Year:        "2007",
		Image:       "/jerseys/milan_retro_front.png",
		Description: "The legendary jersey from Milan's 6th Champions League trophy. Featuring Kaká, Pirlo, and Seedorf.",
		Sizes:       retroSizes,
		Stock:       12,
		Limited:     true,
	},
	{
		ID:          "6",
		Name:        "England 2006 World Cup Retro",
		Price:       8499,
		Category:    entity.CategoryRetro,
		Team:        "England",
		Year:        "2006",
		Image:       "/jerseys/england_retro_front.png",
		Description: "Classic white shirt from Germany 2006. Beckham, Rooney, and Gerrard era.",
		Sizes:       retroSizes,
		Stock:       10,
		Limited:     true,
	},
	{
		ID:          "7",
		Name:        "Argentina 2025-26 Home",
		Price:       7999,
		Category:    entity.CategoryInternational,
		Team:        "Argentina",
		Year:        "2025",
		Image:       "/jerseys/argentina_front.png",
		Description: "New season Albiceleste jersey. Continuing the legacy of World Cup champions.",
		Sizes:       clubSizes,
		Stock:       30,
	},
	{
		ID:          "8",
		Name:        "England 2025-26 Home",
		Price:       7499,
		Category:    entity.CategoryInternational,
		Team:        "England",
		Year:        "2025",
		Image:       "/jerseys/england_front.png",
		Description: "Three Lions new home kit. Hope and glory for the upcoming tournaments.",
		Sizes:       clubSizes,
		Stock:       30,
	},
}
