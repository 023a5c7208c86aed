package catalog

// Rice lists the loose rice varieties sold by weight.
var Rice = []Product{
	{
		ID:          "ponni-rice",
		Name:        "Ponni Rice",
		TamilName:   "பொன்னி அரிசி",
		Description: "Everyday South Indian staple, soft and aromatic when cooked.",
		PackSizes:   []string{"1kg", "5kg", "10kg", "25kg"},
		Category:    CategoryRice,
		Image:       "rice-ponni",
	},
	{
		ID:          "basmati-rice",
		Name:        "Basmati Rice",
		TamilName:   "பாஸ்மதி அரிசி",
		Description: "Long-grain aromatic rice for biryani and special occasions.",
		PackSizes:   []string{"1kg", "5kg", "10kg"},
		Category:    CategoryRice,
		Image:       "rice-basmati",
	},
	{
		ID:          "brown-rice",
		Name:        "Brown Rice",
		TamilName:   "கைக்குத்தல் அரிசி",
		Description: "Unpolished whole-grain rice, rich in fibre and nutrients.",
		PackSizes:   []string{"1kg", "5kg"},
		Category:    CategoryRice,
		Image:       "rice-brown",
	},
	{
		ID:          "black-rice",
		Name:        "Black Rice",
		TamilName:   "கருப்பு கவுனி",
		Description: "Heritage karuppu kavuni rice, nutty flavour and deep colour.",
		PackSizes:   []string{"500g", "1kg"},
		Category:    CategoryRice,
		Image:       "rice-black",
	},
	{
		ID:          "red-rice",
		Name:        "Red Rice",
		TamilName:   "சிவப்பு அரிசி",
		Description: "Traditional red rice with earthy taste, ideal for kanji.",
		PackSizes:   []string{"1kg", "5kg"},
		Category:    CategoryRice,
		Image:       "rice-red",
	},
	{
		ID:          "idly-rice",
		Name:        "Idly Rice",
		TamilName:   "இட்லி அரிசி",
		Description: "Parboiled short-grain rice for soft idlys and crisp dosas.",
		PackSizes:   []string{"5kg", "10kg", "25kg"},
		Category:    CategoryRice,
		Image:       "rice-idly",
	},
	{
		ID:          "white-ponni",
		Name:        "White Ponni",
		TamilName:   "வெள்ளை பொன்னி",
		Description: "Polished white ponni, the daily-meal favourite across Salem.",
		PackSizes:   []string{"5kg", "10kg", "25kg", "75kg bag"},
		Category:    CategoryRice,
		Image:       "white-ponni",
	},
	{
		ID:          "bpt-ponni",
		Name:        "BPT Ponni",
		Description: "Fine-grain BPT variety, light on the stomach, cooks fluffy.",
		PackSizes:   []string{"10kg", "25kg", "75kg bag"},
		Category:    CategoryRice,
		Image:       "bpt-ponni",
	},
	{
		ID:          "dlx-ponni",
		Name:        "DLX Ponni",
		Description: "Deluxe-grade ponni for hotels and bulk kitchens.",
		PackSizes:   []string{"25kg", "75kg bag"},
		Category:    CategoryRice,
		Image:       "dlx-ponni",
	},
	{
		ID:          "nei-kichadi",
		Name:        "Nei Kichadi",
		TamilName:   "நெய் கிச்சடி",
		Description: "Short pearly grains suited to pongal and kichadi.",
		PackSizes:   []string{"5kg", "10kg", "25kg"},
		Category:    CategoryRice,
		Image:       "nei-kichadi",
	},
	{
		ID:          "millets",
		Name:        "Millets",
		TamilName:   "சிறுதானியங்கள்",
		Description: "Assorted native millets: ragi, thinai, varagu and more.",
		PackSizes:   []string{"500g", "1kg"},
		Category:    CategoryRice,
		Image:       "millets",
	},
}

// PremiumBrands lists the branded bagged rice lines the shop stocks.
var PremiumBrands = []Product{
	{
		ID:          "malgova-malligai",
		Name:        "Malgova Malligai",
		TamilName:   "மால்கோவா மல்லிகை",
		Description: "Premium malligai ponni from the Malgova mill.",
		PackSizes:   []string{"25kg", "75kg bag"},
		Category:    CategoryPremiumBrand,
		Image:       "malgova-malligai",
	},
	{
		ID:          "malgova-kichadi",
		Name:        "Malgova Kichadi",
		TamilName:   "மால்கோவா கிச்சடி",
		Description: "Malgova brand kichadi rice, consistent grain quality.",
		PackSizes:   []string{"25kg", "75kg bag"},
		Category:    CategoryPremiumBrand,
		Image:       "malgova-kichadi",
	},
	{
		ID:          "rettaikili-kolam",
		Name:        "Rettaikili Kolam",
		TamilName:   "ரெட்டைக்கிளி கோலம்",
		Description: "Rettaikili brand kolam rice, aged for better taste.",
		PackSizes:   []string{"25kg", "75kg bag"},
		Category:    CategoryPremiumBrand,
		Image:       "rettaikili-kolam",
	},
	{
		ID:          "rettaikili-ponni",
		Name:        "Rettaikili Ponni",
		TamilName:   "ரெட்டைக்கிளி பொன்னி",
		Description: "Rettaikili brand ponni, trusted household bag.",
		PackSizes:   []string{"25kg", "75kg bag"},
		Category:    CategoryPremiumBrand,
		Image:       "rettaikili-ponni",
	},
	{
		ID:          "cherry-brand",
		Name:        "Cherry Brand",
		Description: "Cherry brand boiled rice, popular with mess kitchens.",
		PackSizes:   []string{"25kg", "75kg bag"},
		Category:    CategoryPremiumBrand,
		Image:       "cherry-brand",
	},
	{
		ID:          "double-deer",
		Name:        "Double Deer",
		Description: "Double Deer brand ponni, steady favourite for decades.",
		PackSizes:   []string{"25kg", "75kg bag"},
		Category:    CategoryPremiumBrand,
		Image:       "double-deer",
	},
	{
		ID:          "royal-bullet",
		Name:        "Royal Bullet",
		Description: "Royal Bullet brand raw rice for bulk buyers.",
		PackSizes:   []string{"25kg", "75kg bag"},
		Category:    CategoryPremiumBrand,
		Image:       "royal-bullet",
	},
}

// Grocery lists the staples sold alongside rice.
var Grocery = []Product{
	{
		ID:          "wheat-flour",
		Name:        "Wheat Flour",
		TamilName:   "கோதுமை மாவு",
		Description: "Stone-ground atta for soft chapatis.",
		PackSizes:   []string{"1kg", "5kg", "10kg"},
		Category:    CategoryGrocery,
		Image:       "wheat-flour",
	},
	{
		ID:          "edible-oil",
		Name:        "Edible Oil",
		TamilName:   "சமையல் எண்ணெய்",
		Description: "Sunflower, groundnut and gingelly oils in sealed packs.",
		PackSizes:   []string{"500ml", "1 liter", "5 liter"},
		Category:    CategoryGrocery,
		Image:       "edible-oil",
	},
	{
		ID:          "sugar",
		Name:        "Sugar",
		TamilName:   "சர்க்கரை",
		Description: "Refined white sugar, fine crystal grade.",
		PackSizes:   []string{"1kg", "5kg", "25kg"},
		Category:    CategoryGrocery,
		Image:       "sugar",
	},
	{
		ID:          "groceries",
		Name:        "Daily Groceries",
		TamilName:   "மளிகை பொருட்கள்",
		Description: "Dals, spices, tamarind and other everyday provisions.",
		PackSizes:   []string{"250g", "500g", "1kg"},
		Category:    CategoryGrocery,
		Image:       "groceries",
	},
}

// Benefits feeds the "Why Choose Us?" section on the home page.
var Benefits = []Benefit{
	{
		Title:       "Free Delivery",
		Description: "Free home delivery within 10 km of our shop.",
		Icon:        "truck",
	},
	{
		Title:       "Quality Grains",
		Description: "Hand-picked varieties sourced directly from mills.",
		Icon:        "award",
	},
	{
		Title:       "Quick Service",
		Description: "Same-day dispatch for orders placed before noon.",
		Icon:        "zap",
	},
	{
		Title:       "Order by Phone",
		Description: "Call us and your order is on its way.",
		Icon:        "phone",
	},
	{
		Title:       "WhatsApp Orders",
		Description: "Send your list on WhatsApp, we handle the rest.",
		Icon:        "message-circle",
	},
}
