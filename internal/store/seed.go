package store

import "atelier-service/internal/models"

// Mock catalog data. Ids are unique across both partitions; archive pieces
// are the limited stock that Credits can be redeemed against.

func seedStandard() []models.Product {
	return []models.Product{
		{
			ID:             "p1",
			Name:           "Duskfall Trench",
			Description:    "Double-breasted trench in waxed charcoal cotton with a detachable storm flap.",
			Statement:      "Outerwear for hours the city forgets.",
			ImageRef:       "img/duskfall-trench.jpg",
			Price:          48000,
			OriginalPrice:  62000,
			Category:       models.CategoryOuterwear,
			StyleTag:       models.StyleMinimalist,
			EmotionTag:     models.EmotionSerene,
			Mood:           "quiet",
			ScarcityCount:  14,
			SocialCount:    312,
			FitConfidence:  88,
			LastMonthSales: 41,
		},
		{
			ID:            "p2",
			Name:          "Fracture Knit",
			Description:   "Deconstructed merino knit with asymmetric seams and a raw neckline.",
			Statement:     "Wear the break, not the mend.",
			ImageRef:      "img/fracture-knit.jpg",
			Price:         21500,
			Category:      models.CategoryApparel,
			StyleTag:      models.StyleAvantGarde,
			EmotionTag:    models.EmotionRebellious,
			Mood:          "restless",
			ScarcityCount: 32,
			SocialCount:   845,
			FitConfidence: 74,
		},
		{
			ID:             "p3",
			Name:           "Meridian Slip Dress",
			Description:    "Bias-cut silk slip in oxidized silver with hand-rolled hems.",
			Statement:      "Cut on the line between night and morning.",
			ImageRef:       "img/meridian-slip.jpg",
			Price:          33000,
			OriginalPrice:  41000,
			Category:       models.CategoryApparel,
			StyleTag:       models.StyleRomantic,
			EmotionTag:     models.EmotionElegant,
			Mood:           "luminous",
			ScarcityCount:  9,
			SocialCount:    1203,
			FitConfidence:  91,
			LastMonthSales: 67,
		},
		{
			ID:            "p4",
			Name:          "Static Runner",
			Description:   "Low-profile runner in abraded suede with a gum rubber sole.",
			Statement:     "Noise-cancelling for the feet.",
			ImageRef:      "img/static-runner.jpg",
			Price:         17800,
			Category:      models.CategoryFootwear,
			StyleTag:      models.StyleStreet,
			EmotionTag:    models.EmotionPlayful,
			Mood:          "restless",
			ScarcityCount: 58,
			SocialCount:   2210,
			FitConfidence: 82,
		},
		{
			ID:             "p5",
			Name:           "Ledger Derby",
			Description:    "Hand-welted derby in museum calf, stitched on a vintage last.",
			Statement:      "An entry that balances any outfit.",
			ImageRef:       "img/ledger-derby.jpg",
			Price:          52000,
			Category:       models.CategoryFootwear,
			StyleTag:       models.StyleClassic,
			EmotionTag:     models.EmotionElegant,
			Mood:           "grounded",
			ScarcityCount:  21,
			SocialCount:    489,
			FitConfidence:  95,
			LastMonthSales: 12,
		},
		{
			ID:            "p6",
			Name:          "Cipher Tote",
			Description:   "Structured tote in vegetable-tanned leather with a magnetic spine closure.",
			Statement:     "Carries everything, admits nothing.",
			ImageRef:      "img/cipher-tote.jpg",
			Price:         28500,
			Category:      models.CategoryAccessories,
			StyleTag:      models.StyleMinimalist,
			EmotionTag:    models.EmotionSerene,
			Mood:          "quiet",
			ScarcityCount: 40,
			SocialCount:   678,
			FitConfidence: 100,
		},
		{
			ID:             "p7",
			Name:           "Voltaic Cuff",
			Description:    "Brushed titanium cuff with an interrupted circuit engraving.",
			Statement:      "Current runs through everything you touch.",
			ImageRef:       "img/voltaic-cuff.jpg",
			Price:          19000,
			OriginalPrice:  24000,
			Category:       models.CategoryJewelry,
			StyleTag:       models.StyleAvantGarde,
			EmotionTag:     models.EmotionBold,
			Mood:           "electric",
			ScarcityCount:  17,
			SocialCount:    934,
			FitConfidence:  100,
			LastMonthSales: 29,
		},
		{
			ID:            "p8",
			Name:          "Parallax Parka",
			Description:   "Three-layer shell parka with taped seams and a stowable hood.",
			Statement:     "Weather is a matter of perspective.",
			ImageRef:      "img/parallax-parka.jpg",
			Price:         39500,
			Category:      models.CategoryOuterwear,
			StyleTag:      models.StyleStreet,
			EmotionTag:    models.EmotionBold,
			Mood:          "electric",
			ScarcityCount: 26,
			SocialCount:   1560,
			FitConfidence: 79,
			IsPreOrder:    true,
		},
		{
			ID:            "p9",
			Name:          "Halcyon Scarf",
			Description:   "Oversized cashmere scarf dip-dyed in a fading horizon gradient.",
			Statement:     "A soft edge for hard seasons.",
			ImageRef:      "img/halcyon-scarf.jpg",
			Price:         12500,
			Category:      models.CategoryAccessories,
			StyleTag:      models.StyleRomantic,
			EmotionTag:    models.EmotionSerene,
			Mood:          "luminous",
			ScarcityCount: 75,
			SocialCount:   402,
			FitConfidence: 100,
		},
		{
			ID:             "p10",
			Name:           "Grammar Blazer",
			Description:    "Single-breasted blazer in high-twist wool with hand-padded lapels.",
			Statement:      "Structure you can speak in.",
			ImageRef:       "img/grammar-blazer.jpg",
			Price:          45500,
			Category:       models.CategoryApparel,
			StyleTag:       models.StyleClassic,
			EmotionTag:     models.EmotionElegant,
			Mood:           "grounded",
			ScarcityCount:  19,
			SocialCount:    721,
			FitConfidence:  86,
			LastMonthSales: 8,
		},
	}
}

func seedArchive() []models.Product {
	return []models.Product{
		{
			ID:            "a1",
			Name:          "Archive No. 04 Opera Coat",
			Description:   "Floor-length opera coat from the fourth collection, re-lined in blackout silk.",
			Statement:     "Some exits deserve a longer shadow.",
			ImageRef:      "img/archive-opera-coat.jpg",
			Price:         98000,
			Category:      models.CategoryOuterwear,
			StyleTag:      models.StyleAvantGarde,
			EmotionTag:    models.EmotionBold,
			Mood:          "electric",
			ScarcityCount: 3,
			SocialCount:   4100,
			FitConfidence: 70,
		},
		{
			ID:            "a2",
			Name:          "Archive Mirror Loafer",
			Description:   "Runway loafer with a mirrored steel heel cap, worn once under lights.",
			Statement:     "Every step reflects on you.",
			ImageRef:      "img/archive-mirror-loafer.jpg",
			Price:         61000,
			Category:      models.CategoryFootwear,
			StyleTag:      models.StyleAvantGarde,
			EmotionTag:    models.EmotionRebellious,
			Mood:          "restless",
			ScarcityCount: 2,
			SocialCount:   2890,
			FitConfidence: 65,
		},
		{
			ID:            "a3",
			Name:          "Archive Meteor Brooch",
			Description:   "One of nine brooches cast around a sliver of iron meteorite.",
			Statement:     "Jewelry with a prior orbit.",
			ImageRef:      "img/archive-meteor-brooch.jpg",
			Price:         74500,
			Category:      models.CategoryJewelry,
			StyleTag:      models.StyleClassic,
			EmotionTag:    models.EmotionElegant,
			Mood:          "luminous",
			ScarcityCount: 1,
			SocialCount:   5230,
			FitConfidence: 100,
		},
		{
			ID:            "a4",
			Name:          "Archive Monsoon Shirt",
			Description:   "Hand-pleated shirt from the monsoon capsule, dyed in three rains.",
			Statement:     "Weathered by design.",
			ImageRef:      "img/archive-monsoon-shirt.jpg",
			Price:         43000,
			Category:      models.CategoryApparel,
			StyleTag:      models.StyleRomantic,
			EmotionTag:    models.EmotionSerene,
			Mood:          "quiet",
			ScarcityCount: 5,
			SocialCount:   1975,
			FitConfidence: 77,
		},
		{
			ID:            "a5",
			Name:          "Archive Ballast Belt",
			Description:   "Bridle-leather belt with a counterweighted brass buckle, final production run.",
			Statement:     "Holds more than a silhouette together.",
			ImageRef:      "img/archive-ballast-belt.jpg",
			Price:         29500,
			Category:      models.CategoryAccessories,
			StyleTag:      models.StyleMinimalist,
			EmotionTag:    models.EmotionBold,
			Mood:          "grounded",
			ScarcityCount: 4,
			SocialCount:   1120,
			FitConfidence: 100,
		},
	}
}
