package models

// Category is the primary product classification.
type Category string

const (
	CategoryApparel     Category = "Apparel"
	CategoryOuterwear   Category = "Outerwear"
	CategoryFootwear    Category = "Footwear"
	CategoryAccessories Category = "Accessories"
	CategoryJewelry     Category = "Jewelry"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryApparel,
	CategoryOuterwear,
	CategoryFootwear,
	CategoryAccessories,
	CategoryJewelry,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// StyleTag is the style-lens facet.
type StyleTag string

const (
	StyleMinimalist StyleTag = "Minimalist"
	StyleAvantGarde StyleTag = "Avant-Garde"
	StyleStreet     StyleTag = "Street"
	StyleClassic    StyleTag = "Classic"
	StyleRomantic   StyleTag = "Romantic"
)

// EmotionTag is the emotion-lens facet.
type EmotionTag string

const (
	EmotionBold       EmotionTag = "Bold"
	EmotionSerene     EmotionTag = "Serene"
	EmotionRebellious EmotionTag = "Rebellious"
	EmotionElegant    EmotionTag = "Elegant"
	EmotionPlayful    EmotionTag = "Playful"
)

// Partition identifies one of the two catalog stock lists.
type Partition string

const (
	PartitionStandard Partition = "standard"
	PartitionArchive  Partition = "archive"
)

// Product is an immutable catalog entry. Prices are in currency-agnostic
// minor units. OriginalPrice, when non-zero, is strictly greater than Price.
type Product struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Statement      string     `json:"statement"`
	ImageRef       string     `json:"image_ref"`
	Price          int64      `json:"price"`
	OriginalPrice  int64      `json:"original_price,omitempty"`
	Category       Category   `json:"category"`
	StyleTag       StyleTag   `json:"style_tag"`
	EmotionTag     EmotionTag `json:"emotion_tag"`
	Mood           string     `json:"mood"`
	ScarcityCount  int        `json:"scarcity_count"`
	SocialCount    int        `json:"social_count"`
	FitConfidence  int        `json:"fit_confidence"`
	LastMonthSales int        `json:"last_month_sales,omitempty"`
	IsPreOrder     bool       `json:"is_pre_order"`
	Partition      Partition  `json:"partition"`
}

// DiscountPercent derives the markdown implied by OriginalPrice, or 0 when
// the product carries no original price.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= p.Price {
		return 0
	}
	return int((p.OriginalPrice - p.Price) * 100 / p.OriginalPrice)
}

// LensKind selects which secondary facet a filter applies.
type LensKind string

const (
	LensStyle   LensKind = "style"
	LensEmotion LensKind = "emotion"
)

// FilterSelection is one transient catalog query. ActiveCategory is
// mandatory; everything else refines the result.
type FilterSelection struct {
	ActiveCategory Category `json:"category"`
	LensKind       LensKind `json:"lens_kind,omitempty"`
	ActiveSubFacet string   `json:"sub_facet,omitempty"`
	FreeTextQuery  string   `json:"query,omitempty"`
	TargetMood     string   `json:"target_mood,omitempty"`
}

// Offer statuses
const (
	OfferStatusActive  = "ACTIVE"
	OfferStatusExpired = "EXPIRED"
)

// TimedOffer is one active flash-sale instance over a single product.
type TimedOffer struct {
	ID               string  `json:"id"`
	Product          Product `json:"product"`
	DiscountPercent  int     `json:"discount_percent"`
	TotalSeconds     int     `json:"total_seconds"`
	RemainingSeconds int     `json:"remaining_seconds"`
	Status           string  `json:"status"`
}

// GameKind tags a reward play variant.
type GameKind string

const (
	GameNumberMatch GameKind = "number_match"
	GamePairedDraw  GameKind = "paired_draw"
	GameWheel       GameKind = "wheel"
)

// Stakes per game, in Shards.
const (
	StakeNumberMatch int64 = 10
	StakePairedDraw  int64 = 25
	StakeWheel       int64 = 50
)

// RewardSession holds the two per-session currencies: Shards are spent as
// stakes, Credits are earned as payouts and redeemed for archive products.
type RewardSession struct {
	ID            string   `json:"id"`
	SpendBalance  int64    `json:"spend_balance"`
	RewardBalance int64    `json:"reward_balance"`
	ClaimedIDs    []string `json:"claimed_ids,omitempty"`
}

// PlayOutcome is the structured result of a resolved play, returned so the
// caller can render it; the engine has no rendering responsibility.
type PlayOutcome struct {
	Kind          GameKind `json:"kind"`
	Stake         int64    `json:"stake"`
	Draws         []int    `json:"draws"`
	Payout        int64    `json:"payout"`
	Won           bool     `json:"won"`
	SpendBalance  int64    `json:"spend_balance"`
	RewardBalance int64    `json:"reward_balance"`
}

// GeneratedCopy is the outcome of a text-generation request. Source is
// "model" for live output, "cache" for a cache hit, "fallback" when the
// generator was unavailable.
type GeneratedCopy struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Copy sources
const (
	CopySourceModel    = "model"
	CopySourceCache    = "cache"
	CopySourceFallback = "fallback"
)
