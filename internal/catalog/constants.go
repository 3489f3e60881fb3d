package catalog

// DefaultDomainSuffix is appended to display names that arrive without one
const DefaultDomainSuffix = ".sol"

// Rarity scores by raw label. Unknown labels map to no score at all: absence
// means "not yet rated" and is distinct from a common (low) rating.
const (
	RarityScoreEpic = 90
	RarityScoreRare = 60
	RarityScoreBase = 30
)

// Raw category labels recognized by tier derivation
const (
	CategoryPremium   = "premium"
	CategoryVaulted   = "vaulted"
	CategoryMid       = "mid"
	CategoryScav      = "scav"
	CategoryBasement  = "basement"
	CategoryFlashrack = "flashrack"
	CategoryQuicksnag = "quicksnag"
)

// Raw status labels recognized by status derivation
const (
	RawStatusAvailable  = "available"
	RawStatusVaulted    = "vaulted"
	RawStatusNotForSale = "not_for_sale"
	RawStatusSold       = "sold"
)

// Raw field key fallbacks, tried in order. The feed guarantees only an id and
// name equivalent; everything else degrades to a documented default.
var (
	idKeys       = []string{"id", "domain_id", "sku"}
	nameKeys     = []string{"name", "domain", "title"}
	priceKeys    = []string{"price", "price_text", "price_sol"}
	categoryKeys = []string{"category", "class"}
	rarityKeys   = []string{"rarity", "rarity_label"}
	statusKeys   = []string{"status", "availability"}
	featuredKeys = []string{"featured", "is_featured"}
	vaultedKeys  = []string{"vaulted", "is_vaulted"}
)
