package kvstore

// Persisted keys. The shapes mirror the storefront's original local
// storage entries: absence of any key implies the default state.
const (
	KeyCart     = "cart"     // serialized list of cart lines
	KeyWishlist = "wishlist" // serialized list of product ids
	KeyUser     = "user"     // serialized session user, absent when logged out

	KeyHomeHeroImageURL  = "homeHeroImageUrl"  // plain URL string
	KeyAboutHeroImageURL = "aboutHeroImageUrl" // plain URL string
	KeyLogoImageURL      = "logoImageUrl"      // plain URL string
	KeyCategoryImageURLs = "categoryImageUrls" // serialized map of key -> URL
	KeyProductImageURLs  = "productImageUrls"  // serialized map of key -> URL
)
