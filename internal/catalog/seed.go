package catalog

import "github.com/urbanova/storefront/internal/core/domain"

// seed is the built-in storefront inventory.
var seed = []domain.Product{
	{
		ID:          1,
		Title:       "Classic Leather Backpack",
		Price:       129.99,
		Category:    "Bags",
		Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&h=600&fit=crop",
		Description: "Crafted from premium full-grain leather, this backpack blends timeless elegance with everyday utility. Features padded laptop compartment, multiple organizer pockets, and adjustable ergonomic straps for all-day comfort.",
	},
	{
		ID:          2,
		Title:       "Minimalist Ceramic Watch",
		Price:       249.99,
		Category:    "Accessories",
		Image:       "https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=600&h=600&fit=crop",
		Description: "A statement of refined simplicity. Japanese quartz movement, scratch-resistant sapphire glass, and a ceramic case that feels feather-light on the wrist. Water-resistant to 50 meters.",
	},
	{
		ID:          3,
		Title:       "Wireless Noise-Cancelling Headphones",
		Price:       349.99,
		Category:    "Electronics",
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=600&h=600&fit=crop",
		Description: "Immerse yourself in pure sound. Adaptive noise cancellation, 30-hour battery life, and memory-foam ear cushions deliver studio-quality audio whether you're commuting or working from home.",
	},
	{
		ID:          4,
		Title:       "Organic Cotton Hoodie",
		Price:       89.99,
		Category:    "Clothing",
		Image:       "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=600&h=600&fit=crop",
		Description: "Sustainably sourced 100% organic cotton with a brushed fleece interior. Relaxed fit, ribbed cuffs and hem, and a kangaroo pocket for warmth. Available in neutral earth tones.",
	},
	{
		ID:          5,
		Title:       "Artisan Pour-Over Coffee Set",
		Price:       64.99,
		Category:    "Kitchen",
		Image:       "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=600&h=600&fit=crop",
		Description: "Elevate your morning ritual. Hand-blown borosilicate glass carafe, stainless-steel reusable filter, and olive-wood handle. Brews 4 cups of perfectly extracted coffee every time.",
	},
	{
		ID:          6,
		Title:       "Premium Sunglasses",
		Price:       159.99,
		Category:    "Accessories",
		Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=600&h=600&fit=crop",
		Description: "Handcrafted acetate frames with polarized lenses that block 100% of UV rays. Lightweight, durable, and styled with a modern aviator silhouette. Includes a premium carrying case.",
	},
	{
		ID:          7,
		Title:       "Scandinavian Desk Lamp",
		Price:       119.99,
		Category:    "Home",
		Image:       "https://images.unsplash.com/photo-1513506003901-1e6a229e2d15?w=600&h=600&fit=crop",
		Description: "Clean lines meet warm illumination. Adjustable arm with 3 color-temperature modes, touch-sensitive dimmer, and a solid oak base. Perfect for focused work or ambient reading light.",
	},
	{
		ID:          8,
		Title:       "Slim Leather Wallet",
		Price:       59.99,
		Category:    "Accessories",
		Image:       "https://images.unsplash.com/photo-1627123424574-724758594e93?w=600&h=600&fit=crop",
		Description: "RFID-blocking vegetable-tanned leather in a slim bifold design. Six card slots, two bill compartments, and a hidden coin pocket — all in a profile thin enough for your front pocket.",
	},
}
