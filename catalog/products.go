package catalog

// NativeProducts returns the locally defined catalog, in display order.
func NativeProducts() []Product {
	return []Product{
		{
			ID:          "modular-perch-oak",
			Name:        "Modular Wall Perch System",
			Price:       "$589",
			Image:       "/images/perch1.jpg",
			Description: "A sophisticated modular wall-mounted system featuring sustainably sourced white oak and premium wool felt. Expands from single perch to complete climbing wall.",
			Collection:  "Signature",
			Materials:   []string{"White Oak", "Merino Wool Felt", "Brass Hardware"},
			Dimensions:  "24\" × 12\" × 8\" (expandable)",
			Type:        TypeNative,
		},
		{
			ID:          "floating-steps-walnut",
			Name:        "Floating Steps Collection",
			Price:       "$429",
			Image:       "/images/steps1.jpg",
			Description: "Minimalist floating steps crafted from American black walnut. Clean lines and hidden mounting system create the illusion of steps floating on your wall.",
			Collection:  "Essential",
			Materials:   []string{"American Black Walnut", "Stainless Steel", "Hidden Brackets"},
			Dimensions:  "Set of 5: 18\" × 8\" × 2\" each",
			Type:        TypeNative,
		},
		{
			ID:          "luxury-lounger-sage",
			Name:        "Executive Lounger",
			Price:       "$1,249",
			Image:       "/images/sofa1.jpg",
			Description: "Our flagship piece featuring hand-selected maple wood frame with sage linen upholstery. Includes integrated scratching surfaces and removable cushions.",
			Collection:  "Signature",
			Materials:   []string{"Canadian Maple", "Belgian Linen", "Natural Sisal", "Memory Foam"},
			Dimensions:  "48\" × 24\" × 16\"",
			Type:        TypeNative,
		},
		{
			ID:          "tower-system-bamboo",
			Name:        "Vertical Tower System",
			Price:       "$899",
			Image:       "/images/tower1.jpg",
			Description: "Floor-to-ceiling modular tower system in sustainable bamboo. Multiple configurations possible with integrated planters and hideaways.",
			Collection:  "Eco",
			Materials:   []string{"Bamboo", "Organic Cotton", "Cork", "Recycled Steel"},
			Dimensions:  "78\" × 20\" × 20\" (adjustable height)",
			Type:        TypeNative,
		},
		{
			ID:          "bridge-connector-teak",
			Name:        "Architectural Bridge",
			Price:       "$389",
			Image:       "/images/bridge1.jpg",
			Description: "Connect wall-mounted elements with this stunning teak bridge. Features integrated LED lighting and non-slip surfaces.",
			Collection:  "Essential",
			Materials:   []string{"Teak Wood", "LED Strip", "Grip Tape", "Aluminum Frame"},
			Dimensions:  "36\" × 6\" × 4\"",
			Type:        TypeNative,
		},
		{
			ID:          "hideaway-cube-ash",
			Name:        "Privacy Cube Hideaway",
			Price:       "$669",
			Image:       "/images/cube1.jpg",
			Description: "Architectural hideaway cube in ash wood with felt interior. Doubles as modern accent furniture when not occupied.",
			Collection:  "Signature",
			Materials:   []string{"European Ash", "Charcoal Felt", "Magnetic Closure"},
			Dimensions:  "20\" × 20\" × 20\"",
			Type:        TypeNative,
		},
	}
}
