package models

// DefaultIndustries returns the built-in industry catalog in declaration
// order. Declaration order matters: the classifier breaks score ties in
// favor of the earlier profile, so reordering entries changes results.
// Profile ids are referenced by persisted product records — never rename.
func DefaultIndustries() []IndustryProfile {
	return []IndustryProfile{
		{
			ID:          "cannabis",
			Name:        "Cannabis & Hemp",
			Description: "Regulated cannabis products, CBD, and hemp derivatives",
			Keywords:    []string{"cannabis", "marijuana", "cbd", "hemp", "thc", "flower", "edible", "vape", "concentrate"},
			Icon:        "🌿",
			MarketSize:  "$30B",
			WorkflowSteps: []WorkflowStep{
				{ID: "cultivation", Name: "Cultivation", Description: "Seed selection and growing process tracked", Icon: "🌱", Duration: "90-120 days"},
				{ID: "testing", Name: "Laboratory Testing", Description: "Potency, pesticides, and contaminants analysis", Icon: "🔬", Duration: "3-5 days"},
				{ID: "processing", Name: "Processing & Packaging", Description: "Product creation and sealed packaging", Icon: "📦", Duration: "1-2 days"},
				{ID: "compliance", Name: "Compliance Verification", Description: "State tracking system integration (METRC, BioTrack)", Icon: "✓", Duration: "1 day"},
				{ID: "distribution", Name: "Distribution", Description: "Chain of custody to licensed retailers", Icon: "🚚", Duration: "1-3 days"},
			},
			StoryTemplate: "This {productName} was cultivated from premium {strain} genetics, grown in {location} under strict quality controls. Each plant was monitored throughout its lifecycle, tested for safety and potency, and packaged with precision to preserve its natural qualities.",
			AuthenticityFeatures: []string{
				"Strain DNA verification",
				"Terpene profile analysis",
				"Cannabinoid potency testing",
				"Batch tracking number",
				"State compliance seal",
			},
		},
		{
			ID:          "luxury",
			Name:        "Luxury Goods",
			Description: "High-end fashion, jewelry, watches, and accessories",
			Keywords:    []string{"luxury", "designer", "watch", "jewelry", "handbag", "fashion", "rolex", "gucci", "louis vuitton", "hermes"},
			Icon:        "💎",
			MarketSize:  "$340B",
			WorkflowSteps: []WorkflowStep{
				{ID: "design", Name: "Design & Craftsmanship", Description: "Original design creation and authentication", Icon: "✏️", Duration: "Varies"},
				{ID: "materials", Name: "Material Sourcing", Description: "Premium materials verified and documented", Icon: "🧵", Duration: "30-60 days"},
				{ID: "manufacturing", Name: "Manufacturing", Description: "Artisan craftsmanship in authorized facilities", Icon: "🏭", Duration: "30-90 days"},
				{ID: "quality", Name: "Quality Inspection", Description: "Multi-point quality control and certification", Icon: "🔍", Duration: "2-5 days"},
				{ID: "serialization", Name: "Serialization", Description: "Unique serial number and hologram assignment", Icon: "🔢", Duration: "1 day"},
				{ID: "retail", Name: "Authorized Retail", Description: "Distribution to verified luxury retailers", Icon: "🏪", Duration: "5-10 days"},
			},
			StoryTemplate: "This {productName} by {brand} represents the pinnacle of luxury craftsmanship. Created by master artisans using the finest materials, each piece undergoes rigorous quality inspection to meet the exacting standards that define {brand}'s heritage of excellence.",
			AuthenticityFeatures: []string{
				"Serial number verification",
				"Holographic authentication seal",
				"Material composition analysis",
				"Craftsmanship documentation",
				"Certificate of authenticity",
			},
		},
		{
			ID:          "electronics",
			Name:        "Electronics & Technology",
			Description: "Consumer electronics, smartphones, computers, and tech accessories",
			Keywords:    []string{"electronics", "smartphone", "laptop", "computer", "tablet", "headphones", "camera", "apple", "samsung", "sony"},
			Icon:        "📱",
			MarketSize:  "$1.5T",
			WorkflowSteps: []WorkflowStep{
				{ID: "components", Name: "Component Sourcing", Description: "Genuine components from verified suppliers", Icon: "⚙️", Duration: "30-60 days"},
				{ID: "assembly", Name: "Assembly", Description: "Manufacturing in certified facilities", Icon: "🏭", Duration: "1-3 days"},
				{ID: "testing", Name: "Quality Testing", Description: "Comprehensive electrical and functional testing", Icon: "🔌", Duration: "1-2 days"},
				{ID: "firmware", Name: "Firmware Validation", Description: "Official firmware installation and verification", Icon: "💾", Duration: "Hours"},
				{ID: "packaging", Name: "Packaging & Sealing", Description: "Tamper-evident packaging with QR codes", Icon: "📦", Duration: "1 day"},
				{ID: "distribution", Name: "Distribution", Description: "Shipment to authorized retailers", Icon: "🚚", Duration: "3-7 days"},
			},
			StoryTemplate: "This {productName} was assembled using genuine {brand} components in an ISO-certified manufacturing facility. Each unit underwent rigorous quality testing to ensure it meets strict performance and safety standards before receiving its unique IMEI/serial number.",
			AuthenticityFeatures: []string{
				"IMEI/Serial number validation",
				"Firmware signature verification",
				"Component authenticity check",
				"Warranty registration",
				"Tamper-evident packaging",
			},
		},
		{
			ID:          "pharmaceutical",
			Name:        "Pharmaceuticals",
			Description: "Prescription drugs, OTC medications, and medical supplies",
			Keywords:    []string{"pharmaceutical", "medicine", "drug", "prescription", "medication", "pills", "vaccine", "medical"},
			Icon:        "💊",
			MarketSize:  "$1.4T",
			WorkflowSteps: []WorkflowStep{
				{ID: "synthesis", Name: "Active Ingredient Synthesis", Description: "API production in GMP facilities", Icon: "⚗️", Duration: "30-90 days"},
				{ID: "formulation", Name: "Formulation", Description: "Drug formulation and stability testing", Icon: "🧪", Duration: "14-30 days"},
				{ID: "testing", Name: "Quality Control Testing", Description: "Potency, purity, and safety verification", Icon: "🔬", Duration: "7-14 days"},
				{ID: "packaging", Name: "Packaging", Description: "Tamper-evident packaging with serialization", Icon: "📦", Duration: "1-3 days"},
				{ID: "regulatory", Name: "Regulatory Compliance", Description: "FDA/regulatory approval verification", Icon: "✓", Duration: "1-2 days"},
				{ID: "distribution", Name: "Cold Chain Distribution", Description: "Temperature-controlled distribution tracking", Icon: "🚚", Duration: "1-5 days"},
			},
			StoryTemplate: "This {productName} was manufactured in a GMP-certified pharmaceutical facility following strict FDA guidelines. Every batch undergoes comprehensive testing for potency, purity, and safety, with full chain of custody tracking from production to patient.",
			AuthenticityFeatures: []string{
				"NDC number verification",
				"Batch number tracking",
				"Expiration date validation",
				"2D barcode serialization",
				"Temperature monitoring data",
			},
		},
		{
			ID:          "fashion",
			Name:        "Fashion & Apparel",
			Description: "Clothing, footwear, and fashion accessories",
			Keywords:    []string{"fashion", "clothing", "apparel", "shoes", "sneakers", "shirt", "dress", "jacket", "nike", "adidas"},
			Icon:        "👔",
			MarketSize:  "$1.7T",
			WorkflowSteps: []WorkflowStep{
				{ID: "design", Name: "Design Creation", Description: "Original design and pattern development", Icon: "✏️", Duration: "30-90 days"},
				{ID: "materials", Name: "Textile Sourcing", Description: "Authentic fabric and material procurement", Icon: "🧵", Duration: "20-40 days"},
				{ID: "manufacturing", Name: "Manufacturing", Description: "Production in authorized facilities", Icon: "🏭", Duration: "14-30 days"},
				{ID: "quality", Name: "Quality Control", Description: "Inspection for defects and consistency", Icon: "🔍", Duration: "2-3 days"},
				{ID: "tagging", Name: "Authentication Tagging", Description: "NFC tags and hologram application", Icon: "🏷️", Duration: "1 day"},
				{ID: "retail", Name: "Retail Distribution", Description: "Shipment to authorized retailers", Icon: "🏪", Duration: "5-15 days"},
			},
			StoryTemplate: "This {productName} by {brand} was crafted using premium materials and authentic design specifications. Each piece is manufactured in authorized facilities and undergoes quality inspection to ensure it meets {brand}'s standards for style and durability.",
			AuthenticityFeatures: []string{
				"NFC authentication chip",
				"Holographic label",
				"QR code verification",
				"Style/SKU number validation",
				"Material composition tag",
			},
		},
		{
			ID:          "automotive",
			Name:        "Automotive Parts",
			Description: "Original equipment and aftermarket automotive parts",
			Keywords:    []string{"automotive", "car", "parts", "engine", "brake", "filter", "tire", "battery", "oem"},
			Icon:        "🚗",
			MarketSize:  "$400B",
			WorkflowSteps: []WorkflowStep{
				{ID: "engineering", Name: "Engineering Specification", Description: "OEM design and specification verification", Icon: "📐", Duration: "Varies"},
				{ID: "manufacturing", Name: "Manufacturing", Description: "Production in certified facilities", Icon: "🏭", Duration: "7-30 days"},
				{ID: "testing", Name: "Performance Testing", Description: "Quality and safety standard compliance", Icon: "🔧", Duration: "3-7 days"},
				{ID: "certification", Name: "Certification", Description: "ISO/SAE standard certification", Icon: "✓", Duration: "1-3 days"},
				{ID: "packaging", Name: "Packaging", Description: "Part number labeling and sealing", Icon: "📦", Duration: "1 day"},
				{ID: "distribution", Name: "Distribution", Description: "Shipment to authorized dealers", Icon: "🚚", Duration: "3-10 days"},
			},
			StoryTemplate: "This {productName} is a genuine {brand} part manufactured to exact OEM specifications. Each component undergoes rigorous testing to ensure it meets safety and performance standards for reliable vehicle operation.",
			AuthenticityFeatures: []string{
				"OEM part number verification",
				"Manufacturing date code",
				"Batch/lot tracking",
				"Certification marks",
				"Holographic label",
			},
		},
		{
			ID:          "food",
			Name:        "Food & Beverage",
			Description: "Premium food products, beverages, and specialty ingredients",
			Keywords:    []string{"food", "beverage", "wine", "spirits", "coffee", "chocolate", "gourmet", "organic"},
			Icon:        "🍷",
			MarketSize:  "$8.5T",
			WorkflowSteps: []WorkflowStep{
				{ID: "sourcing", Name: "Ingredient Sourcing", Description: "Origin verification and quality grading", Icon: "🌾", Duration: "Seasonal"},
				{ID: "production", Name: "Production", Description: "Manufacturing in food-safe facilities", Icon: "🏭", Duration: "1-30 days"},
				{ID: "testing", Name: "Safety Testing", Description: "Microbiological and contaminant testing", Icon: "🔬", Duration: "2-5 days"},
				{ID: "packaging", Name: "Packaging", Description: "Sealed packaging with batch codes", Icon: "📦", Duration: "1 day"},
				{ID: "certification", Name: "Certification", Description: "USDA/FDA/organic certification", Icon: "✓", Duration: "1-2 days"},
				{ID: "distribution", Name: "Distribution", Description: "Temperature-controlled logistics", Icon: "🚚", Duration: "1-7 days"},
			},
			StoryTemplate: "This {productName} was crafted using premium ingredients sourced from verified suppliers. Each batch is produced in certified facilities and undergoes safety testing to ensure it meets the highest standards for quality and freshness.",
			AuthenticityFeatures: []string{
				"Batch/lot number tracking",
				"Origin verification",
				"Organic certification",
				"Expiration date validation",
				"Temperature monitoring",
			},
		},
		{
			ID:          "art",
			Name:        "Art & Collectibles",
			Description: "Fine art, collectibles, and limited edition items",
			Keywords:    []string{"art", "painting", "sculpture", "collectible", "limited edition", "gallery", "artist"},
			Icon:        "🎨",
			MarketSize:  "$65B",
			WorkflowSteps: []WorkflowStep{
				{ID: "creation", Name: "Creation", Description: "Original artwork creation by artist", Icon: "🖌️", Duration: "Varies"},
				{ID: "authentication", Name: "Expert Authentication", Description: "Third-party expert verification", Icon: "🔍", Duration: "7-30 days"},
				{ID: "documentation", Name: "Documentation", Description: "Provenance and history documentation", Icon: "📜", Duration: "3-7 days"},
				{ID: "photography", Name: "High-Res Photography", Description: "Professional documentation photography", Icon: "📸", Duration: "1 day"},
				{ID: "certification", Name: "Certificate Issuance", Description: "Certificate of authenticity creation", Icon: "📄", Duration: "1-2 days"},
				{ID: "registry", Name: "Art Registry", Description: "Registration in global art databases", Icon: "📚", Duration: "1-3 days"},
			},
			StoryTemplate: "This {productName} is an original work by {artist}, authenticated by leading art experts. The piece comes with complete provenance documentation and is registered in international art databases, ensuring its authenticity and investment value.",
			AuthenticityFeatures: []string{
				"Artist signature verification",
				"Provenance documentation",
				"Expert authentication report",
				"High-resolution photography",
				"Registry database entry",
			},
		},
		{
			ID:          "cosmetics",
			Name:        "Cosmetics & Beauty",
			Description: "Skincare, makeup, fragrances, and beauty products",
			Keywords:    []string{"cosmetics", "makeup", "skincare", "perfume", "fragrance", "beauty", "serum", "cream"},
			Icon:        "💄",
			MarketSize:  "$511B",
			WorkflowSteps: []WorkflowStep{
				{ID: "formulation", Name: "Formulation", Description: "Product formulation and testing", Icon: "⚗️", Duration: "30-90 days"},
				{ID: "testing", Name: "Safety Testing", Description: "Dermatological and safety testing", Icon: "🔬", Duration: "14-30 days"},
				{ID: "manufacturing", Name: "Manufacturing", Description: "Production in GMP facilities", Icon: "🏭", Duration: "7-14 days"},
				{ID: "quality", Name: "Quality Control", Description: "Batch consistency and contamination testing", Icon: "✓", Duration: "3-5 days"},
				{ID: "packaging", Name: "Packaging", Description: "Brand packaging with batch codes", Icon: "📦", Duration: "1-2 days"},
				{ID: "retail", Name: "Retail Distribution", Description: "Distribution to authorized retailers", Icon: "🏪", Duration: "5-10 days"},
			},
			StoryTemplate: "This {productName} by {brand} was formulated using premium ingredients and underwent extensive safety testing. Each batch is manufactured in certified facilities and tested for consistency to deliver the quality and performance {brand} is known for.",
			AuthenticityFeatures: []string{
				"Batch number verification",
				"Holographic seal",
				"QR code authentication",
				"Ingredient list validation",
				"Manufacturing date code",
			},
		},
		{
			ID:          "sports",
			Name:        "Sports Equipment",
			Description: "Athletic equipment, sportswear, and fitness gear",
			Keywords:    []string{"sports", "equipment", "athletic", "fitness", "ball", "racket", "club", "gear", "training"},
			Icon:        "⚽",
			MarketSize:  "$180B",
			WorkflowSteps: []WorkflowStep{
				{ID: "design", Name: "Performance Design", Description: "Engineering for optimal performance", Icon: "📐", Duration: "60-180 days"},
				{ID: "materials", Name: "Material Selection", Description: "High-performance material sourcing", Icon: "🧵", Duration: "30-60 days"},
				{ID: "manufacturing", Name: "Manufacturing", Description: "Precision manufacturing process", Icon: "🏭", Duration: "14-30 days"},
				{ID: "testing", Name: "Performance Testing", Description: "Professional athlete testing and validation", Icon: "🔬", Duration: "7-14 days"},
				{ID: "certification", Name: "Certification", Description: "Sport federation approval", Icon: "✓", Duration: "3-7 days"},
				{ID: "distribution", Name: "Distribution", Description: "Shipment to authorized dealers", Icon: "🏪", Duration: "5-15 days"},
			},
			StoryTemplate: "This {productName} by {brand} was engineered for peak athletic performance. Each piece undergoes rigorous testing to meet professional sport standards, ensuring it delivers the quality and durability athletes demand.",
			AuthenticityFeatures: []string{
				"Product ID verification",
				"Holographic label",
				"Serial number",
				"Sport certification marks",
				"QR code authentication",
			},
		},
	}
}
