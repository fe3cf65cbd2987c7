package repository

import "github.com/FrozenSaturn/pawsome/models"

func strPtr(s string) *string { return &s }

var seedSnippets = []models.ActionSnippet{
	{ID: 1, Type: models.SnippetTypeEvent, Text: "Join our pet vaccination camp in Birati this Sunday!"},
	{ID: 2, Type: models.SnippetTypeUrgent, Text: "Temporary fosters needed for 5 puppies rescued from Dum Dum Park"},
	{ID: 3, Type: models.SnippetTypeAdoption, Text: "Raja - a 2 year old indie dog looking for a loving home in North Dumdum"},
	{ID: 4, Type: models.SnippetTypeEvent, Text: "Pet care workshop at North Dumdum community center next Saturday"},
}

var seedStories = []models.ImpactStory{
	{
		ID:       1,
		Title:    "Luna's Journey: From Streets to Forever Home",
		Location: "Birati, North Dumdum",
		Summary:  "When Luna was found injured near Birati Railway Station in North Dumdum, local volunteers rallied together. Through community support, she received medical care, rehabilitation, and eventually found her forever family right here in North Dumdum.",
		FullStory: "Luna was discovered one rainy evening in July, hiding under a parked car near Birati Railway Station. She had a badly infected wound on her leg and was severely malnourished. Amit, a local resident, noticed her whimpering and immediately posted on the North Dumdum Pet Network's Action Board. Within hours, three community members responded. Priya offered to transport Luna to Dr. Sharma's clinic, while Rahul provided a temporary foster space. Dr. Sharma treated Luna's wound and provided necessary vaccinations at a subsidized rate for the rescue case. The community raised funds for her treatment through the Network. After two months of recovery in Rahul's care, Luna was featured in an adoption drive. The Chatterjee family from Dum Dum Park fell in love with her resilient spirit and welcomed her into their home. Today, Luna enjoys long walks in the neighborhood park and has become an ambassador for local adoption, often appearing at community events to inspire others.",
		Image:    "https://images.unsplash.com/photo-1548199973-03cce0bbc87b",
		Author:   "Maya D.",
		Date:     "2023-03-15",
	},
}

var seedGroups = []models.LocalGroup{
	{
		ID:          1,
		Name:        "North Dumdum Morning Walkers",
		Image:       "https://images.unsplash.com/photo-1601758174944-c2926b1ce22e",
		Members:     24,
		NextMeetup:  strPtr("Sunday, 7:00 AM"),
		Location:    "Dumdum Park",
		Description: "Early morning dog walking group for North Dumdum pet parents. We meet regularly for social walks and pet exercise.",
	},
	{
		ID:          2,
		Name:        "Birati Cat Welfare",
		Image:       "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba",
		Members:     18,
		NextMeetup:  nil,
		Location:    "Birati, North Dumdum",
		Description: "Dedicated to cat welfare in Birati area. We help with TNR programs, cat adoptions and provide care information.",
	},
	{
		ID:          3,
		Name:        "Dumdum Pet Parents",
		Image:       "https://images.unsplash.com/photo-1548199973-03cce0bbc87b",
		Members:     32,
		NextMeetup:  strPtr("Saturday, 5:30 PM"),
		Location:    "Community Garden, North Dumdum",
		Description: "A general group for all pet parents in North Dumdum. We share resources, organize meetups and support each other.",
	},
}

var seedPets = []models.AdoptablePet{
	{
		ID:          1,
		Name:        "Raja",
		Type:        "Dog",
		Breed:       "Indian Pariah",
		Age:         "2 years",
		Gender:      "Male",
		Description: "Raja is a friendly, energetic boy who loves playing fetch and going for walks. He's good with children and would make a perfect family companion.",
		Image:       "https://images.unsplash.com/photo-1583511655857-d19b40a7a54e",
		Contact:     "Maya D. (9876543210)",
		Location:    "North Dumdum",
	},
	{
		ID:          2,
		Name:        "Mithu",
		Type:        "Cat",
		Breed:       "Domestic Shorthair",
		Age:         "1 year",
		Gender:      "Female",
		Description: "Mithu is a gentle, affectionate cat who enjoys lounging in sunny spots and playing with string toys. She's litter trained and good with other cats.",
		Image:       "https://images.unsplash.com/photo-1495360010541-f48722b34f7d",
		Contact:     "Priya M. (8765432109)",
		Location:    "Birati, North Dumdum",
	},
	{
		ID:          3,
		Name:        "Bruno",
		Type:        "Dog",
		Breed:       "Labrador Mix",
		Age:         "3 years",
		Gender:      "Male",
		Description: "Bruno is a calm, well-behaved dog who loves cuddles and short walks. He'd be perfect for a senior owner or someone looking for a low-energy pet.",
		Image:       "https://images.unsplash.com/photo-1543466835-00a7907e9de1",
		Contact:     "Rahul S. (7654321098)",
		Location:    "Dum Dum Park",
	},
}

var seedResources = []models.MapResource{
	{
		ID:          1,
		Name:        "Dr. Sharma's Pet Clinic",
		Type:        models.ResourceTypeVet,
		Address:     "24B, Jessore Road, North Dumdum",
		Contact:     "+91 98765 43210",
		Hours:       "Mon-Sat: 10AM - 8PM",
		Description: "Full-service veterinary clinic with emergency services. Dr. Sharma specializes in both dog and cat care.",
		AddedBy:     "Priya M.",
		Latitude:    22.6532,
		Longitude:   88.4268,
	},
	{
		ID:          2,
		Name:        "Dumdum Park Pet Corner",
		Type:        models.ResourceTypePark,
		Address:     "Dumdum Park, North Dumdum",
		Contact:     "N/A",
		Hours:       "Open 6AM - 9PM daily",
		Description: "Dog-friendly area in Dumdum Park with waste stations and water facilities.",
		AddedBy:     "Rahul S.",
		Latitude:    22.6203,
		Longitude:   88.4096,
	},
	{
		ID:          3,
		Name:        "Paws & Claws Pet Supply",
		Type:        models.ResourceTypeStore,
		Address:     "12/3, Birati Main Road, North Dumdum",
		Contact:     "+91 87654 32109",
		Hours:       "10AM - 9PM daily",
		Description: "Local pet store with food, toys, and basic medicines. They also carry specialty foods for pets with dietary restrictions.",
		AddedBy:     "Amit K.",
		Latitude:    22.6644,
		Longitude:   88.4351,
	},
}

var seedArticles = []models.KnowledgeBaseArticle{
	{
		ID:       1,
		Title:    "Vets in North Dumdum: A Comprehensive Directory",
		Excerpt:  "Detailed information about veterinary clinics in North Dumdum, including specialties, emergency services, and contact details.",
		Author:   "Dr. Sharma",
		Category: "Healthcare",
		FullContent: "North Dumdum has several trusted veterinary options. Dr. Sharma's Pet Clinic on Jessore Road handles general care, surgery and emergencies (Mon-Sat, 10AM-8PM). For exotic pets, the Birati Animal Care Centre takes appointments on weekends. In a late-night emergency, the 24-hour helpline at +91 98765 43210 can direct you to the on-call vet. Always carry your pet's vaccination card to appointments.",
	},
	{
		ID:       2,
		Title:    "Monsoon Pet Care Tips for North Dumdum Residents",
		Excerpt:  "Seasonal advice for pet owners in North Dumdum dealing with the heavy monsoon season. Includes tips for keeping pets dry and preventing common monsoon-related health issues.",
		Author:   "Priya M.",
		Category: "Seasonal Care",
		FullContent: "The monsoon brings tick and fungal infections. Dry your dog's paws and belly after every walk, avoid the waterlogged stretch near Birati Main Road, and keep a dehumidifier or fan running where your pet sleeps. Street animals need extra help too: raised feeding spots stay usable during flooding, and cardboard shelters under stairwells save lives. Watch for leptospirosis symptoms (fever, lethargy) and see a vet immediately if they appear.",
	},
	{
		ID:       3,
		Title:    "Local Pet-Friendly Housing in North Dumdum",
		Excerpt:  "Guide to apartment complexes and housing societies in North Dumdum that welcome pets, including any specific restrictions.",
		Author:   "Rahul S.",
		Category: "Housing",
		FullContent: "Several societies around Dumdum Park and Birati officially welcome pets: Green Residency (dogs under 25kg), Lake View Apartments (all pets, leash rule in common areas) and the older standalone houses off Jessore Road. Societies cannot legally ban pets outright per AWBI guidelines, but knowing the friendly ones saves arguments. Always get the pet clause in writing before paying a deposit.",
	},
	{
		ID:       4,
		Title:    "Street Dog Feeding Guidelines for North Dumdum",
		Excerpt:  "Best practices for feeding community street dogs in North Dumdum, including recommended locations and appropriate foods.",
		Author:   "Animal Welfare Group",
		Category: "Community Care",
		FullContent: "Feed at fixed spots away from building entrances and school gates - the corner of Dumdum Park near the east gate and the lane behind Birati market work well. Rice with boiled eggs or chicken is safe and cheap; never feed cooked bones, chocolate or spicy leftovers. Feeding at the same time daily makes vaccination drives far easier because the dogs gather predictably. Coordinate with the Birati Cat Welfare group to avoid double-feeding colonies.",
	},
}

var seedPosts = []models.ActionBoardPost{
	{
		ID:          1,
		Type:        models.PostTypeTransport,
		Title:       "Need transport for injured stray dog to vet",
		Description: "Found an injured stray near Dumdum metro station. Need help transporting to Dr. Sharma's clinic.",
		Location:    "Near Dumdum Metro Station",
		PostedBy:    "Amit S.",
		PostedTime:  "2 hours ago",
		Status:      models.PostStatusActive,
	},
	{
		ID:          2,
		Type:        models.PostTypeLost,
		Title:       "Lost cat - Ginger tabby with white paws",
		Description: "My cat Tommy went missing yesterday evening from Birati area. He's a ginger tabby with white paws and a blue collar.",
		Location:    "Birati Main Road area",
		PostedBy:    "Priya M.",
		PostedTime:  "1 day ago",
		Status:      models.PostStatusActive,
	},
	{
		ID:          3,
		Type:        models.PostTypeFound,
		Title:       "Found: Small white dog near park",
		Description: "Found a small white dog (possibly a Spitz mix) near Dumdum Park. No collar but very friendly. Currently safe with me.",
		Location:    "Dumdum Park",
		PostedBy:    "Rahul K.",
		PostedTime:  "5 hours ago",
		Status:      models.PostStatusActive,
	},
	{
		ID:          4,
		Type:        models.PostTypeUrgentHelp,
		Title:       "Urgent: Foster needed for 3 puppies",
		Description: "Rescued 3 puppies from Jessore Road. Need temporary foster for 2 weeks until adoption event.",
		Location:    "North Dumdum",
		PostedBy:    "Maya D.",
		PostedTime:  "3 hours ago",
		Status:      models.PostStatusActive,
	},
}
