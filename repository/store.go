package repository

import (
	"log"

	"github.com/FrozenSaturn/pawsome/models"
)

// Store owns every resource collection. It is created once in main,
// seeded with the community mock data, and passed to the API handler.
// Nothing is persisted: a restart resets all collections to their
// seed values.
type Store struct {
	Snippets   *Collection[models.ActionSnippet]
	Stories    *Collection[models.ImpactStory]
	Groups     *Collection[models.LocalGroup]
	Pets       *Collection[models.AdoptablePet]
	Resources  *Collection[models.MapResource]
	Articles   *Collection[models.KnowledgeBaseArticle]
	Posts      *Collection[models.ActionBoardPost]
	Volunteers *Collection[models.VolunteerInterest]
}

// NewStore creates a store populated with the seed data.
func NewStore() *Store {
	s := &Store{
		Snippets: NewCollection(seedSnippets,
			func(v models.ActionSnippet) int { return v.ID },
			func(v models.ActionSnippet, id int) models.ActionSnippet { v.ID = id; return v }),
		Stories: NewCollection(seedStories,
			func(v models.ImpactStory) int { return v.ID },
			func(v models.ImpactStory, id int) models.ImpactStory { v.ID = id; return v }),
		Groups: NewCollection(seedGroups,
			func(v models.LocalGroup) int { return v.ID },
			func(v models.LocalGroup, id int) models.LocalGroup { v.ID = id; return v }),
		Pets: NewCollection(seedPets,
			func(v models.AdoptablePet) int { return v.ID },
			func(v models.AdoptablePet, id int) models.AdoptablePet { v.ID = id; return v }),
		Resources: NewCollection(seedResources,
			func(v models.MapResource) int { return v.ID },
			func(v models.MapResource, id int) models.MapResource { v.ID = id; return v }),
		Articles: NewCollection(seedArticles,
			func(v models.KnowledgeBaseArticle) int { return v.ID },
			func(v models.KnowledgeBaseArticle, id int) models.KnowledgeBaseArticle { v.ID = id; return v }),
		Posts: NewCollection(seedPosts,
			func(v models.ActionBoardPost) int { return v.ID },
			func(v models.ActionBoardPost, id int) models.ActionBoardPost { v.ID = id; return v }),
		Volunteers: NewCollection(nil,
			func(v models.VolunteerInterest) int { return v.ID },
			func(v models.VolunteerInterest, id int) models.VolunteerInterest { v.ID = id; return v }),
	}
	log.Printf("INFO: [Store] Seeded collections: %d snippets, %d stories, %d groups, %d pets, %d resources, %d articles, %d posts.",
		s.Snippets.Len(), s.Stories.Len(), s.Groups.Len(), s.Pets.Len(), s.Resources.Len(), s.Articles.Len(), s.Posts.Len())
	return s
}
