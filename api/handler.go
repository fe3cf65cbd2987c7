package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrozenSaturn/pawsome/middleware"
	"github.com/FrozenSaturn/pawsome/repository"
	"github.com/FrozenSaturn/pawsome/services"
)

// APIHandler holds all dependencies for API handlers: the in-memory
// store and the chat responder.
type APIHandler struct {
	store     *repository.Store
	responder services.Responder
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(store *repository.Store, responder services.Responder) *APIHandler {
	return &APIHandler{store: store, responder: responder}
}

// NewRouter builds the gin engine with middlewares and the full route
// table. main and the httptest suites both serve exactly this router.
func NewRouter(h *APIHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Cors())

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/action-snippets", h.ListActionSnippets)

		apiGroup.GET("/impact-stories", h.ListImpactStories)
		apiGroup.GET("/impact-stories/:id", h.GetImpactStory)
		apiGroup.POST("/impact-stories", h.CreateImpactStory)

		apiGroup.GET("/local-groups", h.ListLocalGroups)
		apiGroup.POST("/local-groups", h.CreateLocalGroup)

		apiGroup.GET("/adoptable-pets", h.ListAdoptablePets)
		apiGroup.POST("/adoptable-pets", h.CreateAdoptablePet)

		apiGroup.GET("/resources", h.ListMapResources)
		apiGroup.POST("/resources", h.CreateMapResource)

		apiGroup.GET("/knowledge-base", h.ListKnowledgeBase)
		apiGroup.POST("/knowledge-base", h.CreateKnowledgeBaseArticle)

		apiGroup.GET("/action-board", h.ListActionBoard)
		apiGroup.POST("/action-board", h.CreateActionBoardPost)

		apiGroup.POST("/volunteer-interest", h.SubmitVolunteerInterest)

		apiGroup.POST("/pawbuddy-chat", h.PawBuddyChat)
	}
	return r
}

// ListActionSnippets returns the rotating landing-page headlines.
// GET /api/action-snippets
func (h *APIHandler) ListActionSnippets(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snippets.List())
}
