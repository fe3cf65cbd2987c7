package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FrozenSaturn/pawsome/models"
	"github.com/FrozenSaturn/pawsome/utils"
)

type createStoryRequest struct {
	Title     string `json:"title" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Summary   string `json:"summary" binding:"required"`
	FullStory string `json:"fullStory" binding:"required"`
	Image     string `json:"image"`
	Author    string `json:"author"`
}

// ListImpactStories returns all impact stories.
// GET /api/impact-stories
func (h *APIHandler) ListImpactStories(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stories.List())
}

// GetImpactStory returns one story by numeric id.
// GET /api/impact-stories/:id
func (h *APIHandler) GetImpactStory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid story id.", err)
		return
	}
	story, ok := h.store.Stories.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Story not found"})
		return
	}
	c.JSON(http.StatusOK, story)
}

// CreateImpactStory validates presence of the required fields,
// allocates an id, fills defaults and appends the story.
// POST /api/impact-stories
func (h *APIHandler) CreateImpactStory(c *gin.Context) {
	var req createStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Missing required story fields.", err, err.Error())
		return
	}

	story := models.ImpactStory{
		Title:     req.Title,
		Location:  req.Location,
		Summary:   req.Summary,
		FullStory: req.FullStory,
		Image:     req.Image,
		Author:    req.Author,
		Date:      utils.Today(),
	}
	if story.Image == "" {
		story.Image = utils.PlaceholderImage()
	}
	if story.Author == "" {
		story.Author = "Community Submission"
	}

	created := h.store.Stories.Append(story)
	log.Printf("INFO: [Stories] Created impact story id=%d title='%s' by '%s'.", created.ID, created.Title, created.Author)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Story submitted successfully",
		"story":   created,
	})
}
