package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrozenSaturn/pawsome/models"
	"github.com/FrozenSaturn/pawsome/utils"
)

// Handlers for the Network page tabs: local groups, the resource map,
// the knowledge base, and the action board.

// Center of the North Dumdum neighborhood. Map pins submitted without
// coordinates land here instead of at (0,0) in the Atlantic.
const (
	defaultLatitude  = 22.6420
	defaultLongitude = 88.4312
)

type createGroupRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Image       string  `json:"image"`
	Members     int     `json:"members"`
	NextMeetup  *string `json:"nextMeetup"`
}

type createResourceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Contact     string   `json:"contact"`
	Hours       string   `json:"hours"`
	AddedBy     string   `json:"addedBy"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type createArticleRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required"`
	FullContent string `json:"fullContent" binding:"required"`
	Excerpt     string `json:"excerpt"`
	Author      string `json:"author"`
}

type createPostRequest struct {
	Type        string `json:"type" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	PostedBy    string `json:"postedBy"`
}

// ListLocalGroups returns all community groups.
// GET /api/local-groups
func (h *APIHandler) ListLocalGroups(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Groups.List())
}

// CreateLocalGroup registers a new community group.
// POST /api/local-groups
func (h *APIHandler) CreateLocalGroup(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Missing required group fields.", err, err.Error())
		return
	}

	group := models.LocalGroup{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Image:       req.Image,
		Members:     req.Members,
		NextMeetup:  req.NextMeetup,
	}
	if group.Image == "" {
		group.Image = utils.PlaceholderImage()
	}
	if group.Members <= 0 {
		group.Members = 1 // the founder
	}

	created := h.store.Groups.Append(group)
	log.Printf("INFO: [Network] Created local group id=%d name='%s' (%s).", created.ID, created.Name, created.Location)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Group created successfully",
		"group":   created,
	})
}

// ListMapResources returns all points of interest on the resource map.
// GET /api/resources
func (h *APIHandler) ListMapResources(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Resources.List())
}

// CreateMapResource adds a point of interest to the community map.
// POST /api/resources
func (h *APIHandler) CreateMapResource(c *gin.Context) {
	var req createResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Missing required resource fields.", err, err.Error())
		return
	}

	resource := models.MapResource{
		Name:        req.Name,
		Type:        req.Type,
		Address:     req.Address,
		Description: req.Description,
		Contact:     req.Contact,
		Hours:       req.Hours,
		AddedBy:     req.AddedBy,
		Latitude:    defaultLatitude,
		Longitude:   defaultLongitude,
	}
	if req.Latitude != nil {
		resource.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		resource.Longitude = *req.Longitude
	}
	if resource.Contact == "" {
		resource.Contact = "N/A"
	}
	if resource.AddedBy == "" {
		resource.AddedBy = "Community Submission"
	}

	created := h.store.Resources.Append(resource)
	log.Printf("INFO: [Network] Created map resource id=%d name='%s' type=%s.", created.ID, created.Name, created.Type)
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Resource added successfully",
		"resource": created,
	})
}

// ListKnowledgeBase returns all wiki articles.
// GET /api/knowledge-base
func (h *APIHandler) ListKnowledgeBase(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Articles.List())
}

// CreateKnowledgeBaseArticle contributes an article to the wiki. The
// excerpt is derived from the full content when not supplied.
// POST /api/knowledge-base
func (h *APIHandler) CreateKnowledgeBaseArticle(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Missing required article fields.", err, err.Error())
		return
	}

	article := models.KnowledgeBaseArticle{
		Title:       req.Title,
		Category:    req.Category,
		FullContent: req.FullContent,
		Excerpt:     req.Excerpt,
		Author:      req.Author,
	}
	if article.Excerpt == "" {
		article.Excerpt = utils.Excerpt(article.FullContent, 140)
	}
	if article.Author == "" {
		article.Author = "Community Submission"
	}

	created := h.store.Articles.Append(article)
	log.Printf("INFO: [Network] Created knowledge-base article id=%d title='%s' category=%s.", created.ID, created.Title, created.Category)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Article added to the knowledge base",
		"article": created,
	})
}

// ListActionBoard returns all action-board posts.
// GET /api/action-board
func (h *APIHandler) ListActionBoard(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Posts.List())
}

// CreateActionBoardPost publishes a community request. New posts are
// always active and stamped "Just now".
// POST /api/action-board
func (h *APIHandler) CreateActionBoardPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Missing required post fields.", err, err.Error())
		return
	}

	post := models.ActionBoardPost{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		PostedBy:    req.PostedBy,
		PostedTime:  "Just now",
		Status:      models.PostStatusActive,
	}
	if post.PostedBy == "" {
		post.PostedBy = "Anonymous User"
	}

	created := h.store.Posts.Append(post)
	log.Printf("INFO: [Network] Created action-board post id=%d type=%s title='%s'.", created.ID, created.Type, created.Title)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Post published to the action board",
		"post":    created,
	})
}
