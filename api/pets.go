package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrozenSaturn/pawsome/models"
	"github.com/FrozenSaturn/pawsome/utils"
)

type createPetRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Breed       string `json:"breed" binding:"required"`
	Age         string `json:"age" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Image       string `json:"image"`
	Contact     string `json:"contact"`
}

// ListAdoptablePets returns all adoption listings.
// GET /api/adoptable-pets
func (h *APIHandler) ListAdoptablePets(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Pets.List())
}

// CreateAdoptablePet adds a new adoption listing. A listing without a
// photo gets a timestamp-derived placeholder image; a listing without
// contact details is attributed to an anonymous user.
// POST /api/adoptable-pets
func (h *APIHandler) CreateAdoptablePet(c *gin.Context) {
	var req createPetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Missing required pet fields.", err, err.Error())
		return
	}

	pet := models.AdoptablePet{
		Name:        req.Name,
		Type:        req.Type,
		Breed:       req.Breed,
		Age:         req.Age,
		Gender:      req.Gender,
		Description: req.Description,
		Location:    req.Location,
		Image:       req.Image,
		Contact:     req.Contact,
	}
	if pet.Image == "" {
		pet.Image = utils.PlaceholderImage()
	}
	if pet.Contact == "" {
		pet.Contact = "Anonymous User"
	}

	created := h.store.Pets.Append(pet)
	log.Printf("INFO: [Adoption] Created adoptable pet id=%d name='%s' (%s, %s).", created.ID, created.Name, created.Type, created.Location)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Pet listed for adoption successfully",
		"pet":     created,
	})
}
