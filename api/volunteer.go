package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrozenSaturn/pawsome/models"
	"github.com/FrozenSaturn/pawsome/utils"
)

type volunteerInterestRequest struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required"`
	Phone        string   `json:"phone"`
	Interests    []string `json:"interests"`
	Availability string   `json:"availability"`
	Message      string   `json:"message"`
}

// SubmitVolunteerInterest records a volunteer sign-up. Submissions are
// held in memory and read by coordinators from the server log; there
// is no retrieval endpoint.
// POST /api/volunteer-interest
func (h *APIHandler) SubmitVolunteerInterest(c *gin.Context) {
	var req volunteerInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Name and email are required.", err, err.Error())
		return
	}

	interest := models.VolunteerInterest{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Interests:    req.Interests,
		Availability: req.Availability,
		Message:      req.Message,
	}
	created := h.store.Volunteers.Append(interest)
	log.Printf("INFO: [Volunteer] Recorded volunteer interest id=%d name='%s' email='%s' interests=%v.",
		created.ID, created.Name, created.Email, created.Interests)

	c.JSON(http.StatusOK, gin.H{
		"message": "Thank you for your interest in volunteering! A coordinator will reach out to you soon.",
	})
}
