package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/FrozenSaturn/pawsome/services"
	"github.com/FrozenSaturn/pawsome/utils"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// PawBuddyChat relays one chat message to the configured responder and
// returns the reply. Each request is stateless; the relay rebuilds the
// same persona seed every time.
// POST /api/pawbuddy-chat
func (h *APIHandler) PawBuddyChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Message is required.", err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		utils.SendJSONError(c, http.StatusBadRequest, "Message is required.", nil)
		return
	}

	reply, err := h.responder.Reply(c.Request.Context(), req.Message)
	if err != nil {
		// The user-facing text goes out under the "response" key so the
		// chat widget renders it as a PawBuddy message, not an error
		// banner. Details stay in the server log; nothing is retried.
		if errors.Is(err, services.ErrNotConfigured) {
			log.Printf("WARN: [Chat] PawBuddy unavailable (no credential configured).")
			c.JSON(http.StatusInternalServerError, gin.H{"response": services.UnavailableMessage})
			return
		}
		log.Printf("ERROR: [Chat] PawBuddy responder failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"response": services.FailureMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
