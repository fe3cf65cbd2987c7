package services

import (
	"context"
	"strings"
)

// Canned PawBuddy answers for the keyword responder.
const (
	staticVetReply = "Dr. Sharma's Pet Clinic at 24B, Jessore Road, North Dumdum is highly recommended by our community. " +
		"They're open Mon-Sat: 10AM - 8PM and can be reached at +91 98765 43210."
	staticRescueReply = "If you've found an animal that needs rescue in North Dumdum, please post on our Action Board with details and location. " +
		"Our community members will help coordinate rescue efforts."
	staticAdoptionReply = "Check our Adoption page for pets currently available in North Dumdum. " +
		"You can also join our Birati Cat Welfare group if you're specifically interested in adopting a cat."
	staticVolunteerReply = "We have several volunteer opportunities in North Dumdum! " +
		"You can help with transport, fostering, or participating in awareness campaigns. Check our Volunteer page for details."
	staticDefaultReply = "Hi! I'm PawBuddy, your North Dumdum Pet Assistant. I can help with information about local veterinarians, " +
		"pet adoption, volunteering, or pet-friendly places in North Dumdum. How can I help you today?"
)

// StaticResponder answers from local substring rules with no external
// dependency. It is the degenerate variant of the chat relay, selected
// with llm.responder: static.
type StaticResponder struct{}

// NewStaticResponder creates the keyword responder.
func NewStaticResponder() *StaticResponder { return &StaticResponder{} }

// Reply matches the message against the keyword rules, first hit wins,
// falling through to the default greeting. Never fails.
func (s *StaticResponder) Reply(_ context.Context, message string) (string, error) {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "vet") || strings.Contains(m, "doctor") || strings.Contains(m, "clinic"):
		return staticVetReply, nil
	case strings.Contains(m, "rescue") || strings.Contains(m, "help animal") || strings.Contains(m, "found stray"):
		return staticRescueReply, nil
	case strings.Contains(m, "adopt"):
		return staticAdoptionReply, nil
	case strings.Contains(m, "volunteer") || strings.Contains(m, "help out"):
		return staticVolunteerReply, nil
	default:
		return staticDefaultReply, nil
	}
}
