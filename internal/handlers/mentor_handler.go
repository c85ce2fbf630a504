package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/services"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

type MentorHandler struct {
	mentors    services.MentorServiceInterface
	engagement services.EngagementServiceInterface
}

func NewMentorHandler(mentors services.MentorServiceInterface, engagement services.EngagementServiceInterface) *MentorHandler {
	return &MentorHandler{mentors: mentors, engagement: engagement}
}

// GetMentor returns the stored mentor record
func (h *MentorHandler) GetMentor(c *gin.Context) {
	id, ok := mentorID(c)
	if !ok {
		return
	}

	mentor, err := h.mentors.GetMentorByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Mentor not found")
		return
	}

	c.JSON(http.StatusOK, mentor)
}

// ListCards returns the card view of every visible mentor
func (h *MentorHandler) ListCards(c *gin.Context) {
	cards, err := h.engagement.ListCards(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Mentors not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"mentors": cards})
}

// GetCard returns the grid card of one mentor
func (h *MentorHandler) GetCard(c *gin.Context) {
	id, ok := mentorID(c)
	if !ok {
		return
	}

	card, err := h.engagement.GetCard(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Mentor not found")
		return
	}

	c.JSON(http.StatusOK, card)
}

// GetPanel returns the detail panel, personalised for a signed-in requester
func (h *MentorHandler) GetPanel(c *gin.Context) {
	id, ok := mentorID(c)
	if !ok {
		return
	}

	panel, err := h.engagement.GetPanel(c.Request.Context(), id, middleware.RequesterFirstName(c))
	if err != nil {
		respondServiceError(c, err, "Mentor not found")
		return
	}

	c.JSON(http.StatusOK, panel)
}

// InvalidateCache drops every cached mentor record
func (h *MentorHandler) InvalidateCache(c *gin.Context) {
	h.mentors.InvalidateCache()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func mentorID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid ID", apperrors.InvalidInputError("id", c.Param("id")))
		return 0, false
	}
	return id, true
}
