package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"moim/internal/domain"
	"moim/internal/service"
)

// recommendRequest is the wire shape for recommendation requests. Either
// courses or file_id must be present; courses win when both are.
type recommendRequest struct {
	FileID   *uuid.UUID          `json:"file_id"`
	Courses  []domain.CourseStep `json:"courses"`
	Metadata *domain.Metadata    `json:"metadata"`
	Personas []domain.Persona    `json:"personas"`
}

// RecommendationHandler handles itinerary recommendation endpoints.
type RecommendationHandler struct {
	recService service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recService: recService}
}

// Recommend handles POST /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	userID, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if req.FileID == nil && len(req.Courses) == 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_RECOMMENDATION_INPUT",
			"either courses or file_id must be provided")
		return
	}

	rec, err := h.recService.Recommend(c.Request.Context(), service.RecommendationInput{
		OwnerID:  userID,
		FileID:   req.FileID,
		Courses:  req.Courses,
		Metadata: req.Metadata,
		Personas: req.Personas,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}
