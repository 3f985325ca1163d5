package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"moim/internal/domain"
	"moim/internal/handler"
	"moim/internal/middleware"
	"moim/internal/service"
	"moim/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authedContext(t *testing.T, w *httptest.ResponseRecorder, userID uuid.UUID, body []byte) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextKeyUserID, userID)
	return c
}

func TestRecommendationHandler_Recommend_Success(t *testing.T) {
	mockRec := new(mocks.MockRecommendationService)
	h := handler.NewRecommendationHandler(mockRec)

	userID := uuid.New()
	fileID := uuid.New()
	rec := &service.Recommendation{
		Analysis: domain.AnalysisResult{
			Courses: []domain.CourseStep{{Step: 1, Category: "맛집", FinalQuery: "합정 맛집"}},
		},
		Itineraries: []domain.Itinerary{{ID: 1, Label: "추천 경로 1"}},
	}

	mockRec.On("Recommend", mock.Anything, mock.MatchedBy(func(in service.RecommendationInput) bool {
		return in.OwnerID == userID && in.FileID != nil && *in.FileID == fileID && len(in.Courses) == 0
	})).Return(rec, nil)

	body, _ := json.Marshal(map[string]interface{}{"file_id": fileID})

	w := httptest.NewRecorder()
	h.Recommend(authedContext(t, w, userID, body))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockRec.AssertExpectations(t)
}

func TestRecommendationHandler_Recommend_MissingInput(t *testing.T) {
	mockRec := new(mocks.MockRecommendationService)
	h := handler.NewRecommendationHandler(mockRec)

	body := []byte(`{"personas": []}`)

	w := httptest.NewRecorder()
	h.Recommend(authedContext(t, w, uuid.New(), body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRec.AssertNotCalled(t, "Recommend", mock.Anything, mock.Anything)
}

func TestRecommendationHandler_Recommend_CoursesOnly(t *testing.T) {
	mockRec := new(mocks.MockRecommendationService)
	h := handler.NewRecommendationHandler(mockRec)

	userID := uuid.New()
	rec := &service.Recommendation{Itineraries: []domain.Itinerary{{ID: 1, Label: "추천 경로 1"}}}

	mockRec.On("Recommend", mock.Anything, mock.MatchedBy(func(in service.RecommendationInput) bool {
		return in.FileID == nil && len(in.Courses) == 1 && in.Courses[0].FinalQuery == "합정 와인바"
	})).Return(rec, nil)

	body := []byte(`{"courses": [{"step": 1, "category": "술집", "final_query": "합정 와인바"}]}`)

	w := httptest.NewRecorder()
	h.Recommend(authedContext(t, w, userID, body))

	assert.Equal(t, http.StatusOK, w.Code)
	mockRec.AssertExpectations(t)
}

func TestRecommendationHandler_Recommend_ServiceError(t *testing.T) {
	mockRec := new(mocks.MockRecommendationService)
	h := handler.NewRecommendationHandler(mockRec)

	mockRec.On("Recommend", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	fileID := uuid.New()
	body, _ := json.Marshal(map[string]interface{}{"file_id": fileID})

	w := httptest.NewRecorder()
	h.Recommend(authedContext(t, w, uuid.New(), body))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecommendationHandler_Recommend_NoAuthContext(t *testing.T) {
	mockRec := new(mocks.MockRecommendationService)
	h := handler.NewRecommendationHandler(mockRec)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader([]byte(`{}`)))

	h.Recommend(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
