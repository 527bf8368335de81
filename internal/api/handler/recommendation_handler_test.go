package handler

import (
	"Emporium/internal/api/dto"
	"Emporium/internal/service"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecoService struct {
	gotAnchor uint64
	gotUser   uint64
	gotLimit  int
	gotOffset int
	called    bool

	mixed    *dto.RecommendListDTO
	mixedErr error
}

func (s *stubRecoService) GetTrending(_ context.Context, limit int) []service.Recommendation {
	s.called = true
	s.gotLimit = limit
	return []service.Recommendation{}
}

func (s *stubRecoService) GetSimilar(_ context.Context, productID uint64, limit int) ([]service.Recommendation, error) {
	s.called = true
	s.gotAnchor = productID
	s.gotLimit = limit
	return []service.Recommendation{}, nil
}

func (s *stubRecoService) GetPersonalized(_ context.Context, userID uint64, limit int) ([]service.Recommendation, error) {
	s.called = true
	s.gotUser = userID
	s.gotLimit = limit
	return []service.Recommendation{}, nil
}

func (s *stubRecoService) GetPopular(_ context.Context, limit int) ([]service.Recommendation, error) {
	s.called = true
	s.gotLimit = limit
	return []service.Recommendation{}, nil
}

func (s *stubRecoService) GetMixed(_ context.Context, anchorProductID, userID uint64, limit, offset int) (*dto.RecommendListDTO, error) {
	s.called = true
	s.gotAnchor = anchorProductID
	s.gotUser = userID
	s.gotLimit = limit
	s.gotOffset = offset
	if s.mixedErr != nil {
		return nil, s.mixedErr
	}
	if s.mixed != nil {
		return s.mixed, nil
	}
	return &dto.RecommendListDTO{List: []*dto.RecommendationDTO{}}, nil
}

func newTestRouter(stub *stubRecoService, userID uint64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	h := NewRecommendationHandler(stub)
	r.GET("/api/recommendations", h.GetRecommendations)
	return r
}

func doGet(t *testing.T, r *gin.Engine, url string) (*httptest.ResponseRecorder, *dto.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)

	var body dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, &body
}

func TestGetRecommendationsDefaults(t *testing.T) {
	stub := &stubRecoService{}
	r := newTestRouter(stub, 0)

	w, body := doGet(t, r, "/api/recommendations?anchor=7")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, body.Code)

	assert.Equal(t, uint64(7), stub.gotAnchor)
	assert.Equal(t, uint64(0), stub.gotUser)
	assert.Equal(t, 12, stub.gotLimit)
	assert.Equal(t, 0, stub.gotOffset)
}

func TestGetRecommendationsClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
		wantOff   int
	}{
		{"above maximum", "limit=500", 48, 0},
		{"negative limit", "limit=-5", 12, 0},
		{"negative offset", "limit=10&offset=-3", 10, 0},
		{"in range", "limit=24&offset=6", 24, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubRecoService{}
			r := newTestRouter(stub, 0)

			_, body := doGet(t, r, "/api/recommendations?anchor=1&"+tt.query)
			assert.Equal(t, 200, body.Code)
			assert.Equal(t, tt.wantLimit, stub.gotLimit)
			assert.Equal(t, tt.wantOff, stub.gotOffset)
		})
	}
}

func TestGetRecommendationsMissingAnchor(t *testing.T) {
	stub := &stubRecoService{}
	r := newTestRouter(stub, 0)

	_, body := doGet(t, r, "/api/recommendations")
	assert.Equal(t, 400, body.Code)
	assert.False(t, stub.called)
}

func TestGetRecommendationsCacheHeader(t *testing.T) {
	stub := &stubRecoService{}
	r := newTestRouter(stub, 0)

	w, _ := doGet(t, r, "/api/recommendations?anchor=1")
	assert.Equal(t, "public, max-age=30, stale-while-revalidate=60", w.Header().Get("Cache-Control"))
}

func TestGetRecommendationsDegradesToEmpty(t *testing.T) {
	stub := &stubRecoService{mixedErr: errors.New("all sources down")}
	r := newTestRouter(stub, 0)

	w, body := doGet(t, r, "/api/recommendations?anchor=1")

	// 推荐接口不向外暴露 5xx，故障时给空列表
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, body.Code)

	raw, err := json.Marshal(body.Data)
	require.NoError(t, err)
	var list dto.RecommendListDTO
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Empty(t, list.List)
	assert.Zero(t, list.Count)
}

func TestGetRecommendationsForwardsUser(t *testing.T) {
	stub := &stubRecoService{}
	r := newTestRouter(stub, 42)

	_, body := doGet(t, r, "/api/recommendations?anchor=1")
	assert.Equal(t, 200, body.Code)
	assert.Equal(t, uint64(42), stub.gotUser)
}
