package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/review-analyzer/internal/domain/entities"
	"github.com/johnquangdev/review-analyzer/internal/domain/repositories"
	httpmw "github.com/johnquangdev/review-analyzer/internal/infrastructure/http/middleware"
	usecaseErrors "github.com/johnquangdev/review-analyzer/internal/usecase/errors"
	reviewUsecase "github.com/johnquangdev/review-analyzer/internal/usecase/review"
	"github.com/johnquangdev/review-analyzer/pkg/jwt"
	pkgvalidator "github.com/johnquangdev/review-analyzer/pkg/validator"
)

type fakeService struct {
	rows      []*entities.Review
	submitErr error
	submitted []string
}

func (f *fakeService) Analyze(ctx context.Context, text string) (*reviewUsecase.Analysis, error) {
	return nil, errors.New("not used")
}

func (f *fakeService) Submit(ctx context.Context, text string) (*entities.Review, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, text)
	r := &entities.Review{
		ID:              uint(len(f.rows) + 1),
		ReviewText:      strings.TrimSpace(text),
		Sentiment:       entities.SentimentPositive,
		SentimentScore:  0.9,
		KeyPoints:       "[KUALITAS]: Umpan balik positif: " + strings.TrimSpace(text),
		KeyPointsSource: "heuristic",
		CreatedAt:       time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC),
	}
	f.rows = append(f.rows, r)
	return r, nil
}

func (f *fakeService) GetReview(ctx context.Context, id uint) (*entities.Review, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, usecaseErrors.ErrReviewNotFound
}

func (f *fakeService) ListReviews(ctx context.Context, filters repositories.ReviewFilters) ([]*entities.Review, int64, error) {
	if filters.Sentiment == "angry" {
		return nil, 0, usecaseErrors.ErrInvalidInput
	}
	out := make([]*entities.Review, 0, len(f.rows))
	for i := len(f.rows) - 1; i >= 0; i-- {
		out = append(out, f.rows[i])
	}
	return out, int64(len(out)), nil
}

func (f *fakeService) DeleteReview(ctx context.Context, id uint) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return usecaseErrors.ErrReviewNotFound
}

func (f *fakeService) Stats(ctx context.Context) (*entities.SentimentStats, error) {
	return &entities.SentimentStats{Total: int64(len(f.rows)), Positive: int64(len(f.rows)), AverageScore: 0.9}, nil
}

func newTestServer(svc reviewUsecase.Service, deleteMW ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	NewRouter(NewReviewHandler(svc, nil), nil, "memory", nil, deleteMW...).Setup(e)
	return e
}

func do(e *echo.Echo, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestAnalyzeReview(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"missing field", `{}`, http.StatusBadRequest, "review_text is required"},
		{"no body", ``, http.StatusBadRequest, "review_text is required"},
		{"blank", `{"review_text":"   \n"}`, http.StatusBadRequest, "review_text cannot be empty"},
		{"wrong type", `{"review_text":42}`, http.StatusBadRequest, "Invalid payload"},
		{"ok", `{"review_text":"  Barang bagus  "}`, http.StatusCreated, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(&fakeService{})
			rec := do(e, http.MethodPost, "/api/analyze-review", tt.body)
			assert.Equal(t, rec.Code, tt.wantStatus)

			body := decode(t, rec)
			if tt.wantError != "" {
				assert.Equal(t, body["error"], tt.wantError)
				return
			}
			assert.Equal(t, body["id"], float64(1))
			assert.Equal(t, body["review_text"], "Barang bagus")
			assert.Equal(t, body["sentiment"], "positive")
			assert.Equal(t, body["sentiment_score"], 0.9)
			assert.Equal(t, body["created_at"], "2024-11-01T10:00:00Z")
		})
	}
}

func TestAnalyzeReview_StorageFailure(t *testing.T) {
	e := newTestServer(&fakeService{submitErr: errors.New("db down")})
	rec := do(e, http.MethodPost, "/api/analyze-review", `{"review_text":"bagus"}`)
	assert.Equal(t, rec.Code, http.StatusInternalServerError)
	assert.NotEqual(t, decode(t, rec)["error"], nil)
}

func TestListReviews(t *testing.T) {
	svc := &fakeService{}
	svc.Submit(context.Background(), "pertama")
	svc.Submit(context.Background(), "kedua")
	e := newTestServer(svc)

	rec := do(e, http.MethodGet, "/api/reviews", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Equal(t, rec.Header().Get(HeaderTotalCount), "2")

	var rows []map[string]interface{}
	assert.Equal(t, json.Unmarshal(rec.Body.Bytes(), &rows), nil)
	assert.Equal(t, len(rows), 2)
	assert.Equal(t, rows[0]["review_text"], "kedua")

	rec = do(e, http.MethodGet, "/api/reviews?sentiment=sad", "")
	assert.Equal(t, rec.Code, http.StatusBadRequest)

	rec = do(e, http.MethodGet, "/api/reviews?limit=abc", "")
	assert.Equal(t, rec.Code, http.StatusBadRequest)
}

func TestListReviews_EmptyIsArray(t *testing.T) {
	rec := do(newTestServer(&fakeService{}), http.MethodGet, "/api/reviews", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Equal(t, strings.TrimSpace(rec.Body.String()), "[]")
}

func TestGetReview(t *testing.T) {
	svc := &fakeService{}
	svc.Submit(context.Background(), "bagus")
	e := newTestServer(svc)

	rec := do(e, http.MethodGet, "/api/reviews/1", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Equal(t, decode(t, rec)["key_points_source"], "heuristic")

	rec = do(e, http.MethodGet, "/api/reviews/9", "")
	assert.Equal(t, rec.Code, http.StatusNotFound)
	assert.Equal(t, decode(t, rec)["error"], "Review tidak ditemukan")

	rec = do(e, http.MethodGet, "/api/reviews/abc", "")
	assert.Equal(t, rec.Code, http.StatusBadRequest)
}

func TestDeleteReview(t *testing.T) {
	svc := &fakeService{}
	svc.Submit(context.Background(), "bagus")
	e := newTestServer(svc)

	rec := do(e, http.MethodDelete, "/api/reviews/1", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	body := decode(t, rec)
	assert.Equal(t, body["message"], "Review berhasil dihapus")
	assert.Equal(t, body["id"], float64(1))

	rec = do(e, http.MethodDelete, "/api/reviews/1", "")
	assert.Equal(t, rec.Code, http.StatusNotFound)
	assert.Equal(t, decode(t, rec)["error"], "Review tidak ditemukan")
}

func TestDeleteReview_AdminToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour)
	svc := &fakeService{}
	svc.Submit(context.Background(), "bagus")
	e := newTestServer(svc, httpmw.EchoAdminAuth(manager))

	rec := do(e, http.MethodDelete, "/api/reviews/1", "")
	assert.Equal(t, rec.Code, http.StatusUnauthorized)
	assert.NotEqual(t, decode(t, rec)["error"], nil)

	rec = do(e, http.MethodDelete, "/api/reviews/1", "", echo.HeaderAuthorization, "Bearer not-a-token")
	assert.Equal(t, rec.Code, http.StatusUnauthorized)

	token, err := manager.GenerateAdminToken("ops")
	assert.Equal(t, err, nil)
	rec = do(e, http.MethodDelete, "/api/reviews/1", "", echo.HeaderAuthorization, "Bearer "+token)
	assert.Equal(t, rec.Code, http.StatusOK)
}

func TestStats(t *testing.T) {
	svc := &fakeService{}
	svc.Submit(context.Background(), "bagus")
	rec := do(newTestServer(svc), http.MethodGet, "/api/reviews/stats", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	body := decode(t, rec)
	assert.Equal(t, body["total"], float64(1))
	assert.Equal(t, body["positive"], float64(1))
}

func TestHealth(t *testing.T) {
	rec := do(newTestServer(&fakeService{}), http.MethodGet, "/api/health", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Equal(t, decode(t, rec)["status"], "healthy")

	e := echo.New()
	down := PingFunc(func(ctx context.Context) error { return errors.New("refused") })
	NewRouter(nil, down, "memory", nil).Setup(e)
	rec = do(e, http.MethodGet, "/api/health", "")
	assert.Equal(t, rec.Code, http.StatusServiceUnavailable)
	assert.Equal(t, decode(t, rec)["status"], "unhealthy")
}
