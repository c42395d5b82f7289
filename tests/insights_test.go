package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"biztrack/internal/infra"
	"biztrack/internal/model"
	"biztrack/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAIUpstream mimics an OpenAI-compatible chat completions endpoint.
func fakeAIUpstream(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func buildInsightSvc(upstreamURL string, cb *infra.CircuitBreaker) (service.InsightService, *stubInsightRepo, *stubEvents) {
	insightRepo := &stubInsightRepo{}
	productRepo := newStubProductRepo()
	seedProduct(productRepo, "Low Item", "", 1, 5)
	events := &stubEvents{}

	ai := infra.NewAIClient(upstreamURL, "test-key", "gpt-5")
	svc := service.NewInsightService(insightRepo, stubDashboardRepo{}, productRepo, ai, cb, events)
	return svc, insightRepo, events
}

func TestGenerateInsights_PersistsUpstreamResults(t *testing.T) {
	content := `{"insights":[
		{"type":"recommendation","title":"Restock Low Item","description":"Only 1 unit left","priority":"high"},
		{"type":"forecast","title":"Revenue trend","description":"Sales rising","priority":"low"}
	]}`
	srv := fakeAIUpstream(t, http.StatusOK, content)
	defer srv.Close()

	svc, repo, events := buildInsightSvc(srv.URL, infra.NewCircuitBreaker(infra.DefaultCBConfig()))

	n, err := svc.GenerateAndStore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, repo.insights, 2)
	assert.Equal(t, "Restock Low Item", repo.insights[0].Title)
	assert.Equal(t, "high", repo.insights[0].Priority)
	assert.Len(t, events.byType("insights_ready"), 1)
}

func TestGenerateInsights_MalformedContentFails(t *testing.T) {
	srv := fakeAIUpstream(t, http.StatusOK, "not json at all")
	defer srv.Close()

	svc, repo, _ := buildInsightSvc(srv.URL, infra.NewCircuitBreaker(infra.DefaultCBConfig()))

	_, err := svc.GenerateAndStore(context.Background())
	require.Error(t, err)
	assert.Empty(t, repo.insights)
}

func TestGenerateInsights_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	srv := fakeAIUpstream(t, http.StatusBadGateway, "")
	defer srv.Close()

	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		OpenTimeout:      time.Minute,
	})
	svc, _, _ := buildInsightSvc(srv.URL, cb)

	_, err := svc.GenerateAndStore(context.Background())
	require.Error(t, err)
	_, err = svc.GenerateAndStore(context.Background())
	require.Error(t, err)

	// The breaker is now open: the upstream must not even be contacted.
	_, err = svc.GenerateAndStore(context.Background())
	assert.ErrorIs(t, err, infra.ErrCircuitOpen)
}

func TestGenerateInsights_EmptyRunReturnsNothing(t *testing.T) {
	srv := fakeAIUpstream(t, http.StatusOK, `{"insights":[]}`)
	defer srv.Close()

	svc, repo, events := buildInsightSvc(srv.URL, infra.NewCircuitBreaker(infra.DefaultCBConfig()))
	// A leftover insight from an earlier run must not surface as if it
	// were freshly generated.
	repo.insights = append(repo.insights, &model.AiInsight{
		Type: "recommendation", Title: "Old advice", Priority: "low",
	})

	resp, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Generated)
	assert.Empty(t, resp.Insights)
	assert.Empty(t, events.byType("insights_ready"))
}

func TestGenerateInsights_EmptyDefaultsFilledIn(t *testing.T) {
	content := `{"insights":[{"title":"Untyped","description":"No type or priority set"}]}`
	srv := fakeAIUpstream(t, http.StatusOK, content)
	defer srv.Close()

	svc, repo, _ := buildInsightSvc(srv.URL, infra.NewCircuitBreaker(infra.DefaultCBConfig()))

	n, err := svc.GenerateAndStore(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, "recommendation", repo.insights[0].Type)
	assert.Equal(t, "medium", repo.insights[0].Priority)
}
