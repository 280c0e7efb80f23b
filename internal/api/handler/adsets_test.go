package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/meta-sync-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-sync-agent/internal/api/handler/router"
	"github.com/vfg2006/meta-sync-agent/pkg/apiErrors"
)

// stubIntegrator registra as chamadas recebidas. Métodos não sobrescritos
// vêm da interface embutida e explodem se alcançados, o que falha o teste.
type stubIntegrator struct {
	meta.Integrator

	connected            bool
	testConnectionCalls  int
	updateStatusCalls    int
	updateBudgetCalls    int
	updateRuleStatusCall int

	createdCampaign []string
}

func (s *stubIntegrator) TestConnection() bool {
	s.testConnectionCalls++
	return s.connected
}

func (s *stubIntegrator) UpdateAdSetStatus(adSetID, status string) (metadomain.RawNode, error) {
	s.updateStatusCalls++
	return metadomain.RawNode{"success": true}, nil
}

func (s *stubIntegrator) UpdateAdSetBudget(adSetID string, dailyBudget, lifetimeBudget *int) (metadomain.RawNode, error) {
	s.updateBudgetCalls++
	return metadomain.RawNode{"success": true}, nil
}

func (s *stubIntegrator) UpdateRuleStatus(ruleID, status string) (metadomain.RawNode, error) {
	s.updateRuleStatusCall++
	return metadomain.RawNode{"success": true}, nil
}

func (s *stubIntegrator) CreateCampaign(name, objective, status string) (metadomain.RawNode, error) {
	if name == "" {
		return nil, apiErrors.NewValidationError("Campaign name is required")
	}

	s.createdCampaign = []string{name, objective, status}
	return metadomain.RawNode{"id": "c_novo"}, nil
}

func doRequest(t *testing.T, svc meta.Integrator, method, path, body string) map[string]any {
	t.Helper()

	rt := router.New(
		router.WithRoutes(Campaigns(svc)...),
		router.WithRoutes(AdSets(svc)...),
		router.WithRoutes(Rules(svc)...),
	)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestUpdateAdSetStatusRejectsInvalidStatusBeforeNetwork(t *testing.T) {
	svc := &stubIntegrator{connected: true}

	envelope := doRequest(t, svc, http.MethodPut, "/meta/adsets/as1/status", `{"status": "DELETED"}`)

	assert.Equal(t, "error", envelope["status"])
	assert.Contains(t, envelope["message"], "Invalid status")
	assert.Equal(t, 0, svc.testConnectionCalls)
	assert.Equal(t, 0, svc.updateStatusCalls)
}

func TestUpdateAdSetStatusRequiresStatus(t *testing.T) {
	svc := &stubIntegrator{connected: true}

	envelope := doRequest(t, svc, http.MethodPut, "/meta/adsets/as1/status", `{}`)

	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, "Status is required", envelope["message"])
	assert.Equal(t, 0, svc.testConnectionCalls)
}

func TestUpdateAdSetStatusSuccess(t *testing.T) {
	svc := &stubIntegrator{connected: true}

	envelope := doRequest(t, svc, http.MethodPut, "/meta/adsets/as1/status", `{"status": "PAUSED"}`)

	assert.Equal(t, "success", envelope["status"])
	assert.Equal(t, "Ad set as1 status updated to PAUSED", envelope["message"])
	assert.Equal(t, "PAUSED", envelope["new_status"])
	assert.Equal(t, 1, svc.testConnectionCalls)
	assert.Equal(t, 1, svc.updateStatusCalls)
}

func TestUpdateAdSetStatusConnectionFailure(t *testing.T) {
	svc := &stubIntegrator{connected: false}

	envelope := doRequest(t, svc, http.MethodPut, "/meta/adsets/as1/status", `{"status": "ACTIVE"}`)

	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, "Meta API connection failed", envelope["message"])
	assert.Equal(t, 0, svc.updateStatusCalls)
}

func TestUpdateAdSetBudgetRejectsEmptyBudgetBeforeNetwork(t *testing.T) {
	svc := &stubIntegrator{connected: true}

	envelope := doRequest(t, svc, http.MethodPut, "/meta/adsets/as1/budget", `{}`)

	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, "At least one budget type (daily_budget or lifetime_budget) is required", envelope["message"])
	assert.Equal(t, 0, svc.testConnectionCalls)
	assert.Equal(t, 0, svc.updateBudgetCalls)
}

func TestUpdateAdSetBudgetSuccess(t *testing.T) {
	svc := &stubIntegrator{connected: true}

	envelope := doRequest(t, svc, http.MethodPut, "/meta/adsets/as1/budget", `{"daily_budget": 5000}`)

	assert.Equal(t, "success", envelope["status"])
	assert.Equal(t, "Ad set as1 budget updated successfully", envelope["message"])
	assert.Equal(t, float64(5000), envelope["daily_budget"])
	assert.Nil(t, envelope["lifetime_budget"])
	assert.Equal(t, 1, svc.updateBudgetCalls)
}

func TestUpdateRuleStatusRejectsInvalidStatusBeforeNetwork(t *testing.T) {
	svc := &stubIntegrator{connected: true}

	envelope := doRequest(t, svc, http.MethodPut, "/meta/rules/r1/status", `{"status": "PAUSED"}`)

	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, "Status must be ENABLED or DISABLED", envelope["message"])
	assert.Equal(t, 0, svc.testConnectionCalls)
	assert.Equal(t, 0, svc.updateRuleStatusCall)
}
