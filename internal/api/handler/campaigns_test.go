package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMetaCampaignRequiresName(t *testing.T) {
	svc := &stubIntegrator{connected: true}

	envelope := doRequest(t, svc, http.MethodPost, "/meta/campaigns", `{"objective": "OUTCOME_SALES"}`)

	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, "Campaign name is required", envelope["message"])
	assert.Nil(t, svc.createdCampaign)
}

func TestCreateMetaCampaignAppliesDefaults(t *testing.T) {
	svc := &stubIntegrator{connected: true}

	envelope := doRequest(t, svc, http.MethodPost, "/meta/campaigns", `{"name": "Campanha de Tráfego"}`)

	assert.Equal(t, "success", envelope["status"])
	assert.Equal(t, []string{"Campanha de Tráfego", "OUTCOME_TRAFFIC", "PAUSED"}, svc.createdCampaign)

	data, ok := envelope["data"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "c_novo", data["id"])
}

func TestCreateMetaCampaignInvalidBody(t *testing.T) {
	svc := &stubIntegrator{connected: true}

	envelope := doRequest(t, svc, http.MethodPost, "/meta/campaigns", `{nao é json`)

	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, "Invalid request body", envelope["message"])
}
