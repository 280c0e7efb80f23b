package metadomain

// AutomatedRuleInput descreve uma regra automatizada a ser criada na conta.
// As specs são blobs estruturados repassados à plataforma: evaluation_spec
// escopa a regra (entity_type, time_preset, filtros de campaign.id/adset.id),
// execution_spec define a ação e schedule_spec a recorrência.
type AutomatedRuleInput struct {
	Name           string         `json:"name"`
	EvaluationSpec map[string]any `json:"evaluation_spec"`
	ExecutionSpec  map[string]any `json:"execution_spec"`
	ScheduleSpec   map[string]any `json:"schedule_spec,omitempty"`
	Status         string         `json:"status,omitempty"`
}

// DefaultScheduleSpec é o agendamento aplicado quando o chamador omite
// schedule_spec: avaliação diária.
func DefaultScheduleSpec() map[string]any {
	return map[string]any{"schedule_type": "DAILY"}
}
