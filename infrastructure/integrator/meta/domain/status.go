package metadomain

// Status de ciclo de vida aceitos pela API para campanhas, conjuntos de
// anúncios e anúncios. O effective_status computado pela plataforma pode
// adicionalmente refletir arquivamento via pai.
const (
	StatusActive   = "ACTIVE"
	StatusPaused   = "PAUSED"
	StatusArchived = "ARCHIVED"
)

// Status aceitos para regras automatizadas
const (
	RuleStatusEnabled  = "ENABLED"
	RuleStatusDisabled = "DISABLED"
)

// ValidAdSetStatus verifica se o status é aceito para atualização de conjuntos
func ValidAdSetStatus(status string) bool {
	switch status {
	case StatusActive, StatusPaused, StatusArchived:
		return true
	}
	return false
}

// ValidRuleStatus verifica se o status é aceito para regras automatizadas
func ValidRuleStatus(status string) bool {
	return status == RuleStatusEnabled || status == RuleStatusDisabled
}
