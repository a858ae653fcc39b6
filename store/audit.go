package store

import "github.com/daifend/platform/model"

// ListAIEthicsAudits returns audits newest-audit-date first, optionally
// filtered to a single model. A modelID of zero means no filter.
func (s *Storage) ListAIEthicsAudits(modelID uint) ([]model.AIEthicsAudit, error) {
	query := s.db.Order("audit_date DESC")
	if modelID != 0 {
		query = query.Where("model_id = ?", modelID)
	}
	var audits []model.AIEthicsAudit
	err := query.Find(&audits).Error
	return audits, err
}

// CreateAIEthicsAudit validates and persists a new ethics audit.
func (s *Storage) CreateAIEthicsAudit(a *model.AIEthicsAudit) error {
	if a.ModelID == 0 {
		return invalidf("modelId is required")
	}
	if a.AuditedBy == 0 {
		return invalidf("auditedBy is required")
	}
	if a.Findings == "" {
		return invalidf("findings is required")
	}
	if a.AuditDate.IsZero() {
		return invalidf("auditDate is required")
	}
	if !model.ValidAuditType(a.AuditType) {
		return invalidf("auditType must be one of %v", model.AuditTypes)
	}
	if !model.ValidAuditResult(a.Result) {
		return invalidf("result must be one of %v", model.AuditResults)
	}
	if a.Score != "" && !isDecimal(a.Score) {
		return invalidf("score must be a decimal string")
	}
	return s.db.Create(a).Error
}
