package model

// The schema stores these fields as varchar, so the closed sets are enforced
// on every write path in the store layer rather than by the database.

// Incident severities, lowest to highest.
var IncidentSeverities = []string{"low", "medium", "high", "critical"}

// Incident workflow states. Any state may follow any state.
var IncidentStatuses = []string{"open", "investigating", "resolved"}

// AI model categories.
var AIModelTypes = []string{"threat_detection", "bias_monitor", "content_filter"}

// AI model lifecycle states.
var AIModelStatuses = []string{"active", "inactive", "training"}

// Ethics audit criteria.
var AuditTypes = []string{"bias", "fairness", "transparency", "accountability"}

// Ethics audit outcomes.
var AuditResults = []string{"passed", "failed", "warning"}

func contains(value string, set []string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

func ValidIncidentSeverity(s string) bool { return contains(s, IncidentSeverities) }
func ValidIncidentStatus(s string) bool   { return contains(s, IncidentStatuses) }
func ValidAIModelType(s string) bool      { return contains(s, AIModelTypes) }
func ValidAIModelStatus(s string) bool    { return contains(s, AIModelStatuses) }
func ValidAuditType(s string) bool        { return contains(s, AuditTypes) }
func ValidAuditResult(s string) bool      { return contains(s, AuditResults) }
