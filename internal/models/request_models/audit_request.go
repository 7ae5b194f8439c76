package request_models

// AuditListFilter collects the query-string filters of the audit list endpoint.
type AuditListFilter struct {
	Action       int    `form:"action"`
	TargetModel  string `form:"target_model"`
	TargetID     string `form:"target_id"`
	CreationDate string `form:"creation_date"`
}
