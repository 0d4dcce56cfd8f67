package domain

// TemplateStatus reports the cache state of one markup source.
type TemplateStatus struct {
	Rel       string
	Artifact  string
	Freshness Freshness
	Record    *CompileRecord
}
