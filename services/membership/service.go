package membership

import "gorm.io/gorm"

// Service is the membership entitlement provisioning engine. All writes it
// performs are idempotent: uniqueness constraints on enrollments, groups and
// group members arbitrate concurrent or retried calls, so the whole
// provisioning flow is safe to re-run.
type Service struct {
	db      *gorm.DB
	catalog *PlanCatalog
}

// NewService builds a Service on the given database handle and plan catalog.
// Pass DefaultCatalog unless a caller needs a pinned configuration.
func NewService(db *gorm.DB, catalog *PlanCatalog) *Service {
	return &Service{db: db, catalog: catalog}
}

// Catalog exposes the injected plan configuration.
func (s *Service) Catalog() *PlanCatalog {
	return s.catalog
}
