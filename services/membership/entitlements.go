package membership

import (
	"errors"

	"wellnest/models"
)

// Validation errors surfaced before any provisioning write happens.
var (
	ErrInvalidPlan        = errors.New("invalid membership plan")
	ErrNoPublishedCourses = errors.New("no published courses match the plan entitlements")
)

// PlanCatalog is an immutable mapping from plan tier to the ordered course
// titles the tier grants. Course titles are the matching key against the
// catalog (see matcher.go); renaming a course silently breaks the link, so
// changes here must move in lockstep with course titles.
type PlanCatalog struct {
	version int
	grants  map[string][]string
}

// NewPlanCatalog copies the given grants so later mutation of the input
// cannot change resolution results.
func NewPlanCatalog(version int, grants map[string][]string) *PlanCatalog {
	copied := make(map[string][]string, len(grants))
	for plan, titles := range grants {
		copied[plan] = append([]string(nil), titles...)
	}
	return &PlanCatalog{version: version, grants: copied}
}

// DefaultCatalog is the live plan configuration.
var DefaultCatalog = NewPlanCatalog(1, map[string][]string{
	models.PlanBronze: {"Physical Wellness"},
	models.PlanCopper: {"Physical Wellness", "Mental Wellness"},
	models.PlanSilver: {"Physical Wellness", "Mental Wellness", "Financial Wellness"},
})

// Version reports the catalog revision.
func (c *PlanCatalog) Version() int {
	return c.version
}

// Resolve returns the course titles granted by plan, or ErrInvalidPlan for
// unknown plan keys. The returned slice is a copy.
func (c *PlanCatalog) Resolve(plan string) ([]string, error) {
	titles, ok := c.grants[plan]
	if !ok {
		return nil, ErrInvalidPlan
	}
	return append([]string(nil), titles...), nil
}
