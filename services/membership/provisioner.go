package membership

import (
	"wellnest/models"
)

// CourseFailure records a single course whose provisioning failed for a
// reason other than "already provisioned". Other courses in the same request
// are unaffected.
type CourseFailure struct {
	CourseID uint   `json:"courseId"`
	Title    string `json:"title"`
	Reason   string `json:"reason"`
}

// Result is the aggregate outcome of one provisioning run. A course appears
// in exactly one of the three lists.
type Result struct {
	Plan                   string          `json:"plan"`
	EnrolledCourses        []string        `json:"enrolledCourses"`
	AlreadyEnrolledCourses []string        `json:"alreadyEnrolledCourses"`
	FailedCourses          []CourseFailure `json:"failedCourses"`
}

// UpdatePlan validates the plan against the catalog and updates the user's
// subscription fields without provisioning anything. Used by admin plan
// changes with autoEnroll disabled.
func (s *Service) UpdatePlan(userID uint, plan string) error {
	if _, err := s.catalog.Resolve(plan); err != nil {
		return err
	}
	return s.applyPlan(userID, plan)
}

// Provision runs the full entitlement flow for a plan change: validate the
// plan, update the user's subscription fields, resolve entitled published
// courses, then enroll the user and join them to each course community.
// Per-course failures are isolated; the user's plan update is never rolled
// back, so a retry after ErrNoPublishedCourses or a partial failure simply
// converges on the fully provisioned state.
func (s *Service) Provision(userID uint, plan string) (*Result, error) {
	titles, err := s.catalog.Resolve(plan)
	if err != nil {
		return nil, err
	}

	if err := s.applyPlan(userID, plan); err != nil {
		return nil, err
	}

	courses, err := s.MatchPublishedCourses(titles)
	if err != nil {
		return nil, err
	}

	result := &Result{Plan: plan}
	for i := range courses {
		course := &courses[i]

		enrolled, err := s.ProvisionEnrollment(userID, course)
		if err != nil {
			result.FailedCourses = append(result.FailedCourses, CourseFailure{
				CourseID: course.ID, Title: course.Title, Reason: err.Error(),
			})
			continue
		}

		joined, err := s.ProvisionCommunity(userID, course)
		if err != nil {
			result.FailedCourses = append(result.FailedCourses, CourseFailure{
				CourseID: course.ID, Title: course.Title, Reason: err.Error(),
			})
			continue
		}

		if enrolled || joined {
			result.EnrolledCourses = append(result.EnrolledCourses, course.Title)
		} else {
			result.AlreadyEnrolledCourses = append(result.AlreadyEnrolledCourses, course.Title)
		}
	}

	return result, nil
}

// applyPlan writes the user's subscription fields. Last write wins; per-user
// contention is expected to be rare.
func (s *Service) applyPlan(userID uint, plan string) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"subscription_plan":   plan,
			"subscription_status": models.SubscriptionStatusActive,
		}).Error
}
