package membership

import (
	"strings"

	"wellnest/models"
)

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// MatchPublishedCourses resolves entitlement titles to live published
// courses. A course matches a title when both are exactly equal after
// trimming whitespace and lower-casing; titles with no published match are
// skipped. Returns ErrNoPublishedCourses when nothing matches at all.
func (s *Service) MatchPublishedCourses(titles []string) ([]models.Course, error) {
	var published []models.Course
	if err := s.db.Where("is_published = ? AND is_deleted = ?", true, false).Find(&published).Error; err != nil {
		return nil, err
	}

	byTitle := make(map[string]models.Course, len(published))
	for _, course := range published {
		key := normalizeTitle(course.Title)
		if _, exists := byTitle[key]; !exists {
			byTitle[key] = course
		}
	}

	var matched []models.Course
	seen := make(map[uint]bool)
	for _, title := range titles {
		course, ok := byTitle[normalizeTitle(title)]
		if !ok || seen[course.ID] {
			continue
		}
		seen[course.ID] = true
		matched = append(matched, course)
	}

	if len(matched) == 0 {
		return nil, ErrNoPublishedCourses
	}
	return matched, nil
}
