package membership

import (
	"errors"
	"log"
	"strings"

	"wellnest/models"

	"gorm.io/gorm"
)

// ProvisionCommunity idempotently adds the user to the course's community
// group, creating the group first if it does not exist yet. Returns
// joined=false when the user was already a member.
func (s *Service) ProvisionCommunity(userID uint, course *models.Course) (bool, error) {
	group, err := s.ensureGroup(course)
	if err != nil {
		return false, err
	}

	member := models.GroupMember{
		GroupID:  group.ID,
		UserID:   userID,
		Role:     models.GroupRoleMember,
		IsActive: true,
	}
	if err := s.db.Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}

	if err := s.db.Model(&models.Group{}).Where("id = ?", group.ID).
		UpdateColumn("member_count", gorm.Expr("member_count + ?", 1)).Error; err != nil {
		log.Printf("[MEMBERSHIP] member counter increment failed for group %d: %v", group.ID, err)
	}

	return true, nil
}

// ensureGroup find-or-creates the single group for a course. Two callers
// racing to create it both end up with the surviving row: the loser's
// duplicate-key error is resolved by re-reading.
func (s *Service) ensureGroup(course *models.Course) (*models.Group, error) {
	var group models.Group
	err := s.db.Where("course_id = ?", course.ID).First(&group).Error
	if err == nil {
		return &group, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	group = models.Group{
		CourseID:    course.ID,
		Name:        strings.TrimSpace(course.Title) + " Community",
		Description: "Discussion group for the " + strings.TrimSpace(course.Title) + " course.",
		CoverImage:  course.ThumbnailURL,
		MemberCount: 0,
	}
	if err := s.db.Create(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.Where("course_id = ?", course.ID).First(&group).Error; err != nil {
				return nil, err
			}
			return &group, nil
		}
		return nil, err
	}
	return &group, nil
}

// RecountGroupMembers recomputes the denormalized member counter from the
// member rows.
func (s *Service) RecountGroupMembers(groupID uint) error {
	var count int64
	if err := s.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND is_deleted = ?", groupID, false).
		Count(&count).Error; err != nil {
		return err
	}
	return s.db.Model(&models.Group{}).Where("id = ?", groupID).
		UpdateColumn("member_count", count).Error
}
