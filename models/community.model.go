package models

import "gorm.io/gorm"

// Group member roles
const (
	GroupRoleMember = "MEMBER"
	GroupRoleAdmin  = "ADMIN"
)

// Group is the discussion community for exactly one course. It is created
// lazily by the first provisioning call that needs it; the unique index on
// course_id collapses concurrent first-time creates onto a single row.
type Group struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"not null;uniqueIndex"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
	MemberCount uint   `json:"member_count" gorm:"default:0"` // denormalized, incremented on first join only
	IsDeleted   bool   `gorm:"default:false"`

	Course Course `gorm:"foreignKey:CourseID" json:"-"`
}

// GroupMember joins a user to a community group. Exactly one row per
// (group_id, user_id).
type GroupMember struct {
	gorm.Model
	GroupID   uint   `json:"group_id" gorm:"not null;uniqueIndex:idx_group_user"`
	UserID    uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_group_user"`
	Role      string `json:"role" gorm:"default:'MEMBER'"` // MEMBER, ADMIN
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	IsDeleted bool   `gorm:"default:false"`

	Group Group `gorm:"foreignKey:GroupID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}
