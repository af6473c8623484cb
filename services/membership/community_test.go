package membership

import (
	"sync"
	"testing"

	"wellnest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisionCommunityCreatesGroupLazily(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, DefaultCatalog)
	user := createUser(t, db, "learner@example.com")
	course := createCourse(t, db, "Physical Wellness", true)

	assert.Equal(t, int64(0), countRows(t, db, &models.Group{}, "course_id = ?", course.ID))

	joined, err := svc.ProvisionCommunity(user.ID, course)
	require.NoError(t, err)
	assert.True(t, joined)

	var group models.Group
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&group).Error)
	assert.Equal(t, "Physical Wellness Community", group.Name)
	assert.Equal(t, uint(1), group.MemberCount)

	var member models.GroupMember
	require.NoError(t, db.Where("group_id = ? AND user_id = ?", group.ID, user.ID).First(&member).Error)
	assert.Equal(t, models.GroupRoleMember, member.Role)
	assert.True(t, member.IsActive)
}

func TestProvisionCommunityTrimsGroupName(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, DefaultCatalog)
	user := createUser(t, db, "learner@example.com")
	course := createCourse(t, db, "  Physical Wellness  ", true)

	_, err := svc.ProvisionCommunity(user.ID, course)
	require.NoError(t, err)

	var group models.Group
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&group).Error)
	assert.Equal(t, "Physical Wellness Community", group.Name)
}

func TestProvisionCommunityIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, DefaultCatalog)
	user := createUser(t, db, "learner@example.com")
	course := createCourse(t, db, "Physical Wellness", true)

	joined, err := svc.ProvisionCommunity(user.ID, course)
	require.NoError(t, err)
	assert.True(t, joined)

	joined, err = svc.ProvisionCommunity(user.ID, course)
	require.NoError(t, err)
	assert.False(t, joined)

	assert.Equal(t, int64(1), countRows(t, db, &models.Group{}, "course_id = ?", course.ID))

	var group models.Group
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&group).Error)
	assert.Equal(t, uint(1), group.MemberCount)
	assert.Equal(t, int64(1), countRows(t, db, &models.GroupMember{}, "group_id = ?", group.ID))
}

func TestProvisionCommunityReusesExistingGroup(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, DefaultCatalog)
	course := createCourse(t, db, "Physical Wellness", true)

	first := createUser(t, db, "a@example.com")
	second := createUser(t, db, "b@example.com")

	_, err := svc.ProvisionCommunity(first.ID, course)
	require.NoError(t, err)
	_, err = svc.ProvisionCommunity(second.ID, course)
	require.NoError(t, err)

	assert.Equal(t, int64(1), countRows(t, db, &models.Group{}, "course_id = ?", course.ID))

	var group models.Group
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&group).Error)
	assert.Equal(t, uint(2), group.MemberCount)
}

func TestProvisionCommunityConcurrentFirstJoin(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, DefaultCatalog)
	user := createUser(t, db, "learner@example.com")
	course := createCourse(t, db, "Physical Wellness", true)

	const attempts = 8
	results := make([]bool, attempts)
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.ProvisionCommunity(user.ID, course)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i])
		if results[i] {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	// Racing creators must converge on a single group and a single member row.
	assert.Equal(t, int64(1), countRows(t, db, &models.Group{}, "course_id = ?", course.ID))

	var group models.Group
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&group).Error)
	assert.Equal(t, uint(1), group.MemberCount)
	assert.Equal(t, int64(1), countRows(t, db, &models.GroupMember{}, "group_id = ? AND user_id = ?", group.ID, user.ID))
}

func TestRecountGroupMembers(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, DefaultCatalog)
	course := createCourse(t, db, "Physical Wellness", true)

	for _, email := range []string{"a@example.com", "b@example.com"} {
		user := createUser(t, db, email)
		_, err := svc.ProvisionCommunity(user.ID, course)
		require.NoError(t, err)
	}

	var group models.Group
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&group).Error)

	require.NoError(t, db.Model(&models.Group{}).Where("id = ?", group.ID).
		UpdateColumn("member_count", 0).Error)

	require.NoError(t, svc.RecountGroupMembers(group.ID))

	require.NoError(t, db.First(&group, group.ID).Error)
	assert.Equal(t, uint(2), group.MemberCount)
}
