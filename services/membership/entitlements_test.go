package membership

import (
	"testing"

	"wellnest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnknownPlan(t *testing.T) {
	_, err := DefaultCatalog.Resolve("platinum")
	assert.ErrorIs(t, err, ErrInvalidPlan)

	_, err = DefaultCatalog.Resolve("")
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestResolveIsPure(t *testing.T) {
	first, err := DefaultCatalog.Resolve(models.PlanSilver)
	require.NoError(t, err)

	second, err := DefaultCatalog.Resolve(models.PlanSilver)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Physical Wellness", "Mental Wellness", "Financial Wellness"}, first)
}

func TestCatalogIsImmutable(t *testing.T) {
	grants := map[string][]string{
		"bronze": {"Physical Wellness"},
	}
	catalog := NewPlanCatalog(7, grants)

	// Mutating the input map after construction must not change resolution.
	grants["bronze"][0] = "Hacked"
	grants["gold"] = []string{"Also Hacked"}

	titles, err := catalog.Resolve("bronze")
	require.NoError(t, err)
	assert.Equal(t, []string{"Physical Wellness"}, titles)

	_, err = catalog.Resolve("gold")
	assert.ErrorIs(t, err, ErrInvalidPlan)

	// Mutating a resolved slice must not leak back into the catalog.
	titles[0] = "Mutated"
	again, err := catalog.Resolve("bronze")
	require.NoError(t, err)
	assert.Equal(t, []string{"Physical Wellness"}, again)

	assert.Equal(t, 7, catalog.Version())
}
