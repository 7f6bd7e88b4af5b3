package repos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transit_manage/internal/models"
)

func TestCompanyRepo_CreateGet(t *testing.T) {
	r := newTestRepos(t)

	created, err := r.Company.Create(ctx, nil, models.CompanyInput{Name: "Metro A"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.Place)

	got, err := r.Company.Get(ctx, nil, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Metro A", got.Name)
	assert.Nil(t, got.Place)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestCompanyRepo_GetNotFound(t *testing.T) {
	r := newTestRepos(t)

	_, err := r.Company.Get(ctx, nil, 42)
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "company", nf.Entity)
	assert.Equal(t, uint(42), nf.Key)
}

func TestCompanyRepo_UpdateReplacesAllFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyRepo(db, testLogger()).(*companyRepo)
	restamp := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, nil, models.CompanyInput{
		Name:      "Metro A",
		Place:     ptr("North depot"),
		CreatedAt: day(1),
	})
	require.NoError(t, err)

	repo.now = func() time.Time { return restamp }
	updated, err := repo.Update(ctx, nil, created, models.CompanyInput{Name: "Metro B"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Metro B", updated.Name)
	assert.Nil(t, updated.Place, "omitted place is cleared, not merged")
	assert.True(t, restamp.Equal(updated.CreatedAt), "omitted createdAt is re-stamped")

	got, err := repo.Get(ctx, nil, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Name, got.Name)
	assert.True(t, restamp.Equal(got.CreatedAt))
}

func TestCompanyRepo_UpdateMissingRow(t *testing.T) {
	r := newTestRepos(t)

	_, err := r.Company.Update(ctx, nil, &models.Company{ID: 7}, models.CompanyInput{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompanyRepo_Delete(t *testing.T) {
	r := newTestRepos(t)

	created, err := r.Company.Create(ctx, nil, models.CompanyInput{Name: "Metro A", Place: ptr("Center")})
	require.NoError(t, err)

	deleted, err := r.Company.Delete(ctx, nil, created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "Center", *deleted.Place)

	_, err = r.Company.Get(ctx, nil, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Company.Delete(ctx, nil, created)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompanyRepo_ListOrderAndFilter(t *testing.T) {
	r := newTestRepos(t)

	var ids []uint
	for i, name := range []string{"oldest", "middle", "newest"} {
		c, err := r.Company.Create(ctx, nil, models.CompanyInput{Name: name, CreatedAt: day(i + 1)})
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	all, err := r.Company.List(ctx, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].Name)
	assert.Equal(t, "middle", all[1].Name)
	assert.Equal(t, "oldest", all[2].Name)

	filtered, err := r.Company.List(ctx, nil, nil, []uint{ids[0], ids[2]})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "newest", filtered[0].Name)
	assert.Equal(t, "oldest", filtered[1].Name)

	none, err := r.Company.List(ctx, nil, nil, []uint{})
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)

	paged, err := r.Company.List(ctx, nil, &models.Pagination{Page: 2, Size: 2}, nil)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "oldest", paged[0].Name)
}

func TestCompanyRepo_ListRejectsBadPagination(t *testing.T) {
	r := newTestRepos(t)

	_, err := r.Company.List(ctx, nil, &models.Pagination{Page: 0, Size: 10}, nil)
	assert.ErrorIs(t, err, models.ErrInvalidPagination)

	_, err = r.Company.List(ctx, nil, &models.Pagination{Page: 1, Size: 0}, []uint{})
	assert.ErrorIs(t, err, models.ErrInvalidPagination)
}
