package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria()
	require.Equal(t, SearchCriteria{
		Page:      1,
		Limit:     10,
		SortBy:    SortByCreatedAt,
		SortOrder: SortDesc,
	}, c)
}

func TestNormalized_TrimsAndPrunesBlankFields(t *testing.T) {
	c := SearchCriteria{
		Search:  "  alice  ",
		City:    "   ",
		Country: "",
		Gender:  "unknown",
	}
	n := c.Normalized()

	require.Equal(t, "alice", n.Search)
	require.Empty(t, n.City)
	require.Empty(t, n.Country)
	require.Empty(t, n.Gender)
}

func TestNormalized_AppliesDefaults(t *testing.T) {
	n := SearchCriteria{}.Normalized()
	require.Equal(t, DefaultCriteria(), n)
}

func TestNormalized_DropsAgesOutsideDomain(t *testing.T) {
	n := SearchCriteria{MinAge: 5, MaxAge: 200}.Normalized()
	require.Zero(t, n.MinAge)
	require.Zero(t, n.MaxAge)

	n = SearchCriteria{MinAge: 13, MaxAge: 120}.Normalized()
	require.Equal(t, 13, n.MinAge)
	require.Equal(t, 120, n.MaxAge)
}

func TestNormalized_KeepsValidSortAndGender(t *testing.T) {
	c := SearchCriteria{Gender: GenderFemale, SortBy: SortByLastName, SortOrder: SortAsc}
	n := c.Normalized()
	require.Equal(t, GenderFemale, n.Gender)
	require.Equal(t, SortByLastName, n.SortBy)
	require.Equal(t, SortAsc, n.SortOrder)
}

func TestWithPage_ChangesOnlyPage(t *testing.T) {
	c := SearchCriteria{City: "Paris", Page: 1, Limit: 10, SortBy: SortByCreatedAt, SortOrder: SortDesc}
	got := c.WithPage(3)

	want := c
	want.Page = 3
	require.Equal(t, want, got)
}

func TestUserProfile_Location(t *testing.T) {
	u := &UserProfile{City: "Riga", Country: "Latvia"}
	require.Equal(t, "Riga, Latvia", u.Location())

	require.Equal(t, "Riga", (&UserProfile{City: "Riga"}).Location())
	require.Equal(t, "Latvia", (&UserProfile{Country: "Latvia"}).Location())
	require.Equal(t, "", (&UserProfile{}).Location())
}
