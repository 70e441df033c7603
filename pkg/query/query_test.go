package query_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharedkit/pkg/query"
)

type address struct {
	City string
}

type person struct {
	Name     string
	Age      int
	Score    float64
	Active   bool
	Joined   time.Time
	Level    level
	Nickname *string `json:"nick"`
	Address  *address
	secret   int
}

type level int

func (l level) String() string {
	return [...]string{"bronze", "gold", "silver"}[l]
}

func names(people []person) []string {
	out := make([]string, len(people))
	for i, p := range people {
		out[i] = p.Name
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func TestToPaged(t *testing.T) {
	people := []person{{Name: "a", Age: 55}, {Name: "b", Age: 18}, {Name: "c", Age: 40}}

	t.Run("ascending", func(t *testing.T) {
		got, err := query.ToPaged(people, "Age", true)
		require.NoError(t, err)
		assert.Equal(t, 18, got[0].Age)
		assert.Len(t, got, 3)
	})

	t.Run("descending", func(t *testing.T) {
		got, err := query.ToPaged(people, "Age", false)
		require.NoError(t, err)
		assert.Equal(t, 55, got[0].Age)
	})

	t.Run("input is not modified", func(t *testing.T) {
		_, err := query.ToPaged(people, "age", true)
		require.NoError(t, err)
		if diff := cmp.Diff([]string{"a", "b", "c"}, names(people)); diff != "" {
			t.Errorf("input changed (-want +got):\n%s", diff)
		}
	})

	t.Run("pagination is applied", func(t *testing.T) {
		got, err := query.ToPaged(people, "Age", true, 2, 2)
		require.NoError(t, err)
		if diff := cmp.Diff([]string{"a"}, names(got)); diff != "" {
			t.Errorf("page mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid page arguments fall back to defaults", func(t *testing.T) {
		got, err := query.ToPaged(people, "Age", true, 0, -5)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("empty property keeps order", func(t *testing.T) {
		got, err := query.ToPaged(people, " ", true)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, names(got))
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := query.ToPaged([]person{}, "Missing", true)
		require.NoError(t, err)
		assert.Empty(t, got)

		got, err = query.ToPaged[person](nil, "Age", true)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown property", func(t *testing.T) {
		_, err := query.ToPaged(people, "Height", true)
		assert.ErrorIs(t, err, query.ErrUnknownProperty)

		_, err = query.ToPaged(people, "secret", true)
		assert.ErrorIs(t, err, query.ErrUnknownProperty)
	})

	t.Run("unsortable property", func(t *testing.T) {
		type bag struct{ Tags []string }
		_, err := query.ToPaged([]bag{{}, {}}, "Tags", true)
		assert.ErrorIs(t, err, query.ErrUnsortable)
	})
}

func TestToOrder(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	people := []person{
		{Name: "a", Score: 2.5, Active: true, Joined: base.Add(48 * time.Hour), Level: 1, Nickname: ptr("zed"), Address: &address{City: "Oslo"}},
		{Name: "b", Score: -1, Active: false, Joined: base, Level: 2},
		{Name: "c", Score: 2.5, Active: true, Joined: base.Add(time.Hour), Level: 0, Nickname: ptr("amy"), Address: &address{City: "Berlin"}},
	}

	tests := []struct {
		property  string
		ascending bool
		want      []string
	}{
		{"Score", true, []string{"b", "a", "c"}},
		{"Score", false, []string{"a", "c", "b"}},
		{"active", true, []string{"b", "a", "c"}},
		{"Joined", true, []string{"b", "c", "a"}},
		{"Level", true, []string{"c", "a", "b"}},
		{"nick", true, []string{"b", "c", "a"}},
		{"Address.City", true, []string{"b", "c", "a"}},
		{"address.city", false, []string{"a", "c", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			got, err := query.ToOrder(people, tt.property, tt.ascending)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("pointer elements", func(t *testing.T) {
		ptrs := []*person{{Name: "x", Age: 3}, nil, {Name: "y", Age: 1}}
		got, err := query.ToOrder(ptrs, "Age", true)
		require.NoError(t, err)
		assert.Nil(t, got[0])
		assert.Equal(t, "y", got[1].Name)
		assert.Equal(t, "x", got[2].Name)
	})
}

func TestOrderBy(t *testing.T) {
	people := []person{{Name: "a", Age: 30}, {Name: "b", Age: 20}, {Name: "c", Age: 30}}

	got := query.OrderBy(people, func(p person) int { return p.Age }, false)
	if diff := cmp.Diff([]string{"a", "c", "b"}, names(got)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	got = query.OrderBy(people, func(p person) string { return p.Name }, true)
	assert.Equal(t, []string{"a", "b", "c"}, names(got))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name       string
		page, size int
		want       []int
	}{
		{"first page", 1, 2, []int{1, 2}},
		{"last partial page", 3, 2, []int{5}},
		{"past the end", 4, 2, []int{}},
		{"page below one", -1, 2, []int{1, 2}},
		{"default size", 1, 0, []int{1, 2, 3, 4, 5}},
		{"huge page", math.MaxInt, 2, []int{}},
		{"huge page and size", math.MaxInt, math.MaxInt, []int{}},
		{"huge size", 1, math.MaxInt, []int{1, 2, 3, 4, 5}},
		{"page just past the end", 6, 1, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.Paginate(items, tt.page, tt.size))
		})
	}
}

func TestToPage(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	p := query.ToPage(items, 3, 0)
	assert.Equal(t, 3, p.PageIndex)
	assert.Equal(t, query.DefaultPageSize, p.PageSize)
	assert.Equal(t, 45, p.Total)
	assert.Equal(t, 3, p.TotalPages())
	assert.False(t, p.HasNext())
	assert.Equal(t, []int{40, 41, 42, 43, 44}, p.Items)

	assert.True(t, query.ToPage(items, 1, 10).HasNext())
	assert.Zero(t, query.ToPage([]int{}, 1, 10).TotalPages())

	huge := query.ToPage(items, math.MaxInt, math.MaxInt)
	assert.Empty(t, huge.Items)
	assert.Equal(t, 1, huge.TotalPages())
	assert.False(t, huge.HasNext())
}
