package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("water"), "categories are case-sensitive")
	assert.False(t, ValidCategory("Noise"))
}

func TestToggleUpvoterAddsThenRemoves(t *testing.T) {
	set, has := ToggleUpvoter(nil, "u1")
	assert.True(t, has)
	assert.Equal(t, []string{"u1"}, set)

	set, has = ToggleUpvoter(set, "u1")
	assert.False(t, has)
	assert.Empty(t, set)
	assert.NotNil(t, set, "set stays non-nil so it marshals as []")
}

func TestToggleUpvoterPreservesOthers(t *testing.T) {
	set := []string{"a", "b", "c"}

	out, has := ToggleUpvoter(set, "b")
	assert.False(t, has)
	assert.Equal(t, []string{"a", "c"}, out)

	out, has = ToggleUpvoter(out, "d")
	assert.True(t, has)
	assert.Equal(t, []string{"a", "c", "d"}, out)
}

func TestHasUpvoted(t *testing.T) {
	r := Report{UpvotedBy: []string{"u1", "u2"}}
	assert.True(t, r.HasUpvoted("u1"))
	assert.False(t, r.HasUpvoted("u3"))
	assert.False(t, (&Report{}).HasUpvoted("u1"))
}
