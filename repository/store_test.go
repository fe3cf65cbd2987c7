package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreSeedsCollections(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 4, s.Snippets.Len())
	assert.Equal(t, 1, s.Stories.Len())
	assert.Equal(t, 3, s.Groups.Len())
	assert.Equal(t, 3, s.Pets.Len())
	assert.Equal(t, 3, s.Resources.Len())
	assert.Equal(t, 4, s.Articles.Len())
	assert.Equal(t, 4, s.Posts.Len())
	assert.Equal(t, 0, s.Volunteers.Len())
}

func TestSeedStoryDateIsCanonical(t *testing.T) {
	s := NewStore()
	story, ok := s.Stories.Get(1)
	require.True(t, ok)

	_, err := time.Parse("2006-01-02", story.Date)
	assert.NoError(t, err, "seed story date must be ISO YYYY-MM-DD")
}

func TestSeedGroupsNullableMeetup(t *testing.T) {
	s := NewStore()

	withMeetup, ok := s.Groups.Get(1)
	require.True(t, ok)
	require.NotNil(t, withMeetup.NextMeetup)
	assert.Equal(t, "Sunday, 7:00 AM", *withMeetup.NextMeetup)

	noMeetup, ok := s.Groups.Get(2)
	require.True(t, ok)
	assert.Nil(t, noMeetup.NextMeetup)
}

func TestStoresAreIndependent(t *testing.T) {
	s := NewStore()

	// Ids are unique per collection, not globally: appending a pet must
	// not advance story ids.
	pet := s.Pets.Append(seedPets[0])
	assert.Equal(t, 4, pet.ID)

	story := s.Stories.Append(seedStories[0])
	assert.Equal(t, 2, story.ID)
}
