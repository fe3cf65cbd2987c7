package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocalGroup(t *testing.T) {
	r, store := newTestRouter(nil)

	t.Run("success with defaults", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/local-groups", map[string]any{
			"name":        "Jessore Road Strays Collective",
			"location":    "Jessore Road, North Dumdum",
			"description": "Feeding and vaccination coordination for the Jessore Road stretch.",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		group := body["group"].(map[string]any)
		assert.Equal(t, float64(4), group["id"])
		assert.Equal(t, float64(1), group["members"], "new group starts with its founder")
		assert.Contains(t, group["image"], "picsum.photos/seed/")
		assert.Nil(t, group["nextMeetup"])
		assert.Equal(t, 4, store.Groups.Len())
	})

	t.Run("missing description is rejected", func(t *testing.T) {
		prevLen := store.Groups.Len()
		w := doJSON(t, r, http.MethodPost, "/api/local-groups", map[string]any{
			"name":     "Half-formed group",
			"location": "Birati",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, prevLen, store.Groups.Len())
	})
}

func TestCreateMapResource(t *testing.T) {
	r, store := newTestRouter(nil)

	t.Run("explicit coordinates kept", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/resources", map[string]any{
			"name":        "Birati Grooming Corner",
			"type":        "other",
			"address":     "7, Birati Station Road",
			"description": "Budget grooming and nail clipping.",
			"latitude":    22.6601,
			"longitude":   88.4299,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		resource := decodeBody(t, w)["resource"].(map[string]any)
		assert.Equal(t, float64(4), resource["id"])
		assert.Equal(t, 22.6601, resource["latitude"])
		assert.Equal(t, 88.4299, resource["longitude"])
		assert.Equal(t, "N/A", resource["contact"])
		assert.Equal(t, "Community Submission", resource["addedBy"])
	})

	t.Run("missing coordinates default to the neighborhood center", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/resources", map[string]any{
			"name":        "Dumdum Lake Walkway",
			"type":        "park",
			"address":     "Lake Road, North Dumdum",
			"description": "Evening walk spot, dogs welcome on leash.",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		resource := decodeBody(t, w)["resource"].(map[string]any)
		assert.Equal(t, defaultLatitude, resource["latitude"])
		assert.Equal(t, defaultLongitude, resource["longitude"])
	})

	t.Run("missing address is rejected", func(t *testing.T) {
		prevLen := store.Resources.Len()
		w := doJSON(t, r, http.MethodPost, "/api/resources", map[string]any{
			"name":        "Nowhere Clinic",
			"type":        "vet",
			"description": "No address supplied.",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, prevLen, store.Resources.Len())
	})
}

func TestCreateKnowledgeBaseArticle(t *testing.T) {
	r, store := newTestRouter(nil)

	t.Run("excerpt derived from full content", func(t *testing.T) {
		long := "Summer heat in North Dumdum regularly crosses 38C and street animals suffer first. Put out shallow water bowls in shaded spots, refresh them twice a day, and never tether animals on open terraces in the afternoon."
		w := doJSON(t, r, http.MethodPost, "/api/knowledge-base", map[string]any{
			"title":       "Summer Heat Safety for Pets and Strays",
			"category":    "Seasonal Care",
			"fullContent": long,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		article := decodeBody(t, w)["article"].(map[string]any)
		assert.Equal(t, float64(5), article["id"])
		excerpt := article["excerpt"].(string)
		assert.True(t, strings.HasPrefix(excerpt, "Summer heat in North Dumdum"))
		assert.True(t, strings.HasSuffix(excerpt, "..."))
		assert.Less(t, len(excerpt), len(long))
		assert.Equal(t, "Community Submission", article["author"])
	})

	t.Run("supplied excerpt kept verbatim", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/knowledge-base", map[string]any{
			"title":       "Deworming Schedules",
			"category":    "Healthcare",
			"fullContent": "Puppies every two weeks until twelve weeks, then monthly until six months.",
			"excerpt":     "When to deworm.",
			"author":      "Dr. Sharma",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		article := decodeBody(t, w)["article"].(map[string]any)
		assert.Equal(t, "When to deworm.", article["excerpt"])
		assert.Equal(t, "Dr. Sharma", article["author"])
	})

	t.Run("missing full content is rejected", func(t *testing.T) {
		prevLen := store.Articles.Len()
		w := doJSON(t, r, http.MethodPost, "/api/knowledge-base", map[string]any{
			"title":    "Empty article",
			"category": "Misc",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, prevLen, store.Articles.Len())
	})
}

func TestCreateActionBoardPost(t *testing.T) {
	r, store := newTestRouter(nil)

	t.Run("new posts are active and stamped just now", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/action-board", map[string]any{
			"type":        "urgentHelp",
			"title":       "Kitten stuck on a ledge",
			"description": "Second floor ledge behind Birati market, mother cat nearby.",
			"location":    "Birati market",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		post := decodeBody(t, w)["post"].(map[string]any)
		assert.Equal(t, float64(5), post["id"])
		assert.Equal(t, "active", post["status"])
		assert.Equal(t, "Just now", post["postedTime"])
		assert.Equal(t, "Anonymous User", post["postedBy"])
		assert.Equal(t, 5, store.Posts.Len())
	})

	t.Run("missing location is rejected", func(t *testing.T) {
		prevLen := store.Posts.Len()
		w := doJSON(t, r, http.MethodPost, "/api/action-board", map[string]any{
			"type":        "lost",
			"title":       "Lost parrot",
			"description": "Green parrot, answers to Mithu.",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, prevLen, store.Posts.Len())
	})
}
