package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic_TableName(t *testing.T) {
	topic := Topic{}
	assert.Equal(t, "tenantforum_topic", topic.TableName())
}

func TestNewTopic(t *testing.T) {
	user := User{ID: 42, CustomerID: 1}

	topic, err := NewTopic(user, TopicPayload{
		Title:      "Heating broken",
		Text:       "The radiator on the third floor is cold.",
		Visibility: VisibilityCustomer,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), topic.ID)
	assert.Equal(t, user.ID, topic.UserID)
	assert.Equal(t, "Heating broken", topic.Title)
	assert.Equal(t, "The radiator on the third floor is cold.", topic.Text)
	assert.Equal(t, VisibilityCustomer, topic.Visibility)
	assert.WithinDuration(t, time.Now(), topic.Created, time.Second)
	assert.Nil(t, topic.Edited)
}

func TestNewTopic_DefaultVisibility(t *testing.T) {
	topic, err := NewTopic(User{ID: 1}, TopicPayload{Title: "Hello", Text: "World"})
	require.NoError(t, err)
	assert.Equal(t, VisibilityTenement, topic.Visibility)
}

func TestNewTopic_Sanitizes(t *testing.T) {
	topic, err := NewTopic(User{ID: 1}, TopicPayload{
		Title: "<b>Lift</b> out of order",
		Text:  `<p>Please call the janitor.</p><script>alert("x")</script>`,
	})
	require.NoError(t, err)

	assert.Equal(t, "Lift out of order", topic.Title)
	assert.Contains(t, topic.Text, "Please call the janitor.")
	assert.NotContains(t, topic.Text, "script")
	assert.NotContains(t, topic.Text, "alert")
}

func TestNewTopic_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload TopicPayload
		field   string
	}{
		{
			name:    "missing title",
			payload: TopicPayload{Text: "body"},
			field:   "title",
		},
		{
			name:    "markup only title",
			payload: TopicPayload{Title: "<script>x</script>", Text: "body"},
			field:   "title",
		},
		{
			name:    "title too long",
			payload: TopicPayload{Title: strings.Repeat("a", MaxTitleLength+1), Text: "body"},
			field:   "title",
		},
		{
			name:    "missing text",
			payload: TopicPayload{Title: "title"},
			field:   "text",
		},
		{
			name:    "unknown visibility",
			payload: TopicPayload{Title: "title", Text: "body", Visibility: "WORLD"},
			field:   "visibility",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTopic(User{ID: 1}, tt.payload)
			require.Error(t, err)

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestTopicPayload_JSON(t *testing.T) {
	var payload TopicPayload
	err := json.Unmarshal([]byte(`{"title":"t","text":"x","visibility":"CUSTOMER","user":99}`), &payload)
	require.NoError(t, err)

	topic, err := NewTopic(User{ID: 1}, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(1), topic.UserID)
	assert.Equal(t, VisibilityCustomer, topic.Visibility)
}

func TestTopic_Patch(t *testing.T) {
	topic, err := NewTopic(User{ID: 1}, TopicPayload{Title: "Old", Text: "Old text", Visibility: VisibilityCustomer})
	require.NoError(t, err)

	title := "New <i>title</i>"
	require.NoError(t, topic.Patch(TopicPatch{Title: &title}))

	assert.Equal(t, "New title", topic.Title)
	assert.Equal(t, "Old text", topic.Text)
	assert.Equal(t, int64(1), topic.UserID)
	assert.Equal(t, VisibilityCustomer, topic.Visibility)
	require.NotNil(t, topic.Edited)
	assert.WithinDuration(t, time.Now(), *topic.Edited, time.Second)
}

func TestTopic_PatchIgnoresRestrictedFields(t *testing.T) {
	topic := Topic{ID: 3, UserID: 1, Title: "t", Text: "x", Visibility: VisibilityTenement}

	var patch TopicPatch
	err := json.Unmarshal([]byte(`{"text":"changed","user":2,"visibility":"CUSTOMER","id":9}`), &patch)
	require.NoError(t, err)
	require.NoError(t, topic.Patch(patch))

	assert.Equal(t, int64(3), topic.ID)
	assert.Equal(t, int64(1), topic.UserID)
	assert.Equal(t, VisibilityTenement, topic.Visibility)
	assert.Equal(t, "changed", topic.Text)
}

func TestTopic_PatchInvalid(t *testing.T) {
	topic := Topic{ID: 3, UserID: 1, Title: "t", Text: "x"}
	empty := "   "

	err := topic.Patch(TopicPatch{Title: &empty})
	assert.Error(t, err)
	assert.Equal(t, "t", topic.Title)
	assert.Nil(t, topic.Edited)
}

func TestTopic_JSON(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	topic := Topic{ID: 1, UserID: 2, Title: "t", Text: "x", Visibility: VisibilityCustomer, Created: created}

	data, err := json.Marshal(topic)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"user": 2,
		"title": "t",
		"text": "x",
		"visibility": "CUSTOMER",
		"created": "2024-05-01T12:00:00Z"
	}`, string(data))
}
