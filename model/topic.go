package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxTitleLength is the maximum length of a topic title in characters.
const MaxTitleLength = 255

// Topic is a forum thread opened by a tenant user.
//
// Topics are owned by exactly one user. Who else may read them is decided by
// Visibility, scoped to the author's customer or tenement address.
type Topic struct {
	ID         int64      `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID     int64      `json:"user" db:"user_id" gorm:"column:user_id;not null"`
	Title      string     `json:"title" db:"title" gorm:"column:title;size:255;not null"`
	Text       string     `json:"text" db:"text" gorm:"column:text;type:text;not null"`
	Visibility Visibility `json:"visibility" db:"visibility" gorm:"column:visibility;size:16;not null"`
	Created    time.Time  `json:"created" db:"created" gorm:"column:created;not null"`
	Edited     *time.Time `json:"edited,omitempty" db:"edited" gorm:"column:edited"`
}

// TableName returns the database table name for Topic.
func (t Topic) TableName() string {
	return tablePrefix + "topic"
}

// TopicPayload is the API payload a topic is created from.
type TopicPayload struct {
	Title      string     `json:"title"`
	Text       string     `json:"text"`
	Visibility Visibility `json:"visibility"`
}

// Validate implements validation.Validatable.
func (p TopicPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&p.Text, validation.Required),
		validation.Field(&p.Visibility),
	)
}

// NewTopic creates a topic owned by user from an API payload.
// Title and text are sanitized before validation.
func NewTopic(user User, p TopicPayload) (Topic, error) {
	p.Title = SanitizeTitle(p.Title)
	p.Text = SanitizeText(p.Text)
	p.Visibility = p.Visibility.OrDefault()

	if err := p.Validate(); err != nil {
		return Topic{}, err
	}

	return Topic{
		ID:         0,
		UserID:     user.ID,
		Title:      p.Title,
		Text:       p.Text,
		Visibility: p.Visibility,
		Created:    time.Now(),
	}, nil
}

// TopicPatch is a partial update of a topic. Only title and text can be
// changed; absent fields are left untouched.
type TopicPatch struct {
	Title *string `json:"title"`
	Text  *string `json:"text"`
}

// Validate implements validation.Validatable.
func (p TopicPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&p.Text, validation.NilOrNotEmpty),
	)
}

// Patch applies p to the topic and stamps the edit time.
// The topic is left unchanged if p does not validate.
func (t *Topic) Patch(p TopicPatch) error {
	p.Title = sanitizeOptional(p.Title, SanitizeTitle)
	p.Text = sanitizeOptional(p.Text, SanitizeText)

	if err := p.Validate(); err != nil {
		return err
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Text != nil {
		t.Text = *p.Text
	}

	now := time.Now()
	t.Edited = &now
	return nil
}
