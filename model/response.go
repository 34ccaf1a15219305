package model

import (
	"bytes"
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Response is a reply to a topic.
//
// A response is deleted together with its topic. Its text may be null, which
// is how a response is blanked without removing it from the thread.
type Response struct {
	ID      int64      `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID  int64      `json:"user" db:"user_id" gorm:"column:user_id;not null"`
	TopicID int64      `json:"topic" db:"topic_id" gorm:"column:topic_id;not null"`
	Text    *string    `json:"text" db:"text" gorm:"column:text;type:text"`
	Created time.Time  `json:"created" db:"created" gorm:"column:created;not null"`
	Edited  *time.Time `json:"edited,omitempty" db:"edited" gorm:"column:edited"`
}

// TableName returns the database table name for Response.
func (r Response) TableName() string {
	return tablePrefix + "response"
}

// IsBlank reports whether the response text has been blanked.
func (r Response) IsBlank() bool {
	return r.Text == nil
}

// ResponsePayload is the API payload a response is created from.
type ResponsePayload struct {
	Topic int64   `json:"topic"`
	Text  *string `json:"text"`
}

// Validate implements validation.Validatable.
func (p ResponsePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Topic, validation.Required, validation.Min(int64(1))),
	)
}

// NewResponse creates a response owned by user from an API payload.
func NewResponse(user User, p ResponsePayload) (Response, error) {
	p.Text = sanitizeOptional(p.Text, SanitizeText)

	if err := p.Validate(); err != nil {
		return Response{}, err
	}

	return Response{
		ID:      0,
		UserID:  user.ID,
		TopicID: p.Topic,
		Text:    p.Text,
		Created: time.Now(),
	}, nil
}

// ResponsePatch is a partial update of a response. Only the text can be
// changed. A non-nil Text replaces the text; a patch with HasText set and a
// nil Text blanks the response.
type ResponsePatch struct {
	Text *string `json:"text"`

	// HasText records whether the text was present in the patch at all,
	// which tells an explicit null apart from an absent field.
	HasText bool `json:"-"`
}

// present reports whether the patch touches the text.
func (p ResponsePatch) present() bool {
	return p.HasText || p.Text != nil
}

// ResponseTextPatch returns a patch replacing the response text.
func ResponseTextPatch(text string) ResponsePatch {
	return ResponsePatch{Text: &text, HasText: true}
}

// BlankResponsePatch returns a patch blanking the response text.
func BlankResponsePatch() ResponsePatch {
	return ResponsePatch{Text: nil, HasText: true}
}

// MarshalJSON implements json.Marshaler. The text key is omitted when the
// patch leaves the text alone and is null when it blanks it.
func (p ResponsePatch) MarshalJSON() ([]byte, error) {
	if !p.present() {
		return []byte("{}"), nil
	}
	return json.Marshal(struct {
		Text *string `json:"text"`
	}{Text: p.Text})
}

// UnmarshalJSON implements json.Unmarshaler.
// Fields other than text are ignored.
func (p *ResponsePatch) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*p = ResponsePatch{}
	raw, ok := fields["text"]
	if !ok {
		return nil
	}

	p.HasText = true
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return err
	}
	p.Text = &text
	return nil
}

// Patch applies p to the response and stamps the edit time.
func (r *Response) Patch(p ResponsePatch) {
	if p.present() {
		r.Text = sanitizeOptional(p.Text, SanitizeText)
	}

	now := time.Now()
	r.Edited = &now
}
