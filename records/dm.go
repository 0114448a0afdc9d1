package records

import "github.com/aviary-tools/aviary/codec"

// DMConversationObject is one record of data/direct-messages.js: a full
// one-on-one conversation.
type DMConversationObject struct {
	DMConversation DMConversation
}

// MarshalJSON implements json.Marshaler.
func (o DMConversationObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("dmConversation", o.DMConversation)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *DMConversationObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[DMConversation](data, "dmConversation")
	if err != nil {
		return err
	}
	o.DMConversation = v
	return nil
}

// DMConversation is a one-on-one thread. Its message list is homogeneous:
// every element is a messageCreate envelope.
type DMConversation struct {
	ConversationID string                `json:"conversationId"`
	Messages       []MessageCreateObject `json:"messages"`
}

// MessageCreateObject wraps one sent message.
type MessageCreateObject struct {
	MessageCreate MessageCreate
}

// MarshalJSON implements json.Marshaler.
func (o MessageCreateObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("messageCreate", o.MessageCreate)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *MessageCreateObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[MessageCreate](data, "messageCreate")
	if err != nil {
		return err
	}
	o.MessageCreate = v
	return nil
}

// MessageCreate is one direct message with its reactions and link spans.
type MessageCreate struct {
	RecipientID string            `json:"recipientId"`
	Reactions   []MessageReaction `json:"reactions"`
	URLs        []MessageURL      `json:"urls"`
	Text        string            `json:"text"`
	MediaURLs   []string          `json:"mediaUrls"`
	SenderID    string            `json:"senderId"`
	ID          string            `json:"id"`
	CreatedAt   codec.Timestamp   `json:"createdAt"`
}

// MessageReaction is one emoji reaction on a message.
type MessageReaction struct {
	SenderID    string          `json:"senderId"`
	ReactionKey string          `json:"reactionKey"`
	EventID     string          `json:"eventId"`
	CreatedAt   codec.Timestamp `json:"createdAt"`
}

// MessageURL is a shortened link inside a message body.
type MessageURL struct {
	URL      string `json:"url"`
	Expanded string `json:"expanded"`
	Display  string `json:"display"`
}

// DMHeaderObject is one record of data/direct-message-headers.js: the
// metadata-only rendition of a one-on-one conversation.
type DMHeaderObject struct {
	DMConversation DMHeaderConversation
}

// MarshalJSON implements json.Marshaler.
func (o DMHeaderObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("dmConversation", o.DMConversation)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *DMHeaderObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[DMHeaderConversation](data, "dmConversation")
	if err != nil {
		return err
	}
	o.DMConversation = v
	return nil
}

// DMHeaderConversation is a one-on-one thread without message bodies.
type DMHeaderConversation struct {
	ConversationID string                      `json:"conversationId"`
	Messages       []HeaderMessageCreateObject `json:"messages"`
}

// HeaderMessageCreateObject wraps one message header.
type HeaderMessageCreateObject struct {
	MessageCreate HeaderMessageCreate
}

// MarshalJSON implements json.Marshaler.
func (o HeaderMessageCreateObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("messageCreate", o.MessageCreate)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *HeaderMessageCreateObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[HeaderMessageCreate](data, "messageCreate")
	if err != nil {
		return err
	}
	o.MessageCreate = v
	return nil
}

// HeaderMessageCreate is a message header: routing and timing, no body.
type HeaderMessageCreate struct {
	ID          string          `json:"id"`
	SenderID    string          `json:"senderId"`
	RecipientID string          `json:"recipientId"`
	CreatedAt   codec.Timestamp `json:"createdAt"`
}
