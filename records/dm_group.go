package records

import "github.com/aviary-tools/aviary/codec"

// Group conversation message lists are heterogeneous and untagged: each
// element is one of a closed set of event shapes, identified only by its
// envelope key. The probe lists below fix the classification order —
// messageCreate before participantsLeave before joinConversation — and the
// concrete type of each decoded Event records which variant matched, so
// re-encoding emits exactly the fields that were read.

// Event is one entry in a group conversation's message list.
type Event interface {
	// Variant returns the envelope key the event is stored under.
	Variant() string
}

// GroupMessageCreate is a message sent to the group.
type GroupMessageCreate struct {
	Reactions []MessageReaction `json:"reactions"`
	URLs      []MessageURL      `json:"urls"`
	Text      string            `json:"text"`
	MediaURLs []string          `json:"mediaUrls"`
	SenderID  string            `json:"senderId"`
	ID        string            `json:"id"`
	CreatedAt codec.Timestamp   `json:"createdAt"`
}

// Variant implements Event.
func (GroupMessageCreate) Variant() string { return "messageCreate" }

// ParticipantsLeave records members leaving the group.
type ParticipantsLeave struct {
	UserIDs   []string        `json:"userIds"`
	CreatedAt codec.Timestamp `json:"createdAt"`
}

// Variant implements Event.
func (ParticipantsLeave) Variant() string { return "participantsLeave" }

// JoinConversation records the archive owner being added to the group,
// with a snapshot of the membership at that moment.
type JoinConversation struct {
	InitiatingUserID     string          `json:"initiatingUserId"`
	ParticipantsSnapshot []string        `json:"participantsSnapshot"`
	CreatedAt            codec.Timestamp `json:"createdAt"`
}

// Variant implements Event.
func (JoinConversation) Variant() string { return "joinConversation" }

func probe[T Event](key string) codec.VariantProbe[Event] {
	return codec.VariantProbe[Event]{
		Name: key,
		Decode: func(data []byte) (Event, error) {
			v, err := codec.UnmarshalEnvelope[T](data, key)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

var groupMessageProbes = []codec.VariantProbe[Event]{
	probe[GroupMessageCreate]("messageCreate"),
	probe[ParticipantsLeave]("participantsLeave"),
	probe[JoinConversation]("joinConversation"),
}

var groupHeaderProbes = []codec.VariantProbe[Event]{
	probe[GroupHeaderMessageCreate]("messageCreate"),
	probe[ParticipantsLeave]("participantsLeave"),
	probe[JoinConversation]("joinConversation"),
}

func marshalEvents(events []Event) ([]byte, error) {
	b := []byte{'['}
	for i, ev := range events {
		if i > 0 {
			b = append(b, ',')
		}
		elem, err := codec.MarshalEnvelope(ev.Variant(), ev)
		if err != nil {
			return nil, err
		}
		b = append(b, elem...)
	}
	return append(b, ']'), nil
}

// GroupMessages is the ordered event list of a full group conversation.
type GroupMessages []Event

// MarshalJSON implements json.Marshaler.
func (ms GroupMessages) MarshalJSON() ([]byte, error) { return marshalEvents(ms) }

// UnmarshalJSON implements json.Unmarshaler.
func (ms *GroupMessages) UnmarshalJSON(data []byte) error {
	events, err := codec.DecodeVariants(data, groupMessageProbes)
	if err != nil {
		return err
	}
	*ms = events
	return nil
}

// GroupConversationObject is one record of data/direct-messages-group.js.
type GroupConversationObject struct {
	DMConversation GroupConversation
}

// MarshalJSON implements json.Marshaler.
func (o GroupConversationObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("dmConversation", o.DMConversation)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *GroupConversationObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[GroupConversation](data, "dmConversation")
	if err != nil {
		return err
	}
	o.DMConversation = v
	return nil
}

// GroupConversation is a full group thread.
type GroupConversation struct {
	ConversationID string        `json:"conversationId"`
	Messages       GroupMessages `json:"messages"`
}

// GroupHeaderMessageCreate is a group message header: sender and timing,
// no body.
type GroupHeaderMessageCreate struct {
	ID        string          `json:"id"`
	SenderID  string          `json:"senderId"`
	CreatedAt codec.Timestamp `json:"createdAt"`
}

// Variant implements Event.
func (GroupHeaderMessageCreate) Variant() string { return "messageCreate" }

// GroupHeaderMessages is the ordered event list of a group conversation's
// metadata-only rendition.
type GroupHeaderMessages []Event

// MarshalJSON implements json.Marshaler.
func (ms GroupHeaderMessages) MarshalJSON() ([]byte, error) { return marshalEvents(ms) }

// UnmarshalJSON implements json.Unmarshaler.
func (ms *GroupHeaderMessages) UnmarshalJSON(data []byte) error {
	events, err := codec.DecodeVariants(data, groupHeaderProbes)
	if err != nil {
		return err
	}
	*ms = events
	return nil
}

// GroupHeaderObject is one record of data/direct-message-group-headers.js.
type GroupHeaderObject struct {
	DMConversation GroupHeaderConversation
}

// MarshalJSON implements json.Marshaler.
func (o GroupHeaderObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("dmConversation", o.DMConversation)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *GroupHeaderObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[GroupHeaderConversation](data, "dmConversation")
	if err != nil {
		return err
	}
	o.DMConversation = v
	return nil
}

// GroupHeaderConversation is a group thread without message bodies.
type GroupHeaderConversation struct {
	ConversationID string              `json:"conversationId"`
	Messages       GroupHeaderMessages `json:"messages"`
}
