package records

import "github.com/aviary-tools/aviary/codec"

// TweetObject is one record of data/tweets.js.
type TweetObject struct {
	Tweet Tweet
}

// MarshalJSON implements json.Marshaler.
func (o TweetObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("tweet", o.Tweet)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *TweetObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[Tweet](data, "tweet")
	if err != nil {
		return err
	}
	o.Tweet = v
	return nil
}

// Tweet is a single published status. Unlike most of the archive this file
// uses snake_case keys, and the counters are number-like strings.
type Tweet struct {
	EditInfo             TweetEditInfo      `json:"edit_info"`
	Retweeted            bool               `json:"retweeted"`
	Source               string             `json:"source"`
	Entities             TweetEntities      `json:"entities"`
	DisplayTextRange     codec.Indices      `json:"display_text_range"`
	FavoriteCount        codec.NumberString `json:"favorite_count"`
	InReplyToStatusIDStr *string            `json:"in_reply_to_status_id_str,omitempty"`
	IDStr                string             `json:"id_str"`
	InReplyToUserID      *string            `json:"in_reply_to_user_id,omitempty"`
	Truncated            bool               `json:"truncated"`
	RetweetCount         codec.NumberString `json:"retweet_count"`
	ID                   string             `json:"id"`
	InReplyToStatusID    *string            `json:"in_reply_to_status_id,omitempty"`
	PossiblySensitive    *bool              `json:"possibly_sensitive,omitempty"`
	CreatedAt            codec.CreatedAt    `json:"created_at"`
	Favorited            bool               `json:"favorited"`
	FullText             string             `json:"full_text"`
	Lang                 string             `json:"lang"`
	InReplyToScreenName  *string            `json:"in_reply_to_screen_name,omitempty"`
	InReplyToUserIDStr   *string            `json:"in_reply_to_user_id_str,omitempty"`
}

// TweetEditInfo wraps the edit eligibility snapshot taken at publish time.
type TweetEditInfo struct {
	Initial TweetEditInfoInitial `json:"initial"`
}

// TweetEditInfoInitial is the edit window recorded when the tweet was
// created.
type TweetEditInfoInitial struct {
	EditTweetIDs   []string           `json:"editTweetIds"`
	EditableUntil  codec.Timestamp    `json:"editableUntil"`
	EditsRemaining codec.NumberString `json:"editsRemaining"`
	IsEditEligible bool               `json:"isEditEligible"`
}

// TweetEntities carries the span-annotated entities of the tweet text.
type TweetEntities struct {
	Hashtags     []TweetEntitiesEntry       `json:"hashtags"`
	Symbols      []TweetEntitiesEntry       `json:"symbols"`
	UserMentions []TweetEntitiesUserMention `json:"user_mentions"`
	URLs         []TweetEntitiesURL         `json:"urls"`
}

// TweetEntitiesEntry is a hashtag or cashtag span.
type TweetEntitiesEntry struct {
	Text    string        `json:"text"`
	Indices codec.Indices `json:"indices"`
}

// TweetEntitiesUserMention is an @-mention span.
type TweetEntitiesUserMention struct {
	Name       string        `json:"name"`
	ScreenName string        `json:"screen_name"`
	Indices    codec.Indices `json:"indices"`
	IDStr      string        `json:"id_str"`
	ID         string        `json:"id"`
}

// TweetEntitiesURL is a shortened-link span.
type TweetEntitiesURL struct {
	URL         string        `json:"url"`
	ExpandedURL string        `json:"expanded_url"`
	DisplayURL  string        `json:"display_url"`
	Indices     codec.Indices `json:"indices"`
}
