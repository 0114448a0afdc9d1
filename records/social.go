package records

import "github.com/aviary-tools/aviary/codec"

// LikeObject is one record of data/like.js.
type LikeObject struct {
	Like Like
}

// MarshalJSON implements json.Marshaler.
func (o LikeObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("like", o.Like)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *LikeObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[Like](data, "like")
	if err != nil {
		return err
	}
	o.Like = v
	return nil
}

// Like references a liked tweet. FullText is absent for tweets that were
// deleted before the export ran.
type Like struct {
	TweetID     string  `json:"tweetId"`
	FullText    *string `json:"fullText,omitempty"`
	ExpandedURL string  `json:"expandedUrl"`
}

// Relation is an account reference shared by the block, mute, follower and
// following files.
type Relation struct {
	AccountID string `json:"accountId"`
	UserLink  string `json:"userLink"`
}

// BlockingObject is one record of data/block.js.
type BlockingObject struct {
	Blocking Relation
}

// MarshalJSON implements json.Marshaler.
func (o BlockingObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("blocking", o.Blocking)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *BlockingObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[Relation](data, "blocking")
	if err != nil {
		return err
	}
	o.Blocking = v
	return nil
}

// MutingObject is one record of data/mute.js.
type MutingObject struct {
	Muting Relation
}

// MarshalJSON implements json.Marshaler.
func (o MutingObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("muting", o.Muting)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *MutingObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[Relation](data, "muting")
	if err != nil {
		return err
	}
	o.Muting = v
	return nil
}

// FollowerObject is one record of data/follower.js.
type FollowerObject struct {
	Follower Relation
}

// MarshalJSON implements json.Marshaler.
func (o FollowerObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("follower", o.Follower)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *FollowerObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[Relation](data, "follower")
	if err != nil {
		return err
	}
	o.Follower = v
	return nil
}

// FollowingObject is one record of data/following.js.
type FollowingObject struct {
	Following Relation
}

// MarshalJSON implements json.Marshaler.
func (o FollowingObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("following", o.Following)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *FollowingObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[Relation](data, "following")
	if err != nil {
		return err
	}
	o.Following = v
	return nil
}

// VerifiedObject is one record of data/verified.js.
type VerifiedObject struct {
	Verified Verified
}

// MarshalJSON implements json.Marshaler.
func (o VerifiedObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("verified", o.Verified)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *VerifiedObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[Verified](data, "verified")
	if err != nil {
		return err
	}
	o.Verified = v
	return nil
}

// Verified records the legacy verification state of the account.
type Verified struct {
	AccountID string `json:"accountId"`
	Verified  bool   `json:"verified"`
}

// ProfileObject is one record of data/profile.js.
type ProfileObject struct {
	Profile Profile
}

// MarshalJSON implements json.Marshaler.
func (o ProfileObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("profile", o.Profile)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *ProfileObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[Profile](data, "profile")
	if err != nil {
		return err
	}
	o.Profile = v
	return nil
}

// Profile is the public profile at export time.
type Profile struct {
	Description    ProfileDescription `json:"description"`
	AvatarMediaURL string             `json:"avatarMediaUrl"`
}

// ProfileDescription is the free-text portion of the profile.
type ProfileDescription struct {
	Bio      string `json:"bio"`
	Website  string `json:"website"`
	Location string `json:"location"`
}
