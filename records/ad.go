package records

import "github.com/aviary-tools/aviary/codec"

// AdObject is one record of data/ad-impressions.js.
type AdObject struct {
	Ad Ad
}

// MarshalJSON implements json.Marshaler.
func (o AdObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("ad", o.Ad)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *AdObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[Ad](data, "ad")
	if err != nil {
		return err
	}
	o.Ad = v
	return nil
}

// Ad wraps the per-user advertising data.
type Ad struct {
	AdsUserData AdsUserData `json:"adsUserData"`
}

// AdsUserData wraps the impression list.
type AdsUserData struct {
	AdImpressions AdImpressions `json:"adImpressions"`
}

// AdImpressions is the list of recorded ad impressions.
type AdImpressions struct {
	Impressions []Impression `json:"impressions"`
}

// Impression is one recorded ad display. The timestamp uses the
// space-separated layout ("2021-10-20 17:00:52").
type Impression struct {
	DeviceInfo               DeviceInfo          `json:"deviceInfo"`
	DisplayLocation          string              `json:"displayLocation"`
	PromotedTweetInfo        *PromotedTweetInfo  `json:"promotedTweetInfo,omitempty"`
	AdvertiserInfo           AdvertiserInfo      `json:"advertiserInfo"`
	MatchedTargetingCriteria []TargetingCriteria `json:"matchedTargetingCriteria,omitempty"`
	ImpressionTime           codec.DateTime      `json:"impressionTime"`
}

// DeviceInfo names the device the impression was shown on.
type DeviceInfo struct {
	OsType string `json:"osType"`
}

// PromotedTweetInfo describes the promoted tweet, when the ad was one.
type PromotedTweetInfo struct {
	TweetID   string   `json:"tweetId"`
	TweetText string   `json:"tweetText"`
	URLs      []string `json:"urls"`
	MediaURLs []string `json:"mediaUrls"`
}

// AdvertiserInfo names the advertiser.
type AdvertiserInfo struct {
	AdvertiserName *string `json:"advertiserName,omitempty"`
	ScreenName     *string `json:"screenName,omitempty"`
}

// TargetingCriteria is one targeting rule the impression matched.
type TargetingCriteria struct {
	TargetingType  string  `json:"targetingType"`
	TargetingValue *string `json:"targetingValue,omitempty"`
}
