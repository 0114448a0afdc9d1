package records

import "github.com/aviary-tools/aviary/codec"

// ScreenNameChangeObject is one record of data/screen-name-change.js.
type ScreenNameChangeObject struct {
	ScreenNameChange ScreenNameChangeEntry
}

// MarshalJSON implements json.Marshaler.
func (o ScreenNameChangeObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("screenNameChange", o.ScreenNameChange)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *ScreenNameChangeObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[ScreenNameChangeEntry](data, "screenNameChange")
	if err != nil {
		return err
	}
	o.ScreenNameChange = v
	return nil
}

// ScreenNameChangeEntry ties a handle change to the account it happened on.
type ScreenNameChangeEntry struct {
	AccountID        string           `json:"accountId"`
	ScreenNameChange ScreenNameChange `json:"screenNameChange"`
}

// ScreenNameChange is one handle rename.
type ScreenNameChange struct {
	ChangedAt   codec.Timestamp `json:"changedAt"`
	ChangedFrom string          `json:"changedFrom"`
	ChangedTo   string          `json:"changedTo"`
}

// EmailAddressChangeObject is one record of data/email-address-change.js.
type EmailAddressChangeObject struct {
	EmailAddressChange EmailAddressChange
}

// MarshalJSON implements json.Marshaler.
func (o EmailAddressChangeObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("emailAddressChange", o.EmailAddressChange)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *EmailAddressChangeObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[EmailAddressChange](data, "emailAddressChange")
	if err != nil {
		return err
	}
	o.EmailAddressChange = v
	return nil
}

// EmailAddressChange ties an email change to the account it happened on.
type EmailAddressChange struct {
	AccountID   string      `json:"accountId"`
	EmailChange EmailChange `json:"emailChange"`
}

// EmailChange is one email address update.
type EmailChange struct {
	ChangedAt codec.Timestamp `json:"changedAt"`
	ChangedTo string          `json:"changedTo"`
}
