package records

import "github.com/aviary-tools/aviary/codec"

// AccountObject is one record of data/account.js.
type AccountObject struct {
	Account Account
}

// MarshalJSON implements json.Marshaler.
func (o AccountObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("account", o.Account)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *AccountObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[Account](data, "account")
	if err != nil {
		return err
	}
	o.Account = v
	return nil
}

// Account describes the archive owner's account.
type Account struct {
	Email              string          `json:"email"`
	CreatedVia         string          `json:"createdVia"`
	Username           string          `json:"username"`
	AccountID          string          `json:"accountId"`
	CreatedAt          codec.Timestamp `json:"createdAt"`
	AccountDisplayName string          `json:"accountDisplayName"`
}

// AccountTimezoneObject is one record of data/account-timezone.js.
type AccountTimezoneObject struct {
	AccountTimezone AccountTimezone
}

// MarshalJSON implements json.Marshaler.
func (o AccountTimezoneObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("accountTimezone", o.AccountTimezone)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *AccountTimezoneObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[AccountTimezone](data, "accountTimezone")
	if err != nil {
		return err
	}
	o.AccountTimezone = v
	return nil
}

// AccountTimezone records the timezone configured for the account.
type AccountTimezone struct {
	AccountID string `json:"accountId"`
	TimeZone  string `json:"timeZone"`
}
