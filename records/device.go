package records

import "github.com/aviary-tools/aviary/codec"

// NiDeviceResponseObject is one record of data/ni-devices.js.
type NiDeviceResponseObject struct {
	NiDeviceResponse NiDeviceResponse
}

// MarshalJSON implements json.Marshaler.
func (o NiDeviceResponseObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("niDeviceResponse", o.NiDeviceResponse)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *NiDeviceResponseObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[NiDeviceResponse](data, "niDeviceResponse")
	if err != nil {
		return err
	}
	o.NiDeviceResponse = v
	return nil
}

// NiDeviceResponse wraps a messaging device registration.
type NiDeviceResponse struct {
	MessagingDevice MessagingDevice `json:"messagingDevice"`
}

// MessagingDevice is an SMS device registered for login verification. The
// two dates use the dotted calendar layout ("2021.10.20").
type MessagingDevice struct {
	PhoneNumber string     `json:"phoneNumber"`
	Carrier     string     `json:"carrier"`
	DeviceType  string     `json:"deviceType"`
	UpdatedDate codec.Date `json:"updatedDate"`
	CreatedDate codec.Date `json:"createdDate"`
}

// DeviceTokenObject is one record of data/device-token.js.
type DeviceTokenObject struct {
	DeviceToken DeviceToken
}

// MarshalJSON implements json.Marshaler.
func (o DeviceTokenObject) MarshalJSON() ([]byte, error) {
	return codec.MarshalEnvelope("deviceToken", o.DeviceToken)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *DeviceTokenObject) UnmarshalJSON(data []byte) error {
	v, err := codec.UnmarshalEnvelope[DeviceToken](data, "deviceToken")
	if err != nil {
		return err
	}
	o.DeviceToken = v
	return nil
}

// DeviceToken is a client application session token.
type DeviceToken struct {
	ClientApplicationID   string          `json:"clientApplicationId"`
	Token                 string          `json:"token"`
	CreatedAt             codec.Timestamp `json:"createdAt"`
	LastSeenAt            codec.Timestamp `json:"lastSeenAt"`
	ClientApplicationName string          `json:"clientApplicationName"`
}
