package client

import "errors"

const OK = "OK"

var (
	ErrInvalidParameter = errors.New("sms client: invalid parameter")
	ErrSendFailed       = errors.New("sms client: send failed")
)

// Client is a cloud SMS vendor SDK reduced to the single call the platform needs.
//
//go:generate mockgen -source=./types.go -destination=./mocks/client.mock.go -package=clientmocks Client
type Client interface {
	Send(req SendReq) (SendResp, error)
}

type SendReq struct {
	PhoneNumbers []string
	SignName     string
	TemplateID   string
	// TemplateParam is the named parameter map. Vendors with positional
	// parameters take the values in TemplateParamOrder.
	TemplateParam      map[string]string
	TemplateParamOrder []string
}

type SendResp struct {
	RequestID string
	// PhoneNumbers maps every requested phone to its vendor status.
	PhoneNumbers map[string]SendRespStatus
}

type SendRespStatus struct {
	Code    string
	Message string
}
