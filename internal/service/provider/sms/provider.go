package sms

import (
	"context"
	"fmt"

	"gitee.com/flycash/campaign-platform/internal/errs"
	"gitee.com/flycash/campaign-platform/internal/service/provider"
	"gitee.com/flycash/campaign-platform/internal/service/provider/sms/client"
)

// ContentParam is the vendor template parameter that carries the rendered
// message. The vendor template is expected to be a single "${content}" slot.
const ContentParam = "content"

var _ provider.MessageSender = (*Sender)(nil)

// Sender delivers through a cloud SMS vendor.
type Sender struct {
	name       string
	signName   string
	templateID string
	client     client.Client
}

func NewSender(name, signName, templateID string, c client.Client) *Sender {
	return &Sender{
		name:       name,
		signName:   signName,
		templateID: templateID,
		client:     c,
	}
}

func (s *Sender) Send(_ context.Context, phone, message string) error {
	resp, err := s.client.Send(client.SendReq{
		PhoneNumbers:       []string{phone},
		SignName:           s.signName,
		TemplateID:         s.templateID,
		TemplateParam:      map[string]string{ContentParam: message},
		TemplateParamOrder: []string{ContentParam},
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrDeliveryFailed, s.name, err)
	}

	status, ok := lookupStatus(resp, phone)
	if !ok {
		return fmt.Errorf("%w: %s: no status for phone", errs.ErrDeliveryFailed, s.name)
	}
	if status.Code != client.OK {
		return fmt.Errorf("%w: %s: Code = %s, Message = %s", errs.ErrDeliveryFailed, s.name, status.Code, status.Message)
	}
	return nil
}

// lookupStatus finds the status of phone. Vendors may normalize the number,
// so a single-entry response is taken as the answer for the only phone sent.
func lookupStatus(resp client.SendResp, phone string) (client.SendRespStatus, bool) {
	if status, ok := resp.PhoneNumbers[phone]; ok {
		return status, true
	}
	if len(resp.PhoneNumbers) == 1 {
		for _, status := range resp.PhoneNumbers {
			return status, true
		}
	}
	return client.SendRespStatus{}, false
}
