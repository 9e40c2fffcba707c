package resolver

import (
	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	"github.com/ecodeclub/ekit/slice"
)

// Resolve merges the imported recipients and the address book into one send
// list. Imported entries come first in file order, followed by contacts in
// insertion order. Phones are not deduplicated.
func Resolve(imported []domain.Recipient, contacts []domain.Contact) ([]domain.Recipient, error) {
	res := make([]domain.Recipient, 0, len(imported)+len(contacts))
	res = append(res, imported...)
	res = append(res, slice.Map(contacts, func(_ int, src domain.Contact) domain.Recipient {
		return src.Recipient()
	})...)
	if len(res) == 0 {
		return nil, errs.ErrEmptyRecipientSet
	}
	return res, nil
}
