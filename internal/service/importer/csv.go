package importer

import (
	"encoding/csv"
	"io"
	"strings"

	"gitee.com/flycash/campaign-platform/internal/domain"
	"gitee.com/flycash/campaign-platform/internal/errs"
	"github.com/pkg/errors"
)

// ParseCSV reads recipients from CSV rows: column 0 is the phone, column 1 the
// optional name. There is no header row and blank rows are skipped.
func ParseCSV(r io.Reader) ([]domain.Recipient, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var res []domain.Recipient
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "read recipient csv")
		}
		if isBlank(record) {
			continue
		}
		line, _ := reader.FieldPos(0)
		phone := strings.TrimSpace(record[0])
		if phone == "" {
			return nil, errors.Wrapf(errs.ErrInvalidParameter, "line %d: phone is empty", line)
		}
		var name string
		if len(record) > 1 {
			name = strings.TrimSpace(record[1])
		}
		res = append(res, domain.Recipient{Name: name, Phone: phone})
	}
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
