// Package export renders complaint lists as the portal's only externally
// durable artifact: a semicolon-delimited, BOM-prefixed CSV file.
package export

import (
	"encoding/csv"
	"io"

	"clubportal/backend/internal/models"
)

// utf8BOM lets spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var header = []string{"id", "user", "category", "subject", "status", "priority", "date"}

// WriteCSV writes one row per complaint in the given order, preceded by the
// UTF-8 byte-order mark and the fixed column header.
func WriteCSV(w io.Writer, complaints []models.Complaint) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range complaints {
		row := []string{
			c.ID,
			c.UserName,
			string(c.Category),
			c.Subject,
			string(c.Status),
			string(c.Priority),
			c.DateCreated.Format("2006-01-02"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
