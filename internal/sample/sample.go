// Package sample generates ledger templates and deterministic sample data so
// users can try the tool without real receivables.
package sample

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"fjacquet/ar-aging/internal/logging"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Header is the column layout every ledger template starts with. Column
// positions are fixed: name, balance, aging days, invoice date.
const Header = "Customer Name,Total Balance,Aging Days,Invoice Date"

// sampleRows covers every risk category including both band boundaries
// (30 days is still Current, 90 days is still Overdue), a credit balance,
// and a quoted name.
var sampleRows = []string{
	`PT. Maju Jaya,150000000,15,2023-10-01`,
	`CV. Sumber Rejeki,45000000,45,2023-09-01`,
	`Toko Abadi,12500000,120,2023-06-01`,
	`Local Trader,-1500000,30,2023-09-15`,
	`"PT. Sinar Terang",2500000,60,2023-08-20`,
	`UD. Berkah,75000000,90,2023-07-10`,
	`PT. Cahaya Baru,5000000,91,2023-06-25`,
	`Koperasi Makmur,300000,0,2023-10-05`,
}

// Template returns a header-only ledger ready to be filled in.
func Template() string {
	return Header + "\n"
}

// Ledger returns the deterministic sample ledger: the fixed header followed
// by eight data rows. Re-ingesting this output always yields the same eight
// records with the same statuses.
func Ledger() string {
	return Header + "\n" + strings.Join(sampleRows, "\n") + "\n"
}

// WriteFile writes either the bare template or the full sample ledger to the
// given path.
func WriteFile(path string, withData bool) error {
	content := Template()
	if withData {
		content = Ledger()
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:  path,
		logging.FieldCount: len(sampleRows),
	}).Info("Writing ledger template")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		log.WithError(err).Error("Failed to write ledger template")
		return fmt.Errorf("error writing template file: %w", err)
	}
	return nil
}
