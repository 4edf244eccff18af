package ingest

import (
	"fjacquet/ar-aging/internal/ingesterror"
	"fjacquet/ar-aging/internal/logging"
	"fjacquet/ar-aging/internal/models"
)

// Pipeline orchestrates one complete ingestion pass: line splitting,
// delimiter detection, per-row tokenization and numeric normalization,
// classification and record assembly. A Pipeline holds no state between
// calls; each Ingest call is independent.
type Pipeline struct {
	logger  logging.Logger
	builder *RecordBuilder
}

// NewPipeline creates a Pipeline with default id prefix and placeholder name.
// If logger is nil, a default logger is used.
func NewPipeline(logger logging.Logger) *Pipeline {
	return NewPipelineWithBuilder(logger, nil)
}

// NewPipelineWithBuilder creates a Pipeline using the provided RecordBuilder.
// A nil builder falls back to the defaults.
func NewPipelineWithBuilder(logger logging.Logger, builder *RecordBuilder) *Pipeline {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if builder == nil {
		builder = NewRecordBuilder(DefaultIDPrefix, DefaultUnknownName)
	}
	return &Pipeline{
		logger:  logger,
		builder: builder,
	}
}

// Ingest converts a raw ledger blob into an ordered batch of audit records.
// Malformed rows (blank, under-columned, unparsable balance) are logged and
// dropped; the call fails only when the input has no data rows at all or no
// row survives filtering. The returned records preserve source row order and
// carry unique positional ids.
func (p *Pipeline) Ingest(text string) ([]models.AuditRecord, error) {
	lines, err := SplitLines(text)
	if err != nil {
		p.logger.WithError(err).Error("Rejecting unusable ledger input")
		return nil, err
	}

	delim := DetectDelimiter(lines[0])
	p.logger.Debug("Detected ledger delimiter",
		logging.Field{Key: logging.FieldDelimiter, Value: string(delim)})

	dataLines := lines[1:]
	records := make([]models.AuditRecord, 0, len(dataLines))

	for i, line := range dataLines {
		index := i + 1 // 1-based, header excluded

		fields := TokenizeRow(line, delim)
		if fields == nil {
			continue
		}
		if len(fields) < 2 {
			p.logger.Debug("Discarding under-columned row",
				logging.Field{Key: logging.FieldLine, Value: index},
				logging.Field{Key: logging.FieldCount, Value: len(fields)})
			continue
		}

		balance, err := NormalizeBalance(fields[colBalance], delim)
		if err != nil {
			rowErr := &ingesterror.RowError{
				Line:   index,
				Field:  "balance",
				Value:  fields[colBalance],
				Reason: err.Error(),
			}
			p.logger.WithError(rowErr).Warn("Discarding row with unparsable balance",
				logging.Field{Key: logging.FieldLine, Value: index})
			continue
		}

		agingDays := 0
		if len(fields) > colAging {
			agingDays = ParseAgingDays(fields[colAging])
		}

		invoiceDate := ""
		if len(fields) > colDate {
			invoiceDate = fields[colDate]
		}

		record := p.builder.Build(index, fields[colName], balance, agingDays, invoiceDate)
		records = append(records, record)
	}

	if len(records) == 0 {
		err := &ingesterror.NoValidRecordsError{RowsSeen: len(dataLines)}
		p.logger.WithError(err).Error("Ledger produced no valid records")
		return nil, err
	}

	p.logger.Info("Ingested ledger",
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delim)})
	return records, nil
}
