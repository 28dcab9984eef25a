package store

import "github.com/jackc/pgerrcode"

// ErrorClassification tells [DB.WithRetry] whether a failed operation
// should be attempted again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// using the SQLSTATE code reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports SQLSTATE classes 08 (connection exception) and 40
// (transaction rollback) as retryable, plus 57P03 "cannot connect now".
// A replace or upsert that failed with one of those was rolled back as a
// whole, so running it again is safe. Anything that is not a
// *pgconn.PgError is left alone.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}
