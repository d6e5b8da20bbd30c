package sqlite

import "strings"

// The modernc driver reports constraint failures as plain error strings,
// so violations are recognized by message rather than by error code.

func isUniqueViolation(err error) bool {
	return hasConstraintMessage(err, "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return hasConstraintMessage(err, "FOREIGN KEY constraint failed")
}

func hasConstraintMessage(err error, msg string) bool {
	return err != nil && strings.Contains(err.Error(), msg)
}
