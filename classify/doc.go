// Package classify answers why a database operation failed.
//
// The classifier collects every SQL error on a failure's cause chain (see
// sqlerr.Collect) and matches the collected set against fixed, ordered
// vendor rule tables:
//
//   - ValueTooLongRules: a value exceeded its column size.
//   - ForeignKeyRules: a referenced row was missing or still referenced.
//   - UniqueVariableRules: the engine's variable uniqueness index
//     (ACT_UNIQ_VARIABLE) rejected a duplicate. Each row requires the
//     message marker, the state code and the vendor code together.
//
// A table matches when any of its rules matches any collected error.
// The queries are independent; a failure may satisfy more than one.
//
// Quick use with the default classifier and every built-in driver adapter:
//
//	if classify.IsUniqueConstraintViolation(err) {
//	    // a concurrent command created the variable first
//	}
//
// Classify and Wrap turn the answer into a structured PlatformError whose
// classification drives job retries:
//
//	return classify.Wrap(err)
package classify
