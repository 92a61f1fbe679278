// Package payload captures failure diagnostics as persisted byte payloads.
//
// A diagnostic payload is a named byte blob, usually the formatted stack
// trace of the failure that made a job or external task fail. Payloads are
// inserted through an explicit unit of work (Inserter) supplied by the
// caller, so the payload commits or rolls back together with the record
// that references it:
//
//	tx, err := store.Begin(ctx)
//	...
//	p, err := payload.CreateFromError(ctx, tx, payload.JobExceptionName, jobErr)
//	...
//	job.ExceptionPayloadID = p.ID
//	...
//	err = tx.Commit()
//
// Reading a payload back decodes its bytes with the Recorder's character
// set (UTF-8 by default):
//
//	trace, ok, err := payload.Decode(p)
package payload
