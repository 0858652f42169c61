// Package submit validates a lead-capture form and dispatches it.
//
// A Pipeline belongs to one dialog. It issues at most one send at a time,
// and results are applied only while the dialog is live: closing the dialog
// detaches the pipeline, and any result that lands afterwards is dropped.
// The send itself is never cancelled; it runs to completion in the
// background and its outcome is simply ignored.
package submit
