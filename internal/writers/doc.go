// Package writers serializes soft-masked intervals.
//
// Design:
//   • BED is the only output format: record ID, start, end, tab-separated.
//   • Writers own presentation only; run detection lives in softmask.
//   • Write errors are sticky so callers can check once per record.
package writers
