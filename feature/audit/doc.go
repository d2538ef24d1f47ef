// Package audit serves particle table reconciliations over HTTP.
//
// # Endpoints
//
//   - GET  /audit                 full text report
//   - GET  /audit/summary         the "M G C S" tally
//   - GET  /audit/particles/:id   the difference block of one particle
//   - GET  /audit/health          whether both tables can be found
//   - POST /audit/refresh         drop cached tables
//
// Reports are plain text in the same layout as the compare command. Errors are
// JSON objects with an "error" field. A missing input table answers 503, a
// malformed line in strict mode 422.
package audit
