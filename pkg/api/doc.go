// Package api exposes the colour-token and theme layer over HTTP for the
// email editor.
//
// Routes (chi):
//
//	GET  /health
//	GET  /colors/tokens
//	GET  /colors/groups?purpose=text|background|all
//	POST /colors/resolve                          {"value": <string|object|null>}
//	GET  /themes
//	GET  /themes/{themeID}
//	POST /themes/{themeID}/apply                  {"zone": "header", "swapped": false}
//	GET  /themes/{themeID}/zones/{zone}
//	GET  /themes/{themeID}/zones/{zone}/palette
//	GET  /themes/{themeID}/zones/{zone}/swapped?swapped=true
//	GET  /themes/{themeID}/zones/{zone}/preview?swapped=true   (text/html)
//	POST /render                                  blocks.Document  (text/html)
//	POST /test-email                              {"send_to", "subject", "title", "blocks"}
//
// JSON responses use one envelope: {"data", "meta", "error"}. Errors carry a
// stable code and, for validation failures (422), per-field details.
//
// Every request gets an X-Request-ID; register RequestIDExtractor with the
// logger so all log lines written while serving it carry the id.
package api
