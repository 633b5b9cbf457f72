// Package listview provides a keyboard-driven, virtually scrolled list for
// Bubble Tea applications.
//
// Only the rows inside the viewport (plus a small buffer) are rendered, so
// the cost of View is proportional to the viewport height rather than the
// number of items. Items are replaced wholesale with SetItems whenever a new
// result set arrives; the cursor is reset to the top.
package listview
