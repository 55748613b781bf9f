// Package pager is an interactive, scrollable view of formatted log lines.
//
// Input lines are decoded and rendered once, with styling on, when the
// pager starts. The minimum level can then be cycled with "l" without
// re-reading input; lines that are not records stay visible at every
// level. Keyboard input is read from the controlling terminal so that log
// lines may still arrive on stdin.
package pager
