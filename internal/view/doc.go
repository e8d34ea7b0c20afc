// Package view derives what to display from the task collection.
//
// Filter and Render are pure functions: the same collection, status filter
// and search query always produce the same Description. Presenters (the
// terminal list, the TUI, the HTML export) only reconcile a Description and
// never look at the store directly.
package view
