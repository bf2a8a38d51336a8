// Package ui styles the status lines the CLI prints.
//
// Styles are built with lipgloss and degrade to plain text when the output is not a terminal.
package ui
