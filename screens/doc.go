// Package screens holds the example programs. Each screen is a value type
// implementing app.Model: Update is pure and Render draws the whole frame.
// Screens with an enumerated mode drive it through an fsm.Table.
package screens
