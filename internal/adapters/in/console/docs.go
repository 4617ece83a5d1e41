// Package console implements the inbound text interface: a main menu with
// an admin area and a user area, reading line-based input and dispatching
// to the command and query handlers. Invalid input never terminates the
// loop; the error is printed and the menu is shown again.
//
// The package also provides the console NotificationSink implementation
// that prints status transitions as background timelines fire them.
package console
