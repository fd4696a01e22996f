// Package tui provides immediate-mode drawing primitives and widgets over a
// terminal cell buffer.
//
// Buffer is the drawing surface: a row-major grid of terminal cells owned by
// the application loop. Widgets receive a layout.Rect and the buffer each
// frame and paint themselves; they keep no state between frames. Stateful
// widgets such as List take their selection state as an argument.
//
// Region is a clipped view of a Buffer with coordinates relative to its
// origin, used by widgets for their own drawing.
//
// Usage pattern:
//
//	buf := tui.NewBuffer(w, h)
//	header, body := layout.Rows(layout.Fixed(1), layout.Fill(1)).Split2(buf.Area())
//	tui.Paragraph{Text: tui.Text("Hello")}.Render(header, buf)
//	tui.NewBlock().Titled("Body").Render(body, buf)
//	term.Flush(buf.Cells(), w, h)
package tui
