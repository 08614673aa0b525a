// Package modal provides a declarative modal dialog with automatic hit
// region management for mouse support.
//
// Sections are rendered first and measured afterwards, so the hit regions
// registered with the mouse handler always match what was drawn. Keyboard
// navigation (Tab/Shift+Tab, Enter, Esc) and hover state are handled by the
// modal itself.
//
// # Quick Start
//
//	m := modal.New("Trees", modal.WithWidth(80), modal.WithCloseOnBackdropClick(true)).
//	    AddSection(modal.Text("Pick how you want to learn.")).
//	    AddSection(modal.Spacer()).
//	    AddSection(modal.Cards(
//	        modal.Card("study", "📚", "Study", "Dive deep into trees concepts.", "Start Learning →"),
//	        modal.Card("quiz", "🎯", "Quiz", "Test your knowledge of trees.", "Take Quiz →"),
//	    ))
//
//	// In View():
//	content := m.Render(screenW, screenH, mouseHandler)
//
//	// In Update():
//	if action, cmd := m.HandleKey(keyMsg); action != "" {
//	    switch action {
//	    case modal.ActionClose:
//	        return closeModal()
//	    case "study":
//	        ...
//	    }
//	}
//
// # Built-in Sections
//
//   - Text(s string) - static text, auto-wrapped
//   - Spacer() - blank line
//   - Buttons(btns ...ButtonDef) - button row with focus/hover styling
//   - Cards(cards ...CardDef) - side-by-side panels, each with an action
//     button; stacked when the modal is too narrow
//
// # Options
//
//   - WithWidth(w int) - set modal width (default: 50)
//   - WithHints(show bool) - show/hide keyboard hints at bottom
//   - WithCloseOnBackdropClick(close bool) - close on backdrop click
package modal
