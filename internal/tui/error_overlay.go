package tui

type errorOverlayModel struct {
	message string
}

func newErrorOverlay(err error) *errorOverlayModel {
	return &errorOverlayModel{message: humanizeError(err)}
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Ошибка") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc закрыть")
	return overlayBoxStyle.Render(content)
}
