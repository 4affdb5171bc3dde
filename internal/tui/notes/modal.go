package notes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/notes/internal/locale"
)

func renderConfirmModal(messages locale.Catalog, title string) string {
	buttons := lipgloss.JoinHorizontal(
		lipgloss.Top,
		dangerButtonStyle.Render("y "+messages.ConfirmYes),
		"  ",
		neutralButtonStyle.Render("n "+messages.ConfirmNo),
	)

	return modalStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		modalTitleStyle.Render(messages.ConfirmTitle),
		messages.ConfirmDelete,
		helpStyle.Render(title),
		"",
		buttons,
	))
}

func renderErrorModal(messages locale.Catalog, text string) string {
	return errorModalStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		modalTitleStyle.Render(messages.ErrorTitle),
		text,
		"",
		helpStyle.Render("enter/esc"),
	))
}

func center(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
