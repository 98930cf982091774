package bubbletea

// TitleLine exports titleLine for testing.
func TitleLine(m Model) string {
	return m.titleLine()
}
