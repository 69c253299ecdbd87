package main

import (
	"fmt"
	"os"

	"nft-receipt-tui/config"

	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- MAIN --------------------

func main() {
	e := newEnv(config.DefaultPath())
	m := newModel(e)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	e.close()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
