package main

import (
	"nft-receipt-tui/styles"
)

// -------------------- THEME (Lip Gloss) --------------------
// Styles come from the styles package

var (
	cBorder = styles.CBorder
	cAccent = styles.CAccent
	cWarn   = styles.CWarn

	appStyle    = styles.AppStyle
	titleStyle  = styles.TitleStyle
	panelStyle  = styles.PanelStyle
	hotkeyStyle = styles.HotkeyStyle
)
