package loading

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pixverse/internal/ui/layout"
	"github.com/abhisek/pixverse/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗██╗  ██╗██╗   ██╗███████╗██████╗ ███████╗███████╗
 ██╔══██╗██║╚██╗██╔╝██║   ██║██╔════╝██╔══██╗██╔════╝██╔════╝
 ██████╔╝██║ ╚███╔╝ ██║   ██║█████╗  ██████╔╝███████╗█████╗
 ██╔═══╝ ██║ ██╔██╗ ╚██╗ ██╔╝██╔══╝  ██╔══██╗╚════██║██╔══╝
 ██║     ██║██╔╝ ██╗ ╚████╔╝ ███████╗██║  ██║███████║███████╗
 ╚═╝     ╚═╝╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝`

const bannerCompact = "P I X V E R S E"

// RenderBanner returns the PIXVERSE banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 64 columns or short
// content areas.
func RenderBanner(width, height int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 64 || layout.IsCompactHeight(height) {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
