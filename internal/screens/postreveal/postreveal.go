// Package postreveal is the last screen: the star message gallery and the
// share and keepsake actions.
package postreveal

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pixverse/internal/action"
	"github.com/abhisek/pixverse/internal/content"
	"github.com/abhisek/pixverse/internal/progress"
	"github.com/abhisek/pixverse/internal/screen"
	"github.com/abhisek/pixverse/internal/ui/components"
	"github.com/abhisek/pixverse/internal/ui/layout"
	"github.com/abhisek/pixverse/internal/ui/theme"
)

const (
	// MessageLimit caps a single star message.
	MessageLimit = 140
	// reservedRows is the card height taken by everything but the gallery.
	reservedRows = 20
	// minGalleryRows keeps the gallery visible on short terminals.
	minGalleryRows = 3
)

var keys = struct {
	Focus, Submit, Navigate, Select, Scroll key.Binding
}{
	Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Switch")),
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Send")),
	Navigate: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "Navigate")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select")),
	Scroll:   key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("PgUp/PgDn", "Scroll")),
}

// PostRevealScreen shows the pack's star messages followed by the ones the
// player left. Focus toggles between the message input and the menu. The
// gallery scrolls when it is taller than the terminal allows.
type PostRevealScreen struct {
	pack  *content.Pack
	prog  *progress.Store
	input components.TextInput
	menu  components.Menu
	stars viewport.Model
	// follow scrolls to the newest message on the next render.
	follow     bool
	scrollable bool
}

var _ screen.Screen = (*PostRevealScreen)(nil)

func New(pack *content.Pack, prog *progress.Store) *PostRevealScreen {
	return &PostRevealScreen{
		pack:  pack,
		prog:  prog,
		input: components.NewTextInput("Leave a star message...", MessageLimit, 48),
		menu:  components.NewMenu(menuItems()),
		stars: viewport.New(),
	}
}

func menuItems() []components.MenuItem {
	social := func(platform string) func() tea.Cmd {
		return func() tea.Cmd {
			return action.Cmd(action.Action{Kind: action.ShareSocial, Platform: platform})
		}
	}
	of := func(k action.Kind) func() tea.Cmd {
		return func() tea.Cmd { return action.Of(k) }
	}
	return []components.MenuItem{
		{Label: "Share the link", Action: of(action.Share)},
		{Label: "Share on Twitter", Action: social(content.PlatformTwitter)},
		{Label: "Share on Facebook", Action: social(content.PlatformFacebook)},
		{Label: "Share on Instagram", Action: social(content.PlatformInstagram)},
		{Label: "Download yearbook", Action: of(action.Download)},
		{Label: "Generate pixel poster", Action: of(action.GeneratePoster)},
		{Label: "Restart journey", Action: of(action.Restart)},
		{Label: "Back to the letter", Action: func() tea.Cmd {
			return action.Cmd(action.Action{Kind: action.Back, Target: string(screen.Reveal)})
		}},
	}
}

func (p *PostRevealScreen) Title() string {
	return "Star Gallery"
}

// Init focuses the message input and scrolls the gallery to the top.
func (p *PostRevealScreen) Init() tea.Cmd {
	p.follow = false
	p.stars.GotoTop()
	return p.input.Focus()
}

func (p *PostRevealScreen) Deactivate() {
	p.input.Blur()
}

// Accept clears the input after the message was stored.
func (p *PostRevealScreen) Accept() {
	p.input.Clear()
	p.follow = true
}

// Reject flags the input after an empty submission.
func (p *PostRevealScreen) Reject() {
	p.input.Reject()
}

// InputFocused reports whether keys go to the message input.
func (p *PostRevealScreen) InputFocused() bool { return p.input.Focused() }

func (p *PostRevealScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	if key.Matches(kmsg, keys.Scroll) {
		if kmsg.String() == "pgup" {
			p.stars.PageUp()
		} else {
			p.stars.PageDown()
		}
		return p, nil
	}

	if key.Matches(kmsg, keys.Focus) {
		if p.input.Focused() {
			p.input.Blur()
			return p, nil
		}
		return p, p.input.Focus()
	}

	if p.input.Focused() {
		if key.Matches(kmsg, keys.Submit) {
			// The raw value goes out; the controller rejects blank text.
			return p, action.Cmd(action.Action{Kind: action.SubmitMessage, Text: p.input.Model.Value()})
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PostRevealScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p.input.Focused() {
		hints = layout.Hints(keys.Submit, keys.Focus)
	} else {
		hints = layout.Hints(keys.Navigate, keys.Select, keys.Focus)
	}
	if p.scrollable {
		hints = append(hints, layout.Hints(keys.Scroll)...)
	}
	return hints
}

// gallery returns the pack's messages followed by the player's, oldest
// first. Each entry is the message and an author line.
func (p *PostRevealScreen) gallery() []string {
	entries := make([]string, 0, len(p.pack.StarMessages)+len(p.prog.State().StarMessages))
	for _, m := range p.pack.StarMessages {
		entries = append(entries, "★ "+m.Text+"\n  · "+m.Author)
	}
	for _, m := range p.prog.State().StarMessages {
		entries = append(entries, "★ "+m+"\n  · You")
	}
	return entries
}

// renderGallery wraps every message to the card width and shows as many
// rows as the height leaves room for.
func (p *PostRevealScreen) renderGallery(cw, height int) string {
	wrapped := lipgloss.NewStyle().Foreground(theme.Accent).Width(cw - 6).Render(strings.Join(p.gallery(), "\n"))
	lines := strings.Split(wrapped, "\n")

	rows := min(len(lines), max(minGalleryRows, height-reservedRows))
	p.stars.SetWidth(cw - 6)
	p.stars.SetHeight(rows)
	p.stars.SetContentLines(lines)
	if p.follow {
		p.stars.GotoBottom()
		p.follow = false
	}
	p.scrollable = p.stars.TotalLineCount() > rows
	return p.stars.View()
}

func (p *PostRevealScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	stars := p.renderGallery(cw, height)

	input := p.input.View()
	menu := p.menu.View()
	if p.input.Focused() {
		menu = theme.Muted.Render(strings.TrimRight(menu, "\n"))
	}

	body := stars + "\n\n" + input + "\n\n" + strings.TrimRight(menu, "\n")
	return components.Center(components.PixelCard("✨ STAR GALLERY", body, cw), width, height)
}
