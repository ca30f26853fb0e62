package wrapped

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pixverse/internal/content"
	"github.com/abhisek/pixverse/internal/ui/components"
	"github.com/abhisek/pixverse/internal/ui/theme"
)

var musicKeys = struct {
	Pick key.Binding
}{
	Pick: key.NewBinding(key.WithKeys("1", "2", "3", "tab"), key.WithHelp("1-3", "Playlist")),
}

type musicWidget struct {
	playlists []content.Playlist
	selector  components.Selector
}

func newMusicWidget(playlists []content.Playlist) *musicWidget {
	names := make([]string, len(playlists))
	for i, p := range playlists {
		names[i] = p.Name
	}
	return &musicWidget{playlists: playlists, selector: components.NewSelector(names)}
}

// Start loads the default playlist.
func (m *musicWidget) Start() tea.Cmd {
	m.selector.Selected = 0
	return nil
}

func (m *musicWidget) Key(msg tea.KeyPressMsg) tea.Cmd {
	m.selector, _ = m.selector.Update(msg)
	return nil
}

// Current returns the selected playlist.
func (m *musicWidget) Current() (content.Playlist, bool) {
	if len(m.playlists) == 0 {
		return content.Playlist{}, false
	}
	return m.playlists[m.selector.Selected], true
}

func (m *musicWidget) View(cw int) string {
	p, ok := m.Current()
	if !ok {
		return theme.Muted.Render("No playlists yet.")
	}
	title := p.Title
	if title == "" {
		title = p.Name
	}
	s := m.selector.View() + "\n\n" +
		theme.Selected.Render("♪ Now Playing: "+title) + "\n" +
		theme.Body.Render(p.Description)
	if p.URL != "" {
		s += "\n\n" + theme.Hint.Render(p.URL)
	}
	return s
}
