package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jotkit/jot/internal/config"
	"github.com/jotkit/jot/internal/editor"
	"github.com/jotkit/jot/internal/logger"
	"github.com/jotkit/jot/internal/tabs"
	"github.com/jotkit/jot/internal/ui"
	"github.com/jotkit/jot/internal/ui/modals"
)

// Model is the main Bubble Tea model. It owns the tab ring and treats it as
// the single source of truth: every gesture becomes a tabs.Action, the ring
// is swapped for the snapshot Apply returns, and the UI components are synced
// from the new snapshot afterwards.
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	header  *ui.Header
	tabBar  *ui.TabBar
	editor  *ui.Editor
	footer  *ui.Footer
	modal   *ui.Modal

	ring tabs.Ring

	width  int
	height int

	// Autosave bookkeeping. dirty is true while the ring has changes that
	// are not on disk yet; saveSeq invalidates debounce ticks that were
	// scheduled before a newer change arrived.
	dirty   bool
	saveSeq int

	// Flash queued before the program starts (e.g. corrupt state recovery)
	startupFlash *ui.FlashMessage
}

// SaveTickMsg fires when an autosave debounce window ends.
type SaveTickMsg struct {
	Seq int // save generation this tick belongs to
}

// New creates a new app model with a fresh single-tab ring
func New(cfg *config.Config, version string) *Model {
	// Apply the saved theme (or the default) before any component renders;
	// this also pushes the palette into the modals package.
	ui.SetThemeByName(cfg.GetTheme())

	m := &Model{
		config:  cfg,
		version: version,
		header:  ui.NewHeader(),
		tabBar:  ui.NewTabBar(),
		editor:  ui.NewEditor(),
		footer:  ui.NewFooter(),
		modal:   ui.NewModal(),
		ring:    tabs.New(),
	}

	m.tabBar.SetShowNumbers(cfg.GetShowTabNumbers())
	m.editor.SetFocused(true)
	m.syncChrome()
	m.syncEditor()

	return m
}

// SetRing replaces the tab ring wholesale, e.g. with state restored from
// disk before the program starts.
func (m *Model) SetRing(r tabs.Ring) {
	m.ring = r
	m.syncChrome()
	m.syncEditor()
}

// Ring returns the current tab ring snapshot
func (m *Model) Ring() tabs.Ring {
	return m.ring
}

// QueueStartupFlash arranges for a flash message to show as soon as the
// program starts. Must be called before Init.
func (m *Model) QueueStartupFlash(text string, flashType ui.FlashType) {
	m.startupFlash = &ui.FlashMessage{Text: text, Type: flashType}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	if m.startupFlash != nil {
		flash := m.startupFlash
		m.startupFlash = nil
		m.footer.SetFlash(flash.Text, flash.Type)
		return ui.FlashTick()
	}
	return nil
}

// dispatch runs an action against the current ring and adopts the resulting
// snapshot. The returned command handles persistence (or an error flash when
// the action is rejected, which no UI path should produce).
func (m *Model) dispatch(action tabs.Action) tea.Cmd {
	next, err := tabs.Apply(m.ring, action)
	if err != nil {
		logger.ComponentLogger("app").Error("action rejected", "error", err)
		return m.ShowFlashError(err.Error())
	}
	m.ring = next
	return m.scheduleSave()
}

// dispatchAndSync is dispatch plus a full component resync. Used for every
// action except Edit, where the editor already holds the new text and
// resetting it would move the cursor.
func (m *Model) dispatchAndSync(action tabs.Action) tea.Cmd {
	cmd := m.dispatch(action)
	m.syncChrome()
	m.syncEditor()
	return cmd
}

// syncEditedText reconciles the ring with the editor after a message may
// have changed the textarea content. Returns nil when nothing changed.
func (m *Model) syncEditedText() tea.Cmd {
	if m.editor.IsInPreviewMode() || m.editor.IsInLogViewerMode() {
		return nil
	}
	text := m.editor.Value()
	if text == m.ring.Current.Doc.Text {
		return nil
	}
	cmd := m.dispatch(tabs.Edit{Action: editor.Change{Text: text}})
	m.syncChrome()
	return cmd
}

// syncChrome updates the header and tab bar from the current ring. When the
// preview overlay is open it re-renders from the current tab as well, so
// navigating while previewing follows along.
func (m *Model) syncChrome() {
	title := m.currentTitle()
	m.header.SetTabTitle(title)
	m.header.SetTabPosition(m.ring.Index()+1, m.ring.Len())
	m.tabBar.SetTabs(ringTitles(m.ring), m.ring.Index())
	if m.editor.IsInPreviewMode() {
		m.editor.SetPreviewSource(title, m.ring.Current.Doc.Text)
	}
}

// syncEditor resets the editor content from the current tab
func (m *Model) syncEditor() {
	m.editor.SetText(m.ring.Current.Doc.Text)
}

// currentTitle returns the display title of the current tab
func (m *Model) currentTitle() string {
	return displayTitle(m.ring.Current)
}

// displayTitle maps a fresh tab's empty title to the Untitled label
func displayTitle(t tabs.Tab) string {
	if t.Title == "" {
		return tabs.Untitled
	}
	return t.Title
}

// ringTitles returns the raw tab titles in display order. Empty titles stay
// empty; the tab bar applies its own Untitled fallback.
func ringTitles(r tabs.Ring) []string {
	all := r.Tabs()
	titles := make([]string, len(all))
	for i, t := range all {
		titles[i] = t.Title
	}
	return titles
}

// scheduleSave marks the ring dirty and either saves immediately or starts
// the configured debounce window. A newer call supersedes older pending
// ticks via the sequence number.
func (m *Model) scheduleSave() tea.Cmd {
	m.dirty = true

	delay := m.config.GetAutosaveDelay()
	if delay <= 0 {
		return m.saveNowCmd()
	}

	m.saveSeq++
	seq := m.saveSeq
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SaveTickMsg{Seq: seq}
	})
}

// handleSaveTick processes an autosave debounce tick, ignoring stale ones
func (m *Model) handleSaveTick(msg SaveTickMsg) tea.Cmd {
	if msg.Seq != m.saveSeq || !m.dirty {
		return nil
	}
	return m.saveNowCmd()
}

// saveNow writes the ring to disk, clearing the dirty flag on success
func (m *Model) saveNow() error {
	if err := config.SaveState(m.ring); err != nil {
		return err
	}
	m.dirty = false
	return nil
}

// saveNowCmd is saveNow with the error surfaced as a flash
func (m *Model) saveNowCmd() tea.Cmd {
	if err := m.saveNow(); err != nil {
		logger.ComponentLogger("app").Error("saving tabs failed", "error", err)
		return m.ShowFlashError("Failed to save tabs")
	}
	return nil
}

// quitNow flushes unsaved changes and exits. Save errors on the way out are
// logged; there is no screen left to flash them on.
func (m *Model) quitNow() tea.Cmd {
	if m.dirty {
		if err := m.saveNow(); err != nil {
			logger.ComponentLogger("app").Error("save on quit failed", "error", err)
		}
	}
	return tea.Quit
}

// requestQuit honors the confirm-quit setting before quitting
func (m *Model) requestQuit() (tea.Model, tea.Cmd) {
	if m.config.GetConfirmQuit() {
		m.modal.Show(modals.NewConfirmQuitState())
		return m, nil
	}
	return m, m.quitNow()
}
