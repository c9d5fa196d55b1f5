package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"viewpager/internal/config"
	"viewpager/internal/domain"
	"viewpager/internal/pager"
	"viewpager/internal/swipe"
	"viewpager/internal/ui/views"
)

// rows above the frame
const titleHeight = 1

// Deps are the collaborators the model drives
type Deps struct {
	Pager    *pager.Pager
	Registry *pager.Registry
	Logger   *log.Logger
	Config   *config.Config
	Slides   []Slide
	// Start is a slide key or index to open on
	Start string
	// Clock overrides the swipe recognizer's clock
	Clock swipe.Clock
}

// Model represents the UI state
type Model struct {
	pager      *pager.Pager
	registry   *pager.Registry
	recognizer *swipe.Recognizer
	listeners  swipe.Listeners
	logger     *log.Logger
	config     *config.Config

	slides   []Slide
	frameBox *pager.Box
	trackBox *pager.Box
	boxes    []*pager.Box
	animator *Animator
	styles   *views.Styles
	keys     keyMap
	help     help.Model

	width    int
	height   int
	frameW   int
	frameH   int
	visibleW int
	visibleH int
	laidOut  bool
	start    string

	indices     []int
	progress    float64
	rendered    string
	unsubscribe []func()
}

// NewModel binds the slides to the pager and wires input to a swipe recognizer
func NewModel(deps Deps) *Model {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		pager:    deps.Pager,
		registry: deps.Registry,
		logger:   logger,
		config:   cfg,
		slides:   deps.Slides,
		frameBox: pager.NewBox(0, 0),
		trackBox: pager.NewBox(0, 0),
		animator: NewAnimator(cfg.UI.FPS),
		styles:   views.NewStyles(),
		keys:     newKeyMap(),
		help:     help.New(),
		start:    deps.Start,
	}

	m.pager.AddFrame(m.frameBox)
	m.pager.AddTrack(m.trackBox)
	for _, s := range m.slides {
		box := pager.NewBox(0, 0)
		m.boxes = append(m.boxes, box)
		m.pager.AddView(box, s.Key)
	}

	opts := []swipe.Option{swipe.WithLogger(logger)}
	if deps.Clock != nil {
		opts = append(opts, swipe.WithClock(deps.Clock))
	}
	m.recognizer = swipe.New(m.pager, opts...)
	m.listeners = m.recognizer.Listeners()

	m.indices = m.pager.CurrentIndices()
	m.unsubscribe = append(m.unsubscribe,
		m.pager.On(domain.EventViewChange, func(e domain.DomainEvent) {
			if event, ok := e.(domain.ViewChangeEvent); ok {
				m.indices = event.Indices
			}
		}),
		m.pager.On(domain.EventScroll, func(e domain.DomainEvent) {
			if event, ok := e.(domain.ScrollEvent); ok {
				m.progress = event.Progress
			}
		}),
	)

	return m
}

// Close drops the model's event subscriptions
func (m *Model) Close() {
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
}

// Init starts the animation ticker
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	fps := m.config.UI.FPS
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles incoming messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.render()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		m.render()
		return m, nil

	case tickMsg:
		m.step()
		m.render()
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	opts := m.pager.Options()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.pager.Next()
	case key.Matches(msg, m.keys.Prev):
		m.pager.Prev()
	case key.Matches(msg, m.keys.First):
		m.pager.ScrollTo(0)
	case key.Matches(msg, m.keys.Last):
		m.pager.ScrollTo(m.pager.ViewCount() - 1)
	case key.Matches(msg, m.keys.Infinite):
		m.setOptions(pager.WithInfinite(!opts.Infinite))
	case key.Matches(msg, m.keys.Contain):
		m.setOptions(pager.WithContain(!opts.Contain))
	case key.Matches(msg, m.keys.Axis):
		m.setOptions(pager.WithAxis(opts.Axis.Cross()))
	case key.Matches(msg, m.keys.Instant):
		m.setOptions(pager.WithInstant(!opts.Instant))
	case key.Matches(msg, m.keys.More):
		count := min(opts.ViewsToShow.Count()+1, max(1, m.pager.ViewCount()))
		m.setOptions(pager.WithViewsToShow(pager.Fixed(count)))
	case key.Matches(msg, m.keys.Fewer):
		count := max(1, opts.ViewsToShow.Count()-1)
		m.setOptions(pager.WithViewsToShow(pager.Fixed(count)))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}

	m.render()
	return m, nil
}

// setOptions applies an option change and lays everything out again
func (m *Model) setOptions(opts ...pager.Option) {
	if err := m.pager.SetOptions(opts...); err != nil {
		m.logger.Warn("option change rejected", "err", err)
		return
	}
	m.pager.ResetViewIndex()
	m.listeners = m.recognizer.Listeners()
	m.layout()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pt := swipe.Point{X: float64(msg.X), Y: float64(msg.Y - titleHeight)}
	inside := msg.X >= 0 && msg.X < m.visibleW && msg.Y >= titleHeight && msg.Y-titleHeight < m.visibleH

	switch {
	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		m.pager.Next()
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		m.pager.Prev()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inside && m.listeners.MouseDown != nil {
			m.listeners.MouseDown(pt)
		}
	case msg.Action == tea.MouseActionMotion:
		if m.recognizer.State() != swipe.Swiping {
			return
		}
		if !inside {
			if m.listeners.MouseLeave != nil {
				m.listeners.MouseLeave()
			}
			return
		}
		if m.listeners.MouseMove != nil {
			m.listeners.MouseMove(pt)
		}
	case msg.Action == tea.MouseActionRelease:
		if m.listeners.MouseUp != nil {
			m.listeners.MouseUp()
		}
	}
}

// step advances the displayed position one frame toward the pager target.
// A gesture or instant mode shows the target directly. Under infinite mode
// the index is folded back once the spring settles.
func (m *Model) step() {
	opts := m.pager.Options()
	target := m.pager.TrackPosition()

	if m.pager.IsSwiping() || opts.Instant {
		m.animator.Jump(target)
		return
	}

	m.animator.SetTarget(target)
	if m.animator.Step() && opts.Infinite {
		m.pager.ResetViewIndex()
		m.animator.Jump(m.pager.TrackPosition())
	}
}

func (m *Model) chromeHeight() int {
	h := titleHeight + 1
	if m.config.UI.ShowHelp {
		h += lipgloss.Height(m.help.View(m.keys))
	}
	return h
}

// layout sizes the frame and every slide for the terminal, the way a
// stylesheet would size them in a browser, and re-hydrates the pager
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	opts := m.pager.Options()

	m.frameW = m.width
	m.frameH = max(1, m.height-m.chromeHeight())
	frame := domain.Size{Width: float64(m.frameW), Height: float64(m.frameH)}
	m.frameBox.Resize(frame.Width, frame.Height)
	m.trackBox.Resize(frame.Width, frame.Height)

	along := opts.Axis.Dimension()
	across := opts.Axis.Cross().Dimension()

	for i, s := range m.slides {
		nw, nh := m.styles.NaturalSize(s.Title, s.Body)
		natural := domain.Size{Width: float64(nw), Height: float64(nh)}

		size := frame
		if opts.ViewsToShow.IsAuto() {
			size = size.With(along, math.Min(natural.Get(along), frame.Get(along)))
		} else {
			size = size.With(along, math.Max(1, math.Floor(frame.Get(along)/float64(opts.ViewsToShow.Count()))))
		}
		if opts.AutoSize.Sizes(across) {
			size = size.With(across, math.Min(natural.Get(across), frame.Get(across)))
		}
		m.boxes[i].Resize(size.Width, size.Height)
	}

	if m.registry != nil {
		m.registry.Notify(m.frameBox)
	} else {
		m.pager.Hydrate()
	}

	if !m.laidOut && m.start != "" {
		m.pager.ScrollTo(m.pager.IndexOf(m.start))
	}
	m.laidOut = true
	m.animator.Jump(m.pager.TrackPosition())

	m.logger.Debug("layout", "frame", frame, "views", m.pager.ViewCount(), "trackPosition", m.pager.TrackPosition())
}

// render composes the frame for the displayed position
func (m *Model) render() {
	if !m.laidOut {
		return
	}

	m.visibleW, m.visibleH = m.frameW, m.frameH
	fs := m.pager.Frame().Styles()
	if fs.HasMaxWidth {
		m.visibleW = min(m.visibleW, int(fs.MaxWidth))
	}
	if fs.HasHeight {
		m.visibleH = min(m.visibleH, int(fs.Height))
	}

	tiles := make([][]string, len(m.slides))
	for i, v := range m.pager.Views() {
		s := m.slides[i]
		w := int(v.SizeOf(domain.Width))
		h := int(v.SizeOf(domain.Height))
		tiles[i] = m.styles.RenderSlide(s.Title, s.Body, w, h, v.IsCurrent())
	}

	m.rendered = Compose(m.pager, m.animator.Position(), tiles, m.visibleW, m.visibleH)
}

func (m *Model) statusLine() string {
	opts := m.pager.Options()
	n := m.pager.ViewCount()
	if n == 0 {
		return m.styles.Status.Render("no slides")
	}

	current := m.pager.CurrentView()
	flags := []string{"axis " + string(opts.Axis), "show " + opts.ViewsToShow.String()}
	if opts.Infinite {
		flags = append(flags, "infinite")
	}
	if opts.Contain {
		flags = append(flags, "contain")
	}
	if opts.Instant {
		flags = append(flags, "instant")
	}

	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(current.Key()),
		m.styles.Status.Render(fmt.Sprintf("%d/%d  views %v  %s  %s",
			current.Index()+1, n, m.indices,
			m.styles.Progress.Render(fmt.Sprintf("%3.0f%%", math.Abs(m.progress)*100)),
			strings.Join(flags, " · "))),
	)
}

// View renders the UI
func (m *Model) View() string {
	if !m.laidOut {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("viewpager"))
	b.WriteString("\n")
	b.WriteString(m.rendered)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	if m.config.UI.ShowHelp {
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	}
	return b.String()
}
