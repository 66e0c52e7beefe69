package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/config"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/core"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/registry"
	"github.com/TheSakyo/Ynov-EscapeTheMaze/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2222").
	Address string

	// HostKeyPath is the path to the host key file. Wish generates the key
	// on first start.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int
}

// DefaultSSHServerConfig returns the server defaults, taking addresses and
// paths from env.
func DefaultSSHServerConfig(env config.Env) SSHServerConfig {
	return SSHServerConfig{
		Address:     env.SSHAddr,
		HostKeyPath: env.HostKeyPath,
		DBPath:      env.DBPath,
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultConfig().TickRate,
	}
}

// SSHServer wraps a Wish SSH server serving the maze to remote terminals.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "maze-ssh",
		})
	}

	if cfg.HostKeyPath == "" {
		return nil, errors.New("tui: ssh host key path is empty")
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0o700); err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: create host key directory: %w", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: create ssh server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	sessionID := uuid.NewString()
	rec := NewRunRecorder(s.store, sshSession.User(), s.logger.With("session", sessionID))
	model := NewSessionModel(s.store, rec, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.closeStore()
		return fmt.Errorf("tui: ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Sessions still record runs while the server drains.
	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("could not close scores database", "error", err)
	}
	s.store = nil
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionPhase is the screen a session shows.
type sessionPhase int

const (
	phaseMenu sessionPhase = iota
	phaseOptions
	phaseScoreboard
	phaseGame
)

// SessionModel manages the full session flow inside one program:
// menu -> options -> game -> menu, with the scoreboard reachable from the
// menu. Sub-models that quit their own program are swapped out instead.
type SessionModel struct {
	store      *storage.Store
	recorder   *RunRecorder
	config     core.RuntimeConfig
	phase      sessionPhase
	gameID     string
	options    Options
	menu       MenuModel
	optsModel  OptionsModel
	scoreboard ScoreboardModel
	gameModel  Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, rec *RunRecorder, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:    store,
		recorder: rec,
		config:   cfg,
		options:  CurrentOptions(),
		menu:     NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.phase {
	case phaseOptions:
		return m.updateOptions(msg)
	case phaseScoreboard:
		return m.updateScoreboard(msg)
	case phaseGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.phase = phaseMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		return m.quit()

	case m.menu.WantsScoreboard():
		m.phase = phaseScoreboard
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		sel := m.menu.Selected()
		m.gameID = sel.GameID
		m.phase = phaseOptions
		m.optsModel = NewOptionsModel(sel.Title, m.options, m.config.ScreenW, m.config.ScreenH)
		return m, m.optsModel.Init()
	}

	return m, cmd
}

// updateOptions handles updates on the options screen.
func (m SessionModel) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.optsModel.Update(msg)
	if om, ok := next.(OptionsModel); ok {
		m.optsModel = om
	}

	switch {
	case m.optsModel.IsQuitting():
		return m.quit()

	case m.optsModel.WantsBack():
		return m.toMenu()

	case m.optsModel.Selected() != nil:
		m.options = *m.optsModel.Selected()

		game, err := registry.Create(m.gameID)
		if err != nil {
			// Menu only lists registered games.
			return m.toMenu()
		}
		ApplyOptions(game, m.options)

		cfg := m.config
		cfg.Seed = 0
		m.gameModel = NewModel(game, m.recorder, cfg)
		m.phase = phaseGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates on the scoreboard.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		return m.quit()
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gm, ok := next.(Model); ok {
		m.gameModel = gm
	}

	switch {
	case m.gameModel.IsQuitting():
		return m.quit()
	case m.gameModel.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseOptions:
		return m.optsModel.View()
	case phaseScoreboard:
		return m.scoreboard.View()
	case phaseGame:
		return m.gameModel.View()
	default:
		return m.menu.View()
	}
}
