// Package tui is the interaction shell for the blackjack engine: it owns
// all prompting, rendering, and the play-again loop, and asks the engine
// what actions are legal rather than encoding any rules itself.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// phase tracks what input the shell is waiting for
type phase int

const (
	phaseBet phase = iota
	phaseAction
	phaseSettled
	phaseGameOver
)

// Model is the Bubble Tea model for a blackjack session
type Model struct {
	table  *game.Table
	limits config.TableSettings
	logger *log.Logger

	betInput textinput.Model
	logView  viewport.Model
	lines    []string

	phase    phase
	errLine  string
	width    int
	height   int
	quitting bool
}

// NewModel creates the session model around an engine table.
func NewModel(table *game.Table, limits config.TableSettings, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("bet amount (%d-%d)", limits.MinBet, limits.MaxBet)
	ti.CharLimit = 10
	ti.Width = 24
	ti.Focus()

	vp := viewport.New(60, 8)

	return &Model{
		table:    table,
		limits:   limits,
		logger:   logger,
		betInput: ti,
		logView:  vp,
		phase:    phaseBet,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = msg.Width - 4
		m.logView.Height = max(4, msg.Height-14)
		m.refreshLog()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

		switch m.phase {
		case phaseBet:
			return m.updateBet(msg)
		case phaseAction:
			return m.updateAction(msg)
		case phaseSettled:
			return m.updateSettled(msg)
		case phaseGameOver:
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

func (m *Model) updateBet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.placeBet(strings.TrimSpace(m.betInput.Value()))
		return m, nil
	}

	var cmd tea.Cmd
	m.betInput, cmd = m.betInput.Update(msg)
	return m, cmd
}

// placeBet parses and validates the wager, re-prompting on anything the
// engine or the table limits reject.
func (m *Model) placeBet(input string) {
	amount, err := strconv.Atoi(input)
	if err != nil {
		m.errLine = fmt.Sprintf("enter a number, got %q", input)
		return
	}
	if amount < m.limits.MinBet || amount > m.limits.MaxBet {
		m.errLine = fmt.Sprintf("bets are %d to %d", m.limits.MinBet, m.limits.MaxBet)
		return
	}
	if err := m.table.PlaceBet(amount); err != nil {
		m.errLine = err.Error()
		return
	}

	round, err := m.table.Deal()
	if err != nil {
		m.errLine = err.Error()
		return
	}

	m.errLine = ""
	m.betInput.Reset()
	m.logger.Debug("round dealt", "bet", amount, "upcard", round.Upcard().String())
	m.addLine(fmt.Sprintf("Bet %d. Dealer shows %s.", amount, m.styleCard(round.Upcard())))

	if round.State() == game.StateComplete {
		m.finishRound()
		return
	}
	m.phase = phaseAction
}

func (m *Model) updateAction(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	round := m.table.Round()
	hand := round.ActiveHand()

	var action game.Action
	switch msg.String() {
	case "h":
		action = game.Hit
	case "s":
		action = game.Stand
	case "d":
		action = game.Double
	case "p":
		action = game.Split
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	default:
		return m, nil
	}

	if err := m.table.Apply(hand, action); err != nil {
		// Recoverable: show the refusal and keep prompting.
		m.errLine = err.Error()
		return m, nil
	}
	m.errLine = ""
	m.logAction(round, hand, action)

	if round.State() == game.StateComplete {
		m.finishRound()
	}
	return m, nil
}

func (m *Model) logAction(round *game.Round, hand int, action game.Action) {
	switch action {
	case game.Split:
		m.addLine(fmt.Sprintf("Split into %s and %s.",
			m.styleHand(round.Hands[0]), m.styleHand(round.Hands[1])))
		if round.Hands[0].SplitAces {
			m.addLine("Split aces: one card each, forced stand.")
		}
	case game.Hit, game.Double:
		h := round.Hands[hand]
		drawn := h.Cards[len(h.Cards)-1]
		verb := "Drew"
		if action == game.Double {
			verb = "Doubled and drew"
		}
		m.addLine(fmt.Sprintf("%s %s: %s", verb, m.styleCard(drawn), m.styleHand(h)))
		if h.IsBusted() {
			m.addLine(ErrorStyle.Render("Busted!"))
		}
	case game.Stand:
		m.addLine(fmt.Sprintf("Stand on %d.", round.Hands[hand].Total()))
	}
	m.logger.Debug("action applied", "hand", hand, "action", action.String())
}

// finishRound reveals the dealer, settles, and reports the outcomes.
func (m *Model) finishRound() {
	round := m.table.Round()
	m.addLine(fmt.Sprintf("Dealer: %s", m.styleHand(round.Dealer)))
	if round.Dealer.IsBusted() {
		m.addLine(SuccessStyle.Render("Dealer busts!"))
	}

	outcomes, err := m.table.Settle()
	if err != nil {
		m.errLine = err.Error()
		return
	}

	for _, o := range outcomes {
		tag := "Hand"
		if len(outcomes) > 1 {
			tag = fmt.Sprintf("Hand %d", o.Hand+1)
		}
		switch o.Result {
		case game.Win:
			m.addLine(SuccessStyle.Render(fmt.Sprintf("%s wins %d.", tag, o.Amount)))
		case game.Loss:
			m.addLine(ErrorStyle.Render(fmt.Sprintf("%s loses %d.", tag, o.Amount)))
		case game.Push:
			m.addLine(fmt.Sprintf("%s pushes.", tag))
		}
	}
	m.addLine(fmt.Sprintf("Bankroll: %s", BankrollStyle.Render(strconv.Itoa(m.table.Bankroll()))))
	m.logger.Info("round settled", "bankroll", m.table.Bankroll())

	if m.table.Bankroll() < m.limits.MinBet {
		m.addLine(ErrorStyle.Render("Out of money. Thanks for playing!"))
		m.phase = phaseGameOver
		return
	}
	m.phase = phaseSettled
}

func (m *Model) updateSettled(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "n":
		m.quitting = true
		return m, tea.Quit
	case "enter", "y", "b":
		m.phase = phaseBet
		m.betInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return "Thanks for playing!\n"
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(m.logView.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderPrompt())
	if m.errLine != "" {
		b.WriteString("\n" + ErrorStyle.Render(m.errLine))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderTable() string {
	round := m.table.Round()
	if round == nil || m.phase == phaseBet && round.State() == game.StateSettled {
		return InfoStyle.Render(fmt.Sprintf("Bankroll %d. Place your bet.", m.table.Bankroll()))
	}

	var b strings.Builder
	if round.State() == game.StatePlayerTurn {
		// Hole card stays hidden until the dealer's turn.
		b.WriteString(fmt.Sprintf("Dealer: %s ??\n", m.styleCard(round.Upcard())))
	} else {
		b.WriteString(fmt.Sprintf("Dealer: %s\n", m.styleHand(round.Dealer)))
	}

	for i, h := range round.Hands {
		marker := "  "
		if i == round.ActiveHand() {
			marker = ActiveHandStyle.Render("> ")
		}
		label := "Your hand"
		if len(round.Hands) > 1 {
			label = fmt.Sprintf("Hand %d", i+1)
		}
		b.WriteString(fmt.Sprintf("%s%s: %s\n", marker, HandInfoStyle.Render(label), m.styleHand(h)))
	}
	return b.String()
}

func (m *Model) renderPrompt() string {
	switch m.phase {
	case phaseBet:
		return fmt.Sprintf("Bet: %s\n%s", m.betInput.View(),
			InfoStyle.Render("enter to deal, q to quit"))
	case phaseAction:
		round := m.table.Round()
		actions := m.table.ValidActions(round.ActiveHand())
		keys := make([]string, 0, len(actions))
		for _, a := range actions {
			keys = append(keys, fmt.Sprintf("[%s]%s", a.String()[:1], a.String()[1:]))
		}
		return ActiveHandStyle.Render(strings.Join(keys, " "))
	case phaseSettled:
		return InfoStyle.Render("enter to play again, q to quit")
	case phaseGameOver:
		return InfoStyle.Render("press any key to exit")
	}
	return ""
}

func (m *Model) styleCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func (m *Model) styleHand(h *game.Hand) string {
	parts := make([]string, 0, len(h.Cards)+1)
	for _, c := range h.Cards {
		parts = append(parts, m.styleCard(c))
	}
	parts = append(parts, fmt.Sprintf("(%d)", h.Total()))
	return strings.Join(parts, " ")
}

func (m *Model) addLine(line string) {
	m.lines = append(m.lines, line)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.logView.SetContent(strings.Join(m.lines, "\n"))
	m.logView.GotoBottom()
}
