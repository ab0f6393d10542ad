// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Caldera Works

package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/calderaworks/zwatch/pkg/serialapi"
	"github.com/calderaworks/zwatch/pkg/zwcc"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var tuiShowAll bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Live full-screen network dashboard",
	Long: `Watch controller traffic in a full-screen dashboard.

The dashboard tracks the latest resolved value per node and quantity,
frame statistics, and a scrolling event log. Press 'q' to quit.`,
	RunE: runTui,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().BoolVar(&tuiShowAll, "show-all", false, "Log every frame, not only errors and events")
}

// Event log entry
type eventLogEntry struct {
	timestamp time.Time
	message   string
	isError   bool
}

// A resolved value together with where and when it was seen.
type nodeValue struct {
	node  byte
	value zwcc.Value
	seen  time.Time
}

// TUI model
type tuiModel struct {
	connInfo      string
	resolver      *zwcc.Resolver
	stats         *serialapi.Statistics
	latest        map[string]nodeValue
	eventLog      []eventLogEntry
	maxLogEntries int
	logView       viewport.Model
	width         int
	height        int
	quitting      bool
}

// Shared styles, also needed outside View when refreshing the log.
var (
	tuiHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	tuiOkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

// Messages
type tickMsg time.Time
type frameMsg struct {
	frame     *serialapi.Frame
	decodeErr error
}
type connLostMsg struct {
	err error
}

func initialTuiModel(connInfo string, resolver *zwcc.Resolver) tuiModel {
	return tuiModel{
		connInfo:      connInfo,
		resolver:      resolver,
		stats:         serialapi.NewStatistics(),
		latest:        make(map[string]nodeValue),
		eventLog:      make([]eventLogEntry, 0),
		maxLogEntries: 100,
		logView:       viewport.New(76, 8),
		width:         80,
		height:        24,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		tea.EnterAltScreen,
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		// Remaining keys scroll the event log.
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = msg.Width - 6
		logHeight := msg.Height - 14 - len(m.latest)
		if logHeight < 5 {
			logHeight = 5
		}
		m.logView.Height = logHeight
		m.refreshLog()

	case tickMsg:
		m.stats.CalculateRates()
		return m, tickCmd()

	case connLostMsg:
		if msg.err != nil {
			m.addLogEntry(fmt.Sprintf("CONNECTION LOST: %v", msg.err), true)
		} else {
			m.addLogEntry("Connection closed", false)
		}

	case frameMsg:
		m.stats.RecordFrame(msg.frame, msg.decodeErr)
		if msg.decodeErr != nil {
			m.addLogEntry(fmt.Sprintf("FRAMING ERROR: %v", msg.decodeErr), true)
		} else if msg.frame != nil {
			m.handleFrame(msg.frame)
		}
	}

	return m, nil
}

func (m *tuiModel) addLogEntry(message string, isError bool) {
	entry := eventLogEntry{
		timestamp: time.Now(),
		message:   message,
		isError:   isError,
	}
	m.eventLog = append(m.eventLog, entry)

	// Keep only last N entries
	if len(m.eventLog) > m.maxLogEntries {
		m.eventLog = m.eventLog[len(m.eventLog)-m.maxLogEntries:]
	}
	m.refreshLog()
}

// refreshLog rebuilds the viewport content and pins it to the newest
// entry.
func (m *tuiModel) refreshLog() {
	if len(m.eventLog) == 0 {
		m.logView.SetContent(tuiHeaderStyle.Render("  (no events yet)"))
		return
	}
	var content strings.Builder
	for _, entry := range m.eventLog {
		timestamp := entry.timestamp.Format("15:04:05.000")
		if entry.isError {
			content.WriteString(fmt.Sprintf("%s %s\n",
				tuiHeaderStyle.Render(timestamp),
				tuiErrorStyle.Render("✗ "+entry.message),
			))
		} else {
			content.WriteString(fmt.Sprintf("%s %s\n",
				tuiHeaderStyle.Render(timestamp),
				tuiOkStyle.Render("ℹ "+entry.message),
			))
		}
	}
	m.logView.SetContent(strings.TrimRight(content.String(), "\n"))
	m.logView.GotoBottom()
}

// handleFrame folds one serial frame into the model state.
func (m *tuiModel) handleFrame(frame *serialapi.Frame) {
	if !frame.IsData() {
		if tuiShowAll {
			m.addLogEntry(frame.String(), false)
		}
		return
	}

	if frame.Function != serialapi.FuncApplicationCommandHandler {
		if tuiShowAll {
			m.addLogEntry(fmt.Sprintf("%s body % X", frame.String(), frame.Body), false)
		}
		return
	}

	node, command, err := frame.ApplicationCommand()
	if err != nil {
		m.stats.RecordCommand(err)
		m.addLogEntry(fmt.Sprintf("malformed application command: %v", err), true)
		return
	}

	name := zwcc.CommandName(command[0], command[1])
	key, fields, err := zwcc.ParseFrame(command)
	m.stats.RecordCommand(err)
	if err != nil {
		m.addLogEntry(fmt.Sprintf("node %d %s: %v", node, name, err), true)
		return
	}

	outcome, err := m.resolver.Resolve(key.Class(), key.Command(), fields)
	if err != nil {
		m.addLogEntry(fmt.Sprintf("node %d %s: %v", node, name, err), true)
		return
	}
	if outcome == nil {
		if tuiShowAll {
			m.addLogEntry(fmt.Sprintf("node %d %s (no action)", node, name), false)
		}
		return
	}

	if outcome.Value != nil && outcome.Event == "" && outcome.MapName == "" {
		vk := fmt.Sprintf("%03d/%s/%s", node, outcome.Value.Kind, outcome.Value.Unit)
		m.latest[vk] = nodeValue{node: node, value: *outcome.Value, seen: time.Now()}
	}
	switch {
	case outcome.Event != "":
		m.addLogEntry(fmt.Sprintf("node %d event %s", node, outcome.Event), false)
	case outcome.Security != zwcc.SecurityNone:
		m.addLogEntry(fmt.Sprintf("node %d security %s", node, outcome.Security), false)
	case outcome.MapName != "":
		m.addLogEntry(fmt.Sprintf("node %d %s[%d] updated", node, outcome.MapName, outcome.MapKey), false)
	case tuiShowAll:
		m.addLogEntry(fmt.Sprintf("node %d %s", node, name), false)
	}
	if outcome.Advance != zwcc.StateNone {
		m.addLogEntry(fmt.Sprintf("node %d interview advance to %s", node, outcome.Advance), false)
	}
}

func (m tuiModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	// Styles
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	statsLabelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	statsValueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	// Header
	var s strings.Builder
	s.WriteString(titleStyle.Render("ZWATCH - LIVE MONITOR"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("Connection: %s | Mode: %s | Press 'q' to quit",
		m.connInfo, func() string {
			if tuiShowAll {
				return "All frames"
			}
			return "Errors and events"
		}())))
	s.WriteString("\n\n")

	// Statistics
	m.stats.CalculateRates()
	totalErrors := m.stats.ChecksumErrors + m.stats.FramingErrors + m.stats.CommandErrors
	var errorPercent float64
	if m.stats.TotalFrames > 0 {
		errorPercent = float64(totalErrors) * 100.0 / float64(m.stats.TotalFrames)
	}

	statsContent := strings.Builder{}
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		statsLabelStyle.Render("Frames:"), statsValueStyle.Render(fmt.Sprintf("%d", m.stats.TotalFrames)),
		statsLabelStyle.Render("Data:"), statsValueStyle.Render(fmt.Sprintf("%d", m.stats.DataFrames)),
		statsLabelStyle.Render("Errors:"), errorStyle.Render(fmt.Sprintf("%d (%.1f%%)", totalErrors, errorPercent)),
	))
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		statsLabelStyle.Render("ACK:"), statsValueStyle.Render(fmt.Sprintf("%d", m.stats.Acks)),
		statsLabelStyle.Render("NAK:"), warningStyle.Render(fmt.Sprintf("%d", m.stats.Naks)),
		statsLabelStyle.Render("CAN:"), warningStyle.Render(fmt.Sprintf("%d", m.stats.Cancels)),
	))
	if m.stats.ChecksumErrors > 0 || m.stats.FramingErrors > 0 {
		statsContent.WriteString(fmt.Sprintf("%s %s   %s %s\n",
			statsLabelStyle.Render("Checksum Errors:"), errorStyle.Render(fmt.Sprintf("%d", m.stats.ChecksumErrors)),
			statsLabelStyle.Render("Framing Errors:"), errorStyle.Render(fmt.Sprintf("%d", m.stats.FramingErrors)),
		))
	}
	statsContent.WriteString(fmt.Sprintf("%s %s   %s %s",
		statsLabelStyle.Render("Frame Rate:"), statsValueStyle.Render(fmt.Sprintf("%.1f frm/s", m.stats.FrameRate)),
		statsLabelStyle.Render("Error Rate:"), func() string {
			if m.stats.ErrorRate > 0 {
				return errorStyle.Render(fmt.Sprintf("%.1f err/s", m.stats.ErrorRate))
			}
			return statsValueStyle.Render(fmt.Sprintf("%.1f err/s", m.stats.ErrorRate))
		}(),
	))

	s.WriteString(boxStyle.Render(statsContent.String()))
	s.WriteString("\n\n")

	// Latest values per node
	if len(m.latest) > 0 {
		s.WriteString(statsLabelStyle.Render("Latest Values:"))
		s.WriteString("\n")

		keys := make([]string, 0, len(m.latest))
		for k := range m.latest {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		valueContent := strings.Builder{}
		for _, k := range keys {
			nv := m.latest[k]
			label := nv.value.Kind
			if nv.value.Unit != zwcc.UnitNone {
				label = fmt.Sprintf("%s (%s)", nv.value.Kind, nv.value.Unit)
			}
			valueContent.WriteString(fmt.Sprintf("%s %s %s %s\n",
				statsLabelStyle.Render(fmt.Sprintf("Node %d", nv.node)),
				statsValueStyle.Render(label),
				zwcc.FormatField(nv.value.Val),
				headerStyle.Render(nv.seen.Format("15:04:05")),
			))
		}
		s.WriteString(boxStyle.Render(strings.TrimRight(valueContent.String(), "\n")))
		s.WriteString("\n\n")
	}

	// Event log
	s.WriteString(statsLabelStyle.Render("Recent Events:"))
	s.WriteString("\n")
	s.WriteString(boxStyle.Width(m.width - 4).Render(m.logView.View()))

	return s.String()
}

func runTui(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	resolver, err := zwcc.NewResolver(newLogger())
	if err != nil {
		return err
	}

	p := tea.NewProgram(initialTuiModel(connInfo, resolver))

	// Reader goroutine feeds decoded frames into the program.
	go func() {
		decoder := serialapi.NewDecoder()
		buf := make([]byte, 128)
		for {
			n, err := conn.Read(buf)
			if err != nil {
				if err != ErrConnectionClosed {
					p.Send(connLostMsg{err: err})
				} else {
					p.Send(connLostMsg{})
				}
				return
			}
			for i := 0; i < n; i++ {
				frame, decodeErr := decoder.DecodeByte(buf[i])
				if frame == nil && decodeErr == nil {
					continue
				}
				p.Send(frameMsg{frame: frame, decodeErr: decodeErr})
			}
		}
	}()

	_, err = p.Run()
	return err
}
