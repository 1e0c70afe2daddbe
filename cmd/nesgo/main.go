package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sb-nes/nesgo/nes"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "nesgo",
		Usage: "a 2A03/6502 NES core: run a ROM headlessly, or inspect its disassembly",
		Commands: []*cli.Command{
			runCommand(),
			disasmCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "load a ROM and run it",
		ArgsUsage: "<rom>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "open a live CPU-register/disassembly panel"},
			&cli.BoolFlag{Name: "log", Usage: "log every retired instruction to stderr"},
			&cli.IntFlag{Name: "frames", Usage: "stop after this many PPU frames (0 = run forever)", Value: 0},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	romPath := c.Args().First()
	if romPath == "" {
		return cli.Exit("usage: nesgo run <rom>", 1)
	}

	bus := nes.NewBus()
	if c.Bool("log") {
		bus.Cpu.SetLogger(log.New(os.Stderr, "", 0))
	}
	if err := bus.LoadCartridge(romPath); err != nil {
		return exitOnLoadError(err)
	}

	if c.Bool("debug") {
		bus.EnableDebugWindow()
	}
	bus.Reset()

	frameLimit := c.Int("frames")
	debug := c.Bool("debug")
	framesRun := 0
	for frameLimit == 0 || framesRun < frameLimit {
		if runFrame(bus, debug) {
			break
		}
		framesRun++
	}

	return nil
}

// runFrame clocks the bus until a PPU frame completes, then refreshes the
// debug window if one is open. It reports whether the caller should stop
// (the debug window was closed).
func runFrame(bus *nes.Bus, debug bool) (stop bool) {
	if debug {
		defer nes.TimeTrack(time.Now())
	}

	for !bus.Ppu.FrameComplete() {
		bus.Clock()
	}
	if bus.Disp != nil {
		bus.DrawDebugPanel()
		return bus.Disp.Closed()
	}
	return false
}

func disasmCommand() *cli.Command {
	return &cli.Command{
		Name:      "disasm",
		Usage:     "step through a ROM's disassembly interactively",
		ArgsUsage: "<rom>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "starting address, e.g. 0xC000", Value: "0x8000"},
			&cli.IntFlag{Name: "len", Usage: "number of bytes to disassemble", Value: 64},
		},
		Action: disasmAction,
	}
}

func disasmAction(c *cli.Context) error {
	romPath := c.Args().First()
	if romPath == "" {
		return cli.Exit("usage: nesgo disasm <rom>", 1)
	}

	bus := nes.NewBus()
	if err := bus.LoadCartridge(romPath); err != nil {
		return exitOnLoadError(err)
	}
	bus.Reset()

	start, err := parseAddr(c.String("addr"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	length := uint16(c.Int("len"))

	lines := bus.Cpu.Disassemble(start, start+length)
	ordered := make([]string, 0, len(lines))
	for addr := start; addr <= start+length; addr++ {
		if line, ok := lines[addr]; ok {
			ordered = append(ordered, line)
		}
	}

	if _, err := tea.NewProgram(disasmModel{lines: ordered}).Run(); err != nil {
		return errors.Wrap(err, "disassembly viewer")
	}
	return nil
}

func parseAddr(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid address %q", s)
	}
	return uint16(v), nil
}

func exitOnLoadError(err error) error {
	return cli.Exit(fmt.Sprintf("load cartridge: %v", err), 1)
}

// disasmModel is a scrolling, read-only viewport over a disassembly listing.
type disasmModel struct {
	lines  []string
	cursor int
}

const disasmWindow = 20

func (m disasmModel) Init() tea.Cmd { return nil }

func (m disasmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "down", "j":
		if m.cursor < len(m.lines)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	}
	return m, nil
}

var disasmCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

func (m disasmModel) View() string {
	lo := m.cursor
	hi := lo + disasmWindow
	if hi > len(m.lines) {
		hi = len(m.lines)
	}

	rows := make([]string, 0, hi-lo)
	for i := lo; i < hi; i++ {
		if i == m.cursor {
			rows = append(rows, disasmCursorStyle.Render("> "+m.lines[i]))
		} else {
			rows = append(rows, "  "+m.lines[i])
		}
	}
	rows = append(rows, "", "j/k or arrows to scroll, q to quit")
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
