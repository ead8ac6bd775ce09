package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/abatilo/sigo/internal/config"
	"github.com/abatilo/sigo/internal/task"
)

//nolint:gochecknoglobals // Styles are package-level like the color palette they use
var (
	headerStyle = lipgloss.NewStyle().Bold(true).PaddingRight(1)
	cellStyle   = lipgloss.NewStyle().PaddingRight(1)
	highStyle   = cellStyle.Foreground(lipgloss.Color("#E06C75"))
	mediumStyle = cellStyle.Foreground(lipgloss.Color("#E5C07B"))
	lowStyle    = cellStyle.Foreground(lipgloss.Color("#61AFEF"))
)

const priorityColumn = 1

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct {
	mode config.Mode
}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter(mode config.Mode) *HumanFormatter {
	return &HumanFormatter{mode: mode}
}

// FormatEvent formats the outcome of a command as one line.
func (f *HumanFormatter) FormatEvent(e Event) string {
	switch e.Kind {
	case EventCreated:
		return fmt.Sprintf("Created sigo %d\n", e.ID)
	case EventCreatedWaiting:
		return fmt.Sprintf("Created waiting sigo %d\n", e.ID)
	case EventModified:
		return fmt.Sprintf("Modified sigo %d '%s'\n", e.ID, e.Description)
	case EventCompleted:
		return fmt.Sprintf("Completed sigo %d '%s'\n", e.ID, e.Description)
	case EventWaited:
		return fmt.Sprintf("Waiting sigo %d '%s'\n", e.ID, e.Description)
	case EventAlreadyWaiting:
		return fmt.Sprintf("Already waiting sigo %d '%s'\n", e.ID, e.Description)
	case EventReturned:
		return fmt.Sprintf("Returned sigo %d '%s'\n", e.ID, e.Description)
	case EventAlreadyReady:
		return fmt.Sprintf("Already ready sigo %d '%s'\n", e.ID, e.Description)
	case EventAnnotated:
		return fmt.Sprintf("Annotated sigo %d '%s'\n", e.ID, e.Description)
	default:
		return fmt.Sprintf("sigo %d '%s'\n", e.ID, e.Description)
	}
}

// FormatTaskList formats active tasks as a table.
func (f *HumanFormatter) FormatTaskList(tasks []task.ActiveParams) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	priorities := make([]*task.Priority, len(tasks))
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		priorities[i] = t.Priority
		rows[i] = []string{
			strconv.Itoa(t.ID),
			priorityMark(t.Priority),
			f.description(t),
			dueMark(t),
		}
	}

	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		Headers("ID", "P", "Description", "Due").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == priorityColumn && row >= 0 && row < len(priorities) {
				return priorityStyle(priorities[row])
			}
			return cellStyle
		})

	return tbl.String() + "\n"
}

// FormatCompletedList formats the completed archive, oldest first.
func (f *HumanFormatter) FormatCompletedList(tasks []task.CompletedTask) string {
	if len(tasks) == 0 {
		return "No completed tasks.\n"
	}

	var sb strings.Builder
	for _, t := range tasks {
		sb.WriteString(fmt.Sprintf("[X] %s\n", t.Summary))
	}
	return sb.String()
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}

func (f *HumanFormatter) description(t task.ActiveParams) string {
	if f.mode == config.ModeMinimum {
		return t.PrimaryDescription()
	}
	return strings.Join(t.Description, "\n")
}

func priorityMark(p *task.Priority) string {
	if p == nil {
		return ""
	}
	return string(*p)
}

func priorityStyle(p *task.Priority) lipgloss.Style {
	if p == nil {
		return cellStyle
	}
	switch *p {
	case task.PriorityHigh:
		return highStyle
	case task.PriorityMedium:
		return mediumStyle
	case task.PriorityLow:
		return lowStyle
	default:
		return cellStyle
	}
}

func dueMark(t task.ActiveParams) string {
	if t.Due == nil {
		return ""
	}
	return t.Due.String()
}
