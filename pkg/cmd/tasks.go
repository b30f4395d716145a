package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Dimitry-bit/quest/pkg/table"
	"github.com/Dimitry-bit/quest/pkg/task"
	"github.com/Dimitry-bit/quest/pkg/util/termio"
)

// tasksCmd renders the task board, grouped by status.
var tasksCmd = &cobra.Command{
	Use:   "tasks [flags] [csv_file]",
	Short: "Display the task board.",
	Long: `Display every task of the configured spreadsheet (or a local CSV
	export) as a board grouped by status.  The first spreadsheet row is the
	header and supplies the record keys.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		tbl := table.NewTableFromRows(readRows(cmd, args))
		log.Debugf("loaded %dx%d table", tbl.NumRows(), tbl.NumColumns())
		//
		if tbl.NumRows() < 2 {
			fmt.Println("no tasks")
			return
		}
		//
		mapper := table.NewValueMapper(tbl)
		//
		tasks, err := task.ParseAll(mapper.GetRows(table.RowProjection()))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		ansi := !getFlag(cmd, "no-ansi") && termio.IsTerminal()
		printBoard(tasks, ansi)
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}

// Render the board: one section per status (in display order), one line per
// task.
func printBoard(tasks []task.Task, ansi bool) {
	now := time.Now()
	//
	for _, status := range task.AllStatuses() {
		group := filterByStatus(tasks, status)
		if len(group) == 0 {
			continue
		}
		//
		header := fmt.Sprintf("%s %s (%d)", status.Icon(), status, len(group))
		fmt.Println(colourise(header, termio.BoldAnsiEscape().FgColour(status.Colour()), ansi))
		//
		for _, t := range group {
			fmt.Println(formatTask(t, now, ansi))
		}
		//
		fmt.Println()
	}
}

func formatTask(t task.Task, now time.Time, ansi bool) string {
	line := "  " + t.Title
	//
	if t.HasDeadline {
		line = fmt.Sprintf("%s  (due %s)", line, t.Deadline.Format("2006-01-02"))
	}
	//
	if t.Overdue(now) {
		return colourise(line+"  OVERDUE", termio.NewAnsiEscape().FgColour(termio.TermRed), ansi)
	}
	//
	return line
}

func filterByStatus(tasks []task.Task, status task.Status) []task.Task {
	var group []task.Task
	//
	for _, t := range tasks {
		if t.Status == status {
			group = append(group, t)
		}
	}
	//
	return group
}

func colourise(text string, escape termio.AnsiEscape, ansi bool) string {
	if !ansi {
		return text
	}
	//
	return escape.Build() + text + termio.ResetAnsiEscape().Build()
}
