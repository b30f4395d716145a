package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dimitry-bit/quest/pkg/table"
	"github.com/Dimitry-bit/quest/pkg/task"
	"github.com/Dimitry-bit/quest/pkg/util/termio"
)

// showCmd displays a single task card, located by title.
var showCmd = &cobra.Command{
	Use:   "show [flags] title [csv_file]",
	Short: "Display one task card.",
	Long: `Display a single task, located by its title within the column
	headed "Title", including any extra columns the spreadsheet carries.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 || len(args) > 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		title := args[0]
		tbl := table.NewTableFromRows(readRows(cmd, args[1:]))
		mapper := table.NewValueMapper(tbl)
		//
		if tbl.IsEmpty() {
			fmt.Println("no tasks")
			os.Exit(1)
		}
		// Locate the row holding the title within the "Title" column.
		row := mapper.FindInColumn(task.KeyTitle, title, 0)
		if row == -1 {
			fmt.Printf("task %q not found\n", title)
			os.Exit(1)
		}
		//
		projection := table.RowProjection()
		projection.FromRow = row
		projection.Count = 1
		//
		t, err := task.Parse(mapper.GetRows(projection)[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		ansi := !getFlag(cmd, "no-ansi") && termio.IsTerminal()
		printCard(t, ansi)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func printCard(t task.Task, ansi bool) {
	status := fmt.Sprintf("%s %s", t.Status.Icon(), t.Status)
	//
	fmt.Println(colourise(t.Title, termio.BoldAnsiEscape().FgColour(termio.TermWhite), ansi))
	fmt.Printf("  Status:   %s\n", colourise(status, termio.NewAnsiEscape().FgColour(t.Status.Colour()), ansi))
	//
	if t.HasDeadline {
		deadline := t.Deadline.Format("2006-01-02")
		if t.Overdue(time.Now()) {
			deadline = colourise(deadline+"  OVERDUE", termio.NewAnsiEscape().FgColour(termio.TermRed), ansi)
		}
		//
		fmt.Printf("  Deadline: %s\n", deadline)
	}
	//
	for _, key := range t.Extras.Keys() {
		value, _ := t.Extras.GetString(key)
		fmt.Printf("  %s: %s\n", key, value)
	}
}
