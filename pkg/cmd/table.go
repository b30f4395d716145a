package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Dimitry-bit/quest/pkg/table"
	"github.com/Dimitry-bit/quest/pkg/util/termio"
)

// tableCmd represents the table command for inspecting the raw grid.
var tableCmd = &cobra.Command{
	Use:   "table [flags] csv_file",
	Short: "Operate on the raw table.",
	Long: `Operate on the raw table behind the board, such as listing its
	dimensions, dropping or keeping columns, or printing a row range.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		tbl := table.NewTableFromRows(readRowsFile(args[0]))
		//
		if keep := getIntSlice(cmd, "keep"); len(keep) > 0 {
			tbl.DropAllColumnsExcept(keep)
		}
		//
		// Drop from the highest index down so earlier drops never shift the
		// later ones.
		drops := getIntSlice(cmd, "drop")
		sort.Sort(sort.Reverse(sort.IntSlice(drops)))
		//
		for _, drop := range drops {
			tbl.DropColumn(drop)
		}
		//
		fmt.Printf("Table has %d rows and %d columns\n", tbl.NumRows(), tbl.NumColumns())
		//
		if getFlag(cmd, "summary") {
			return
		}
		//
		// Zero means "fit the terminal": share its width across the data
		// columns plus the index column.
		maxWidth := getUint(cmd, "max-width")
		if maxWidth == 0 {
			maxWidth = termio.TerminalWidth() / uint(tbl.NumColumns()+1)
		}
		//
		printer := table.NewPrinter().
			Start(getInt(cmd, "start")).
			MaxCellWidth(maxWidth).
			AnsiEscapes(!getFlag(cmd, "no-ansi") && termio.IsTerminal())
		//
		if end := getInt(cmd, "end"); end >= 0 {
			printer.End(end)
		}
		//
		printer.Print(os.Stdout, tbl)
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	//
	tableCmd.Flags().IntSlice("keep", nil, "retain only these column indices")
	tableCmd.Flags().IntSlice("drop", nil, "drop these column indices (applied highest first)")
	tableCmd.Flags().Int("start", 0, "first row to print")
	tableCmd.Flags().Int("end", -1, "row to stop printing at (exclusive)")
	tableCmd.Flags().Uint("max-width", 0, "maximum cell width (0 fits the terminal)")
	tableCmd.Flags().Bool("summary", false, "print dimensions only")
}
