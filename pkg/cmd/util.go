package cmd

import (
	"context"
	"fmt"
	"os"
	"path"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"github.com/Dimitry-bit/quest/pkg/config"
	"github.com/Dimitry-bit/quest/pkg/sheets"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected int flag, or panic if an error arises.
func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected uint flag, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected int-slice flag, or panic if an error arises.
func getIntSlice(cmd *cobra.Command, flag string) []int {
	r, err := cmd.Flags().GetIntSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Apply the persistent logging flags.
func configureLogging(cmd *cobra.Command) {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Read raw rows from the source named by the command line: a local file
// argument (dispatched on its extension, currently CSV only) or, when no
// file is given, the configured spreadsheet range.
func readRows(cmd *cobra.Command, args []string) [][]string {
	if len(args) > 0 {
		return readRowsFile(args[0])
	}
	//
	return readRowsRemote(cmd)
}

// Read raw rows from a local file based on the extension of the filename.
func readRowsFile(filename string) [][]string {
	var (
		rows [][]string
		err  error
	)
	// Check file extension
	ext := path.Ext(filename)
	//
	switch ext {
	case ".csv":
		rows, err = sheets.ReadCSV(filename)
	default:
		err = fmt.Errorf("unknown row file format: %s", ext)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return rows
}

// Fetch raw rows from the configured spreadsheet range.
func readRowsRemote(cmd *cobra.Command) [][]string {
	cfg, err := config.Load(getString(cmd, "config"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	if cfg.SpreadsheetID == "" {
		fmt.Println("no spreadsheet configured (and no local file given)")
		os.Exit(2)
	}
	//
	var opts []option.ClientOption
	//
	switch {
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	case cfg.Credentials != "":
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}
	//
	ctx := context.Background()
	//
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	rows, err := srv.FetchRange(ctx, cfg.SpreadsheetID, cfg.Range)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return rows
}
