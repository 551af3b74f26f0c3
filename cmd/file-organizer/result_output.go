package main

import (
	"fmt"
	"io"

	"github.com/litescript/ls-file-organizer/internal/organizer"
)

const (
	statusCreated = "created"
	statusCopied  = "copied"
	statusSkipped = "skipped"
)

// resultRows flattens a result into (status, detail) rows: created folders
// first, then copies, then skips.
func resultRows(res *organizer.Result) [][]string {
	rows := make([][]string, 0, len(res.CreatedFolders)+len(res.MovedFiles)+len(res.SkippedFiles))
	for _, f := range res.CreatedFolders {
		rows = append(rows, []string{statusCreated, f})
	}
	for _, f := range res.MovedFiles {
		rows = append(rows, []string{statusCopied, f})
	}
	for _, s := range res.SkippedFiles {
		rows = append(rows, []string{statusSkipped, s})
	}
	return rows
}

func resultSummary(res *organizer.Result, dryRun bool) string {
	verb := "copied"
	if dryRun {
		verb = "would be copied"
	}
	return fmt.Sprintf("%d file(s) %s, %d skipped, %d folder(s) created",
		len(res.MovedFiles), verb, len(res.SkippedFiles), len(res.CreatedFolders))
}

// printResult writes a table on terminals and tab-separated lines otherwise.
func printResult(w io.Writer, res *organizer.Result, dryRun bool) {
	rows := resultRows(res)
	if len(rows) > 0 {
		if isTerminal(w) {
			fmt.Fprintln(w, renderTable([]string{"Status", "Path"}, rows))
		} else {
			for _, row := range rows {
				fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
			}
		}
	}
	fmt.Fprintln(w, resultSummary(res, dryRun))
}
