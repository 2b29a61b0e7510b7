package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/folio/internal/store"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	"github.com/spf13/cobra"
)

const previewLength = 40

func history(cmd *cobra.Command, _ []string) error {
	_, _, logFile, errSetup := setup(nil)
	if errSetup != nil {
		return errSetup
	}
	defer closeLog(logFile)

	database, errDB := openDatabase(cmd.Context())
	if errDB != nil {
		return errDB
	}
	defer closeDatabase(database)

	submissions, errSubmissions := store.New(database).Submissions(cmd.Context(), historyLimit)
	if errSubmissions != nil {
		return errSubmissions
	}

	if len(submissions) == 0 {
		cmd.Println("No messages sent yet")

		return nil
	}

	cmd.Println(historyTable(submissions, time.Now()))

	return nil
}

func historyTable(submissions []store.Submission, now time.Time) string {
	rows := make([][]string, len(submissions))
	for idx, sub := range submissions {
		status := sub.Status
		if sub.HTTPStatus > 0 {
			status += " (" + strconv.Itoa(sub.HTTPStatus) + ")"
		}

		rows[idx] = []string{
			humanize.RelTime(sub.CreatedOn, now, "ago", "from now"),
			sub.Email,
			status,
			preview(sub.Message),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Gray)).
		Headers("Sent", "Email", "Status", "Message").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(styles.Accent).Bold(true).Padding(0, 1)
			}

			if col == 2 && strings.HasPrefix(rows[row][col], "error") {
				return lipgloss.NewStyle().Foreground(styles.Red).Padding(0, 1)
			}

			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}

func preview(message string) string {
	message = strings.Join(strings.Fields(message), " ")
	if len([]rune(message)) <= previewLength {
		return message
	}

	return string([]rune(message)[:previewLength-1]) + "…"
}
