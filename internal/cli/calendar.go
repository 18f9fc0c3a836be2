package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newCalendarCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show scheduled ideas",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (month == 0) != (year == 0) {
				return fmt.Errorf("--month and --year must be used together")
			}

			ctx := context.Background()
			ideas, err := apiClient.Calendar(ctx, month, year)
			if err != nil {
				return fmt.Errorf("failed to load calendar: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(ideas)
			}

			if len(ideas) == 0 {
				fmt.Println("Nothing scheduled")
				return nil
			}

			table := NewTable("DATE", "ID", "TITLE", "TYPE")
			for _, idea := range ideas {
				date := "-"
				if idea.CalendarDate != nil {
					date = idea.CalendarDate.Format("2006-01-02")
				}
				table.AddRow(date, strconv.FormatInt(idea.ID, 10), truncate(idea.Title, 50), idea.ContentType)
			}
			table.Render()
			return nil
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "month (1-12)")
	cmd.Flags().IntVar(&year, "year", now.Year(), "year")

	return cmd
}

func newTrendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Show trending topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			trends, err := apiClient.Trends(ctx)
			if err != nil {
				return fmt.Errorf("failed to load trends: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(trends)
			}

			table := NewTable("KEYWORD", "SCORE", "INDUSTRY")
			for _, t := range trends {
				table.AddRow(t.Keyword, strconv.FormatFloat(t.TrendScore, 'f', 0, 64), t.Industry)
			}
			table.Render()
			return nil
		},
	}
}
