package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ideator/pkg/client"
)

func newIdeasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Manage content ideas",
	}

	cmd.AddCommand(newIdeasListCmd())
	cmd.AddCommand(newIdeasGetCmd())
	cmd.AddCommand(newIdeasGenerateCmd())
	cmd.AddCommand(newIdeasScheduleCmd())
	cmd.AddCommand(newIdeasDeleteCmd())

	return cmd
}

func newIdeasListCmd() *cobra.Command {
	var contentType, status string
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your content ideas",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			result, err := apiClient.Ideas().List(ctx, client.ListOptions{
				ContentType: contentType,
				Status:      status,
				Page:        page,
				Limit:       limit,
			})
			if err != nil {
				return fmt.Errorf("failed to list ideas: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			table := NewTable("ID", "TITLE", "TYPE", "STATUS", "DATE")
			for _, idea := range result.Ideas {
				date := "-"
				if idea.CalendarDate != nil {
					date = idea.CalendarDate.Format("2006-01-02")
				}
				table.AddRow(
					strconv.FormatInt(idea.ID, 10),
					truncate(idea.Title, 50),
					idea.ContentType,
					idea.Status,
					date,
				)
			}
			table.Render()

			fmt.Printf("\nPage %d of %d (%d total)\n",
				result.Pagination.Page, result.Pagination.Pages, result.Pagination.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&contentType, "type", "", "filter by content type (blog, video, social)")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (draft, scheduled, published)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "items per page")

	return cmd
}

func newIdeasGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid idea id: %s", args[0])
			}

			ctx := context.Background()
			idea, err := apiClient.Ideas().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get idea: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(idea)
			}

			fmt.Printf("Title:       %s\n", idea.Title)
			fmt.Printf("Type:        %s\n", idea.ContentType)
			fmt.Printf("Status:      %s\n", idea.Status)
			if idea.CalendarDate != nil {
				fmt.Printf("Scheduled:   %s\n", idea.CalendarDate.Format("2006-01-02"))
			}
			if len(idea.Keywords) > 0 {
				fmt.Printf("Keywords:    %s\n", strings.Join(idea.Keywords, ", "))
			}
			fmt.Printf("Description: %s\n", idea.Description)
			return nil
		},
	}
}

func newIdeasGenerateCmd() *cobra.Command {
	var contentType string
	var keywords []string
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate new ideas with AI",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ideas, err := apiClient.Ideas().Generate(ctx, client.GenerateRequest{
				ContentType: contentType,
				Keywords:    keywords,
				Count:       count,
			})
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(ideas)
			}

			fmt.Printf("Generated %d ideas:\n\n", len(ideas))
			for _, idea := range ideas {
				fmt.Printf("  [%d] %s\n      %s\n\n", idea.ID, idea.Title, idea.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&contentType, "type", "blog", "content type (blog, video, social)")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "comma-separated keywords")
	cmd.Flags().IntVar(&count, "count", 5, "number of ideas to generate (1-10)")

	return cmd
}

func newIdeasScheduleCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "schedule <id> [date]",
		Short: "Schedule an idea for a date (YYYY-MM-DD), or clear it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid idea id: %s", args[0])
			}

			req := client.UpdateRequest{}
			switch {
			case clear:
				req.CalendarDate = client.Null
			case len(args) == 2:
				if _, err := time.Parse("2006-01-02", args[1]); err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[1])
				}
				req.CalendarDate = args[1]
			default:
				return fmt.Errorf("provide a date or --clear")
			}

			ctx := context.Background()
			idea, err := apiClient.Ideas().Update(ctx, id, req)
			if err != nil {
				return fmt.Errorf("failed to schedule idea: %w", err)
			}

			if idea.CalendarDate != nil {
				fmt.Printf("Idea %d scheduled for %s\n", idea.ID, idea.CalendarDate.Format("2006-01-02"))
			} else {
				fmt.Printf("Idea %d unscheduled\n", idea.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "clear the scheduled date")

	return cmd
}

func newIdeasDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid idea id: %s", args[0])
			}

			ctx := context.Background()
			if err := apiClient.Ideas().Delete(ctx, id); err != nil {
				return fmt.Errorf("failed to delete idea: %w", err)
			}

			fmt.Printf("Idea %d deleted\n", id)
			return nil
		},
	}
}
