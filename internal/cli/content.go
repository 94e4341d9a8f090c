package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List credit-repair service packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		packages, err := a.client.Packages(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load packages: %w", err)
		}

		for i, p := range packages {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(titleStyle.Render(p.Name) + mutedStyle.Render(fmt.Sprintf("  (%s)", p.Slug)))
			fmt.Printf("%s for %d months\n", formatINR(p.Price), p.DurationMonths)
			if p.Description != "" {
				fmt.Println(p.Description)
			}
			for _, feature := range p.Features {
				fmt.Println("  - " + feature)
			}
		}
		return nil
	},
}

var blogsCmd = &cobra.Command{
	Use:   "blogs [slug]",
	Short: "List articles, or read one by slug",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			post, err := a.client.Blog(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load article: %w", err)
			}

			fmt.Println(titleStyle.Render(post.Title))
			fmt.Println(mutedStyle.Render(fmt.Sprintf("by %s on %s", post.Author, post.PublishedAt.Format("2 Jan 2006"))))
			fmt.Println()
			fmt.Println(post.Content)
			return nil
		}

		posts, err := a.client.Blogs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load articles: %w", err)
		}

		for _, post := range posts {
			fmt.Println(labelStyle.Render(post.Title))
			fmt.Println(mutedStyle.Render(fmt.Sprintf("  %s · %s", post.Slug, post.PublishedAt.Format("2 Jan 2006"))))
			if post.Summary != "" {
				fmt.Println("  " + post.Summary)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packagesCmd, blogsCmd)
}
