package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/brochure/content"
	"github.com/eringen/brochure/scaffold"
	"github.com/eringen/brochure/schema"
)

type resourceFlags struct {
	description string
	author      string
	slug        string
	tags        []string
	force       bool
}

func newResourceCommand(v *viper.Viper) *cobra.Command {
	var f resourceFlags
	cmd := &cobra.Command{
		Use:   "new-resource <title>",
		Short: "Create a Markdown resource with front matter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a := v.GetString("author.name"); a != "" && !cmd.Flags().Changed("author") {
				f.author = a
			}
			dir := filepath.Join(v.GetString("content.dir"), filepath.FromSlash(content.DefaultDir))
			path, err := writeResource(dir, args[0], f, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.description, "description", "", "meta description (default: the title)")
	cmd.Flags().StringVar(&f.author, "author", schema.DefaultConfig().AuthorName, "author name")
	cmd.Flags().StringVar(&f.slug, "slug", "", "URL slug (default: derived from the title)")
	cmd.Flags().StringSliceVar(&f.tags, "tags", nil, "comma-separated tags")
	cmd.Flags().BoolVar(&f.force, "force", false, "overwrite an existing file")
	return cmd
}

// writeResource renders the resource template into dir/<slug>.md.
func writeResource(dir, title string, f resourceFlags, now time.Time) (string, error) {
	slug := f.slug
	if slug == "" {
		slug = content.Slugify(title)
	}
	if slug == "" {
		return "", errors.New("title produces an empty slug; pass --slug")
	}
	description := f.description
	if description == "" {
		description = title
	}

	path := filepath.Join(dir, slug+".md")
	if _, err := os.Stat(path); err == nil && !f.force {
		return "", fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	err = scaffold.RenderResource(out, scaffold.ResourceData{
		Title:       title,
		Description: description,
		Author:      f.author,
		Slug:        slug,
		Date:        now.Format("2006-01-02"),
		Tags:        f.tags,
	})
	if err != nil {
		return "", err
	}
	return path, out.Close()
}
