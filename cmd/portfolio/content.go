package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanumantha123456/portfolio/config"
	"github.com/hanumantha123456/portfolio/content"
)

var contentForce bool

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage the page content file",
}

var contentInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the built-in content to an editable file",
	Long: `Writes the built-in profile as a Markdown file with YAML frontmatter.
Point site.content_file at it to override the page content. Without a path the
configured content_file is used, falling back to content.md.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "content.md"
		if len(args) == 1 {
			path = args[0]
		} else if cfg, err := config.Load(cfgFile); err == nil && cfg.Site.ContentFile != "" {
			path = cfg.Site.ContentFile
		}

		if !contentForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		w := bufio.NewWriter(f)
		if err := content.Encode(w, content.Default()); err != nil {
			_ = f.Close()
			return err
		}
		if err := w.Flush(); err != nil {
			_ = f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", path, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to --config",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !contentForce {
			if _, err := os.Stat(cfgFile); err == nil {
				return fmt.Errorf("%s already exists, use --force to overwrite", cfgFile)
			}
		}
		if err := config.DefaultConfig().Save(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	contentCmd.PersistentFlags().BoolVarP(&contentForce, "force", "f", false, "overwrite an existing file")
	contentCmd.AddCommand(contentInitCmd)
	configInitCmd.Flags().BoolVarP(&contentForce, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(configCmd)
}
