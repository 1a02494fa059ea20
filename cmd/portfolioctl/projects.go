package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/aditya-2529/portfolio/internal/admin"
	"github.com/aditya-2529/portfolio/internal/portfolio/domain"
)

var projectsJSON bool

// projectFields backs the create and update flags. File is a YAML document
// with the same keys as the API body.
type projectFields struct {
	File        string
	Title       string
	Description string
	ImageURL    string
	GithubURL   string
	LiveURL     string
	Tags        []string
}

var projectFlags projectFields

type projectFile struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	ImageURL    string   `yaml:"imageUrl"`
	GithubURL   string   `yaml:"githubUrl"`
	LiveURL     string   `yaml:"liveUrl"`
	Tags        []string `yaml:"tags"`
}

// input overlays the flags that were set on base, after the file when one is given.
func (f projectFields) input(flags *pflag.FlagSet, base domain.ProjectInput) (domain.ProjectInput, error) {
	in := base
	if f.File != "" {
		raw, err := os.ReadFile(f.File)
		if err != nil {
			return in, fmt.Errorf("read project file: %w", err)
		}
		var pf projectFile
		if err := yaml.Unmarshal(raw, &pf); err != nil {
			return in, fmt.Errorf("decode project file: %w", err)
		}
		in = domain.ProjectInput{
			Title:       pf.Title,
			Description: pf.Description,
			ImageURL:    pf.ImageURL,
			GithubURL:   pf.GithubURL,
			LiveURL:     pf.LiveURL,
			Tags:        domain.Tags(pf.Tags),
		}
	}

	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("title", &in.Title, f.Title)
	set("description", &in.Description, f.Description)
	set("image", &in.ImageURL, f.ImageURL)
	set("github", &in.GithubURL, f.GithubURL)
	set("live", &in.LiveURL, f.LiveURL)
	if flags.Changed("tags") {
		in.Tags = domain.NormalizeTags(f.Tags)
	}
	return in, nil
}

func bindProjectFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&projectFlags.File, "file", "f", "", "YAML file with the project fields")
	fs.StringVar(&projectFlags.Title, "title", "", "Project title (unique)")
	fs.StringVar(&projectFlags.Description, "description", "", "Project description")
	fs.StringVar(&projectFlags.ImageURL, "image", "", "Image URL")
	fs.StringVar(&projectFlags.GithubURL, "github", "", "GitHub URL")
	fs.StringVar(&projectFlags.LiveURL, "live", "", "Live site URL")
	fs.StringSliceVar(&projectFlags.Tags, "tags", nil, "Comma separated tags")
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List, create, update and delete projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		items, err := c.ListProjects(ctxOf(cmd))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if projectsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}
		for _, p := range items {
			printProject(cmd, p)
		}
		return nil
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project from flags or --file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := projectFlags.input(cmd.Flags(), domain.ProjectInput{})
		if err != nil {
			return err
		}
		d, err := newDashboard(cmd)
		if err != nil {
			return err
		}
		p, err := d.CreateProject(ctxOf(cmd), in)
		if err != nil {
			return err
		}
		printProject(cmd, *p)
		return nil
	},
}

var projectsUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a project in place",
	Long: `Update replaces every field of the project. Fields not given as flags
(or in --file) keep their current values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := ctxOf(cmd)
		d, err := newDashboard(cmd)
		if err != nil {
			return err
		}
		// Messages may fail to load without affecting the update.
		_ = d.Load(ctx)
		if tab := d.Projects(); tab.State == admin.StateError {
			return tab.Err
		}

		var current *domain.Project
		for _, p := range d.Projects().Items {
			if p.ID == args[0] {
				current = &p
				break
			}
		}
		if current == nil {
			return fmt.Errorf("project %s not found", args[0])
		}

		in, err := projectFlags.input(cmd.Flags(), domain.ProjectInput{
			Title:       current.Title,
			Description: current.Description,
			ImageURL:    current.ImageURL,
			GithubURL:   current.GithubURL,
			LiveURL:     current.LiveURL,
			Tags:        current.Tags,
		})
		if err != nil {
			return err
		}
		p, err := d.UpdateProject(ctx, args[0], in)
		if err != nil {
			return err
		}
		printProject(cmd, *p)
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDashboard(cmd)
		if err != nil {
			return err
		}
		return d.DeleteProject(ctxOf(cmd), args[0])
	},
}

func printProject(cmd *cobra.Command, p domain.Project) {
	out := cmd.OutOrStdout()
	printf(out, "%s  %s  [%s]\n", p.ID, p.Title, strings.Join(p.Tags, ", "))
	printf(out, "    image: %s\n", p.DisplayImageURL())
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd, projectsCreateCmd, projectsUpdateCmd, projectsDeleteCmd)
	projectsListCmd.Flags().BoolVar(&projectsJSON, "json", false, "Output in JSON format")
	bindProjectFlags(projectsCreateCmd)
	bindProjectFlags(projectsUpdateCmd)
}
