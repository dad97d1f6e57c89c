package cmd

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/freshmaven/cli/internal/catalog"
	"github.com/freshmaven/cli/internal/config"
	oerrors "github.com/freshmaven/cli/internal/errors"
	"github.com/freshmaven/cli/internal/generator"
	"github.com/freshmaven/cli/internal/output"
	"github.com/freshmaven/cli/internal/project"
	"github.com/freshmaven/cli/internal/prompt"
	"github.com/freshmaven/cli/internal/templates"
	"github.com/freshmaven/cli/internal/version"
)

// Flag names.
const (
	flagGroupID          = "groupId"
	flagArtifactID       = "artifactId"
	flagVersionOfProject = "versionOfProject"
	flagProjectName      = "projectName"
	flagNoGit            = "no-git"
	flagInteractive      = "interactive"
	flagVerbose          = "verbose"
	flagVersion          = "version"
	flagOutputDir        = "output-dir"
	flagPackage          = "package"
	flagKind             = "kind"
	flagStack            = "stack"
	flagConfig           = "config"
)

// rootOptions holds the flag values of one invocation.
type rootOptions struct {
	groupID     string
	artifactID  string
	version     string
	projectName string
	packageName string
	kind        string
	stack       string
	outputDir   string
	configFile  string
	noGit       bool
	interactive bool
	verbose     bool
	showVersion bool
}

// NewRootCmd creates the root command. Arguments should be passed
// through NormalizeArgs before Execute so that -vp is understood.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "fresh-maven-project",
		Short: "Create a new Maven project skeleton",
		Long: heredoc.Doc(`
			Create a new Maven project: project folder, pom.xml, main and test
			package folders, Application and ApplicationTest classes, and
			optionally README.md and .gitignore.

			The project is created in a folder named after the project name
			(artifactId when no project name is given) below the current
			directory, or below --output-dir.

			Defaults for groupId, version, kind, stack and the git files can be
			kept in ~/.fresh-maven-project/config.yaml or FMP_* environment
			variables. Command line flags always win.
		`),
		Example: heredoc.Doc(`
			# Command line application with the default stack
			fresh-maven-project -g com.example -a demo

			# Library without README.md and .gitignore
			fresh-maven-project -g com.example -a util -vp 0.1.0 --kind library --no-git

			# Answer every question interactively
			fresh-maven-project -i
		`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(output.LogConfig{
				Verbose: opts.verbose,
				Writer:  cmd.OutOrStdout(),
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&opts.groupID, flagGroupID, "g", "", "Maven groupId (env: FMP_GROUP_ID)")
	f.StringVarP(&opts.artifactID, flagArtifactID, "a", "", "Maven artifactId")
	f.StringVar(&opts.version, flagVersionOfProject, project.DefaultVersion, "Project version, short form -vp (env: FMP_VERSION)")
	f.StringVarP(&opts.projectName, flagProjectName, "n", "", "Project name, used as folder name (default artifactId)")
	f.StringVar(&opts.packageName, flagPackage, "", "Root Java package (default groupId.artifactId)")
	f.StringVar(&opts.kind, flagKind, "", "Application kind (env: FMP_KIND)")
	f.StringVar(&opts.stack, flagStack, "", "Technology stack (env: FMP_STACK)")
	f.StringVar(&opts.outputDir, flagOutputDir, "", "Parent directory of the project folder (env: FMP_OUTPUT_DIR)")
	f.BoolVar(&opts.noGit, flagNoGit, false, "Do not create README.md and .gitignore (env: FMP_NO_GIT)")
	f.BoolVarP(&opts.interactive, flagInteractive, "i", false, "Ask for every value interactively")
	f.BoolVarP(&opts.showVersion, flagVersion, "V", false, "Print version and exit")

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, flagVerbose, "v", false, "Print [VERBOSE] lines")
	pf.StringVar(&opts.configFile, flagConfig, "", "Path to config file (env: FMP_CONFIG)")

	rootCmd.AddCommand(NewStacksCmd(opts))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// settings are the values resolved from flags, environment and config file.
type settings struct {
	groupID   string
	version   string
	kind      string
	kindSet   bool
	stack     string
	noGit     bool
	outputDir string
	catalog   string
	templates string
}

func loadSettings(cmd *cobra.Command, opts *rootOptions) (*settings, error) {
	cfgPath, err := config.ResolveConfigPath(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(cfgPath.Value)
	if err != nil {
		return nil, oerrors.NewIOError("cannot load config", cfgPath.Value, err)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(cfg); err != nil {
		return nil, &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: cfgPath.Value,
			Cause:    oerrors.ErrValidation,
		}
	}

	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}

	r := config.NewResolver(loader, cfg)
	s := &settings{
		groupID:   r.String("groupId", opts.groupID, changed(flagGroupID), cfg.GroupID, ""),
		version:   r.String("version", opts.version, changed(flagVersionOfProject), cfg.Version, project.DefaultVersion),
		kind:      r.String("kind", opts.kind, changed(flagKind), cfg.Kind, catalog.DefaultKind),
		stack:     r.String("stack", opts.stack, changed(flagStack), cfg.Stack, ""),
		noGit:     r.Bool("noGit", opts.noGit, changed(flagNoGit), cfg.NoGit, false),
		outputDir: r.String("outputDir", opts.outputDir, changed(flagOutputDir), cfg.OutputDir, ""),
		catalog:   r.String("catalog", "", false, cfg.Catalog, ""),
		templates: r.String("templates", "", false, cfg.Templates, ""),
	}
	s.kindSet = changed(flagKind) || loader.Source("kind") != config.SourceDefault

	values := append([]config.ResolvedValue{cfgPath}, r.Values()...)
	config.LogResolvedValues(values)

	if s.catalog, err = config.ExpandPath(s.catalog); err != nil {
		return nil, err
	}
	if s.templates, err = config.ExpandPath(s.templates); err != nil {
		return nil, err
	}
	if s.outputDir, err = config.ExpandPath(s.outputDir); err != nil {
		return nil, err
	}
	return s, nil
}

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	if opts.showVersion {
		output.Println(version.Get().Banner())
		return nil
	}

	s, err := loadSettings(cmd, opts)
	if err != nil {
		return reportError(err)
	}

	if !opts.interactive {
		if err := project.ValidateRequired(s.groupID, opts.artifactID); err != nil {
			return reportError(err)
		}
	}

	cat, err := catalog.Load(nil, s.catalog)
	if err != nil {
		return reportError(err)
	}
	logCatalog(cat)

	params := project.Parameters{
		GroupID:     s.groupID,
		ArtifactID:  opts.artifactID,
		Version:     s.version,
		ProjectName: opts.projectName,
		PackageName: opts.packageName,
		NoGit:       s.noGit,
		Verbose:     opts.verbose,
		OutputDir:   s.outputDir,
	}

	if opts.interactive {
		params, err = interview(cmd, cat, params, s)
		if errors.Is(err, oerrors.ErrQuit) {
			output.Debug("Quit requested.")
			return nil
		}
	} else {
		params.Kind, params.Stack, err = selectStack(cat, s)
	}
	if err != nil {
		return reportError(err)
	}

	if err := params.Validate(); err != nil {
		return reportError(err)
	}

	gen := generator.New(nil, newEngine(s.templates), cat)
	result, err := gen.Generate(params)
	if err != nil {
		return reportError(err)
	}

	printResult(params, result)
	return nil
}

// selectStack picks the stack for a non-interactive run: the configured
// stack when there is one, else the first stack of the configured kind.
func selectStack(cat *catalog.Catalog, s *settings) (string, catalog.ApplicationType, error) {
	if s.stack == "" {
		stack, err := cat.DefaultStack(s.kind)
		if err != nil {
			if _, kerr := cat.Kind(s.kind); kerr != nil {
				return "", catalog.ApplicationType{}, kerr
			}
			return "", catalog.ApplicationType{}, err
		}
		return s.kind, stack, nil
	}

	stack, kind, err := cat.FindStack(s.stack)
	if err != nil {
		return "", catalog.ApplicationType{}, err
	}
	if s.kindSet && kind.Name != s.kind {
		return "", catalog.ApplicationType{}, oerrors.NewValidationError(
			fmt.Sprintf("Stack '%s' is not a stack of kind '%s'.", s.stack, s.kind),
			fmt.Sprintf("'%s' belongs to kind '%s'", s.stack, kind.Name),
		)
	}
	return kind.Name, stack, nil
}

func interview(cmd *cobra.Command, cat *catalog.Catalog, base project.Parameters, s *settings) (project.Parameters, error) {
	if s.kindSet {
		base.Kind = s.kind
	}
	if s.stack != "" {
		stack, kind, err := cat.FindStack(s.stack)
		if err != nil {
			return base, err
		}
		base.Stack = stack
		if base.Kind == "" {
			base.Kind = kind.Name
		}
	}

	session := prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout())
	return prompt.Interview(session, cat, base)
}

// newEngine layers the templates directory, when set, over the built-in templates.
func newEngine(dir string) *templates.Engine {
	if dir == "" {
		return templates.NewEngine()
	}
	user := afero.NewIOFS(afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)))
	return templates.NewEngine(user, templates.BuiltinFS())
}

func printResult(p project.Parameters, result *generator.Result) {
	ids := p.Derive()
	output.Info(fmt.Sprintf("Project %s created (%s, %s).",
		output.StyleNoun.Render(ids.ProjectName),
		p.Stack.Name,
		ids.Packaging,
	))

	entries := make([]output.FileEntry, 0, len(result.Files))
	for _, f := range result.Files {
		entries = append(entries, output.FileEntry{Path: f})
	}
	output.Print(output.RenderFileTree(result.Root, entries))
	output.Println(output.FormatCheckmark(output.StyleSummary.Render("Done")))
}
