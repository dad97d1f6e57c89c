package prompt

import (
	"github.com/freshmaven/cli/internal/catalog"
	"github.com/freshmaven/cli/internal/project"
)

var intro = []string{
	"Interactive mode.",
	"In this mode you type all the information by hand. First set values to groupId, artifactId, version,",
	"and project name. After that choose what type of application you want to build: stand-alone-application,",
	"library JAR or a J2EE application. Last, choose what technologies you want to use in your application.",
	"In all questions below: q=quit.",
	"Illegal answers restart the question until correct. Default values in parenthesis may be chosen",
	"by pressing the Enter key.",
	"",
}

// Interview asks for every project parameter. Values already set in base
// are offered as defaults; the remaining fields of base are kept.
func Interview(s *Session, cat *catalog.Catalog, base project.Parameters) (project.Parameters, error) {
	p := base
	for _, line := range intro {
		s.Say("%s", line)
	}

	var err error
	if p.GroupID, err = s.Text("groupId", base.GroupID); err != nil {
		return p, err
	}
	if p.ArtifactID, err = s.Text("artifactId", base.ArtifactID); err != nil {
		return p, err
	}

	version := base.Version
	if version == "" {
		version = project.DefaultVersion
	}
	if p.Version, err = s.Text("version", version); err != nil {
		return p, err
	}

	s.Say("Project name is used as project folder name, 'name' tag in pom file and 'finalName' tag in pom file. ArtifactId is default value.")
	if p.ProjectName, err = s.Text("project name", project.EffectiveProjectName(base.ProjectName, p.ArtifactID)); err != nil {
		return p, err
	}

	pkg := project.DefaultPackageName(p.GroupID, p.ArtifactID)
	if base.PackageName != "" {
		pkg = base.PackageName
	}
	s.Say("Root package is (groupId + artifactId): %s . This will also produce the folder path", pkg)
	s.Say("\"%s\" in src/main/java and src/test/java.", project.PackageFolderPath(pkg))
	for {
		answer, err := s.Text("package name", pkg)
		if err != nil {
			return p, err
		}
		if project.IsValidPackageName(answer) {
			p.PackageName = answer
			break
		}
		s.Say("'%s' is not a valid package name.", answer)
	}
	if p.PackageName != pkg {
		s.Say("New folder path will be \"%s\" in src/main/java and src/test/java.", project.PackageFolderPath(p.PackageName))
	}

	kind, err := chooseKind(s, cat, base.Kind)
	if err != nil {
		return p, err
	}
	p.Kind = kind.Name

	stack, err := chooseStack(s, kind, base.Stack.Name)
	if err != nil {
		return p, err
	}
	p.Stack = stack

	s.Say("Should GIT files (README.md, .gitignore) be created?")
	def := "y"
	if base.NoGit {
		def = "n"
	}
	answer, err := s.Select("Git files (y/n)", []string{"y", "n"}, def)
	if err != nil {
		return p, err
	}
	p.NoGit = answer == "n"

	return p, nil
}

func chooseKind(s *Session, cat *catalog.Catalog, preferred string) (catalog.Kind, error) {
	kinds := cat.Kinds()
	descriptions := make([]string, len(kinds))
	def := 1
	for i, k := range kinds {
		descriptions[i] = k.Description
		if k.Name == preferred {
			def = i + 1
		}
	}

	s.Say("")
	s.Say("What kind of application do you want to create?")
	idx, err := s.Choose("Type of application", descriptions, def)
	if err != nil {
		return catalog.Kind{}, err
	}
	s.Say("You selected to create a %s.", kinds[idx].Description)
	s.Say("")
	return kinds[idx], nil
}

func chooseStack(s *Session, kind catalog.Kind, preferred string) (catalog.ApplicationType, error) {
	descriptions := make([]string, len(kind.Stacks))
	def := 1
	for i, st := range kind.Stacks {
		descriptions[i] = st.Description
		if st.Name == preferred {
			def = i + 1
		}
	}

	s.Say("What kind of stack of technologies/dependencies do you want to use?")
	idx, err := s.Choose("Stack of technologies/dependencies", descriptions, def)
	if err != nil {
		return catalog.ApplicationType{}, err
	}
	s.Say("")
	return kind.Stacks[idx], nil
}
