package repo

import "path/filepath"

// Marker is the name of the metadata directory inside a worktree.
const Marker = ".git"

const (
	headFile        = "HEAD"
	descriptionFile = "description"
	configFile      = "config"

	defaultHead        = "ref: refs/heads/master\n"
	defaultDescription = "Unnamed repository; edit this file 'description' to name the repository.\n"
)

// metadataDirs lists the directories created under the metadata directory,
// parents first. Validate checks the same set.
var metadataDirs = [][]string{
	{"branches"},
	{"objects"},
	{"refs"},
	{"refs", "tags"},
	{"refs", "heads"},
}

var metadataFiles = []string{descriptionFile, headFile}

// coreKeys are the [core] options every repository must carry, with the
// only values this version accepts.
var coreKeys = []struct {
	key  string
	want string
}{
	{"repositoryformatversion", "0"},
	{"filemode", "false"},
	{"bare", "false"},
}

// repoPath joins root with the given segments.
func repoPath(root string, segments ...string) string {
	return filepath.Join(append([]string{root}, segments...)...)
}

// metadataDir returns the metadata directory of a worktree.
func metadataDir(worktree string) string {
	return repoPath(worktree, Marker)
}
