package version

import "fmt"

// Заполняются линкером: -ldflags "-X rivermarsh-server/internal/version.BuildCommit=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// BuildInfo - структурированное описание сборки для /version.
type BuildInfo struct {
	Date   string `json:"date"`
	Commit string `json:"commit"`
	Branch string `json:"branch"`
}

// Info возвращает информацию о сборке.
func Info() BuildInfo {
	return BuildInfo{
		Date:   BuildDate,
		Commit: BuildCommit,
		Branch: BuildBranch,
	}
}

// String возвращает однострочное описание сборки для логов и /version.
func String() string {
	commit := BuildCommit
	if commit == "" {
		commit = "dev"
	}
	branch := BuildBranch
	if branch == "" {
		branch = "local"
	}
	date := BuildDate
	if date == "" {
		date = "unknown"
	}
	return fmt.Sprintf("rivermarsh-server %s@%s (%s)", branch, commit, date)
}
