package build

import "time"

var (
	commit  = ""
	date    = ""
	version = "dev"
	repoURL = "https://github.com/ItsNotGoodName/x-webglass"
)

func init() {
	date, _ := time.Parse(time.RFC3339, date)

	Current = Build{
		Commit:  commit,
		Version: version,
		Date:    date,
		RepoURL: repoURL,
	}
}

var Current Build

type Build struct {
	Commit  string    `json:"commit,omitempty"`
	Version string    `json:"version,omitempty"`
	Date    time.Time `json:"date,omitempty"`
	RepoURL string    `json:"repo_url,omitempty"`
}
