package version

import "strings"

type Version struct {
	Node string `json:"node"`
}

func New(version string) *Version {
	return &Version{
		Node: strings.TrimSpace(version),
	}
}
