package sonar

import (
	"fmt"
	"strings"
)

// ServerProperties are the connection coordinates read from the project's
// sonar-project.properties file.
type ServerProperties struct {
	HostURL    string
	ProjectKey string
}

// ParseProperties reads sonar.host.url and sonar.projectKey from a Java
// properties file. Blank lines and # comments are skipped; both keys are
// required.
func ParseProperties(raw []byte) (*ServerProperties, error) {
	props := &ServerProperties{}
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "sonar.host.url":
			props.HostURL = strings.TrimSpace(value)
		case "sonar.projectKey":
			props.ProjectKey = strings.TrimSpace(value)
		}
	}

	if props.HostURL == "" || props.ProjectKey == "" {
		return nil, fmt.Errorf("sonar.host.url and/or sonar.projectKey missing from properties")
	}
	return props, nil
}
