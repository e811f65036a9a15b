package entities

// TreeParseFailed is returned by the dependency-tree scraper when the
// build tool's console output carried none of the expected markers. The
// scraper is best-effort by design; this is data, not an error.
const TreeParseFailed = "Could not parse dependency tree. Is 'pom.xml' valid?"

// DependencyTree is the scraped dependency listing of one build-tool run:
// the tool's own indented text lines, joined. Parsed is false when the
// scraper fell back to the TreeParseFailed sentinel.
type DependencyTree struct {
	Listing string
	Parsed  bool
}
