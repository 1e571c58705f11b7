package docs

import (
	"bufio"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// TestTopicsListedInReadme keeps the readme in sync with the topic files:
// every topic mentioned in readme.md must load, and every topic file must be
// mentioned in readme.md.
func TestTopicsListedInReadme(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("cannot read readme topic: %v", err)
	}

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(strings.NewReader(readme))
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("readme lists topic %q, but it does not load: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q exists but is not listed in readme.md", topic)
		}
	}
}

// TestTopicsStartWithTitle parses each topic as markdown and checks it opens
// with a level-1 heading, which the terminal renderer relies on.
func TestTopicsStartWithTitle(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	all = append(all, "readme")

	md := goldmark.New()
	for _, topic := range all {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		doc := md.Parser().Parse(gtext.NewReader([]byte(content)))
		h, ok := doc.FirstChild().(*ast.Heading)
		if !ok || h.Level != 1 {
			t.Errorf("topic %q does not start with a level-1 heading", topic)
		}
	}
}

func TestStarExpandsToAllTopics(t *testing.T) {
	content, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) has error %v", err)
	}
	for _, want := range []string{"# The portfolio file", "# Stock info enrichment", "# Commands"} {
		if !strings.Contains(content, want) {
			t.Errorf("GetTopics(*) misses %q", want)
		}
	}
}
