package infra

import (
	"fmt"
	"strings"
	"testing"
)

const markedQuery = `--sql 0a7b1fc5-9b65-4dfd-8279-98f88736c814
select count(*)
from users u
%s;
`

func TestExtractMarker(t *testing.T) {
	marker, trimmed, err := extractMarker(markedQuery)
	if err != nil {
		t.Fatalf("extractMarker returned error: %v", err)
	}
	if marker != "0a7b1fc5-9b65-4dfd-8279-98f88736c814" {
		t.Fatalf("marker mismatch: %q", marker)
	}
	if strings.Contains(trimmed, "--sql") {
		t.Fatalf("marker line not stripped: %q", trimmed)
	}
}

func TestExtractMarkerSurvivesClauseRendering(t *testing.T) {
	rendered := fmt.Sprintf(markedQuery, "where u.created_at >= $1")
	marker, trimmed, err := extractMarker(rendered)
	if err != nil {
		t.Fatalf("extractMarker returned error: %v", err)
	}
	if marker != "0a7b1fc5-9b65-4dfd-8279-98f88736c814" {
		t.Fatalf("marker mismatch: %q", marker)
	}
	if !strings.Contains(trimmed, "where u.created_at >= $1") {
		t.Fatalf("rendered clause missing: %q", trimmed)
	}
}

func TestExtractMarkerRejectsUnmarkedQuery(t *testing.T) {
	if _, _, err := extractMarker("select 1;"); err == nil {
		t.Fatal("expected error for unmarked query")
	}
}
