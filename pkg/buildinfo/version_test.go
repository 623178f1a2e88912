package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	tpl := Template()

	if !strings.Contains(tpl, "{{.Name}}") {
		t.Error("template should defer the command name to cobra")
	}
	for _, v := range []string{Version, Commit, Date} {
		if !strings.Contains(tpl, v) {
			t.Errorf("template missing %q", v)
		}
	}
	if !strings.HasSuffix(tpl, "\n") {
		t.Error("template should end with a newline")
	}
}
