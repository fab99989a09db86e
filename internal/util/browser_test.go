package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBrowserCommand(t *testing.T) {
	t.Parallel()

	const url = "http://localhost:8050"
	cases := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", url}},
		{"darwin", "open", []string{url}},
		{"linux", "xdg-open", []string{url}},
		{"freebsd", "xdg-open", []string{url}},
	}
	for _, tc := range cases {
		name, args := browserCommand(tc.goos, url)
		if name != tc.wantName {
			t.Fatalf("%s: name=%q, want %q", tc.goos, name, tc.wantName)
		}
		if diff := cmp.Diff(tc.wantArgs, args); diff != "" {
			t.Fatalf("%s: args mismatch (-want +got):\n%s", tc.goos, diff)
		}
	}
}
