package app

import "testing"

func TestVersion_StampedValuesWin(t *testing.T) {
	oldV, oldC := BuildVersion, BuildCommit
	t.Cleanup(func() { BuildVersion, BuildCommit = oldV, oldC })

	BuildVersion, BuildCommit = "v1.2.0", "0123456789abcdef"
	if got, want := Version(), "quizexport v1.2.0 (0123456789ab)"; got != want {
		t.Fatalf("Version() = %q, want %q", got, want)
	}
}
