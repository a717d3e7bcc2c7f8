package logging

import "testing"

func TestNew(t *testing.T) {
	for _, mode := range []string{"", "dev", "development", "prod"} {
		log, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		if log == nil {
			t.Fatalf("New(%q) returned nil logger", mode)
		}
		log.Info("logger constructed")
		_ = log.Sync()
	}
}

func TestLogFileOverride(t *testing.T) {
	path := t.TempDir() + "/pathwise.log"
	t.Setenv("PATHWISE_LOG", path)

	log, err := New("prod")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("written to file")
	_ = log.Sync()
}
