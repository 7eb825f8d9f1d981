package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/streakquest/internal/constants"
)

func setupTestBlob(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	blobPath := filepath.Join(tempDir, "streakquest.json")
	if err := os.WriteFile(blobPath, []byte(`{"habits":[],"userProgress":{"totalXP":0}}`), 0600); err != nil {
		t.Fatalf("failed to create test blob: %v", err)
	}
	return blobPath
}

func TestCreate(t *testing.T) {
	blobPath := setupTestBlob(t)

	mgr := NewManager(blobPath)
	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup created outside backup dir: %s", backupPath)
	}

	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, ".json") {
		t.Errorf("unexpected backup filename: %s", name)
	}

	got, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	want, _ := os.ReadFile(blobPath)
	if string(got) != string(want) {
		t.Errorf("backup content differs from blob")
	}
}

func TestCreateMissingBlob(t *testing.T) {
	tempDir := t.TempDir()
	mgr := NewManager(filepath.Join(tempDir, "missing.json"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error when blob does not exist")
	}
}

func TestCreateUniqueNames(t *testing.T) {
	blobPath := setupTestBlob(t)
	mgr := NewManager(blobPath)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		path, err := mgr.Create()
		if err != nil {
			t.Fatalf("Create #%d failed: %v", i, err)
		}
		if seen[path] {
			t.Fatalf("duplicate backup path: %s", path)
		}
		seen[path] = true
	}
}

func TestList(t *testing.T) {
	blobPath := setupTestBlob(t)
	mgr := NewManager(blobPath)

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups before any Create, got %d", len(backups))
	}

	for i := 0; i < 3; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	backups, err = mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}

	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first at index %d", i)
		}
	}

	for _, b := range backups {
		if b.Size == 0 {
			t.Errorf("backup %s has zero size", b.Path)
		}
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	blobPath := setupTestBlob(t)
	mgr := NewManager(blobPath)

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	foreign := filepath.Join(mgr.GetBackupDir(), "notes.txt")
	if err := os.WriteFile(foreign, []byte("not a backup"), 0600); err != nil {
		t.Fatalf("failed to write foreign file: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestRotation(t *testing.T) {
	blobPath := setupTestBlob(t)
	mgr := NewManager(blobPath)

	numBackups := constants.MaxBackups + 5
	for i := 0; i < numBackups; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatalf("Create #%d failed: %v", i, err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) > constants.MaxBackups {
		t.Errorf("expected at most %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
}

func TestRestore(t *testing.T) {
	blobPath := setupTestBlob(t)
	mgr := NewManager(blobPath)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Change the blob after the backup was taken.
	if err := os.WriteFile(blobPath, []byte(`{"habits":[{"id":"h1"}]}`), 0600); err != nil {
		t.Fatalf("failed to modify blob: %v", err)
	}

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	got, err := os.ReadFile(blobPath)
	if err != nil {
		t.Fatalf("failed to read restored blob: %v", err)
	}
	want, _ := os.ReadFile(backupPath)
	if string(got) != string(want) {
		t.Errorf("restored blob does not match backup")
	}

	// Restore takes a safety backup of the modified state first.
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a safety backup of the pre-restore state, got %d backups", len(backups))
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	blobPath := setupTestBlob(t)
	mgr := NewManager(blobPath)

	if err := mgr.Restore(filepath.Join(mgr.GetBackupDir(), "nope.json")); err == nil {
		t.Error("expected error for missing backup file")
	}
}

func TestRestoreEmptyBackup(t *testing.T) {
	blobPath := setupTestBlob(t)
	mgr := NewManager(blobPath)

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, nil, 0600); err != nil {
		t.Fatalf("failed to write empty file: %v", err)
	}

	if err := mgr.Restore(empty); err == nil {
		t.Error("expected error for empty backup file")
	}
}

func TestTrimCounter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20250315-1204", "20250315-1204"},
		{"20250315-120433", "20250315-120433"},
		{"20250315-120433-1", "20250315-120433"},
		{"20250315-120433-12", "20250315-120433"},
	}

	for _, tt := range tests {
		if got := trimCounter(tt.in); got != tt.want {
			t.Errorf("trimCounter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
