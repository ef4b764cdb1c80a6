package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/keyring"
	"github.com/julianstephens/bidaya/internal/models"
	"github.com/julianstephens/bidaya/internal/seed"
	"github.com/julianstephens/bidaya/internal/storage/sqlite"
	"github.com/julianstephens/bidaya/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	fail := func(name string, err error) {
		ctx.printf("❌ %s: FAIL\n", name)
		ctx.printf("   Error: %v\n", err)
		hasError = true
	}

	// Check 1: storage reachable
	reachable := false
	if err := checkStorageReachable(ctx); err != nil {
		fail("Storage reachable", err)
	} else {
		ctx.printf("✓ Storage reachable: OK\n")
		reachable = true
	}

	if reachable {
		// Check 2: schema and document versions
		if err := checkSchemaVersion(ctx); err != nil {
			fail("Schema version", err)
		} else {
			ctx.printf("✓ Schema version: OK\n")
		}

		// Check 3: document contents
		if err := checkValidation(ctx); err != nil {
			fail("Data validation", err)
		} else {
			ctx.printf("✓ Data validation: OK\n")
		}
	} else {
		ctx.printf("⊘ Schema version: SKIPPED (storage not reachable)\n")
		ctx.printf("⊘ Data validation: SKIPPED (storage not reachable)\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		ctx.printf("⚠ Backups present: WARNING\n")
		ctx.printf("   %v\n", err)
	} else {
		ctx.printf("✓ Backups present: OK\n")
	}

	// Check 5: clock/timezone sanity
	if err := checkClockTimezone(ctx); err != nil {
		fail("Clock/timezone", err)
	} else {
		ctx.printf("✓ Clock/timezone: OK\n")
	}

	// Check 6: keyring (warning only, sync needs it)
	if !keyring.IsAvailable() {
		ctx.printf("⚠ OS keyring: WARNING\n")
		ctx.printf("   keyring unavailable, sync sessions cannot be stored\n")
	} else {
		ctx.printf("✓ OS keyring: OK\n")
	}

	// Check 7: remote store, only when signed in
	if userID, ok := keyring.SessionUser(); ok && ctx.Remote != nil {
		if err := checkRemote(ctx, userID); err != nil {
			fail("Remote store", err)
		} else {
			ctx.printf("✓ Remote store: OK\n")
		}
	} else {
		ctx.printf("⊘ Remote store: SKIPPED (not signed in)\n")
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	backend := ctx.Store.Backend()
	if err := backend.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	if s, ok := backend.(*sqlite.Store); ok {
		var result int
		if err := s.GetDB().QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	if _, err := backend.ReadDocument(); err != nil && !errors.Is(err, errors.ErrNoDocument) {
		return err
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	if s, ok := ctx.Store.Backend().(*sqlite.Store); ok {
		if err := s.Migrations().Validate(ctx.runCtx()); err != nil {
			return err
		}
	}
	data, err := ctx.Store.Backend().ReadDocument()
	if err != nil {
		// Nothing stored yet
		return nil
	}
	var doc struct {
		SchemaVersion int `json:"schemaVersion"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrFormat, err)
	}
	if doc.SchemaVersion > seed.SchemaVersion {
		return fmt.Errorf("document schema version (%d) is newer than supported version (%d)", doc.SchemaVersion, seed.SchemaVersion)
	}
	return nil
}

// checkValidation inspects the document as stored, before any repair
func checkValidation(ctx *Context) error {
	data, err := ctx.Store.Backend().ReadDocument()
	if err != nil {
		return nil
	}
	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrFormat, err)
	}
	result := validation.Validate(state)
	if result.HasIssues() {
		return fmt.Errorf("%d issue(s) found\n%s", len(result.Issues), result.FormatReport())
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	backups, err := ctx.Backups.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s", ctx.Backups.Dir())
	}
	if age := ctx.Store.Now().Sub(backups[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("most recent backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

func checkClockTimezone(ctx *Context) error {
	now := ctx.Store.Now()
	if now.Location() == nil {
		return fmt.Errorf("timezone not configured")
	}
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system clock appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, err := time.Parse("2006-01-02", ctx.Store.Today()); err != nil {
		return fmt.Errorf("date formatting failed: %w", err)
	}
	return nil
}

func checkRemote(ctx *Context, userID string) error {
	c, cancel := context.WithTimeout(ctx.runCtx(), 10*time.Second)
	defer cancel()
	if _, err := ctx.Remote.Pull(c, userID); err != nil && !errors.Is(err, errors.ErrNoDocument) {
		return err
	}
	return nil
}
