// Package maintenance holds offline checks over stored character data.
package maintenance

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/arcanum-api/internal/errors"
	"github.com/KirkDiggler/arcanum-api/internal/redis"
	characterrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/character"
	"github.com/KirkDiggler/arcanum-api/internal/repositories/schema"
)

// Names of the companion rows a sheet cannot be built without.
const (
	PartAbilityScores = "ability_scores"
	PartGameState     = "game_state"
)

const scanBatch = 100

// DoctorConfig holds dependencies for the doctor
type DoctorConfig struct {
	Client        redis.Client
	CharacterRepo characterrepo.Repository
}

// Validate checks the configuration
func (c *DoctorConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	return vb.Build()
}

// Doctor finds characters whose sheet can no longer be assembled.
type Doctor struct {
	client     redis.Client
	characters characterrepo.Repository
}

// NewDoctor creates a doctor
func NewDoctor(cfg *DoctorConfig) (*Doctor, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Doctor{
		client:     cfg.Client,
		characters: cfg.CharacterRepo,
	}, nil
}

// Finding is one incomplete character.
type Finding struct {
	CharacterID string
	Missing     []string
}

// Report is the result of a scan. Findings are ordered by character id.
type Report struct {
	Checked  int
	Findings []Finding
}

// Scan walks every stored character and reports the ones missing ability
// scores or game state. On a cluster only the node the client routes SCAN
// to is covered.
func (d *Doctor) Scan(ctx context.Context) (*Report, error) {
	report := &Report{}

	iter := d.client.Scan(ctx, 0, schema.CharacterScanPattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		id, ok := schema.CharacterIDFromKey(iter.Val())
		if !ok {
			continue
		}
		report.Checked++

		missing, err := d.missingParts(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			slog.WarnContext(ctx, "incomplete character", "character_id", id, "missing", missing)
			report.Findings = append(report.Findings, Finding{CharacterID: id, Missing: missing})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan characters")
	}

	sort.Slice(report.Findings, func(i, j int) bool {
		return report.Findings[i].CharacterID < report.Findings[j].CharacterID
	})
	return report, nil
}

func (d *Doctor) missingParts(ctx context.Context, characterID string) ([]string, error) {
	pipe := d.client.Pipeline()
	abilities := pipe.Exists(ctx, schema.AbilitiesKey(characterID))
	state := pipe.Exists(ctx, schema.GameStateKey(characterID))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to check character %s", characterID)
	}

	var missing []string
	if abilities.Val() == 0 {
		missing = append(missing, PartAbilityScores)
	}
	if state.Val() == 0 {
		missing = append(missing, PartGameState)
	}
	return missing, nil
}

// Remove deletes the characters named in findings along with their
// companion rows and index entries. Characters already gone are skipped.
func (d *Doctor) Remove(ctx context.Context, findings []Finding) (int, error) {
	removed := 0
	for _, f := range findings {
		_, err := d.characters.Delete(ctx, characterrepo.DeleteInput{ID: f.CharacterID})
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return removed, errors.Wrapf(err, "failed to remove character %s", f.CharacterID)
		}
		slog.InfoContext(ctx, "removed incomplete character", "character_id", f.CharacterID)
		removed++
	}
	return removed, nil
}
