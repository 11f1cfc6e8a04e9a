package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/arcanum-api/internal/maintenance"
	characterrepo "github.com/KirkDiggler/arcanum-api/internal/repositories/character"
)

var (
	doctorRemove bool
	doctorYes    bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Scan stored characters for missing ability scores or game state",
	Long: `Scan every stored character and report the ones whose sheet can no longer be
assembled because the ability score or game state row is missing. With --remove the
incomplete characters are deleted after confirmation.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address list (overrides ARCANUM_REDIS_ADDR)")
	doctorCmd.Flags().BoolVar(&doctorRemove, "remove", false, "delete incomplete characters")
	doctorCmd.Flags().BoolVar(&doctorYes, "yes", false, "skip the confirmation prompt")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := connectRedis(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // command is exiting
	}()

	characters, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		return err
	}
	doctor, err := maintenance.NewDoctor(&maintenance.DoctorConfig{
		Client:        client,
		CharacterRepo: characters,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Scanning for incomplete characters...")

	report, err := doctor.Scan(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nChecked %d characters, found %d incomplete\n", report.Checked, len(report.Findings))
	if len(report.Findings) == 0 {
		return nil
	}

	for _, f := range report.Findings {
		fmt.Fprintf(out, "  - %s (missing %s)\n", f.CharacterID, strings.Join(f.Missing, ", "))
	}

	if !doctorRemove {
		return nil
	}

	if !doctorYes {
		fmt.Fprint(out, "\nDelete these characters? (yes/no): ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Fprintln(out, "Aborted - no changes made")
			return nil
		}
	}

	removed, err := doctor.Remove(ctx, report.Findings)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Removed %d characters\n", removed)
	return nil
}
